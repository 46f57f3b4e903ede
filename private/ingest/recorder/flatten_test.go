// Copyright 2026 Internet Route Verification Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/pkg/bgp"
	"github.com/SichangHe/internet-route-verification-server/private/ingest/recorder"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry"
)

func TestFlattenItemIsTotal(t *testing.T) {
	seen := make(map[string]bgp.ItemKind)
	for k := 0; k < bgp.NumItemKinds; k++ {
		kind := bgp.ItemKind(k)
		item := bgp.ReportItem{Kind: kind, Name: "NAME", Num: 7}
		row, ok := recorder.FlattenItem(item)
		require.True(t, ok, kind.String())
		assert.NotEmpty(t, row.Category, kind.String())
		assert.NotEmpty(t, row.SpecificCase, kind.String())

		again, _ := recorder.FlattenItem(item)
		assert.Equal(t, row, again, kind.String())

		if row.Category == recorder.CategoryRecursion {
			assert.Equal(t, "recursion", row.SpecificCase, kind.String())
			continue
		}
		if other, ok := seen[row.SpecificCase]; ok {
			t.Errorf("%s and %s share specific case %s", other, kind, row.SpecificCase)
		}
		seen[row.SpecificCase] = kind
	}
	_, ok := recorder.FlattenItem(bgp.ReportItem{Kind: bgp.ItemKind(bgp.NumItemKinds)})
	assert.False(t, ok)
}

func TestFlattenItem(t *testing.T) {
	str := func(s string) *string { return &s }
	num := func(n uint32) *uint32 { return &n }
	testCases := map[string]struct {
		item bgp.ReportItem
		want registry.ReportItem
	}{
		"regex with tilde": {
			item: bgp.NameItem(bgp.SkipAsRegexWithTilde, "~AS1"),
			want: registry.ReportItem{Category: "skip", SpecificCase: "skip_regex_tilde",
				StrContent: str("~AS1")},
		},
		"community payload dropped": {
			item: bgp.ReportItem{Kind: bgp.SkipCommunityCheckUnimplemented, Extra: "call"},
			want: registry.ReportItem{Category: "skip", SpecificCase: "skip_community"},
		},
		"unrecorded aut-num": {
			item: bgp.NumItem(bgp.UnrecordedAutNum, 3),
			want: registry.ReportItem{Category: "unrecorded", SpecificCase: "unrec_aut_num",
				NumContent: num(3)},
		},
		"set contains origin": {
			item: bgp.ReportItem{Kind: bgp.SpecAsSetContainsOriginButNoRoute,
				Name: "AS-FOO", Num: 65000},
			want: registry.ReportItem{Category: "special_case",
				SpecificCase: "spec_as_set_contains_origin_but_no_route",
				StrContent:   str("AS-FOO"), NumContent: num(65000)},
		},
		"filter as num": {
			item: bgp.ReportItem{Kind: bgp.MatchFilterAsNum, Num: 1, Extra: "^+"},
			want: registry.ReportItem{Category: "filter_error",
				SpecificCase: "err_filter_as_num", NumContent: num(1)},
		},
		"remote as set": {
			item: bgp.NameItem(bgp.MatchRemoteAsSet, "AS-BAR"),
			want: registry.ReportItem{Category: "remote_error",
				SpecificCase: "err_remote_as_set", StrContent: str("AS-BAR")},
		},
		"peering": {
			item: bgp.Item(bgp.MatchPeering),
			want: registry.ReportItem{Category: "peering_error", SpecificCase: "err_peering"},
		},
		"invalid as name": {
			item: bgp.NameItem(bgp.RpslInvalidAsName, "AS-"),
			want: registry.ReportItem{Category: "rpsl_error", SpecificCase: "rpsl_as_name",
				StrContent: str("AS-")},
		},
		"recursion with name": {
			item: bgp.NameItem(bgp.RecCheckSetMember, "AS-LOOP"),
			want: registry.ReportItem{Category: "recursion_guard", SpecificCase: "recursion",
				StrContent: str("AS-LOOP")},
		},
		"recursion without name": {
			item: bgp.NameItem(bgp.RecFilterAsName, "ignored"),
			want: registry.ReportItem{Category: "recursion_guard", SpecificCase: "recursion"},
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, ok := recorder.FlattenItem(tc.item)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFlattenReport(t *testing.T) {
	testCases := map[bgp.ReportKind]struct {
		overall string
		imp     bool
	}{
		bgp.OkImport:    {"ok", true},
		bgp.OkExport:    {"ok", false},
		bgp.SkipImport:  {"skip", true},
		bgp.SkipExport:  {"skip", false},
		bgp.UnrecImport: {"unrecorded", true},
		bgp.UnrecExport: {"unrecorded", false},
		bgp.MehImport:   {"special_case", true},
		bgp.MehExport:   {"special_case", false},
		bgp.BadImport:   {"bad", true},
		bgp.BadExport:   {"bad", false},
	}
	for kind, tc := range testCases {
		t.Run(kind.String(), func(t *testing.T) {
			row, ok := recorder.FlattenReport(bgp.Report{Kind: kind, From: 1, To: 2})
			require.True(t, ok)
			assert.Equal(t, registry.ExchangeReport{FromAS: 1, ToAS: 2, Import: tc.imp,
				OverallType: tc.overall}, row)
		})
	}
	_, ok := recorder.FlattenReport(bgp.Report{Kind: bgp.AsPathPairWithSet, From: 1, To: 2})
	assert.False(t, ok)
}
