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

package ir_test

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
)

const doc = `{
  "aut_nums": {
    "65000": {"body": "aut-num: AS65000\nas-name: EXAMPLE\n", "imports": {"any": {}}, "exports": {}}
  },
  "as_sets": {
    "AS-FOO": {"body": "as-set: AS-FOO\n", "members": [1, 2], "set_members": ["AS-BAR"], "is_any": false}
  },
  "route_sets": {
    "RS-FOO": {"body": "route-set: RS-FOO\n", "members": [
      {"RSRange": {"address_prefix": "192.0.2.0/24", "range_operator": "Plus"}},
      {"RSRange": {"address_prefix": "2001:db8::/32", "range_operator": {"Num": [40, 48]}}},
      {"NameOp": ["RS-BAR", "NoOp"]}
    ]}
  },
  "peering_sets": {"PRNG-FOO": {"body": "peering-set: PRNG-FOO\n", "peerings": []}},
  "filter_sets": {"FLTR-FOO": {"body": "filter-set: FLTR-FOO\n", "filters": [{"Any": null}]}},
  "as_routes": {"65000": ["192.0.2.0/24"]}
}`

func TestDecode(t *testing.T) {
	got, err := ir.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	require.Contains(t, got.AutNums, uint32(65000))
	assert.JSONEq(t, `{"any": {}}`, string(got.AutNums[65000].Imports))
	assert.Equal(t, []uint32{1, 2}, got.AsSets["AS-FOO"].Members)
	assert.Equal(t, []string{"AS-BAR"}, got.AsSets["AS-FOO"].SetMembers)

	members := got.RouteSets["RS-FOO"].Members
	require.Len(t, members, 3)
	require.True(t, members[0].IsRange())
	assert.Equal(t, netip.MustParsePrefix("192.0.2.0/24"), members[0].Range.AddressPrefix)
	assert.Equal(t, "^+", members[0].Range.RangeOperator.String())
	assert.Equal(t, "^40-48", members[1].Range.RangeOperator.String())
	assert.False(t, members[2].IsRange())
	assert.Equal(t, "RS-BAR", members[2].Name)
	assert.Equal(t, ir.NoOp, members[2].Op.Kind)

	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("192.0.2.0/24")}, got.AsRoutes[65000])
	assert.Equal(t, 1, got.Counts()["filter_set"])
}

func TestDecodeErrors(t *testing.T) {
	testCases := map[string]string{
		"not json":         `{"aut_nums":`,
		"unknown member":   `{"route_sets": {"X": {"members": [{"Other": 1}]}}}`,
		"unknown operator": `{"route_sets": {"X": {"members": [{"NameOp": ["Y", "Caret"]}]}}}`,
		"short num":        `{"route_sets": {"X": {"members": [{"NameOp": ["Y", {"Num": [1]}]}]}}}`,
	}
	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := ir.Decode(strings.NewReader(raw))
			assert.Error(t, err)
		})
	}
}

func TestMerge(t *testing.T) {
	a := &ir.IR{AsSets: map[string]ir.AsSet{"AS-A": {IsAny: true}}}
	b := &ir.IR{
		AsSets:  map[string]ir.AsSet{"AS-B": {}},
		AutNums: map[uint32]ir.AutNum{2: {}, 1: {}},
	}
	a.Merge(b)
	assert.Equal(t, []string{"AS-A", "AS-B"}, ir.SortedKeys(a.AsSets))
	assert.Equal(t, []uint32{1, 2}, ir.SortedKeys(a.AutNums))
}

func TestRouteSetMemberMarshal(t *testing.T) {
	m := ir.RouteSetMember{Name: "RS-BAR", Op: ir.RangeOperator{Kind: ir.Num, N: 24, M: 24}}
	raw, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"NameOp": ["RS-BAR", {"Num": [24, 24]}]}`, string(raw))
}
