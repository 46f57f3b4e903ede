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

package snapshot

import (
	"encoding/json"

	"github.com/SichangHe/internet-route-verification-server/pkg/asrel"
	"github.com/SichangHe/internet-route-verification-server/pkg/bgp"
	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
)

type query struct {
	ir *ir.IR
	db *asrel.DB
}

// check walks the AS path from the collector towards the origin. For the
// pair (path[i], path[i+1]) the route was exported by path[i+1] and imported
// by path[i]. Prepended ASes are collapsed first.
func (q *query) check(c bgp.Compare) []bgp.Report {
	v := c.Verbosity
	path := collapsePrepends(c.AsPath)
	var reports []bgp.Report
	for i := 0; i+1 < len(path); i++ {
		to, from := path[i], path[i+1]
		if to.IsSet() || from.IsSet() {
			reports = append(reports, bgp.Report{
				Kind:      bgp.AsPathPairWithSet,
				From:      from.Seq,
				To:        to.Seq,
				FromEntry: from,
				ToEntry:   to,
			})
		} else {
			if v.CheckExport {
				if r, ok := q.checkSide(from.Seq, to.Seq, false, v); ok {
					reports = append(reports, r)
				}
			}
			if v.CheckImport {
				if r, ok := q.checkSide(from.Seq, to.Seq, true, v); ok {
					reports = append(reports, r)
				}
			}
		}
		if v.StopAtFirst && len(reports) > 0 {
			return reports[:1]
		}
	}
	return reports
}

// checkSide reports on the export policy of from or the import policy of to.
func (q *query) checkSide(from, to uint32, imp bool, v bgp.Verbosity) (bgp.Report, bool) {
	if !v.ShowUnrec {
		return bgp.Report{}, false
	}
	kind, self, emptyItem := bgp.UnrecExport, from, bgp.UnrecExportEmpty
	if imp {
		kind, self, emptyItem = bgp.UnrecImport, to, bgp.UnrecImportEmpty
	}
	autNum, ok := q.ir.AutNums[self]
	if !ok {
		return bgp.Report{
			Kind:  kind,
			From:  from,
			To:    to,
			Items: []bgp.ReportItem{bgp.NumItem(bgp.UnrecordedAutNum, self)},
		}, true
	}
	policy := autNum.Exports
	if imp {
		policy = autNum.Imports
	}
	if isEmptyPolicy(policy) {
		return bgp.Report{
			Kind:  kind,
			From:  from,
			To:    to,
			Items: []bgp.ReportItem{bgp.Item(emptyItem)},
		}, true
	}
	return bgp.Report{}, false
}

func collapsePrepends(path []bgp.AsPathEntry) []bgp.AsPathEntry {
	res := make([]bgp.AsPathEntry, 0, len(path))
	for _, e := range path {
		if n := len(res); n > 0 && !e.IsSet() && !res[n-1].IsSet() && res[n-1].Seq == e.Seq {
			continue
		}
		res = append(res, e)
	}
	return res
}

// isEmptyPolicy reports whether raw holds no rule: it is absent, null, or
// only contains empty objects and arrays.
func isEmptyPolicy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	return isEmptyValue(v)
}

func isEmptyValue(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case map[string]any:
		for _, child := range v {
			if !isEmptyValue(child) {
				return false
			}
		}
		return true
	case []any:
		return len(v) == 0
	}
	return false
}
