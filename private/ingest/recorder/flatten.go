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

package recorder

import (
	"github.com/SichangHe/internet-route-verification-server/pkg/bgp"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry"
)

// Overall types of exchange reports.
const (
	OverallOk          = "ok"
	OverallSkip        = "skip"
	OverallUnrecorded  = "unrecorded"
	OverallSpecialCase = "special_case"
	OverallBad         = "bad"
)

// Categories of report items.
const (
	CategorySkip        = "skip"
	CategoryUnrecorded  = "unrecorded"
	CategorySpecialCase = "special_case"
	CategoryFilterError = "filter_error"
	CategoryRemoteError = "remote_error"
	CategoryPeerError   = "peering_error"
	CategoryRegexError  = "regex_error"
	CategoryRpslError   = "rpsl_error"
	CategoryRecursion   = "recursion_guard"
)

// payload selects which fields of a bgp.ReportItem are stored.
type payload int

const (
	payloadNone payload = iota
	payloadName
	payloadNum
	payloadNameNum
)

type itemCase struct {
	category     string
	specificCase string
	payload      payload
}

// itemCases maps every item kind to its row. All recursion guards share one
// specific case.
var itemCases = [bgp.NumItemKinds]itemCase{
	bgp.SkipAsRegexWithTilde:            {CategorySkip, "skip_regex_tilde", payloadName},
	bgp.SkipAsRegexPathWithSet:          {CategorySkip, "skip_regex_with_set", payloadNone},
	bgp.SkipCommunityCheckUnimplemented: {CategorySkip, "skip_community", payloadNone},

	bgp.UnrecordedAutNum:         {CategoryUnrecorded, "unrec_aut_num", payloadNum},
	bgp.UnrecImportEmpty:         {CategoryUnrecorded, "unrec_import_empty", payloadNone},
	bgp.UnrecExportEmpty:         {CategoryUnrecorded, "unrec_export_empty", payloadNone},
	bgp.UnrecordedAsSet:          {CategoryUnrecorded, "unrec_as_set", payloadName},
	bgp.UnrecordedAsRoutes:       {CategoryUnrecorded, "unrec_as_routes", payloadNum},
	bgp.UnrecordedAsSetRoute:     {CategoryUnrecorded, "unrec_as_set_route", payloadName},
	bgp.UnrecordedSomeAsSetRoute: {CategoryUnrecorded, "unrec_some_as_set_route", payloadName},
	bgp.UnrecordedRouteSet:       {CategoryUnrecorded, "unrec_route_set", payloadName},
	bgp.UnrecordedPeeringSet:     {CategoryUnrecorded, "unrec_peering_set", payloadName},
	bgp.UnrecordedFilterSet:      {CategoryUnrecorded, "unrec_filter_set", payloadName},

	bgp.SpecAsIsOriginButNoRoute: {
		CategorySpecialCase, "spec_as_is_origin_but_no_route", payloadNum,
	},
	bgp.SpecAsSetContainsOriginButNoRoute: {
		CategorySpecialCase, "spec_as_set_contains_origin_but_no_route", payloadNameNum,
	},
	bgp.SpecExportCustomers:     {CategorySpecialCase, "spec_export_customers", payloadNone},
	bgp.SpecImportFromNeighbor:  {CategorySpecialCase, "spec_import_from_neighbor", payloadNone},
	bgp.SpecTier1Pair:           {CategorySpecialCase, "spec_tier1_pair", payloadNone},
	bgp.SpecImportPeerOIFPS:     {CategorySpecialCase, "spec_import_peer_oifps", payloadNone},
	bgp.SpecImportCustomerOIFPS: {CategorySpecialCase, "spec_import_customer_oifps", payloadNone},
	bgp.SpecUphillTier1:         {CategorySpecialCase, "spec_uphill_tier1", payloadNone},
	bgp.SpecUphill:              {CategorySpecialCase, "spec_uphill", payloadNone},

	bgp.MatchFilter:             {CategoryFilterError, "err_filter", payloadNone},
	bgp.MatchFilterAsNum:        {CategoryFilterError, "err_filter_as_num", payloadNum},
	bgp.MatchFilterAsSet:        {CategoryFilterError, "err_filter_as_set", payloadName},
	bgp.MatchFilterPrefixes:     {CategoryFilterError, "err_filter_prefixes", payloadNone},
	bgp.MatchFilterRouteSet:     {CategoryFilterError, "err_filter_route_set", payloadName},
	bgp.MatchRemoteAsNum:        {CategoryRemoteError, "err_remote_as_num", payloadNum},
	bgp.MatchRemoteAsSet:        {CategoryRemoteError, "err_remote_as_set", payloadName},
	bgp.MatchExceptPeeringRight: {CategoryPeerError, "err_except_peering_right", payloadNone},
	bgp.MatchPeering:            {CategoryPeerError, "err_peering", payloadNone},
	bgp.MatchRegex:              {CategoryRegexError, "err_regex", payloadName},

	bgp.RpslInvalidAsName:  {CategoryRpslError, "rpsl_as_name", payloadName},
	bgp.RpslInvalidFilter:  {CategoryRpslError, "rpsl_filter", payloadName},
	bgp.RpslInvalidAsRegex: {CategoryRpslError, "rpsl_regex", payloadName},
	bgp.RpslUnknownFilter:  {CategoryRpslError, "rpsl_unknown_filter", payloadName},

	bgp.RecCheckFilter:          {CategoryRecursion, "recursion", payloadNone},
	bgp.RecFilterRouteSet:       {CategoryRecursion, "recursion", payloadName},
	bgp.RecFilterRouteSetMember: {CategoryRecursion, "recursion", payloadNone},
	bgp.RecFilterAsSet:          {CategoryRecursion, "recursion", payloadName},
	bgp.RecFilterAsName:         {CategoryRecursion, "recursion", payloadNone},
	bgp.RecFilterAnd:            {CategoryRecursion, "recursion", payloadNone},
	bgp.RecFilterOr:             {CategoryRecursion, "recursion", payloadNone},
	bgp.RecFilterNot:            {CategoryRecursion, "recursion", payloadNone},
	bgp.RecCheckSetMember:       {CategoryRecursion, "recursion", payloadName},
	bgp.RecCheckRemoteAs:        {CategoryRecursion, "recursion", payloadNone},
	bgp.RecRemoteAsName:         {CategoryRecursion, "recursion", payloadNone},
	bgp.RecRemoteAsSet:          {CategoryRecursion, "recursion", payloadName},
	bgp.RecRemotePeeringSet:     {CategoryRecursion, "recursion", payloadName},
	bgp.RecPeeringAnd:           {CategoryRecursion, "recursion", payloadNone},
	bgp.RecPeeringOr:            {CategoryRecursion, "recursion", payloadNone},
	bgp.RecPeeringExcept:        {CategoryRecursion, "recursion", payloadNone},
}

var overallTypes = [...]string{
	bgp.OkImport:    OverallOk,
	bgp.OkExport:    OverallOk,
	bgp.SkipImport:  OverallSkip,
	bgp.SkipExport:  OverallSkip,
	bgp.UnrecImport: OverallUnrecorded,
	bgp.UnrecExport: OverallUnrecorded,
	bgp.MehImport:   OverallSpecialCase,
	bgp.MehExport:   OverallSpecialCase,
	bgp.BadImport:   OverallBad,
	bgp.BadExport:   OverallBad,
}

// FlattenReport returns the exchange_report row of r without its parent. The
// second result is false for reports that are not stored: AS path pairs with
// a set and unknown kinds.
func FlattenReport(r bgp.Report) (registry.ExchangeReport, bool) {
	if r.Kind < 0 || int(r.Kind) >= len(overallTypes) || overallTypes[r.Kind] == "" {
		return registry.ExchangeReport{}, false
	}
	return registry.ExchangeReport{
		FromAS:      r.From,
		ToAS:        r.To,
		Import:      r.Kind.IsImport(),
		OverallType: overallTypes[r.Kind],
	}, true
}

// FlattenItem returns the report_item row of item without its parent. The
// second result is false for unknown kinds.
func FlattenItem(item bgp.ReportItem) (registry.ReportItem, bool) {
	if item.Kind < 0 || int(item.Kind) >= bgp.NumItemKinds {
		return registry.ReportItem{}, false
	}
	c := itemCases[item.Kind]
	row := registry.ReportItem{Category: c.category, SpecificCase: c.specificCase}
	if c.payload == payloadName || c.payload == payloadNameNum {
		name := item.Name
		row.StrContent = &name
	}
	if c.payload == payloadNum || c.payload == payloadNameNum {
		num := item.Num
		row.NumContent = &num
	}
	return row, true
}
