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

package bgp

import "strconv"

// ItemKind identifies the variant of a ReportItem.
type ItemKind int

// Report item variants. The order is part of no contract; the recorder maps
// each kind explicitly.
const (
	SkipAsRegexWithTilde ItemKind = iota
	SkipAsRegexPathWithSet
	SkipCommunityCheckUnimplemented

	UnrecordedAutNum
	UnrecImportEmpty
	UnrecExportEmpty
	UnrecordedAsSet
	UnrecordedAsRoutes
	UnrecordedAsSetRoute
	UnrecordedSomeAsSetRoute
	UnrecordedRouteSet
	UnrecordedPeeringSet
	UnrecordedFilterSet

	SpecAsIsOriginButNoRoute
	SpecAsSetContainsOriginButNoRoute
	SpecExportCustomers
	SpecImportFromNeighbor
	SpecTier1Pair
	SpecImportPeerOIFPS
	SpecImportCustomerOIFPS
	SpecUphillTier1
	SpecUphill

	MatchFilter
	MatchFilterAsNum
	MatchFilterAsSet
	MatchFilterPrefixes
	MatchFilterRouteSet
	MatchRemoteAsNum
	MatchRemoteAsSet
	MatchExceptPeeringRight
	MatchPeering
	MatchRegex

	RpslInvalidAsName
	RpslInvalidFilter
	RpslInvalidAsRegex
	RpslUnknownFilter

	RecCheckFilter
	RecFilterRouteSet
	RecFilterRouteSetMember
	RecFilterAsSet
	RecFilterAsName
	RecFilterAnd
	RecFilterOr
	RecFilterNot
	RecCheckSetMember
	RecCheckRemoteAs
	RecRemoteAsName
	RecRemoteAsSet
	RecRemotePeeringSet
	RecPeeringAnd
	RecPeeringOr
	RecPeeringExcept

	// NumItemKinds is the number of item kinds.
	NumItemKinds int = iota
)

var itemKindNames = [NumItemKinds]string{
	SkipAsRegexWithTilde:              "SkipAsRegexWithTilde",
	SkipAsRegexPathWithSet:            "SkipAsRegexPathWithSet",
	SkipCommunityCheckUnimplemented:   "SkipCommunityCheckUnimplemented",
	UnrecordedAutNum:                  "UnrecordedAutNum",
	UnrecImportEmpty:                  "UnrecImportEmpty",
	UnrecExportEmpty:                  "UnrecExportEmpty",
	UnrecordedAsSet:                   "UnrecordedAsSet",
	UnrecordedAsRoutes:                "UnrecordedAsRoutes",
	UnrecordedAsSetRoute:              "UnrecordedAsSetRoute",
	UnrecordedSomeAsSetRoute:          "UnrecordedSomeAsSetRoute",
	UnrecordedRouteSet:                "UnrecordedRouteSet",
	UnrecordedPeeringSet:              "UnrecordedPeeringSet",
	UnrecordedFilterSet:               "UnrecordedFilterSet",
	SpecAsIsOriginButNoRoute:          "SpecAsIsOriginButNoRoute",
	SpecAsSetContainsOriginButNoRoute: "SpecAsSetContainsOriginButNoRoute",
	SpecExportCustomers:               "SpecExportCustomers",
	SpecImportFromNeighbor:            "SpecImportFromNeighbor",
	SpecTier1Pair:                     "SpecTier1Pair",
	SpecImportPeerOIFPS:               "SpecImportPeerOIFPS",
	SpecImportCustomerOIFPS:           "SpecImportCustomerOIFPS",
	SpecUphillTier1:                   "SpecUphillTier1",
	SpecUphill:                        "SpecUphill",
	MatchFilter:                       "MatchFilter",
	MatchFilterAsNum:                  "MatchFilterAsNum",
	MatchFilterAsSet:                  "MatchFilterAsSet",
	MatchFilterPrefixes:               "MatchFilterPrefixes",
	MatchFilterRouteSet:               "MatchFilterRouteSet",
	MatchRemoteAsNum:                  "MatchRemoteAsNum",
	MatchRemoteAsSet:                  "MatchRemoteAsSet",
	MatchExceptPeeringRight:           "MatchExceptPeeringRight",
	MatchPeering:                      "MatchPeering",
	MatchRegex:                        "MatchRegex",
	RpslInvalidAsName:                 "RpslInvalidAsName",
	RpslInvalidFilter:                 "RpslInvalidFilter",
	RpslInvalidAsRegex:                "RpslInvalidAsRegex",
	RpslUnknownFilter:                 "RpslUnknownFilter",
	RecCheckFilter:                    "RecCheckFilter",
	RecFilterRouteSet:                 "RecFilterRouteSet",
	RecFilterRouteSetMember:           "RecFilterRouteSetMember",
	RecFilterAsSet:                    "RecFilterAsSet",
	RecFilterAsName:                   "RecFilterAsName",
	RecFilterAnd:                      "RecFilterAnd",
	RecFilterOr:                       "RecFilterOr",
	RecFilterNot:                      "RecFilterNot",
	RecCheckSetMember:                 "RecCheckSetMember",
	RecCheckRemoteAs:                  "RecCheckRemoteAs",
	RecRemoteAsName:                   "RecRemoteAsName",
	RecRemoteAsSet:                    "RecRemoteAsSet",
	RecRemotePeeringSet:               "RecRemotePeeringSet",
	RecPeeringAnd:                     "RecPeeringAnd",
	RecPeeringOr:                      "RecPeeringOr",
	RecPeeringExcept:                  "RecPeeringExcept",
}

func (k ItemKind) String() string {
	if k >= 0 && int(k) < NumItemKinds {
		return itemKindNames[k]
	}
	return "ItemKind(" + strconv.Itoa(int(k)) + ")"
}

// ReportItem is one finding inside a Report. Which payload fields are
// meaningful depends on Kind:
//
//   - Name: the set, regex or filter text of variants that carry one.
//   - Num: the AS number of UnrecordedAutNum, UnrecordedAsRoutes,
//     SpecAsIsOriginButNoRoute, SpecAsSetContainsOriginButNoRoute,
//     MatchFilterAsNum and MatchRemoteAsNum.
//   - Extra: the opaque secondary payload, e.g. the range operator of
//     MatchFilterAsNum or the community call of
//     SkipCommunityCheckUnimplemented.
type ReportItem struct {
	Kind  ItemKind
	Name  string
	Num   uint32
	Extra string
}

// Item returns an item without payload.
func Item(kind ItemKind) ReportItem {
	return ReportItem{Kind: kind}
}

// NameItem returns an item carrying a name.
func NameItem(kind ItemKind, name string) ReportItem {
	return ReportItem{Kind: kind, Name: name}
}

// NumItem returns an item carrying an AS number.
func NumItem(kind ItemKind, num uint32) ReportItem {
	return ReportItem{Kind: kind, Num: num}
}

func (i ReportItem) String() string {
	s := i.Kind.String()
	switch {
	case i.Name != "" && i.Num != 0:
		s += "(" + strconv.Quote(i.Name) + ", " + strconv.FormatUint(uint64(i.Num), 10) + ")"
	case i.Name != "":
		s += "(" + strconv.Quote(i.Name) + ")"
	case i.Num != 0:
		s += "(" + strconv.FormatUint(uint64(i.Num), 10) + ")"
	}
	return s
}
