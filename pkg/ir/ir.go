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

// Package ir holds the intermediate representation of a parsed routing
// registry. Policy and expression trees are carried as raw JSON; only the
// parts that are decomposed into relations are typed.
package ir

import (
	"encoding/json"
	"io"
	"maps"
	"net/netip"
	"slices"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// IR is the full parsed registry.
type IR struct {
	AutNums     map[uint32]AutNum        `json:"aut_nums"`
	AsSets      map[string]AsSet         `json:"as_sets"`
	RouteSets   map[string]RouteSet      `json:"route_sets"`
	PeeringSets map[string]PeeringSet    `json:"peering_sets"`
	FilterSets  map[string]FilterSet     `json:"filter_sets"`
	AsRoutes    map[uint32][]netip.Prefix `json:"as_routes"`
}

// AutNum is an aut-num object. Imports and Exports are the parsed policies.
type AutNum struct {
	Body    string          `json:"body"`
	Imports json.RawMessage `json:"imports"`
	Exports json.RawMessage `json:"exports"`
}

// AsSet is an as-set object.
type AsSet struct {
	Body string `json:"body"`
	// Members are the AS numbers listed directly.
	Members []uint32 `json:"members"`
	// SetMembers are the names of nested as-sets.
	SetMembers []string `json:"set_members"`
	// IsAny is set if the set contains the keyword ANY.
	IsAny bool `json:"is_any"`
}

// RouteSet is a route-set object.
type RouteSet struct {
	Body    string           `json:"body"`
	Members []RouteSetMember `json:"members"`
}

// PeeringSet is a peering-set object.
type PeeringSet struct {
	Body     string          `json:"body"`
	Peerings json.RawMessage `json:"peerings"`
}

// FilterSet is a filter-set object.
type FilterSet struct {
	Body    string          `json:"body"`
	Filters json.RawMessage `json:"filters"`
}

// Decode reads one IR document from r.
func Decode(r io.Reader) (*IR, error) {
	var ir IR
	if err := json.NewDecoder(r).Decode(&ir); err != nil {
		return nil, serrors.Wrap("decoding IR", err)
	}
	return &ir, nil
}

// Merge adds all entries of other into ir. Entries of other win on key
// collisions.
func (ir *IR) Merge(other *IR) {
	ir.AutNums = mergeMap(ir.AutNums, other.AutNums)
	ir.AsSets = mergeMap(ir.AsSets, other.AsSets)
	ir.RouteSets = mergeMap(ir.RouteSets, other.RouteSets)
	ir.PeeringSets = mergeMap(ir.PeeringSets, other.PeeringSets)
	ir.FilterSets = mergeMap(ir.FilterSets, other.FilterSets)
	ir.AsRoutes = mergeMap(ir.AsRoutes, other.AsRoutes)
}

// Counts returns the number of entities per class.
func (ir *IR) Counts() map[string]int {
	return map[string]int{
		"aut_num":     len(ir.AutNums),
		"as_set":      len(ir.AsSets),
		"route_set":   len(ir.RouteSets),
		"peering_set": len(ir.PeeringSets),
		"filter_set":  len(ir.FilterSets),
		"as_routes":   len(ir.AsRoutes),
	}
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K interface{ ~uint32 | ~string }, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

func mergeMap[K comparable, V any](dst, src map[K]V) map[K]V {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[K]V, len(src))
	}
	maps.Copy(dst, src)
	return dst
}
