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

// Package irload stores the entities of a parsed registry.
package irload

import (
	"context"

	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/rpsl"
	"github.com/SichangHe/internet-route-verification-server/private/ingest"
)

const (
	EntityAutNum     = "aut_num"
	EntityAsSet      = "as_set"
	EntityRouteSet   = "route_set"
	EntityPeeringSet = "peering_set"
	EntityFilterSet  = "filter_set"
)

// Store is the part of the registry store the loader writes to.
type Store interface {
	InsertAutNum(ctx context.Context, num uint32, asName string, autNum ir.AutNum) error
	InsertAsSet(ctx context.Context, name string, asSet ir.AsSet) error
	InsertRouteSet(ctx context.Context, name string, routeSet ir.RouteSet) error
	InsertPeeringSet(ctx context.Context, name string, peeringSet ir.PeeringSet) error
	InsertFilterSet(ctx context.Context, name string, filterSet ir.FilterSet) error
}

// Loader stores aut-nums, as-sets, route-sets, peering-sets and filter-sets.
// The routes-by-AS index is not stored; route objects come from the dump
// scanner.
type Loader struct {
	Store Store
	Stats *ingest.Stats
}

// Run stores all entities of the IR, one class after the other and each class
// in ascending key order. A failed entity is logged and counted; it never
// stops the run.
func (l *Loader) Run(ctx context.Context, registry *ir.IR) {
	if l.Stats == nil {
		l.Stats = ingest.NewStats()
	}
	logger := log.FromCtx(ctx)
	logger.Info("Loading IR", "counts", registry.Counts())

	store(ctx, l, EntityAutNum, registry.AutNums, func(num uint32, a ir.AutNum) error {
		return l.Store.InsertAutNum(ctx, num, rpsl.FirstField(a.Body, "as-name"), a)
	})
	store(ctx, l, EntityAsSet, registry.AsSets, func(name string, s ir.AsSet) error {
		return l.Store.InsertAsSet(ctx, name, s)
	})
	store(ctx, l, EntityRouteSet, registry.RouteSets, func(name string, s ir.RouteSet) error {
		return l.Store.InsertRouteSet(ctx, name, s)
	})
	store(ctx, l, EntityPeeringSet, registry.PeeringSets,
		func(name string, s ir.PeeringSet) error {
			return l.Store.InsertPeeringSet(ctx, name, s)
		},
	)
	store(ctx, l, EntityFilterSet, registry.FilterSets, func(name string, s ir.FilterSet) error {
		return l.Store.InsertFilterSet(ctx, name, s)
	})
}

func store[K interface{ ~uint32 | ~string }, V any](
	ctx context.Context,
	l *Loader,
	entity string,
	entities map[K]V,
	insert func(K, V) error,
) {

	logger := log.FromCtx(ctx)
	for _, key := range ir.SortedKeys(entities) {
		if err := insert(key, entities[key]); err != nil {
			logger.Error("Failed to insert entity", "entity", entity, "name", key, "err", err)
			l.Stats.Failed(entity)
			continue
		}
		logger.Debug("Inserted entity", "entity", entity, "name", key)
		l.Stats.Inserted(entity)
	}
}
