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

// Package relation loads AS relationships into the registry store.
package relation

import (
	"context"

	"github.com/SichangHe/internet-route-verification-server/pkg/asrel"
	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/private/ingest"
)

const (
	EntityProvideCustomer = "provide_customer"
	EntityPeer            = "peer"
)

// Store is the part of the registry store the loader writes to.
type Store interface {
	InsertProvideCustomer(ctx context.Context, provider, customer uint32) error
	InsertPeer(ctx context.Context, peer1, peer2 uint32) error
}

// Loader stores every relationship of a database as a provider-customer or a
// peer edge.
type Loader struct {
	Store Store
	Stats *ingest.Stats
}

type edge struct {
	peer bool
	a, b uint32
}

// Run stores all relationships of db in ascending pair order. Customer to
// provider entries are stored with swapped operands so that every stored edge
// points from provider to customer. An edge already stored, or already
// attempted, in this run is skipped; for peers the first orientation wins.
// Failed writes are logged and counted.
func (l *Loader) Run(ctx context.Context, db *asrel.DB) {
	logger := log.FromCtx(ctx)
	if l.Stats == nil {
		l.Stats = ingest.NewStats()
	}
	seen := make(map[edge]struct{}, db.Len())
	for pair, rel := range db.All() {
		var e edge
		entity := EntityProvideCustomer
		switch rel {
		case asrel.P2C:
			e = edge{a: pair.From, b: pair.To}
		case asrel.C2P:
			e = edge{a: pair.To, b: pair.From}
		case asrel.P2P:
			entity = EntityPeer
			e = edge{peer: true, a: min(pair.From, pair.To), b: max(pair.From, pair.To)}
		default:
			logger.Warn("Skipping unknown relationship", "from", pair.From, "to", pair.To,
				"rel", rel)
			l.Stats.Skipped(entity)
			continue
		}
		if _, ok := seen[e]; ok {
			l.Stats.Skipped(entity)
			continue
		}
		seen[e] = struct{}{}

		var err error
		if e.peer {
			err = l.Store.InsertPeer(ctx, pair.From, pair.To)
		} else {
			err = l.Store.InsertProvideCustomer(ctx, e.a, e.b)
		}
		if err != nil {
			logger.Error("Failed to insert relationship", "entity", entity,
				"from", pair.From, "to", pair.To, "err", err)
			l.Stats.Failed(entity)
			continue
		}
		logger.Debug("Inserted relationship", "entity", entity, "from", pair.From,
			"to", pair.To)
		l.Stats.Inserted(entity)
	}
}
