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

// Package verify defines the interface of the route verification engine the
// recorder depends on.
package verify

import (
	"context"

	"github.com/SichangHe/internet-route-verification-server/pkg/asrel"
	"github.com/SichangHe/internet-route-verification-server/pkg/bgp"
	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
)

// Query is a compiled verification context built from an IR and an AS
// relationship database. Its contents are private to the engine.
type Query any

// Engine loads snapshots and checks observed routes against registry
// policies.
type Engine interface {
	// LoadIR loads the IR snapshot at path.
	LoadIR(ctx context.Context, path string) (*ir.IR, error)
	// LoadRelationships loads the AS relationship snapshot at path.
	LoadRelationships(ctx context.Context, path string) (*asrel.DB, error)
	// LoadLines loads the BGP table dump at path.
	LoadLines(ctx context.Context, path string) ([]bgp.Line, error)
	// BuildQuery compiles the verification context.
	BuildQuery(ir *ir.IR, db *asrel.DB) (Query, error)
	// Check verifies line against query and fills in line.Report.
	Check(line *bgp.Line, query Query, verbosity bgp.Verbosity) error
}
