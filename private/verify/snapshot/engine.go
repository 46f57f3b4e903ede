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

// Package snapshot implements verify.Engine over on-disk snapshots. Its check
// only decides what needs no evaluation of policy expressions: pairs with AS
// sets, and importers or exporters without a usable aut-num. Every other
// pair yields no report.
package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/SichangHe/internet-route-verification-server/pkg/asrel"
	"github.com/SichangHe/internet-route-verification-server/pkg/bgp"
	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
	"github.com/SichangHe/internet-route-verification-server/private/source"
	"github.com/SichangHe/internet-route-verification-server/private/verify"
)

// Engine is the snapshot engine. The zero value is ready to use.
type Engine struct {
	// Parallelism bounds the number of IR files decoded concurrently. Zero
	// means no limit.
	Parallelism int
}

var _ verify.Engine = Engine{}

// LoadIR loads the IR at path. If path is a directory, every regular file in
// it is decoded and the results are merged in file name order.
func (e Engine) LoadIR(ctx context.Context, path string) (*ir.IR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, serrors.Wrap("loading IR", err, "path", path)
	}
	if !info.IsDir() {
		return decodeIRFile(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, serrors.Wrap("listing IR directory", err, "path", path)
	}
	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(path, entry.Name()))
		}
	}
	slices.Sort(files)

	parts := make([]*ir.IR, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if e.Parallelism > 0 {
		g.SetLimit(e.Parallelism)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			part, err := decodeIRFile(file)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	merged := &ir.IR{}
	for _, part := range parts {
		merged.Merge(part)
	}
	log.FromCtx(ctx).Debug("Loaded IR directory", "path", path, "files", len(files))
	return merged, nil
}

func decodeIRFile(path string) (*ir.IR, error) {
	rc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	res, err := ir.Decode(rc)
	if err != nil {
		return nil, serrors.Wrap("decoding IR file", err, "path", path)
	}
	return res, nil
}

// LoadRelationships loads a CAIDA as-rel snapshot.
func (Engine) LoadRelationships(ctx context.Context, path string) (*asrel.DB, error) {
	rc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	db, err := asrel.Decode(rc)
	if err != nil {
		return nil, serrors.Wrap("decoding as-rel snapshot", err, "path", path)
	}
	return db, nil
}

// LoadLines loads a `bgpdump -m` table dump. Malformed entries are logged and
// dropped.
func (Engine) LoadLines(ctx context.Context, path string) ([]bgp.Line, error) {
	rc, err := source.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	logger := log.FromCtx(ctx)
	var lines []bgp.Line
	for line, err := range bgp.Lines(rc) {
		if err != nil {
			if line.Raw == "" {
				return nil, serrors.Wrap("reading table dump", err, "path", path)
			}
			logger.Warn("Skipping table dump line", "line", line.Raw, "err", err)
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// BuildQuery combines the IR and the relationship database.
func (Engine) BuildQuery(registry *ir.IR, db *asrel.DB) (verify.Query, error) {
	if registry == nil || db == nil {
		return nil, serrors.New("building query from missing snapshot",
			"ir", registry != nil, "as_rel", db != nil)
	}
	return &query{ir: registry, db: db}, nil
}

// Check verifies line against q, replacing line.Report.
func (Engine) Check(line *bgp.Line, q verify.Query, verbosity bgp.Verbosity) error {
	qr, ok := q.(*query)
	if !ok {
		return serrors.New("query not built by the snapshot engine")
	}
	line.Compare.Verbosity = verbosity
	line.Report = qr.check(line.Compare)
	return nil
}
