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

// Package recorder checks observed routes with the verification engine and
// stores the routes together with their flattened reports.
package recorder

import (
	"context"
	"net/netip"

	"golang.org/x/sync/errgroup"

	"github.com/SichangHe/internet-route-verification-server/pkg/asrel"
	"github.com/SichangHe/internet-route-verification-server/pkg/bgp"
	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
	"github.com/SichangHe/internet-route-verification-server/private/ingest"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry"
	"github.com/SichangHe/internet-route-verification-server/private/verify"
)

const (
	EntityObservedRoute  = "observed_route"
	EntityExchangeReport = "exchange_report"
	EntityReportItem     = "report_item"

	// DefaultCap is the default number of observed routes stored per run.
	DefaultCap = 256
	// NotStored is the ID returned for reports that are not stored.
	NotStored int64 = -1
)

// Store is the part of the registry store the recorder writes to.
type Store interface {
	InsertObservedRoute(ctx context.Context, rawLine string, prefix netip.Prefix) (int64, error)
	InsertExchangeReport(ctx context.Context, report registry.ExchangeReport) (int64, error)
	InsertReportItem(ctx context.Context, item registry.ReportItem) (int64, error)
}

// Snapshots are the paths of the inputs of a recording run.
type Snapshots struct {
	IR        string
	AsRel     string
	TableDump string
}

// Recorder records verified observed routes.
type Recorder struct {
	Engine verify.Engine
	Store  Store
	// Cap is the number of observed routes after which recording stops. A cap
	// of zero or less disables it.
	Cap   int
	Stats *ingest.Stats
}

// Run loads the snapshots concurrently, builds the verification context and
// records the table dump. Failing to load a snapshot or to build the context
// is fatal; everything after is recovered per record.
func (r *Recorder) Run(ctx context.Context, snaps Snapshots) error {
	logger := log.FromCtx(ctx)
	var (
		registryIR *ir.IR
		db         *asrel.DB
		lines      []bgp.Line
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if registryIR, err = r.Engine.LoadIR(gctx, snaps.IR); err != nil {
			return serrors.Wrap("loading IR", err, "path", snaps.IR)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if db, err = r.Engine.LoadRelationships(gctx, snaps.AsRel); err != nil {
			return serrors.Wrap("loading AS relationships", err, "path", snaps.AsRel)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if lines, err = r.Engine.LoadLines(gctx, snaps.TableDump); err != nil {
			return serrors.Wrap("loading table dump", err, "path", snaps.TableDump)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Debug("Loaded snapshots", "lines", len(lines))

	query, err := r.Engine.BuildQuery(registryIR, db)
	if err != nil {
		return serrors.Wrap("building query", err)
	}
	r.Record(ctx, query, lines)
	return nil
}

// Record checks and stores lines one after the other until the cap is
// reached.
func (r *Recorder) Record(ctx context.Context, query verify.Query, lines []bgp.Line) {
	logger := log.FromCtx(ctx)
	if r.Stats == nil {
		r.Stats = ingest.NewStats()
	}
	inserted := 0
	for i := range lines {
		line := &lines[i]
		if err := r.Engine.Check(line, query, bgp.AllStats()); err != nil {
			logger.Warn("Failed to check observed route", "line", line.Raw, "err", err)
			r.Stats.Skipped(EntityObservedRoute)
			continue
		}
		if _, err := r.RecordLine(ctx, line); err != nil {
			logger.Error("Failed to insert observed route", "line", line.Raw, "err", err)
			r.Stats.Failed(EntityObservedRoute)
			continue
		}
		inserted++
		if r.Cap > 0 && inserted >= r.Cap {
			logger.Debug("Recorded enough observed routes", "observed_routes", inserted)
			return
		}
	}
}

// RecordLine stores the observed route of a checked line and its reports. It
// returns the observed route ID. Only a failure to store the observed route
// itself is returned; report failures are logged.
func (r *Recorder) RecordLine(ctx context.Context, line *bgp.Line) (int64, error) {
	if r.Stats == nil {
		r.Stats = ingest.NewStats()
	}
	id, err := r.Store.InsertObservedRoute(ctx, line.Raw, line.Compare.Prefix)
	if err != nil {
		return 0, err
	}
	r.Stats.Inserted(EntityObservedRoute)
	logger := log.FromCtx(ctx)
	logger.Debug("Inserted observed route", "id", id, "prefix", line.Compare.Prefix)
	for _, report := range line.Report {
		if _, err := r.RecordReport(ctx, report, id); err != nil {
			logger.Error("Failed to insert exchange report", "observed_route", id,
				"report", report, "err", err)
			r.Stats.Failed(EntityExchangeReport)
		}
	}
	return id, nil
}

// RecordReport stores one exchange report and its items and returns the
// report ID. Reports that are not modeled in the store are logged and yield
// NotStored with a nil error. Item failures are logged.
func (r *Recorder) RecordReport(ctx context.Context, report bgp.Report, parent int64) (int64, error) {
	if r.Stats == nil {
		r.Stats = ingest.NewStats()
	}
	logger := log.FromCtx(ctx)
	row, ok := FlattenReport(report)
	if !ok {
		from, to := report.Endpoints()
		logger.Info("Not storing report", "kind", report.Kind,
			"from", from.String(), "to", to.String())
		r.Stats.Skipped(EntityExchangeReport)
		return NotStored, nil
	}
	row.ParentObservedRoute = parent
	id, err := r.Store.InsertExchangeReport(ctx, row)
	if err != nil {
		return 0, err
	}
	r.Stats.Inserted(EntityExchangeReport)
	for _, item := range report.Items {
		itemRow, ok := FlattenItem(item)
		if !ok {
			logger.Info("Not storing report item", "report", id, "item", item)
			r.Stats.Skipped(EntityReportItem)
			continue
		}
		itemRow.ParentReport = id
		if _, err := r.Store.InsertReportItem(ctx, itemRow); err != nil {
			logger.Error("Failed to insert report item", "report", id, "item", item, "err", err)
			r.Stats.Failed(EntityReportItem)
			continue
		}
		r.Stats.Inserted(EntityReportItem)
	}
	return id, nil
}
