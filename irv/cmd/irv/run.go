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

package main

import (
	"context"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/SichangHe/internet-route-verification-server/irv/config"
	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/metrics"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
	"github.com/SichangHe/internet-route-verification-server/private/app"
	"github.com/SichangHe/internet-route-verification-server/private/ingest"
	"github.com/SichangHe/internet-route-verification-server/private/storage"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry"
	"github.com/SichangHe/internet-route-verification-server/private/verify/snapshot"
)

// runEnv is what every command gets handed by run.
type runEnv struct {
	cfg    config.Config
	db     storage.RegistryDB
	engine snapshot.Engine
	stats  *ingest.Stats
}

type runMetrics struct {
	registry     *prometheus.Registry
	queriesTotal *prometheus.CounterVec
	records      *prometheus.GaugeVec
}

func newRunMetrics() runMetrics {
	reg := prometheus.NewRegistry()
	factory := metrics.ApplyOptions(metrics.WithRegistry(reg)).Auto()
	return runMetrics{
		registry: reg,
		queriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "irv_registry_queries_total",
				Help: "Total number of registry store operations.",
			},
			[]string{"driver", "operation", "result"},
		),
		records: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "irv_records",
				Help: "Number of records of the last run by entity and outcome.",
			},
			[]string{"command", "entity", "outcome"},
		),
	}
}

func (m runMetrics) observe(command string, stats *ingest.Stats) {
	for _, c := range stats.Counts() {
		m.records.WithLabelValues(command, c.Entity, "inserted").Set(float64(c.Inserted))
		m.records.WithLabelValues(command, c.Entity, "failed").Set(float64(c.Failed))
		m.records.WithLabelValues(command, c.Entity, "skipped").Set(float64(c.Skipped))
	}
}

// run loads the configuration, sets up logging, connects to the registry
// store and calls body. Afterwards it logs and prints the run summary and
// exports the metrics.
func run(cmd *cobra.Command, body func(ctx context.Context, env runEnv) error) error {
	cmd.SilenceUsage = true
	cfg, err := config.Load(app.ConfigPath())
	if err != nil {
		return err
	}
	if err := app.SetupLog(cfg.Logging); err != nil {
		return err
	}
	defer log.Flush()
	ctx, logger := log.WithLabels(cmd.Context(), "command", cmd.Name())

	m := newRunMetrics()
	db, err := storage.NewRegistryStorage(ctx, cfg.DB,
		registry.Config{QueriesTotal: m.queriesTotal})
	if err != nil {
		return serrors.Wrap("opening registry store", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Closing registry store", "err", err)
		}
	}()

	env := runEnv{
		cfg:    cfg,
		db:     db,
		engine: snapshot.Engine{Parallelism: runtime.GOMAXPROCS(0)},
		stats:  ingest.NewStats(),
	}
	start := time.Now()
	logger.Info("Starting")
	if err := body(ctx, env); err != nil {
		return err
	}
	logger.Info("Finished", "duration", time.Since(start))
	env.stats.Log(logger)
	if err := env.stats.Render(cmd.OutOrStdout(), cfg.Output.Format); err != nil {
		return serrors.Wrap("rendering summary", err)
	}
	if cfg.Metrics.Textfile == "" {
		return nil
	}
	m.observe(cmd.Name(), env.stats)
	return metrics.WriteTextfile(cfg.Metrics.Textfile, m.registry)
}
