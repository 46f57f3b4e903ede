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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SichangHe/internet-route-verification-server/private/ingest/recorder"
)

func newRecord(pather CommandPather) *cobra.Command {
	return &cobra.Command{
		Use:     "record",
		Short:   "Verify observed routes and store the reports",
		Example: fmt.Sprintf(`  IRV_CONFIG=irv.toml %[1]s record`, pather.CommandPath()),
		Long: `'record' loads the IR, AS relationship and table dump snapshots configured
in [snapshots], checks the observed routes of the table dump and stores them
together with their exchange reports. At most [record] observed_route_cap
routes are stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, env runEnv) error {
				snaps := env.cfg.Snapshots
				r := recorder.Recorder{
					Engine: env.engine,
					Store:  env.db,
					Cap:    env.cfg.Record.ObservedRouteCap,
					Stats:  env.stats,
				}
				return r.Run(ctx, recorder.Snapshots{
					IR:        snaps.IR,
					AsRel:     snaps.AsRel,
					TableDump: snaps.TableDump,
				})
			})
		},
	}
}
