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

	"github.com/SichangHe/internet-route-verification-server/private/ingest/irload"
)

func newLoad(pather CommandPather) *cobra.Command {
	return &cobra.Command{
		Use:     "load",
		Short:   "Store the aut-nums and sets of an IR snapshot",
		Example: fmt.Sprintf(`  IRV_CONFIG=irv.toml %[1]s load`, pather.CommandPath()),
		Long: `'load' reads the IR snapshot configured in [snapshots] and stores its
aut-num, as-set, route-set, peering-set and filter-set objects together with
their memberships.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, env runEnv) error {
				registryIR, err := env.engine.LoadIR(ctx, env.cfg.Snapshots.IR)
				if err != nil {
					return err
				}
				l := irload.Loader{Store: env.db, Stats: env.stats}
				l.Run(ctx, registryIR)
				return nil
			})
		},
	}
}
