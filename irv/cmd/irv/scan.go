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

	"github.com/SichangHe/internet-route-verification-server/pkg/rpsl"
	"github.com/SichangHe/internet-route-verification-server/private/ingest/scanner"
	"github.com/SichangHe/internet-route-verification-server/private/source"
)

func newScan(pather CommandPather) *cobra.Command {
	return &cobra.Command{
		Use:     "scan",
		Short:   "Store mntner and route objects of a registry dump",
		Example: fmt.Sprintf(`  IRV_CONFIG=irv.toml %[1]s scan`, pather.CommandPath()),
		Long: `'scan' reads the registry dump configured in [scan] and stores its mntner,
route and route6 objects. Objects of other classes are stored by 'load'.

Objects with an oversized body are skipped. The scan stops early once both
the mntner and the route caps are exceeded.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, env runEnv) error {
				scan := env.cfg.Scan
				rc, err := source.Open(scan.RegistryDump)
				if err != nil {
					return err
				}
				defer rc.Close()
				text, err := source.Decode(rc, scan.Encoding)
				if err != nil {
					return err
				}
				s := scanner.Scanner{
					Store: env.db,
					Limits: scanner.Limits{
						MaxBodyBytes: scan.MaxBodyBytes,
						MntnerCap:    scan.MntnerCap,
						RouteCap:     scan.RouteCap,
					},
					Stats: env.stats,
				}
				return s.Run(ctx, rpsl.Objects(text))
			})
		},
	}
}
