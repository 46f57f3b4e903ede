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

	"github.com/SichangHe/internet-route-verification-server/private/ingest/relation"
)

func newAsRel(pather CommandPather) *cobra.Command {
	return &cobra.Command{
		Use:     "asrel",
		Short:   "Store the AS relationships of a CAIDA snapshot",
		Example: fmt.Sprintf(`  IRV_CONFIG=irv.toml %[1]s asrel`, pather.CommandPath()),
		Long: `'asrel' reads the AS relationship snapshot configured in [snapshots] and
stores every relationship as a provider-customer or a peer edge.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, func(ctx context.Context, env runEnv) error {
				db, err := env.engine.LoadRelationships(ctx, env.cfg.Snapshots.AsRel)
				if err != nil {
					return err
				}
				l := relation.Loader{Store: env.db, Stats: env.stats}
				l.Run(ctx, db)
				return nil
			})
		},
	}
}
