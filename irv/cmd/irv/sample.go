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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SichangHe/internet-route-verification-server/irv/config"
	privconfig "github.com/SichangHe/internet-route-verification-server/private/config"
)

func newSample(pather CommandPather) *cobra.Command {
	return &cobra.Command{
		Use:     "sample",
		Short:   "Display a sample configuration file",
		Example: fmt.Sprintf(`  %[1]s sample > irv.toml`, pather.CommandPath()),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg config.Config
			cfg.Sample(cmd.OutOrStdout(), nil, privconfig.CtxMap{
				privconfig.CtxExecutable: cmd.Root().Name(),
			})
			return nil
		},
	}
}
