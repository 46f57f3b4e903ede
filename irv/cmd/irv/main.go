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

// irv loads routing registry data and verification reports into a
// relational store.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SichangHe/internet-route-verification-server/irv/config"
	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
	"github.com/SichangHe/internet-route-verification-server/private/app"
)

// exitUsage is the exit code of a command line that names no command.
const exitUsage = 2

// CommandPather returns the path to a command.
type CommandPather interface {
	CommandPath() string
}

func main() {
	executable := filepath.Base(os.Args[0])
	app.Exit(os.Stderr, newRootCommand(executable).Execute())
}

func newRootCommand(executable string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   executable + " <command>",
		Short: "Internet route verification registry loader",
		Long: fmt.Sprintf(`%[1]s loads routing registry data and route verification
reports into a relational database.

The configuration is read from the file named by $%[2]s (default %[3]s). A
missing file means all defaults.`, executable, app.ConfigEnv, app.DefaultConfigFile),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return app.WithExitCode(serrors.New("missing command",
					"commands", "scan, load, asrel, record, sample"), exitUsage)
			}
			cmd.SilenceUsage = true
			cfg, err := config.Load(app.ConfigPath())
			if err != nil {
				return err
			}
			if err := app.SetupLog(cfg.Logging); err != nil {
				return err
			}
			log.Error("Unknown command", "command", args[0])
			return nil
		},
	}
	cmd.AddCommand(
		newScan(cmd),
		newLoad(cmd),
		newAsRel(cmd),
		newRecord(cmd),
		newSample(cmd),
	)
	return cmd
}
