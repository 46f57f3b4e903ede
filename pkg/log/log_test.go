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

package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/log/testlog"
)

func TestFromCtx(t *testing.T) {
	assert.Equal(t, log.Root(), log.FromCtx(context.Background()))

	l := testlog.NewLogger(t)
	ctx := log.CtxWith(context.Background(), l)
	assert.Equal(t, l, log.FromCtx(ctx))

	ctx, labeled := log.WithLabels(ctx, "run", "scan")
	assert.Equal(t, labeled, log.FromCtx(ctx))
}

func TestConsoleConfigValidate(t *testing.T) {
	testCases := map[string]struct {
		cfg       log.ConsoleConfig
		assertErr assert.ErrorAssertionFunc
	}{
		"defaults": {
			cfg:       log.ConsoleConfig{},
			assertErr: assert.NoError,
		},
		"json debug": {
			cfg:       log.ConsoleConfig{Level: "debug", Format: "json"},
			assertErr: assert.NoError,
		},
		"bad level": {
			cfg:       log.ConsoleConfig{Level: "chatty"},
			assertErr: assert.Error,
		},
		"bad format": {
			cfg:       log.ConsoleConfig{Format: "xml"},
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			tc.assertErr(t, tc.cfg.Validate())
		})
	}
}

func TestSetup(t *testing.T) {
	var cfg log.Config
	cfg.InitDefaults()
	assert.Equal(t, "info", cfg.Console.Level)
	assert.Equal(t, "human", cfg.Console.Format)

	require.NoError(t, log.Setup(cfg))
	assert.True(t, log.Root().Enabled(log.InfoLevel))
	assert.False(t, log.Root().Enabled(log.DebugLevel))
	log.Flush()
}
