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

package config_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/private/config"
)

type limits struct {
	config.NoValidator
	Depth int `toml:"depth,omitempty"`
}

func (l *limits) InitDefaults() {
	if l.Depth == 0 {
		l.Depth = 4
	}
}

func (l *limits) Sample(dst io.Writer, path config.Path, ctx config.CtxMap) {
	config.WriteString(dst, fmt.Sprintf("# %s\n\ndepth = 4\n", ctx[config.CtxExecutable]))
}

func (l *limits) ConfigName() string {
	return "limits"
}

type plain struct{}

func (plain) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, "name = \"x\"\n")
}

type failing struct{}

func (failing) Validate() error {
	return fmt.Errorf("boom")
}

func TestWriteSample(t *testing.T) {
	var buf bytes.Buffer
	ctx := config.CtxMap{config.CtxExecutable: "irv"}
	config.WriteSample(&buf, config.Path{"top"}, ctx, plain{}, &limits{})
	assert.Equal(t, "name = \"x\"\n\n[top.limits]\n    # irv\n\n    depth = 4\n", buf.String())
}

func TestPathExtend(t *testing.T) {
	base := make(config.Path, 1, 4)
	base[0] = "a"
	b := base.Extend("b")
	c := base.Extend("c")
	assert.Equal(t, config.Path{"a", "b"}, b)
	assert.Equal(t, config.Path{"a", "c"}, c)
}

func TestValidateAll(t *testing.T) {
	assert.NoError(t, config.ValidateAll(&limits{}, config.NoValidator{}))
	err := config.ValidateAll(&limits{}, failing{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config_test.failing")
}

func TestLoadOptionalFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		var l limits
		found, err := config.LoadOptionalFile(filepath.Join(dir, "none.toml"), &l)
		require.NoError(t, err)
		assert.False(t, found)
	})
	t.Run("present", func(t *testing.T) {
		file := filepath.Join(dir, "ok.toml")
		require.NoError(t, os.WriteFile(file, []byte("depth = 7\n"), 0o600))
		var l limits
		found, err := config.LoadOptionalFile(file, &l)
		require.NoError(t, err)
		assert.True(t, found)
		l.InitDefaults()
		assert.Equal(t, 7, l.Depth)
	})
	t.Run("unknown key", func(t *testing.T) {
		file := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(file, []byte("width = 7\n"), 0o600))
		var l limits
		found, err := config.LoadOptionalFile(file, &l)
		assert.Error(t, err)
		assert.True(t, found)
	})
}
