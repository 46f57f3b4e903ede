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

package source_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/private/source"
)

const payload = "100|200|-1\n300|400|0\n"

func writeGzip(t *testing.T, path string) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func writeZstd(t *testing.T, path string) {
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = w.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	testCases := map[string]func(t *testing.T, path string){
		"plain.txt": func(t *testing.T, path string) {
			require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))
		},
		"rel.gz":  writeGzip,
		"rel.zst": writeZstd,
	}
	for name, write := range testCases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			write(t, path)
			rc, err := source.Open(path)
			require.NoError(t, err)
			defer rc.Close()
			raw, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, payload, string(raw))
		})
	}
}

func TestOpenMissing(t *testing.T) {
	_, err := source.Open(filepath.Join(t.TempDir(), "missing.bz2"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode(t *testing.T) {
	// "descr: Zürich" in latin1.
	r, err := source.Decode(strings.NewReader("descr: Z\xfcrich"), "latin1")
	require.NoError(t, err)
	raw, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "descr: Zürich", string(raw))

	_, err = source.Decode(strings.NewReader(""), "no-such-encoding")
	assert.Error(t, err)
}
