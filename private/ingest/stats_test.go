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

package ingest_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"

	"github.com/SichangHe/internet-route-verification-server/private/ingest"
)

func newStats() *ingest.Stats {
	s := ingest.NewStats()
	s.Inserted("mntner")
	s.Inserted("mntner")
	s.Failed("route")
	s.Skipped("mntner")
	return s
}

func TestStats(t *testing.T) {
	s := newStats()
	assert.Equal(t, ingest.Count{Entity: "mntner", Inserted: 2, Skipped: 1}, s.Get("mntner"))
	assert.Equal(t, ingest.Count{Entity: "route", Failed: 1}, s.Get("route"))
	assert.Equal(t, ingest.Count{Entity: "peer"}, s.Get("peer"))
	counts := s.Counts()
	require.Len(t, counts, 2)
	assert.Equal(t, "mntner", counts[0].Entity)
}

func TestRender(t *testing.T) {
	s := newStats()

	var human bytes.Buffer
	require.NoError(t, s.Render(&human, "human"))
	assert.True(t, strings.Contains(human.String(), "ENTITY"))
	assert.True(t, strings.Contains(human.String(), "mntner"))

	var raw bytes.Buffer
	require.NoError(t, s.Render(&raw, "json"))
	var fromJSON []ingest.Count
	require.NoError(t, json.Unmarshal(raw.Bytes(), &fromJSON))
	assert.Equal(t, s.Counts(), fromJSON)

	raw.Reset()
	require.NoError(t, s.Render(&raw, "yaml"))
	var fromYAML []ingest.Count
	require.NoError(t, yaml.Unmarshal(raw.Bytes(), &fromYAML))
	assert.Equal(t, s.Counts(), fromYAML)

	assert.Error(t, s.Render(&raw, "xml"))
}
