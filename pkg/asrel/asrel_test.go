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

package asrel_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/pkg/asrel"
)

func TestDecode(t *testing.T) {
	const raw = `# source:topology|BGP
# input clique: 174 209
300|400|0|bgp
100|200|-1|bgp
200|100|1
`
	db, err := asrel.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 3, db.Len())

	rel, ok := db.Get(100, 200)
	require.True(t, ok)
	assert.Equal(t, asrel.P2C, rel)
	rel, ok = db.Get(200, 100)
	require.True(t, ok)
	assert.Equal(t, asrel.C2P, rel)
	_, ok = db.Get(400, 300)
	assert.False(t, ok)

	var pairs []asrel.Pair
	for p := range db.All() {
		pairs = append(pairs, p)
	}
	assert.Equal(t, []asrel.Pair{{100, 200}, {200, 100}, {300, 400}}, pairs)
}

func TestDecodeErrors(t *testing.T) {
	testCases := map[string]string{
		"too few columns": "1|2\n",
		"bad asn":         "AS1|2|0\n",
		"bad relation":    "1|2|2\n",
	}
	for name, raw := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := asrel.Decode(strings.NewReader(raw))
			assert.Error(t, err)
		})
	}
}
