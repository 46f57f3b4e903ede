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

// Package registrytest provides a throwaway sqlite registry database for
// tests.
package registrytest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/private/storage/registry"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry/sqlite"
)

// New creates a fresh registry database in a temporary directory. It is
// closed when the test ends.
func New(t testing.TB) (*sql.DB, *registry.Backend) {
	t.Helper()
	conn, err := sqlite.New(filepath.Join(t.TempDir(), "registry.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, registry.New(conn)
}

// Count returns the result of a SELECT COUNT(*) query.
func Count(t testing.TB, conn *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, conn.QueryRow(query, args...).Scan(&n))
	return n
}

// Strings returns the single string column of all rows of query.
func Strings(t testing.TB, conn *sql.DB, query string, args ...any) []string {
	t.Helper()
	rows, err := conn.Query(query, args...)
	require.NoError(t, err)
	defer rows.Close()
	var res []string
	for rows.Next() {
		var s string
		require.NoError(t, rows.Scan(&s))
		res = append(res, s)
	}
	require.NoError(t, rows.Err())
	return res
}

// Ints returns the single integer column of all rows of query.
func Ints(t testing.TB, conn *sql.DB, query string, args ...any) []int64 {
	t.Helper()
	rows, err := conn.Query(query, args...)
	require.NoError(t, err)
	defer rows.Close()
	var res []int64
	for rows.Next() {
		var n int64
		require.NoError(t, rows.Scan(&n))
		res = append(res, n)
	}
	require.NoError(t, rows.Err())
	return res
}
