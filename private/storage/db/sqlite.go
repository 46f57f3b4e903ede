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

package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite" // sqlite driver

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// Execer is the subset of *sql.DB the stores write through.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewSqlite opens the sqlite database file at path. The pool is limited to
// one open connection: the loaders write sequentially and sqlite serializes
// writers anyway.
func NewSqlite(path string) (*sql.DB, error) {
	if strings.Contains(path, ":memory:") {
		return nil, serrors.New("in-memory sqlite database is not supported", "path", path)
	}
	hasScheme := strings.HasPrefix(path, "file:")

	connParams := make(url.Values)
	// Start write transactions in IMMEDIATE mode so that busy_timeout is
	// respected when the database is locked.
	connParams.Add("_txlock", "immediate")
	connParams.Add("_pragma", "journal_mode(WAL)")
	// In milliseconds.
	connParams.Add("_pragma", "busy_timeout(1000)")
	connParams.Add("_pragma", "synchronous(NORMAL)")
	// Relation rows reference their registry object and report rows their
	// parents.
	connParams.Add("_pragma", "foreign_keys(1)")

	connURL := path + "?" + connParams.Encode()
	if !hasScheme {
		connURL = "file:" + connURL
	}
	db, err := sql.Open("sqlite", connURL)
	if err != nil {
		return nil, serrors.Wrap("opening sqlite database", err, "path", path)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// SetupSqlite applies schema to a fresh database and records schemaVersion in
// its user_version. A database at schemaVersion is left untouched; any other
// version is an error.
func SetupSqlite(db *sql.DB, schema string, schemaVersion int) error {
	var existingVersion int
	if err := db.QueryRow("PRAGMA user_version;").Scan(&existingVersion); err != nil {
		return NewReadError("checking database schema version", err)
	}
	switch {
	case existingVersion == 0:
		if _, err := db.Exec(schema); err != nil {
			return NewWriteError("applying schema", err)
		}
		if _, err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return NewWriteError("writing schema version", err)
		}
		return nil
	case existingVersion != schemaVersion:
		return serrors.New("database schema version mismatch",
			"expected", schemaVersion, "actual", existingVersion)
	default:
		return nil
	}
}
