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

package sqlite

import (
	"database/sql"

	"github.com/SichangHe/internet-route-verification-server/private/storage/db"
)

// New opens the sqlite registry database at path, creating the schema if the
// file is new.
func New(path string) (*sql.DB, error) {
	conn, err := db.NewSqlite(path)
	if err != nil {
		return nil, err
	}
	if err := db.SetupSqlite(conn, Schema, SchemaVersion); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}
