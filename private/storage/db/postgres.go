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

	_ "github.com/lib/pq" // postgres driver

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// NewPostgres opens a connection pool to the postgres database described by
// connection, a URL or key=value connection string, and checks that the
// server is reachable. The schema is expected to exist already.
func NewPostgres(ctx context.Context, connection string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connection)
	if err != nil {
		return nil, serrors.Wrap("opening postgres database", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, serrors.Wrap("connecting to postgres", err)
	}
	return db, nil
}
