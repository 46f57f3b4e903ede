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
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrFmt(t *testing.T) {
	f := func(t *testing.T, expect error, err error) {
		t.Helper()
		expectedMsg := fmt.Sprintf("%s {detailMsg=test}", expect)
		require.Equal(t, expectedMsg, err.Error())
	}

	f(t, ErrInvalidInputData, NewInputDataError("test", nil))
	f(t, ErrReadFailed, NewReadError("test", nil))
	f(t, ErrWriteFailed, NewWriteError("test", nil))
}

func TestErrToMetricLabel(t *testing.T) {
	cause := errors.New("constraint violated")
	testCases := map[string]struct {
		err  error
		want string
	}{
		"nil":          {err: nil, want: ResultOk},
		"write":        {err: NewWriteError("insert", cause), want: "err_db_write"},
		"read":         {err: NewReadError("select", cause), want: "err_db_read"},
		"input":        {err: NewInputDataError("prefix", cause), want: "err_input_data_invalid"},
		"unclassified": {err: cause, want: ErrNotClassified},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrToMetricLabel(tc.err))
		})
	}
}

func TestSetupSqlite(t *testing.T) {
	const schema = `CREATE TABLE t(id INTEGER PRIMARY KEY);`
	path := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := NewSqlite(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, SetupSqlite(db, schema, 1))
	// Same version is a no-op.
	require.NoError(t, SetupSqlite(db, schema, 1))
	assert.Error(t, SetupSqlite(db, schema, 2))

	_, err = NewSqlite(":memory:")
	assert.Error(t, err)
}
