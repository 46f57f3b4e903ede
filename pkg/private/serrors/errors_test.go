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

package serrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "timeout" }
func (timeoutErr) Timeout() bool { return true }

func TestIs(t *testing.T) {
	base := serrors.New("base")
	cause := errors.New("cause")

	wrapped := serrors.Wrap("wrapped", cause, "key", "value")
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, base)

	joined := serrors.Join(base, cause)
	assert.ErrorIs(t, joined, base)
	assert.ErrorIs(t, joined, cause)

	assert.Nil(t, serrors.Join(nil, nil))
	assert.ErrorIs(t, serrors.Join(nil, cause), cause)
}

func TestErrorString(t *testing.T) {
	testCases := map[string]struct {
		err  error
		want string
	}{
		"plain": {
			err:  serrors.New("plain"),
			want: "plain",
		},
		"context is sorted": {
			err:  serrors.New("ctx", "b", 2, "a", 1),
			want: "ctx {a=1; b=2}",
		},
		"wrapped": {
			err:  serrors.Wrap("outer", errors.New("inner"), "k", "v"),
			want: "outer {k=v}: inner",
		},
		"joined": {
			err:  serrors.Join(errors.New("sentinel"), errors.New("cause"), "k", "v"),
			want: "sentinel {k=v}: cause",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.EqualError(t, tc.err, tc.want)
		})
	}
}

func TestIsTimeout(t *testing.T) {
	assert.True(t, serrors.IsTimeout(serrors.Wrap("op", timeoutErr{})))
	assert.False(t, serrors.IsTimeout(serrors.New("op")))
}

func TestMarshalLogObject(t *testing.T) {
	err := serrors.Wrap("outer", errors.New("inner"), "name", "AS1")
	m, ok := err.(zapcore.ObjectMarshaler)
	assert.True(t, ok)
	enc := zapcore.NewMapObjectEncoder()
	assert.NoError(t, m.MarshalLogObject(enc))
	assert.Equal(t, "outer", enc.Fields["msg"])
	assert.Equal(t, "inner", enc.Fields["cause"])
	assert.Equal(t, "AS1", enc.Fields["name"])
}
