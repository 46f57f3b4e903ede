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

package rpsl

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strings"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// Object is one raw object of a registry dump.
type Object struct {
	// Class is the key of the first attribute, e.g. "mntner" or "route".
	Class string
	// Name is the value of the first attribute.
	Name string
	// Body is the full object text including the first line.
	Body string
}

// Objects lazily splits the registry dump read from r into objects. Objects
// are separated by blank lines. Lines starting with '%' or '#' outside of an
// object are comments and dropped. Lines are read without length limit, so a
// huge object is yielded as is and left to the caller to filter.
//
// Iteration stops after the first read error, which is yielded together with
// a zero Object.
func Objects(r io.Reader) iter.Seq2[Object, error] {
	return func(yield func(Object, error) bool) {
		br := bufio.NewReaderSize(r, 64*1024)
		var body strings.Builder
		flush := func() bool {
			if body.Len() == 0 {
				return true
			}
			obj, ok := newObject(body.String())
			body.Reset()
			if !ok {
				return true
			}
			return yield(obj, nil)
		}
		for {
			line, err := br.ReadString('\n')
			if len(line) > 0 {
				trimmed := strings.TrimRight(line, "\r\n")
				switch {
				case strings.TrimSpace(trimmed) == "":
					if !flush() {
						return
					}
				case body.Len() == 0 && (trimmed[0] == '%' || trimmed[0] == '#'):
				default:
					body.WriteString(trimmed)
					body.WriteByte('\n')
				}
			}
			if errors.Is(err, io.EOF) {
				flush()
				return
			}
			if err != nil {
				yield(Object{}, serrors.Wrap("reading registry dump", err))
				return
			}
		}
	}
}

func newObject(body string) (Object, bool) {
	first, _, _ := strings.Cut(body, "\n")
	class, name, ok := strings.Cut(first, ":")
	if !ok {
		return Object{}, false
	}
	return Object{
		Class: strings.ToLower(strings.TrimSpace(class)),
		Name:  stripComment(strings.TrimSpace(name)),
		Body:  body,
	}, true
}
