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

// Package rpsl extracts attributes from free-text RPSL objects and splits raw
// registry dumps into objects.
package rpsl

import (
	"strings"
)

// FindFields scans body once and returns, for each name in names, the values
// of all attributes with that key in order of appearance. Attribute keys are
// matched case-insensitively. Continuation lines, those starting with a space,
// a tab or a '+', are appended to the previous attribute with a single space.
// End of line comments starting with '#' are stripped. An absent attribute
// yields an empty slice.
func FindFields(body string, names ...string) [][]string {
	values := make([][]string, len(names))
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[strings.ToLower(name)] = i
	}

	current := -1
	for line := range strings.Lines(body) {
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			current = -1
			continue
		}
		if isContinuation(line) {
			if current < 0 {
				continue
			}
			cont := stripComment(strings.TrimSpace(line[1:]))
			if cont == "" {
				continue
			}
			vs := values[current]
			if last := vs[len(vs)-1]; last == "" {
				vs[len(vs)-1] = cont
			} else {
				vs[len(vs)-1] = last + " " + cont
			}
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			current = -1
			continue
		}
		i, ok := idx[strings.ToLower(strings.TrimSpace(key))]
		if !ok {
			current = -1
			continue
		}
		values[i] = append(values[i], stripComment(strings.TrimSpace(value)))
		current = i
	}
	return values
}

// FieldValues returns the values of all attributes named name.
func FieldValues(body, name string) []string {
	return FindFields(body, name)[0]
}

// FirstField returns the first value of the attribute named name, or the
// empty string if there is none.
func FirstField(body, name string) string {
	if vs := FieldValues(body, name); len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// SplitList splits comma or whitespace separated list values into their
// items, dropping empty items.
func SplitList(values []string) []string {
	var items []string
	for _, v := range values {
		items = append(items, strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})...)
	}
	return items
}

func isContinuation(line string) bool {
	switch line[0] {
	case ' ', '\t', '+':
		return true
	}
	return false
}

func stripComment(s string) string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return s
}
