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

// Package bgp holds observed BGP routes and the reports produced by checking
// them against registry policies.
package bgp

import (
	"bufio"
	"io"
	"iter"
	"net/netip"
	"strconv"
	"strings"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// AsPathEntry is one segment element of an AS path: either a single AS
// number or an AS set.
type AsPathEntry struct {
	Seq uint32
	Set []uint32
}

// IsSet reports whether e is an AS set.
func (e AsPathEntry) IsSet() bool {
	return e.Set != nil
}

func (e AsPathEntry) String() string {
	if !e.IsSet() {
		return strconv.FormatUint(uint64(e.Seq), 10)
	}
	parts := make([]string, 0, len(e.Set))
	for _, n := range e.Set {
		parts = append(parts, strconv.FormatUint(uint64(n), 10))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Verbosity controls which reports the check produces.
type Verbosity struct {
	StopAtFirst     bool
	ShowSkips       bool
	ShowSuccess     bool
	ShowMeh         bool
	ShowUnrec       bool
	CheckImport     bool
	CheckExport     bool
	SpecialUphill   bool
	RecordCommunity bool
}

// AllStats returns the verbosity that reports everything.
func AllStats() Verbosity {
	return Verbosity{
		ShowSkips:       true,
		ShowSuccess:     true,
		ShowMeh:         true,
		ShowUnrec:       true,
		CheckImport:     true,
		CheckExport:     true,
		SpecialUphill:   true,
		RecordCommunity: true,
	}
}

// Compare is the part of a route that is checked.
type Compare struct {
	Prefix      netip.Prefix
	AsPath      []AsPathEntry
	Communities []string
	Verbosity   Verbosity
}

// Line is one observed route of a table dump together with the reports of
// its check, if any.
type Line struct {
	Raw     string
	Compare Compare
	Report  []Report
}

// ParseLine parses one line of `bgpdump -m` output:
//
//	TABLE_DUMP2|1687212000|B|193.0.0.56|3333|1.0.0.0/24|3333 13335|IGP|...
//
// Field 6 is the prefix, field 7 the AS path and field 12, if present, the
// communities.
func ParseLine(raw string) (Line, error) {
	fields := strings.Split(raw, "|")
	if len(fields) < 7 {
		return Line{}, serrors.New("too few fields", "fields", len(fields))
	}
	prefix, err := netip.ParsePrefix(fields[5])
	if err != nil {
		return Line{}, serrors.Wrap("parsing prefix", err, "prefix", fields[5])
	}
	path, err := ParseAsPath(fields[6])
	if err != nil {
		return Line{}, err
	}
	var communities []string
	if len(fields) > 11 {
		communities = strings.Fields(fields[11])
	}
	return Line{
		Raw: raw,
		Compare: Compare{
			Prefix:      prefix.Masked(),
			AsPath:      path,
			Communities: communities,
		},
	}, nil
}

// ParseAsPath parses a space separated AS path where AS sets are written as
// {a,b}. Confederation segments in parentheses are flattened into sequence
// elements.
func ParseAsPath(s string) ([]AsPathEntry, error) {
	tokens := strings.Fields(s)
	path := make([]AsPathEntry, 0, len(tokens))
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "{") {
			inner := strings.Trim(tok, "{}")
			set := []uint32{}
			for _, n := range strings.Split(inner, ",") {
				if n == "" {
					continue
				}
				asn, err := parseASN(n)
				if err != nil {
					return nil, err
				}
				set = append(set, asn)
			}
			path = append(path, AsPathEntry{Set: set})
			continue
		}
		asn, err := parseASN(strings.Trim(tok, "()[]"))
		if err != nil {
			return nil, err
		}
		path = append(path, AsPathEntry{Seq: asn})
	}
	return path, nil
}

func parseASN(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, serrors.Wrap("parsing AS number", err, "asn", s)
	}
	return uint32(n), nil
}

// Lines lazily parses the table dump read from r. Lines that are not
// TABLE_DUMP entries are skipped. A malformed entry is yielded as a Line with
// only Raw set together with its error, so that the caller can skip it. A read
// error is yielded with a zero Line and ends the iteration.
func Lines(r io.Reader) iter.Seq2[Line, error] {
	return func(yield func(Line, error) bool) {
		s := bufio.NewScanner(r)
		s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
		for s.Scan() {
			raw := strings.TrimSpace(s.Text())
			if !strings.HasPrefix(raw, "TABLE_DUMP") {
				continue
			}
			line, err := ParseLine(raw)
			if err != nil {
				line, err = Line{Raw: raw}, serrors.Wrap("parsing table dump line", err)
			}
			if !yield(line, err) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Line{}, serrors.Wrap("reading table dump", err))
		}
	}
}
