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

// Package asrel holds AS relationship databases such as the ones published by
// CAIDA.
package asrel

import (
	"bufio"
	"cmp"
	"io"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// Relationship is the relationship of the first to the second AS of a pair.
type Relationship int

const (
	// P2C means the first AS is a provider of the second.
	P2C Relationship = iota
	// P2P means the ASes peer.
	P2P
	// C2P means the first AS is a customer of the second.
	C2P
)

func (r Relationship) String() string {
	switch r {
	case P2C:
		return "p2c"
	case P2P:
		return "p2p"
	case C2P:
		return "c2p"
	}
	return "Relationship(" + strconv.Itoa(int(r)) + ")"
}

// Pair is an ordered pair of AS numbers.
type Pair struct {
	From, To uint32
}

func comparePairs(a, b Pair) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}
	return cmp.Compare(a.To, b.To)
}

// DB maps ordered AS pairs to their relationship.
type DB struct {
	rels map[Pair]Relationship
}

// NewDB returns an empty database.
func NewDB() *DB {
	return &DB{rels: make(map[Pair]Relationship)}
}

// Set records the relationship of from to to.
func (db *DB) Set(from, to uint32, rel Relationship) {
	db.rels[Pair{From: from, To: to}] = rel
}

// Get returns the relationship recorded for the ordered pair.
func (db *DB) Get(from, to uint32) (Relationship, bool) {
	rel, ok := db.rels[Pair{From: from, To: to}]
	return rel, ok
}

// Len returns the number of recorded pairs.
func (db *DB) Len() int {
	return len(db.rels)
}

// All iterates over all recorded pairs in ascending pair order.
func (db *DB) All() iter.Seq2[Pair, Relationship] {
	return func(yield func(Pair, Relationship) bool) {
		for _, p := range slices.SortedFunc(maps.Keys(db.rels), comparePairs) {
			if !yield(p, db.rels[p]) {
				return
			}
		}
	}
}

// Decode reads a CAIDA as-rel file: one "A|B|rel" entry per line, where rel
// is -1 for provider to customer, 0 for peers and 1 for customer to provider.
// Lines starting with '#' are comments. Trailing columns are ignored.
func Decode(r io.Reader) (*DB, error) {
	db := NewDB()
	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			return nil, serrors.New("malformed as-rel line", "line", lineNo, "text", line)
		}
		from, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, serrors.Wrap("parsing AS number", err, "line", lineNo)
		}
		to, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, serrors.Wrap("parsing AS number", err, "line", lineNo)
		}
		var rel Relationship
		switch fields[2] {
		case "-1":
			rel = P2C
		case "0":
			rel = P2P
		case "1":
			rel = C2P
		default:
			return nil, serrors.New("unknown relationship", "line", lineNo, "rel", fields[2])
		}
		db.Set(uint32(from), uint32(to), rel)
	}
	if err := s.Err(); err != nil {
		return nil, serrors.Wrap("reading as-rel", err)
	}
	return db, nil
}
