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

// Package scanner loads mntner and route objects from a raw registry dump.
package scanner

import (
	"context"
	"iter"
	"net/netip"
	"strconv"
	"strings"
	"unicode"

	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/rpsl"
	"github.com/SichangHe/internet-route-verification-server/private/ingest"
)

const mebibyte = 1024 * 1024

// Store is the part of the registry store the scanner writes to.
type Store interface {
	InsertMntner(ctx context.Context, name, body, desc, source string) error
	InsertRoute(ctx context.Context, name string, prefix netip.Prefix, origin uint32, body string) error
}

// Limits bound a scan. A cap of zero or less disables it.
type Limits struct {
	// MaxBodyBytes is the largest object body that is stored.
	MaxBodyBytes int
	// MntnerCap and RouteCap stop the scan once both have been exceeded.
	MntnerCap int
	RouteCap  int
}

// Scanner stores mntner, route and route6 objects. Objects of other classes
// are ignored; they are loaded from the IR instead.
type Scanner struct {
	Store  Store
	Limits Limits
	Stats  *ingest.Stats
}

// counters are the accumulator state of one scan.
type counters struct {
	mntner, route int
}

func exceeded(n, limit int) bool {
	return limit > 0 && n > limit
}

// Run scans all objects. It only fails if reading the dump fails; a record
// that cannot be stored is logged and skipped.
func (s *Scanner) Run(ctx context.Context, objects iter.Seq2[rpsl.Object, error]) error {
	logger := log.FromCtx(ctx)
	if s.Stats == nil {
		s.Stats = ingest.NewStats()
	}
	var n counters
	for obj, err := range objects {
		if err != nil {
			return err
		}
		if s.Limits.MaxBodyBytes > 0 && len(obj.Body) > s.Limits.MaxBodyBytes {
			logger.Warn("Skipping object with oversized body", "class", obj.Class,
				"name", obj.Name, "size_mib", len(obj.Body)/mebibyte)
			s.Stats.Skipped(obj.Class)
			continue
		}
		switch obj.Class {
		case "mntner":
			if exceeded(n.mntner, s.Limits.MntnerCap) {
				continue
			}
			if s.storeMntner(ctx, logger, obj) {
				n.mntner++
			}
		case "route", "route6":
			if exceeded(n.route, s.Limits.RouteCap) {
				continue
			}
			if s.storeRoute(ctx, logger, obj) {
				n.route++
			}
		default:
			continue
		}
		if exceeded(n.mntner, s.Limits.MntnerCap) && exceeded(n.route, s.Limits.RouteCap) {
			logger.Debug("Inserted enough mntner and route objects",
				"mntner", n.mntner, "route", n.route)
			return nil
		}
	}
	return nil
}

func (s *Scanner) storeMntner(ctx context.Context, logger log.Logger, obj rpsl.Object) bool {
	fields := rpsl.FindFields(obj.Body, "descr", "desc", "source")
	desc := first(fields[0])
	if desc == "" {
		desc = first(fields[1])
	}
	source := first(fields[2])
	if err := s.Store.InsertMntner(ctx, obj.Name, obj.Body, desc, source); err != nil {
		logger.Error("Failed to insert mntner", "name", obj.Name, "err", err)
		s.Stats.Failed("mntner")
		return false
	}
	logger.Debug("Inserted mntner", "name", obj.Name)
	s.Stats.Inserted("mntner")
	return true
}

func (s *Scanner) storeRoute(ctx context.Context, logger log.Logger, obj rpsl.Object) bool {
	originField := first(rpsl.FieldValues(obj.Body, "origin"))
	origin, err := ParseOrigin(originField)
	if err != nil {
		logger.Warn("Failed to parse origin of route object", "name", obj.Name,
			"origin", originField, "err", err)
		s.Stats.Skipped(obj.Class)
		return false
	}
	prefix, err := netip.ParsePrefix(obj.Name)
	if err != nil {
		logger.Warn("Skipping route object with invalid prefix", "name", obj.Name, "err", err)
		s.Stats.Skipped(obj.Class)
		return false
	}
	if err := s.Store.InsertRoute(ctx, obj.Name, prefix, origin, obj.Body); err != nil {
		logger.Error("Failed to insert route object", "name", obj.Name, "err", err)
		s.Stats.Failed(obj.Class)
		return false
	}
	logger.Debug("Inserted route object", "name", obj.Name, "origin", origin)
	s.Stats.Inserted(obj.Class)
	return true
}

// ParseOrigin parses the AS number of an origin attribute such as "AS65000",
// stripping any leading non-digit marker.
func ParseOrigin(origin string) (uint32, error) {
	digits := strings.TrimLeftFunc(origin, func(r rune) bool { return !unicode.IsDigit(r) })
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
