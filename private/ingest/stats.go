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

// Package ingest holds what the loaders share: run statistics and their
// rendering. The loaders themselves live in the sub-packages.
package ingest

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v2"

	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// Count is the outcome tally of one entity class.
type Count struct {
	Entity   string `json:"entity" yaml:"entity"`
	Inserted int    `json:"inserted" yaml:"inserted"`
	Failed   int    `json:"failed" yaml:"failed"`
	Skipped  int    `json:"skipped" yaml:"skipped"`
}

// Stats tallies record outcomes of a run per entity class, in order of first
// appearance. It is not safe for concurrent use; the loaders write one record
// at a time.
type Stats struct {
	counts []*Count
	index  map[string]*Count
}

// NewStats creates empty statistics.
func NewStats() *Stats {
	return &Stats{index: make(map[string]*Count)}
}

func (s *Stats) entry(entity string) *Count {
	if c, ok := s.index[entity]; ok {
		return c
	}
	c := &Count{Entity: entity}
	s.index[entity] = c
	s.counts = append(s.counts, c)
	return c
}

// Inserted records a stored record.
func (s *Stats) Inserted(entity string) { s.entry(entity).Inserted++ }

// Failed records a record whose store failed.
func (s *Stats) Failed(entity string) { s.entry(entity).Failed++ }

// Skipped records a record that was deliberately not stored.
func (s *Stats) Skipped(entity string) { s.entry(entity).Skipped++ }

// Get returns the tally of entity.
func (s *Stats) Get(entity string) Count {
	if c, ok := s.index[entity]; ok {
		return *c
	}
	return Count{Entity: entity}
}

// Counts returns all tallies in order of first appearance.
func (s *Stats) Counts() []Count {
	res := make([]Count, 0, len(s.counts))
	for _, c := range s.counts {
		res = append(res, *c)
	}
	return res
}

// Log writes one info line per entity class.
func (s *Stats) Log(logger log.Logger) {
	for _, c := range s.counts {
		logger.Info("Run summary", "entity", c.Entity,
			"inserted", c.Inserted, "failed", c.Failed, "skipped", c.Skipped)
	}
}

// Render writes the statistics to w in format, one of human, json or yaml.
func (s *Stats) Render(w io.Writer, format string) error {
	counts := s.Counts()
	switch format {
	case "human":
		table := tablewriter.NewWriter(w)
		table.SetAutoWrapText(false)
		table.SetBorder(false)
		table.SetHeaderLine(false)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetHeader([]string{"ENTITY", "INSERTED", "FAILED", "SKIPPED"})
		for _, c := range counts {
			table.Append([]string{
				c.Entity,
				strconv.Itoa(c.Inserted),
				strconv.Itoa(c.Failed),
				strconv.Itoa(c.Skipped),
			})
		}
		table.Render()
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(counts)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(counts); err != nil {
			return serrors.Wrap("encoding yaml", err)
		}
		return enc.Close()
	default:
		return serrors.New("output format not supported", "format", format)
	}
}

func (c Count) String() string {
	return fmt.Sprintf("%s: inserted=%d failed=%d skipped=%d",
		c.Entity, c.Inserted, c.Failed, c.Skipped)
}
