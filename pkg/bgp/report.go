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

package bgp

import (
	"fmt"
	"strconv"
)

// ReportKind identifies the outcome and direction of a Report.
type ReportKind int

const (
	OkImport ReportKind = iota
	OkExport
	SkipImport
	SkipExport
	UnrecImport
	UnrecExport
	MehImport
	MehExport
	BadImport
	BadExport
	// AsPathPairWithSet marks an AS path pair where one side is an AS set.
	// Such pairs cannot be checked and carry no items.
	AsPathPairWithSet
)

var reportKindNames = [...]string{
	OkImport:          "OkImport",
	OkExport:          "OkExport",
	SkipImport:        "SkipImport",
	SkipExport:        "SkipExport",
	UnrecImport:       "UnrecImport",
	UnrecExport:       "UnrecExport",
	MehImport:         "MehImport",
	MehExport:         "MehExport",
	BadImport:         "BadImport",
	BadExport:         "BadExport",
	AsPathPairWithSet: "AsPathPairWithSet",
}

func (k ReportKind) String() string {
	if k >= 0 && int(k) < len(reportKindNames) {
		return reportKindNames[k]
	}
	return "ReportKind(" + strconv.Itoa(int(k)) + ")"
}

// IsImport reports whether k describes the import side of a pair.
func (k ReportKind) IsImport() bool {
	switch k {
	case OkImport, SkipImport, UnrecImport, MehImport, BadImport:
		return true
	}
	return false
}

// Report is the outcome of checking one AS pair of an observed route. For an
// import report, To imports the route from From; for an export report, From
// exports it to To.
type Report struct {
	Kind     ReportKind
	From, To uint32
	// FromEntry and ToEntry are the AS path entries of an AsPathPairWithSet
	// report. From or To is 0 on the side that is an AS set.
	FromEntry, ToEntry AsPathEntry
	Items              []ReportItem
}

// Endpoints returns both sides of the pair as AS path entries.
func (r Report) Endpoints() (from, to AsPathEntry) {
	if r.Kind == AsPathPairWithSet {
		return r.FromEntry, r.ToEntry
	}
	return AsPathEntry{Seq: r.From}, AsPathEntry{Seq: r.To}
}

func (r Report) String() string {
	from, to := r.Endpoints()
	return fmt.Sprintf("%s{from: %s, to: %s, items: %v}", r.Kind, from, to, r.Items)
}
