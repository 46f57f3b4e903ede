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

// Package registry is the persistence layer of the loaders. Every insert is
// its own unit of work. Composite inserts write the registry object row first
// and then their relation rows, stopping at the first failure. Values repeated
// in an object yield a single relation row.
package registry

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/netip"
	"strconv"

	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
	"github.com/SichangHe/internet-route-verification-server/pkg/rpsl"
	"github.com/SichangHe/internet-route-verification-server/private/storage/db"
)

// DB is the write interface of the registry store.
type DB interface {
	InsertRPSLObj(ctx context.Context, name, body string) error
	InsertMntner(ctx context.Context, name, body, desc, source string) error
	InsertRoute(ctx context.Context, name string, prefix netip.Prefix, origin uint32, body string) error
	InsertAutNum(ctx context.Context, num uint32, asName string, autNum ir.AutNum) error
	InsertAsSet(ctx context.Context, name string, asSet ir.AsSet) error
	InsertRouteSet(ctx context.Context, name string, routeSet ir.RouteSet) error
	InsertPeeringSet(ctx context.Context, name string, peeringSet ir.PeeringSet) error
	InsertFilterSet(ctx context.Context, name string, filterSet ir.FilterSet) error
	InsertProvideCustomer(ctx context.Context, provider, customer uint32) error
	InsertPeer(ctx context.Context, peer1, peer2 uint32) error
	InsertObservedRoute(ctx context.Context, rawLine string, prefix netip.Prefix) (int64, error)
	InsertExchangeReport(ctx context.Context, report ExchangeReport) (int64, error)
	InsertReportItem(ctx context.Context, item ReportItem) (int64, error)
}

// ExchangeReport is an exchange_report row.
type ExchangeReport struct {
	FromAS, ToAS        uint32
	Import              bool
	OverallType         string
	ParentObservedRoute int64
}

// ReportItem is a report_item row. StrContent and NumContent are NULL when
// nil.
type ReportItem struct {
	Category     string
	SpecificCase string
	StrContent   *string
	NumContent   *uint32
	ParentReport int64
}

// Backend implements DB on top of a SQL database. The same statements are
// used for postgres and sqlite.
type Backend struct {
	db db.Execer
}

var _ DB = (*Backend)(nil)

// New returns a backend writing to conn.
func New(conn db.Execer) *Backend {
	return &Backend{db: conn}
}

func (b *Backend) exec(ctx context.Context, msg, query string, args ...any) error {
	if _, err := b.db.ExecContext(ctx, query, args...); err != nil {
		return db.NewWriteError(msg, err)
	}
	return nil
}

// InsertRPSLObj writes the registry object row and one rpsl_obj_mnt_by row
// per maintainer listed in the mnt-by attributes of body.
func (b *Backend) InsertRPSLObj(ctx context.Context, name, body string) error {
	if err := b.exec(ctx, "inserting rpsl_obj",
		`INSERT INTO rpsl_obj(rpsl_obj_name, body) VALUES ($1, $2)`,
		name, body,
	); err != nil {
		return err
	}
	for _, mntner := range distinct(rpsl.SplitList(rpsl.FieldValues(body, "mnt-by"))) {
		if err := b.exec(ctx, "inserting rpsl_obj_mnt_by",
			`INSERT INTO rpsl_obj_mnt_by(rpsl_obj_name, mntner_name) VALUES ($1, $2)`,
			name, mntner,
		); err != nil {
			return err
		}
	}
	return nil
}

func (b *Backend) InsertMntner(ctx context.Context, name, body, desc, source string) error {
	if err := b.InsertRPSLObj(ctx, name, body); err != nil {
		return err
	}
	return b.exec(ctx, "inserting mntner_obj",
		`INSERT INTO mntner_obj(mntner_name, desc_s, source_s) VALUES ($1, $2, $3)`,
		name, desc, source,
	)
}

// InsertRoute writes a route or route6 object. name is the object name as
// written in the registry.
func (b *Backend) InsertRoute(
	ctx context.Context,
	name string,
	prefix netip.Prefix,
	origin uint32,
	body string,
) error {

	if err := b.InsertRPSLObj(ctx, name, body); err != nil {
		return err
	}
	return b.exec(ctx, "inserting route_obj",
		`INSERT INTO route_obj(address_prefix, origin, rpsl_obj_name) VALUES ($1, $2, $3)`,
		prefix.String(), int32(origin), name,
	)
}

// InsertAutNum writes an aut-num object named AS<num> together with its
// policies as JSON.
func (b *Backend) InsertAutNum(
	ctx context.Context,
	num uint32,
	asName string,
	autNum ir.AutNum,
) error {

	name := AutNumName(num)
	imports, err := jsonText("imports", autNum.Imports)
	if err != nil {
		return err
	}
	exports, err := jsonText("exports", autNum.Exports)
	if err != nil {
		return err
	}
	if err := b.InsertRPSLObj(ctx, name, autNum.Body); err != nil {
		return err
	}
	return b.exec(ctx, "inserting aut_num",
		`INSERT INTO aut_num(as_num, as_name, imports, exports, rpsl_obj_name)
		VALUES ($1, $2, $3, $4, $5)`,
		int32(num), asName, imports, exports, name,
	)
}

func (b *Backend) InsertAsSet(ctx context.Context, name string, asSet ir.AsSet) error {
	if err := b.InsertRPSLObj(ctx, name, asSet.Body); err != nil {
		return err
	}
	if err := b.exec(ctx, "inserting as_set",
		`INSERT INTO as_set(as_set_name, is_any) VALUES ($1, $2)`,
		name, asSet.IsAny,
	); err != nil {
		return err
	}
	for _, num := range distinct(asSet.Members) {
		if err := b.exec(ctx, "inserting as_set_contains_num",
			`INSERT INTO as_set_contains_num(as_set_name, as_num) VALUES ($1, $2)`,
			name, int32(num),
		); err != nil {
			return err
		}
	}
	for _, set := range distinct(asSet.SetMembers) {
		if err := b.exec(ctx, "inserting as_set_contains_set",
			`INSERT INTO as_set_contains_set(as_set_name, contained_set) VALUES ($1, $2)`,
			name, set,
		); err != nil {
			return err
		}
	}
	return b.insertMbrsByRef(ctx, name, asSet.Body)
}

// InsertRouteSet writes a route-set object. Range operators are not
// persisted, so a prefix listed with several operators yields one row.
func (b *Backend) InsertRouteSet(ctx context.Context, name string, routeSet ir.RouteSet) error {
	if err := b.InsertRPSLObj(ctx, name, routeSet.Body); err != nil {
		return err
	}
	if err := b.exec(ctx, "inserting route_set",
		`INSERT INTO route_set(route_set_name) VALUES ($1)`,
		name,
	); err != nil {
		return err
	}
	prefixes := make(map[netip.Prefix]struct{})
	sets := make(map[string]struct{})
	for _, member := range routeSet.Members {
		var err error
		if member.IsRange() {
			prefix := member.Range.AddressPrefix
			if _, ok := prefixes[prefix]; ok {
				continue
			}
			prefixes[prefix] = struct{}{}
			err = b.exec(ctx, "inserting route_set_contains_address_prefix",
				`INSERT INTO route_set_contains_address_prefix(route_set_name, address_prefix)
				VALUES ($1, $2)`,
				name, prefix.String(),
			)
		} else {
			if _, ok := sets[member.Name]; ok {
				continue
			}
			sets[member.Name] = struct{}{}
			err = b.exec(ctx, "inserting route_set_contains_set",
				`INSERT INTO route_set_contains_set(route_set_name, contained_set) VALUES ($1, $2)`,
				name, member.Name,
			)
		}
		if err != nil {
			return err
		}
	}
	return b.insertMbrsByRef(ctx, name, routeSet.Body)
}

func (b *Backend) InsertPeeringSet(
	ctx context.Context,
	name string,
	peeringSet ir.PeeringSet,
) error {

	peerings, err := jsonText("peerings", peeringSet.Peerings)
	if err != nil {
		return err
	}
	if err := b.InsertRPSLObj(ctx, name, peeringSet.Body); err != nil {
		return err
	}
	return b.exec(ctx, "inserting peering_set",
		`INSERT INTO peering_set(peering_set_name, peerings) VALUES ($1, $2)`,
		name, peerings,
	)
}

func (b *Backend) InsertFilterSet(ctx context.Context, name string, filterSet ir.FilterSet) error {
	filters, err := jsonText("filters", filterSet.Filters)
	if err != nil {
		return err
	}
	if err := b.InsertRPSLObj(ctx, name, filterSet.Body); err != nil {
		return err
	}
	return b.exec(ctx, "inserting filter_set",
		`INSERT INTO filter_set(filter_set_name, filters) VALUES ($1, $2)`,
		name, filters,
	)
}

func (b *Backend) InsertProvideCustomer(ctx context.Context, provider, customer uint32) error {
	return b.exec(ctx, "inserting provide_customer",
		`INSERT INTO provide_customer(provider, customer) VALUES ($1, $2)`,
		int32(provider), int32(customer),
	)
}

func (b *Backend) InsertPeer(ctx context.Context, peer1, peer2 uint32) error {
	return b.exec(ctx, "inserting peer",
		`INSERT INTO peer(peer_1, peer_2) VALUES ($1, $2)`,
		int32(peer1), int32(peer2),
	)
}

// InsertObservedRoute writes an observed_route row and returns its ID.
func (b *Backend) InsertObservedRoute(
	ctx context.Context,
	rawLine string,
	prefix netip.Prefix,
) (int64, error) {

	return b.insertReturning(ctx, "inserting observed_route",
		`INSERT INTO observed_route(raw_line, address_prefix) VALUES ($1, $2)
		RETURNING observed_route_id`,
		rawLine, prefix.String(),
	)
}

// InsertExchangeReport writes an exchange_report row and returns its ID.
func (b *Backend) InsertExchangeReport(ctx context.Context, r ExchangeReport) (int64, error) {
	return b.insertReturning(ctx, "inserting exchange_report",
		`INSERT INTO exchange_report(from_as, to_as, import, overall_type, parent_observed_route)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING report_id`,
		int32(r.FromAS), int32(r.ToAS), r.Import, r.OverallType, r.ParentObservedRoute,
	)
}

// InsertReportItem writes a report_item row and returns its ID.
func (b *Backend) InsertReportItem(ctx context.Context, item ReportItem) (int64, error) {
	var str sql.NullString
	if item.StrContent != nil {
		str = sql.NullString{String: *item.StrContent, Valid: true}
	}
	var num sql.NullInt32
	if item.NumContent != nil {
		num = sql.NullInt32{Int32: int32(*item.NumContent), Valid: true}
	}
	return b.insertReturning(ctx, "inserting report_item",
		`INSERT INTO report_item(category, specific_case, str_content, num_content, parent_report)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING report_item_id`,
		item.Category, item.SpecificCase, str, num, item.ParentReport,
	)
}

func (b *Backend) insertReturning(
	ctx context.Context,
	msg, query string,
	args ...any,
) (int64, error) {

	var id int64
	if err := b.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, db.NewWriteError(msg, err)
	}
	return id, nil
}

func (b *Backend) insertMbrsByRef(ctx context.Context, name, body string) error {
	for _, mntner := range distinct(rpsl.SplitList(rpsl.FieldValues(body, "mbrs-by-ref"))) {
		if err := b.exec(ctx, "inserting mbrs_by_ref",
			`INSERT INTO mbrs_by_ref(rpsl_obj_name, mntner_name) VALUES ($1, $2)`,
			name, mntner,
		); err != nil {
			return err
		}
	}
	return nil
}

// AutNumName returns the registry object name of the aut-num of num.
func AutNumName(num uint32) string {
	return "AS" + strconv.FormatUint(uint64(num), 10)
}

// jsonText returns raw as compact JSON text. Absent trees are stored as null.
func jsonText(field string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "null", nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", db.NewInputDataError("compacting JSON", err, "field", field)
	}
	return buf.String(), nil
}

// distinct returns values in order of first occurrence without repetitions.
func distinct[T comparable](values []T) []T {
	seen := make(map[T]struct{}, len(values))
	out := make([]T, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
