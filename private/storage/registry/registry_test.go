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

package registry_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/netip"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
	"github.com/SichangHe/internet-route-verification-server/private/storage/db"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry"
	"github.com/SichangHe/internet-route-verification-server/private/storage/registry/registrytest"
)

func TestInsertRPSLObjMntBy(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	body := "mntner: MAINT-A\nmnt-by: MAINT-A, MAINT-B\nmnt-by: MAINT-C\n"
	require.NoError(t, b.InsertMntner(ctx, "MAINT-A", body, "first", "RIPE"))

	assert.Equal(t, []string{"MAINT-A", "MAINT-B", "MAINT-C"}, registrytest.Strings(t, conn,
		`SELECT mntner_name FROM rpsl_obj_mnt_by WHERE rpsl_obj_name = 'MAINT-A'
		ORDER BY mntner_name`))
	var desc, source string
	require.NoError(t, conn.QueryRow(
		`SELECT desc_s, source_s FROM mntner_obj WHERE mntner_name = 'MAINT-A'`,
	).Scan(&desc, &source))
	assert.Equal(t, "first", desc)
	assert.Equal(t, "RIPE", source)
}

func TestInsertAsSet(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	asSet := ir.AsSet{
		Body:       "as-set: AS-FOO\nmembers: AS1, AS2, SET-FOO\nmbrs-by-ref: MAINT-X\n",
		Members:    []uint32{1, 2},
		SetMembers: []string{"SET-FOO"},
	}
	require.NoError(t, b.InsertAsSet(ctx, "AS-FOO", asSet))

	assert.Equal(t, 1, registrytest.Count(t, conn, `SELECT COUNT(*) FROM as_set`))
	assert.Equal(t, []int64{1, 2}, registrytest.Ints(t, conn,
		`SELECT as_num FROM as_set_contains_num ORDER BY as_num`))
	assert.Equal(t, []string{"SET-FOO"}, registrytest.Strings(t, conn,
		`SELECT contained_set FROM as_set_contains_set`))
	assert.Equal(t, []string{"MAINT-X"}, registrytest.Strings(t, conn,
		`SELECT mntner_name FROM mbrs_by_ref WHERE rpsl_obj_name = 'AS-FOO'`))

	// The composite stops at the base row on a second insert.
	err := b.InsertAsSet(ctx, "AS-FOO", asSet)
	assert.ErrorIs(t, err, db.ErrWriteFailed)
	assert.Equal(t, 2, registrytest.Count(t, conn, `SELECT COUNT(*) FROM as_set_contains_num`))
}

func TestInsertRouteSet(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	routeSet := ir.RouteSet{
		Body: "route-set: RS-FOO\nmbrs-by-ref: MAINT-Y\n",
		Members: []ir.RouteSetMember{
			{Range: &ir.AddrPfxRange{
				AddressPrefix: netip.MustParsePrefix("192.0.2.0/24"),
				RangeOperator: ir.RangeOperator{Kind: ir.Plus},
			}},
			{Name: "RS-BAR", Op: ir.RangeOperator{Kind: ir.Minus}},
		},
	}
	require.NoError(t, b.InsertRouteSet(ctx, "RS-FOO", routeSet))
	assert.Equal(t, []string{"192.0.2.0/24"}, registrytest.Strings(t, conn,
		`SELECT address_prefix FROM route_set_contains_address_prefix`))
	assert.Equal(t, []string{"RS-BAR"}, registrytest.Strings(t, conn,
		`SELECT contained_set FROM route_set_contains_set`))
	assert.Equal(t, []string{"MAINT-Y"}, registrytest.Strings(t, conn,
		`SELECT mntner_name FROM mbrs_by_ref`))
}

func TestInsertAutNum(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	autNum := ir.AutNum{
		Body:    "aut-num: AS65000\nas-name: EXAMPLE\n",
		Imports: json.RawMessage(`{ "any": { "any": [] } }`),
	}
	require.NoError(t, b.InsertAutNum(ctx, 65000, "EXAMPLE", autNum))

	var name, asName, imports, exports string
	require.NoError(t, conn.QueryRow(
		`SELECT rpsl_obj_name, as_name, imports, exports FROM aut_num WHERE as_num = 65000`,
	).Scan(&name, &asName, &imports, &exports))
	assert.Equal(t, "AS65000", name)
	assert.Equal(t, "EXAMPLE", asName)
	assert.Equal(t, `{"any":{"any":[]}}`, imports)
	assert.Equal(t, "null", exports)
}

func TestInsertSetsWithTrees(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	require.NoError(t, b.InsertPeeringSet(ctx, "PRNG-FOO", ir.PeeringSet{
		Body:     "peering-set: PRNG-FOO\n",
		Peerings: json.RawMessage(`[{"remote_as": {"Single": {"Num": 1}}}]`),
	}))
	require.NoError(t, b.InsertFilterSet(ctx, "FLTR-FOO", ir.FilterSet{
		Body:    "filter-set: FLTR-FOO\n",
		Filters: json.RawMessage(`["Any"]`),
	}))
	assert.Equal(t, []string{`[{"remote_as":{"Single":{"Num":1}}}]`},
		registrytest.Strings(t, conn, `SELECT peerings FROM peering_set`))
	assert.Equal(t, []string{`["Any"]`},
		registrytest.Strings(t, conn, `SELECT filters FROM filter_set`))
}

func TestInsertReports(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	routeID, err := b.InsertObservedRoute(ctx, "TABLE_DUMP2|...", netip.MustParsePrefix("192.0.2.0/24"))
	require.NoError(t, err)
	reportID, err := b.InsertExchangeReport(ctx, registry.ExchangeReport{
		FromAS: 1, ToAS: 2, Import: true, OverallType: "skip", ParentObservedRoute: routeID,
	})
	require.NoError(t, err)
	num := uint32(3)
	_, err = b.InsertReportItem(ctx, registry.ReportItem{
		Category: "unrecorded", SpecificCase: "unrec_aut_num",
		NumContent: &num, ParentReport: reportID,
	})
	require.NoError(t, err)

	var str sql.NullString
	var n sql.NullInt64
	require.NoError(t, conn.QueryRow(
		`SELECT str_content, num_content FROM report_item`).Scan(&str, &n))
	assert.False(t, str.Valid)
	assert.Equal(t, sql.NullInt64{Int64: 3, Valid: true}, n)

	// Foreign keys are enforced.
	_, err = b.InsertExchangeReport(ctx, registry.ExchangeReport{
		FromAS: 1, ToAS: 2, OverallType: "ok", ParentObservedRoute: routeID + 100,
	})
	assert.ErrorIs(t, err, db.ErrWriteFailed)
}

func TestRelationshipUniqueness(t *testing.T) {
	ctx := context.Background()
	_, b := registrytest.New(t)

	require.NoError(t, b.InsertProvideCustomer(ctx, 100, 200))
	assert.Error(t, b.InsertProvideCustomer(ctx, 100, 200))
	require.NoError(t, b.InsertPeer(ctx, 300, 400))
	assert.Error(t, b.InsertPeer(ctx, 300, 400))
}

func TestWrapDB(t *testing.T) {
	ctx := context.Background()
	_, b := registrytest.New(t)

	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "irv_registry_queries_total",
	}, []string{"driver", "operation", "result"})
	wrapped := registry.WrapDB(b, registry.Config{Driver: "sqlite", QueriesTotal: queries})

	require.NoError(t, wrapped.InsertPeer(ctx, 1, 2))
	require.Error(t, wrapped.InsertPeer(ctx, 1, 2))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		queries.WithLabelValues("sqlite", "insert_peer", db.ResultOk)))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		queries.WithLabelValues("sqlite", "insert_peer", "err_db_write")))

	assert.Same(t, b, registry.WrapDB(b, registry.Config{}))
}

func TestRepeatedValuesYieldOneRow(t *testing.T) {
	ctx := context.Background()

	t.Run("mnt-by", func(t *testing.T) {
		conn, b := registrytest.New(t)
		body := "mntner: MAINT-A\nmnt-by: MAINT-A\nmnt-by: MAINT-A, MAINT-B\n"
		require.NoError(t, b.InsertMntner(ctx, "MAINT-A", body, "", "RIPE"))
		assert.Equal(t, 1, registrytest.Count(t, conn, `SELECT COUNT(*) FROM mntner_obj`))
		assert.Equal(t, []string{"MAINT-A", "MAINT-B"}, registrytest.Strings(t, conn,
			`SELECT mntner_name FROM rpsl_obj_mnt_by ORDER BY mntner_name`))
	})
	t.Run("as-set", func(t *testing.T) {
		conn, b := registrytest.New(t)
		require.NoError(t, b.InsertAsSet(ctx, "AS-FOO", ir.AsSet{
			Body:       "as-set: AS-FOO\nmbrs-by-ref: MAINT-X\nmbrs-by-ref: MAINT-X\n",
			Members:    []uint32{1, 2, 1},
			SetMembers: []string{"AS-BAR", "AS-BAR"},
		}))
		assert.Equal(t, []int64{1, 2}, registrytest.Ints(t, conn,
			`SELECT as_num FROM as_set_contains_num ORDER BY as_num`))
		assert.Equal(t, []string{"AS-BAR"}, registrytest.Strings(t, conn,
			`SELECT contained_set FROM as_set_contains_set`))
		assert.Equal(t, []string{"MAINT-X"}, registrytest.Strings(t, conn,
			`SELECT mntner_name FROM mbrs_by_ref`))
	})
	t.Run("route-set prefix with several operators", func(t *testing.T) {
		conn, b := registrytest.New(t)
		prefix := netip.MustParsePrefix("192.0.2.0/24")
		require.NoError(t, b.InsertRouteSet(ctx, "RS-FOO", ir.RouteSet{
			Body: "route-set: RS-FOO\nmbrs-by-ref: MAINT-X\n",
			Members: []ir.RouteSetMember{
				{Range: &ir.AddrPfxRange{
					AddressPrefix: prefix,
					RangeOperator: ir.RangeOperator{Kind: ir.Plus},
				}},
				{Range: &ir.AddrPfxRange{
					AddressPrefix: prefix,
					RangeOperator: ir.RangeOperator{Kind: ir.Minus},
				}},
				{Name: "RS-Y"},
				{Name: "RS-Y", Op: ir.RangeOperator{Kind: ir.Plus}},
			},
		}))
		assert.Equal(t, []string{"192.0.2.0/24"}, registrytest.Strings(t, conn,
			`SELECT address_prefix FROM route_set_contains_address_prefix`))
		assert.Equal(t, []string{"RS-Y"}, registrytest.Strings(t, conn,
			`SELECT contained_set FROM route_set_contains_set`))
		assert.Equal(t, []string{"MAINT-X"}, registrytest.Strings(t, conn,
			`SELECT mntner_name FROM mbrs_by_ref`))
	})
}

func TestInsertRejectsMalformedTrees(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)
	broken := json.RawMessage(`{"any":`)

	err := b.InsertAutNum(ctx, 65000, "EXAMPLE", ir.AutNum{
		Body:    "aut-num: AS65000\n",
		Imports: broken,
	})
	assert.ErrorIs(t, err, db.ErrInvalidInputData)
	assert.Equal(t, "err_input_data_invalid", db.ErrToMetricLabel(err))
	err = b.InsertPeeringSet(ctx, "PRNG-FOO", ir.PeeringSet{Body: "peering-set: PRNG-FOO\n",
		Peerings: broken})
	assert.ErrorIs(t, err, db.ErrInvalidInputData)
	err = b.InsertFilterSet(ctx, "FLTR-FOO", ir.FilterSet{Body: "filter-set: FLTR-FOO\n",
		Filters: broken})
	assert.ErrorIs(t, err, db.ErrInvalidInputData)

	assert.Equal(t, 0, registrytest.Count(t, conn, `SELECT COUNT(*) FROM rpsl_obj`))
}

func TestInsertRouteKeepsObjectName(t *testing.T) {
	ctx := context.Background()
	conn, b := registrytest.New(t)

	const name = "2001:DB8:0:0::/32"
	require.NoError(t, b.InsertRoute(ctx, name, netip.MustParsePrefix(name), 65001,
		"route6: 2001:DB8:0:0::/32\norigin: AS65001\nmnt-by: MAINT-A\n"))

	var prefix, objName string
	require.NoError(t, conn.QueryRow(
		`SELECT address_prefix, rpsl_obj_name FROM route_obj`).Scan(&prefix, &objName))
	assert.Equal(t, "2001:db8::/32", prefix)
	assert.Equal(t, name, objName)
	assert.Equal(t, []string{name}, registrytest.Strings(t, conn,
		`SELECT rpsl_obj_name FROM rpsl_obj_mnt_by`))
}
