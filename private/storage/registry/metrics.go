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

package registry

import (
	"context"
	"net/netip"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SichangHe/internet-route-verification-server/pkg/ir"
	"github.com/SichangHe/internet-route-verification-server/private/storage/db"
)

// Config configures the metrics of a wrapped DB.
type Config struct {
	Driver string
	// QueriesTotal counts queries by driver, operation and result.
	QueriesTotal *prometheus.CounterVec
}

// WrapDB wraps the given registry database into one that also exports
// metrics. A nil QueriesTotal returns registryDB unchanged.
func WrapDB(registryDB DB, cfg Config) DB {
	if cfg.QueriesTotal == nil {
		return registryDB
	}
	return &executor{
		db:      registryDB,
		metrics: observer{cfg: cfg},
	}
}

type observer struct {
	cfg Config
}

type observable func(context.Context) (label string, err error)

func (o observer) Observe(ctx context.Context, op string, action observable) {
	label, _ := action(ctx)
	o.cfg.QueriesTotal.WithLabelValues(o.cfg.Driver, op, label).Inc()
}

type executor struct {
	db      DB
	metrics observer
}

// below here is boilerplate that implements all DB ops and calls Observe.

func (e *executor) InsertRPSLObj(ctx context.Context, name, body string) error {
	var err error
	e.metrics.Observe(ctx, "insert_rpsl_obj", func(ctx context.Context) (string, error) {
		err = e.db.InsertRPSLObj(ctx, name, body)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertMntner(ctx context.Context, name, body, desc, source string) error {
	var err error
	e.metrics.Observe(ctx, "insert_mntner", func(ctx context.Context) (string, error) {
		err = e.db.InsertMntner(ctx, name, body, desc, source)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertRoute(
	ctx context.Context,
	name string,
	prefix netip.Prefix,
	origin uint32,
	body string,
) error {

	var err error
	e.metrics.Observe(ctx, "insert_route", func(ctx context.Context) (string, error) {
		err = e.db.InsertRoute(ctx, name, prefix, origin, body)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertAutNum(
	ctx context.Context,
	num uint32,
	asName string,
	autNum ir.AutNum,
) error {

	var err error
	e.metrics.Observe(ctx, "insert_aut_num", func(ctx context.Context) (string, error) {
		err = e.db.InsertAutNum(ctx, num, asName, autNum)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertAsSet(ctx context.Context, name string, asSet ir.AsSet) error {
	var err error
	e.metrics.Observe(ctx, "insert_as_set", func(ctx context.Context) (string, error) {
		err = e.db.InsertAsSet(ctx, name, asSet)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertRouteSet(ctx context.Context, name string, routeSet ir.RouteSet) error {
	var err error
	e.metrics.Observe(ctx, "insert_route_set", func(ctx context.Context) (string, error) {
		err = e.db.InsertRouteSet(ctx, name, routeSet)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertPeeringSet(
	ctx context.Context,
	name string,
	peeringSet ir.PeeringSet,
) error {

	var err error
	e.metrics.Observe(ctx, "insert_peering_set", func(ctx context.Context) (string, error) {
		err = e.db.InsertPeeringSet(ctx, name, peeringSet)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertFilterSet(
	ctx context.Context,
	name string,
	filterSet ir.FilterSet,
) error {

	var err error
	e.metrics.Observe(ctx, "insert_filter_set", func(ctx context.Context) (string, error) {
		err = e.db.InsertFilterSet(ctx, name, filterSet)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertProvideCustomer(ctx context.Context, provider, customer uint32) error {
	var err error
	e.metrics.Observe(ctx, "insert_provide_customer", func(ctx context.Context) (string, error) {
		err = e.db.InsertProvideCustomer(ctx, provider, customer)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertPeer(ctx context.Context, peer1, peer2 uint32) error {
	var err error
	e.metrics.Observe(ctx, "insert_peer", func(ctx context.Context) (string, error) {
		err = e.db.InsertPeer(ctx, peer1, peer2)
		return db.ErrToMetricLabel(err), err
	})
	return err
}

func (e *executor) InsertObservedRoute(
	ctx context.Context,
	rawLine string,
	prefix netip.Prefix,
) (int64, error) {

	var ret int64
	var err error
	e.metrics.Observe(ctx, "insert_observed_route", func(ctx context.Context) (string, error) {
		ret, err = e.db.InsertObservedRoute(ctx, rawLine, prefix)
		return db.ErrToMetricLabel(err), err
	})
	return ret, err
}

func (e *executor) InsertExchangeReport(ctx context.Context, r ExchangeReport) (int64, error) {
	var ret int64
	var err error
	e.metrics.Observe(ctx, "insert_exchange_report", func(ctx context.Context) (string, error) {
		ret, err = e.db.InsertExchangeReport(ctx, r)
		return db.ErrToMetricLabel(err), err
	})
	return ret, err
}

func (e *executor) InsertReportItem(ctx context.Context, item ReportItem) (int64, error) {
	var ret int64
	var err error
	e.metrics.Observe(ctx, "insert_report_item", func(ctx context.Context) (string, error) {
		ret, err = e.db.InsertReportItem(ctx, item)
		return db.ErrToMetricLabel(err), err
	})
	return ret, err
}
