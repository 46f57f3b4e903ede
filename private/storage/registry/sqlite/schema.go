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

package sqlite

const (
	// SchemaVersion is the version of the SQLite schema understood by this
	// backend. Whenever changes to the schema are made, this version number
	// should be increased to prevent data corruption between incompatible
	// database schemas.
	SchemaVersion = 1
	// Schema is the SQLite database layout. Column names match the postgres
	// schema the loaders write to in production; postgres specific types
	// (cidr, jsonb, enums) are plain TEXT here.
	Schema = `
	CREATE TABLE rpsl_obj(
		rpsl_obj_name TEXT NOT NULL PRIMARY KEY,
		body TEXT NOT NULL
	);
	CREATE TABLE rpsl_obj_mnt_by(
		rpsl_obj_name TEXT NOT NULL REFERENCES rpsl_obj(rpsl_obj_name),
		mntner_name TEXT NOT NULL,
		PRIMARY KEY (rpsl_obj_name, mntner_name)
	);
	CREATE TABLE mntner_obj(
		mntner_name TEXT NOT NULL PRIMARY KEY REFERENCES rpsl_obj(rpsl_obj_name),
		desc_s TEXT NOT NULL,
		source_s TEXT NOT NULL
	);
	CREATE TABLE route_obj(
		address_prefix TEXT NOT NULL,
		origin INTEGER NOT NULL,
		rpsl_obj_name TEXT NOT NULL REFERENCES rpsl_obj(rpsl_obj_name),
		PRIMARY KEY (address_prefix, origin)
	);
	CREATE TABLE as_set(
		as_set_name TEXT NOT NULL PRIMARY KEY REFERENCES rpsl_obj(rpsl_obj_name),
		is_any BOOLEAN NOT NULL
	);
	CREATE TABLE as_set_contains_num(
		as_set_name TEXT NOT NULL REFERENCES as_set(as_set_name),
		as_num INTEGER NOT NULL,
		PRIMARY KEY (as_set_name, as_num)
	);
	CREATE TABLE as_set_contains_set(
		as_set_name TEXT NOT NULL REFERENCES as_set(as_set_name),
		contained_set TEXT NOT NULL,
		PRIMARY KEY (as_set_name, contained_set)
	);
	CREATE TABLE route_set(
		route_set_name TEXT NOT NULL PRIMARY KEY REFERENCES rpsl_obj(rpsl_obj_name)
	);
	CREATE TABLE route_set_contains_address_prefix(
		route_set_name TEXT NOT NULL REFERENCES route_set(route_set_name),
		address_prefix TEXT NOT NULL,
		PRIMARY KEY (route_set_name, address_prefix)
	);
	CREATE TABLE route_set_contains_set(
		route_set_name TEXT NOT NULL REFERENCES route_set(route_set_name),
		contained_set TEXT NOT NULL,
		PRIMARY KEY (route_set_name, contained_set)
	);
	CREATE TABLE peering_set(
		peering_set_name TEXT NOT NULL PRIMARY KEY REFERENCES rpsl_obj(rpsl_obj_name),
		peerings TEXT NOT NULL
	);
	CREATE TABLE filter_set(
		filter_set_name TEXT NOT NULL PRIMARY KEY REFERENCES rpsl_obj(rpsl_obj_name),
		filters TEXT NOT NULL
	);
	CREATE TABLE aut_num(
		as_num INTEGER NOT NULL PRIMARY KEY,
		as_name TEXT NOT NULL,
		imports TEXT NOT NULL,
		exports TEXT NOT NULL,
		rpsl_obj_name TEXT NOT NULL REFERENCES rpsl_obj(rpsl_obj_name)
	);
	CREATE TABLE mbrs_by_ref(
		rpsl_obj_name TEXT NOT NULL REFERENCES rpsl_obj(rpsl_obj_name),
		mntner_name TEXT NOT NULL,
		PRIMARY KEY (rpsl_obj_name, mntner_name)
	);
	CREATE TABLE provide_customer(
		provider INTEGER NOT NULL,
		customer INTEGER NOT NULL,
		PRIMARY KEY (provider, customer)
	);
	CREATE TABLE peer(
		peer_1 INTEGER NOT NULL,
		peer_2 INTEGER NOT NULL,
		PRIMARY KEY (peer_1, peer_2)
	);
	CREATE TABLE observed_route(
		observed_route_id INTEGER PRIMARY KEY AUTOINCREMENT,
		raw_line TEXT NOT NULL,
		address_prefix TEXT NOT NULL
	);
	CREATE TABLE exchange_report(
		report_id INTEGER PRIMARY KEY AUTOINCREMENT,
		from_as INTEGER NOT NULL,
		to_as INTEGER NOT NULL,
		import BOOLEAN NOT NULL,
		overall_type TEXT NOT NULL,
		parent_observed_route INTEGER NOT NULL
			REFERENCES observed_route(observed_route_id)
	);
	CREATE TABLE report_item(
		report_item_id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		specific_case TEXT NOT NULL,
		str_content TEXT,
		num_content INTEGER,
		parent_report INTEGER NOT NULL REFERENCES exchange_report(report_id)
	);
	`
)
