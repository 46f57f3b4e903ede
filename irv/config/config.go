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

// Package config contains the configuration of the irv tool.
package config

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
	"github.com/SichangHe/internet-route-verification-server/private/config"
	"github.com/SichangHe/internet-route-verification-server/private/ingest/recorder"
	"github.com/SichangHe/internet-route-verification-server/private/storage"
)

const (
	DefaultRegistryDump = "ripe.db"
	DefaultEncoding     = "latin1"
	DefaultMaxBodyBytes = 1 << 20
	DefaultClassCap     = 1000

	DefaultIRSnapshot        = "parsed_all"
	DefaultAsRelSnapshot     = "20230701.as-rel.bz2"
	DefaultTableDumpSnapshot = "rib.20230619.2200.bz2"

	DefaultOutputFormat = "human"
)

var _ config.Config = (*Config)(nil)

// Config is the configuration of all irv commands.
type Config struct {
	Logging   log.Config       `toml:"log,omitempty"`
	DB        storage.DBConfig `toml:"db,omitempty"`
	Scan      Scan             `toml:"scan,omitempty"`
	Snapshots Snapshots        `toml:"snapshots,omitempty"`
	Record    Record           `toml:"record,omitempty"`
	Metrics   Metrics          `toml:"metrics,omitempty"`
	Output    Output           `toml:"output,omitempty"`
}

func (cfg *Config) InitDefaults() {
	config.InitAll(
		&cfg.Logging,
		&cfg.DB,
		&cfg.Scan,
		&cfg.Snapshots,
		&cfg.Record,
		&cfg.Metrics,
		&cfg.Output,
	)
}

func (cfg *Config) Validate() error {
	return config.ValidateAll(
		&cfg.Logging,
		&cfg.DB,
		&cfg.Scan,
		&cfg.Snapshots,
		&cfg.Record,
		&cfg.Metrics,
		&cfg.Output,
	)
}

func (cfg *Config) Sample(dst io.Writer, path config.Path, ctx config.CtxMap) {
	if exe := ctx[config.CtxExecutable]; exe != "" {
		config.WriteString(dst, fmt.Sprintf("# Sample configuration for %s.\n", exe))
	}
	config.WriteSample(dst, path, ctx,
		&cfg.Logging,
		&cfg.DB,
		&cfg.Scan,
		&cfg.Snapshots,
		&cfg.Record,
		&cfg.Metrics,
		&cfg.Output,
	)
}

func (cfg *Config) ConfigName() string {
	return "irv_config"
}

// Load reads the configuration file at path. A missing file yields the
// defaults. The result is validated.
func Load(path string) (Config, error) {
	var cfg Config
	found, err := config.LoadOptionalFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	cfg.InitDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, serrors.Wrap("validating config", err, "file", path, "found", found)
	}
	return cfg, nil
}

// Scan is the configuration of the registry dump scanner. Zero values are
// replaced by the defaults; a negative limit disables it.
type Scan struct {
	// RegistryDump is the path of the registry dump, optionally compressed.
	RegistryDump string `toml:"registry_dump,omitempty"`
	// Encoding is the WHATWG label of the character encoding of the dump.
	Encoding     string `toml:"encoding,omitempty"`
	MaxBodyBytes int    `toml:"max_body_bytes,omitempty"`
	MntnerCap    int    `toml:"mntner_cap,omitempty"`
	RouteCap     int    `toml:"route_cap,omitempty"`
}

func (cfg *Scan) InitDefaults() {
	if cfg.RegistryDump == "" {
		cfg.RegistryDump = DefaultRegistryDump
	}
	if cfg.Encoding == "" {
		cfg.Encoding = DefaultEncoding
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if cfg.MntnerCap == 0 {
		cfg.MntnerCap = DefaultClassCap
	}
	if cfg.RouteCap == 0 {
		cfg.RouteCap = DefaultClassCap
	}
}

func (cfg *Scan) Validate() error {
	if _, err := htmlindex.Get(cfg.Encoding); err != nil {
		return serrors.Wrap("unknown encoding", err, "encoding", cfg.Encoding)
	}
	return nil
}

func (cfg *Scan) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, fmt.Sprintf(scanSample, DefaultMaxBodyBytes, DefaultClassCap))
}

func (cfg *Scan) ConfigName() string {
	return "scan"
}

// Snapshots are the paths of the inputs produced by the parsing engine.
type Snapshots struct {
	// IR is a JSON file or a directory of JSON files.
	IR        string `toml:"ir,omitempty"`
	AsRel     string `toml:"as_rel,omitempty"`
	TableDump string `toml:"table_dump,omitempty"`
}

func (cfg *Snapshots) InitDefaults() {
	if cfg.IR == "" {
		cfg.IR = DefaultIRSnapshot
	}
	if cfg.AsRel == "" {
		cfg.AsRel = DefaultAsRelSnapshot
	}
	if cfg.TableDump == "" {
		cfg.TableDump = DefaultTableDumpSnapshot
	}
}

func (cfg *Snapshots) Validate() error {
	return nil
}

func (cfg *Snapshots) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, snapshotsSample)
}

func (cfg *Snapshots) ConfigName() string {
	return "snapshots"
}

// Record is the configuration of the report recorder.
type Record struct {
	// ObservedRouteCap is the number of observed routes stored per run. Zero
	// means the default; a negative value disables the cap.
	ObservedRouteCap int `toml:"observed_route_cap,omitempty"`
}

func (cfg *Record) InitDefaults() {
	if cfg.ObservedRouteCap == 0 {
		cfg.ObservedRouteCap = recorder.DefaultCap
	}
}

func (cfg *Record) Validate() error {
	return nil
}

func (cfg *Record) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, fmt.Sprintf(recordSample, recorder.DefaultCap))
}

func (cfg *Record) ConfigName() string {
	return "record"
}

// Metrics configures the export of the query counters.
type Metrics struct {
	config.NoValidator
	// Textfile is the file the metrics are written to at the end of a run.
	// Empty disables the export.
	Textfile string `toml:"textfile,omitempty"`
}

func (cfg *Metrics) InitDefaults() {}

func (cfg *Metrics) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, metricsSample)
}

func (cfg *Metrics) ConfigName() string {
	return "metrics"
}

// Output configures the run summary.
type Output struct {
	// Format is one of human, json and yaml.
	Format string `toml:"format,omitempty"`
}

func (cfg *Output) InitDefaults() {
	if cfg.Format == "" {
		cfg.Format = DefaultOutputFormat
	}
}

func (cfg *Output) Validate() error {
	switch cfg.Format {
	case "human", "json", "yaml":
		return nil
	}
	return serrors.New("unsupported output format", "format", cfg.Format)
}

func (cfg *Output) Sample(dst io.Writer, _ config.Path, _ config.CtxMap) {
	config.WriteString(dst, outputSample)
}

func (cfg *Output) ConfigName() string {
	return "output"
}
