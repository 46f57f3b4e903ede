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

// Package app contains the process harness shared by the irv commands: where
// the configuration comes from, logging setup and exit codes.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SichangHe/internet-route-verification-server/pkg/log"
	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

const (
	// ConfigEnv names the environment variable holding the configuration file
	// path.
	ConfigEnv = "IRV_CONFIG"
	// DefaultConfigFile is used if ConfigEnv is not set.
	DefaultConfigFile = "irv.toml"
)

// ConfigPath returns the configuration file path from the environment, or
// DefaultConfigFile.
func ConfigPath() string {
	if p, ok := os.LookupEnv(ConfigEnv); ok && p != "" {
		return p
	}
	return DefaultConfigFile
}

// SetupLog installs the root logger.
func SetupLog(cfg log.Config) error {
	if err := log.Setup(cfg); err != nil {
		return serrors.Wrap("initialize logging", err)
	}
	return nil
}

type exitCodeErr struct {
	err  error
	code int
}

func (e exitCodeErr) Error() string { return e.err.Error() }
func (e exitCodeErr) Unwrap() error { return e.err }

// WithExitCode attaches the exit code to err. A nil err stays nil.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitCodeErr{err: err, code: code}
}

// ExitCode returns the exit code carried by err: 0 for nil, the attached code
// if there is one and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var codeErr exitCodeErr
	if errors.As(err, &codeErr) {
		return codeErr.code
	}
	return 1
}

// Exit flushes the logs, reports err on w and terminates the process with
// the exit code of err.
func Exit(w io.Writer, err error) {
	log.Flush()
	if err != nil {
		fmt.Fprintf(w, "fatal error: %v\n", err)
	}
	os.Exit(ExitCode(err))
}
