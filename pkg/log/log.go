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

// Package log is a thin wrapper around zap. Loggers take a message and a list
// of alternating keys and values:
//
//	log.Info("Loaded snapshot", "path", path, "entries", n)
//
// The root logger is installed with Setup and discards everything until then.
package log

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SichangHe/internet-route-verification-server/pkg/private/serrors"
)

// Logger describes the logger interface.
type Logger interface {
	New(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Enabled(lvl Level) bool
}

// Level is a log level.
type Level zapcore.Level

const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	WarnLevel  = Level(zapcore.WarnLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
)

var (
	rootMtx sync.RWMutex
	root    Logger = &logger{logger: zap.NewNop()}
)

// Setup configures the root logger according to cfg. It also replaces the
// global zap loggers, so that libraries logging through zap end up in the
// same sink.
func Setup(cfg Config) error {
	cfg.InitDefaults()
	lvl, err := zapcore.ParseLevel(cfg.Console.Level)
	if err != nil {
		return serrors.Wrap("parsing console log level", err, "level", cfg.Console.Level)
	}
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var enc zapcore.Encoder
	switch cfg.Console.Format {
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	case "human":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return serrors.New("unknown console log format", "format", cfg.Console.Format)
	}
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(lvl))
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	zap.ReplaceGlobals(zl)

	rootMtx.Lock()
	defer rootMtx.Unlock()
	root = &logger{logger: zl}
	return nil
}

// Flush syncs the root logger. Call it before the process exits.
func Flush() {
	rootMtx.RLock()
	defer rootMtx.RUnlock()
	if l, ok := root.(*logger); ok {
		// Syncing stderr fails on some platforms, nothing to be done about it.
		_ = l.logger.Sync()
	}
}

// Root returns the root logger.
func Root() Logger {
	rootMtx.RLock()
	defer rootMtx.RUnlock()
	return root
}

// FromZap wraps an existing zap logger.
func FromZap(zl *zap.Logger) Logger {
	return &logger{logger: zl}
}

func Debug(msg string, ctx ...any) { Root().Debug(msg, ctx...) }
func Info(msg string, ctx ...any)  { Root().Info(msg, ctx...) }
func Warn(msg string, ctx ...any)  { Root().Warn(msg, ctx...) }
func Error(msg string, ctx ...any) { Root().Error(msg, ctx...) }

type logger struct {
	logger *zap.Logger
}

func (l *logger) New(ctx ...any) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...any) {
	l.logger.Debug(msg, convertCtx(ctx)...)
}

func (l *logger) Info(msg string, ctx ...any) {
	l.logger.Info(msg, convertCtx(ctx)...)
}

func (l *logger) Warn(msg string, ctx ...any) {
	l.logger.Warn(msg, convertCtx(ctx)...)
}

func (l *logger) Error(msg string, ctx ...any) {
	l.logger.Error(msg, convertCtx(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(zapcore.Level(lvl))
}

func convertCtx(ctx []any) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		key := fmt.Sprint(ctx[i])
		if err, ok := ctx[i+1].(error); ok {
			if m, ok := err.(zapcore.ObjectMarshaler); ok {
				fields = append(fields, zap.Object(key, m))
				continue
			}
			fields = append(fields, zap.String(key, err.Error()))
			continue
		}
		fields = append(fields, zap.Any(key, ctx[i+1]))
	}
	return fields
}
