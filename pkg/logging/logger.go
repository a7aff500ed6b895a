// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	// EnvLogLevel overrides the default log level when no explicit level is given.
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogFormat forces the handler format ("json" or "text").
	EnvLogFormat = "LOG_FORMAT"

	formatJSON = "json"
	formatText = "text"
)

// SetDefaultStructuredLogger installs a structured logger as the slog default
// using the level from LOG_LEVEL (INFO when unset).
func SetDefaultStructuredLogger(name, version string) {
	SetDefaultStructuredLoggerWithLevel(name, version, os.Getenv(EnvLogLevel))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the slog
// default with an explicit level. An empty level falls back to LOG_LEVEL.
// The standard library log package is redirected to the same handler.
func SetDefaultStructuredLoggerWithLevel(name, version, level string) {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv(EnvLogLevel)
	}
	slog.SetDefault(NewStructuredLogger(name, version, level))
}

// NewStructuredLogger returns a logger writing to stderr tagged with module
// and version attributes. Debug level adds source locations.
func NewStructuredLogger(name, version, level string) *slog.Logger {
	return newLogger(os.Stderr, resolveFormat(os.Stderr), name, version, ParseLogLevel(level))
}

func newLogger(w io.Writer, format, name, version string, lvl slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	}

	var h slog.Handler
	if format == formatText {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return slog.New(h).With(
		slog.String("module", name),
		slog.String("version", version),
	)
}

// resolveFormat honours LOG_FORMAT, otherwise picks text for terminals and
// JSON for everything else.
func resolveFormat(f *os.File) string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvLogFormat))) {
	case formatJSON:
		return formatJSON
	case formatText:
		return formatText
	}
	if f != nil && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return formatText
	}
	return formatJSON
}

// ParseLogLevel converts a case-insensitive level name into a slog.Level.
// Unknown or empty values map to INFO.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
