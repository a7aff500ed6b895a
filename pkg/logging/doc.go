// Package logging provides structured logging utilities for the organizer.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// so that every command logs the same way. It supports environment-based log
// level configuration, module/version context injection, and automatic
// source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr, text when stderr is a terminal
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Environment-based format override (LOG_FORMAT=json|text)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-file extraction and grouping decisions, with source location
//   - INFO: moves, phase summaries (default)
//   - WARN/WARNING: recoverable per-file failures
//   - ERROR: fatal preconditions
//
// # Usage
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("verorg", version, "debug")
//	    slog.Info("scan started", "root", root)
//	}
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "file organized",
//	    "module": "verorg",
//	    "version": "v1.0.0",
//	    "src": "/data/src/app-v1.0.0.bin",
//	    "dst": "/data/out/v1/app-v1.0.0.bin"
//	}
package logging
