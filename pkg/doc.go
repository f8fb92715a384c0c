// Package pkg provides shared utilities for the lib-xua HID function core.
//
// This package contains common functionality used across the wire, timing,
// and class-request packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for class-request validation failures
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with device-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentHID, "idle period updated", "ticks", period)
//
// # Errors
//
// Request validation errors are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrInvalidReportID) {
//	    // Stall the control transfer
//	}
package pkg
