// Package errors provides structured error types for better observability
// and programmatic error handling across the organizer.
//
// Only directory-level preconditions, invalid configuration, lock contention
// and cancellation surface as errors. Per-file failures are counted in
// stats and logged instead.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeNotFound,
//	    "source directory does not exist",
//	    statErr,
//	    map[string]any{
//	        "path": root,
//	    },
//	)
//
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    os.Exit(1)
//	}
package errors
