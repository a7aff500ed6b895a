// Package cli implements the command-line interface for verorg, the
// version based file organizer.
//
// # Overview
//
// verorg scans a directory, detects the version embedded in each file
// name and moves files into v<group> folders, where the group is derived
// from the compatibility mode. Collisions are resolved with a numeric
// suffix so nothing is ever overwritten.
//
// # Commands
//
// organize - Scan and relocate:
//
//	verorg organize [--dry-run] [--mode major] [--base-folder organized] DIR
//
// scan - Classify only:
//
//	verorg scan [--mode minor] [--skip .git] DIR
//
// extract - Inspect the extraction chain:
//
//	verorg extract NAME...
//
// compat - Compare two versions:
//
//	verorg compat [--mode patch] V1 V2
//
// # Global Flags
//
//	--config, -c   Config file (default: ./verorg.yaml if present)
//	--log-level    debug, info, warn, error (default: info)
//
// # Output Formats
//
// text (default) and table are meant for terminals; json and yaml emit a
// structured summary including the run id and per-group samples.
//
// # Exit Codes
//
//	0  run completed, even if individual files failed
//	1  invalid arguments, invalid config, missing source or locked base folder
//	2  interrupted by SIGINT or SIGTERM
//
// # Environment Variables
//
// Every engine flag can be set through a VERORG_* variable, for example
// VERORG_MODE=minor or VERORG_DRY_RUN=true. LOG_LEVEL and LOG_FORMAT
// configure logging.
package cli
