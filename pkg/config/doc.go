// Package config loads the organizer configuration and validates it into
// typed engine options.
//
// A configuration file looks like:
//
//	version:
//	  filename_patterns:
//	    - 'release-(\d+\.\d+)'
//	  compatibility:
//	    mode: major
//	organization:
//	  base_folder: organized
//	  group_by_exact_version: false
//	scan:
//	  skip_patterns: [".git", "node_modules"]
//
// YAML, JSON and TOML are accepted; the decoder is picked from the file
// extension. Unknown keys are rejected.
package config
