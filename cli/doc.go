// Package cli contains the command line interface for rxn.
//
// Two commands are provided:
//
//   - check: compile a YAML network file and exit nonzero on the first
//     fatal configuration error
//   - dump: compile a network file and render the expanded reaction table
//
// Logging flags (--log-level, --log-format) configure the shared logger.
// Profiling flags are available when built with the pprof build tag.
package cli
