// Package config loads, normalizes, and validates corpusstat configuration.
//
// It supplies defaults (the corpus layout and the keyword groups the report
// tallies), expands user paths including tilde shortcuts, reads TOML files,
// and honours the CORPUSSTAT_CORPUS_DIR and CORPUSSTAT_RESULTS_DIR
// environment overrides. Output file names are resolved against the results
// directory so callers receive ready-to-use absolute paths.
package config
