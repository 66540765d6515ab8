// Package history keeps a SQLite record of analysis runs and the per-file
// statistics each run produced, so results can be compared across runs.
package history
