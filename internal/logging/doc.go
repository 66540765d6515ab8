// Package logging assembles the slog loggers used across corpusstat.
//
// It owns the console and JSON handlers, level parsing, and output routing.
// A run can mirror every record into a JSON log file next to the
// human-readable stream on stderr. Context helpers tag records with the
// run ID and the document being analysed, and NewNop serves tests and
// wiring code that has no logger to hand.
package logging
