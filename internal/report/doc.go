// Package report turns analysed documents into the statistics table, the
// text report, and the console summary printed after a run.
package report
