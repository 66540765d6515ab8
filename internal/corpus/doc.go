// Package corpus runs the per-file analysis pipeline over a directory of
// texts and joins the results with the metadata table.
//
// AnalyzeText computes every per-text metric from a single tokenization
// pass. Runner walks the corpus directory, analyses files on a bounded
// worker pool, and returns documents in file order together with run
// statistics. Read failures never abort a run; they travel in
// Document.Err and surface in the report.
package corpus
