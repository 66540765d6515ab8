// Package textutil derives per-text measurements from Russian prose.
//
// Text is split into lowercase letter-only tokens, each token is resolved to
// its best morphological parse, and the metrics (word count, type-token
// ratio, lexical density, part-of-speech histogram, verb list, keyword
// presence) are computed over those tokens. Profile does the tokenizing and
// parsing once so several metrics can share it; the package-level helpers
// build a throwaway Profile per call.
//
// Counter is an insertion-ordered frequency table. Its MostCommon keeps
// first-seen order among equal counts, which keeps report output stable.
//
// Fingerprint turns a lemma list into a term-frequency vector so texts can
// be compared by cosine similarity.
package textutil
