package history

import (
	"time"

	"corpusstat/internal/corpus"
	"corpusstat/internal/textutil"
)

// Run is one recorded analysis run.
type Run struct {
	ID         string    `json:"id" yaml:"id"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at" yaml:"finished_at"`
	CorpusDir  string    `json:"corpus_dir" yaml:"corpus_dir"`
	Texts      int       `json:"texts" yaml:"texts"`
	Failed     int       `json:"failed" yaml:"failed"`
	Words      int       `json:"words" yaml:"words"`
	Bytes      int64     `json:"bytes" yaml:"bytes"`
	AvgTTR     float64   `json:"avg_ttr" yaml:"avg_ttr"`
}

// Duration returns how long the run took.
func (r Run) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Document is the stored statistics row of one file in a run. Metric
// fields are zero and Error is set for files that could not be read.
type Document struct {
	Filename       string  `json:"filename" yaml:"filename"`
	Words          int     `json:"words" yaml:"words"`
	UniqueLemmas   int     `json:"unique_lemmas" yaml:"unique_lemmas"`
	TTR            float64 `json:"ttr" yaml:"ttr"`
	LexicalDensity float64 `json:"lexical_density" yaml:"lexical_density"`
	LongestWord    string  `json:"longest_word" yaml:"longest_word"`
	Lines          int     `json:"lines" yaml:"lines"`
	Error          string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the file could not be analysed.
func (d Document) Failed() bool { return d.Error != "" }

// RunFromResult summarizes a runner result. AvgTTR is the mean of the
// per-text ratios rounded to four places, as the report prints it.
func RunFromResult(res *corpus.Result) Run {
	run := Run{
		ID:         res.RunID,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
		CorpusDir:  res.CorpusDir,
		Texts:      res.Stats.Analyzed,
		Failed:     res.Stats.Failed,
		Bytes:      res.Stats.Bytes,
	}
	var ttr float64
	for _, d := range res.Documents {
		if d.OK() {
			run.Words += d.WordsCount
			ttr += d.TTR
		}
	}
	if run.Texts > 0 {
		run.AvgTTR = textutil.Round(ttr/float64(run.Texts), 4)
	}
	return run
}

// DocumentsFromResult converts runner documents into stored rows.
func DocumentsFromResult(docs []corpus.Document) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if !d.OK() {
			out = append(out, Document{Filename: d.Filename, Error: d.Err.Error()})
			continue
		}
		out = append(out, Document{
			Filename:       d.Filename,
			Words:          d.WordsCount,
			UniqueLemmas:   d.UniqueLemmas,
			TTR:            d.TTR,
			LexicalDensity: d.LexicalDensity,
			LongestWord:    d.LongestWord,
			Lines:          d.LinesCount,
		})
	}
	return out
}
