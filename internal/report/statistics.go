package report

import (
	"strconv"

	"corpusstat/internal/corpus"
	"corpusstat/internal/textutil"
)

// StatisticsHeaders are the columns of the per-file statistics table.
var StatisticsHeaders = []string{
	"filename", "author", "year", "title",
	"words_count", "unique_lemmas", "ttr", "lexical_density", "longest_word", "lines_count",
}

// StatisticsTable returns one row per document. Metadata columns are blank
// for files without metadata; metric columns are blank for failed files.
func StatisticsTable(docs []corpus.Document, meta corpus.Metadata) ([]string, [][]string) {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		row := []string{
			d.Filename,
			meta.Author(d.Filename, ""),
			meta.Year(d.Filename, ""),
			meta.Title(d.Filename, ""),
		}
		if d.OK() {
			row = append(row,
				strconv.Itoa(d.WordsCount),
				strconv.Itoa(d.UniqueLemmas),
				ratio(d.TTR, d.WordsCount),
				ratio(d.LexicalDensity, d.WordsCount),
				d.LongestWord,
				strconv.Itoa(d.LinesCount),
			)
		} else {
			row = append(row, "", "", "", "", "", "")
		}
		rows = append(rows, row)
	}
	return append([]string(nil), StatisticsHeaders...), rows
}

// ratio prints a per-text ratio. A text without words has the integer
// ratio 0.
func ratio(v float64, words int) string {
	if words == 0 {
		return "0"
	}
	return textutil.FormatFloat(v)
}
