package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"corpusstat/internal/corpus"
	"corpusstat/internal/textutil"
)

// Summary renders the console table printed after a run: one row per
// document and a totals footer, followed by the pair of texts whose
// vocabularies are closest. Colour is only applied when colorize is set.
func Summary(docs []corpus.Document, meta corpus.Metadata, opts Options, colorize bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if !colorize {
		tw.Style().Color = table.ColorOptions{}
	} else {
		tw.Style().Color.Header = text.Colors{text.Bold}
	}
	tw.AppendHeader(table.Row{"Text", "Words", "Lemmas", "TTR", "Density"})

	words, analysed := 0, 0
	for _, d := range docs {
		title := meta.Title(d.Filename, d.Filename)
		if !d.OK() {
			status := "failed"
			if colorize {
				status = text.FgRed.Sprint(status)
			}
			tw.AppendRow(table.Row{title, status, "", "", ""})
			continue
		}
		analysed++
		words += d.WordsCount
		tw.AppendRow(table.Row{
			title,
			strconv.Itoa(d.WordsCount),
			strconv.Itoa(d.UniqueLemmas),
			ratio(d.TTR, d.WordsCount),
			ratio(d.LexicalDensity, d.WordsCount),
		})
	}
	tw.AppendFooter(table.Row{fmt.Sprintf("%d/%d texts", analysed, len(docs)), strconv.Itoa(words), "", "", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	var b strings.Builder
	b.WriteString(tw.Render())
	b.WriteByte('\n')

	if pair, ok := ClosestPair(docs, opts.Stopword); ok {
		line := fmt.Sprintf("Closest texts: %s / %s (cosine %.3f)",
			meta.Title(pair.A, pair.A), meta.Title(pair.B, pair.B), pair.Similarity)
		if colorize {
			line = text.FgCyan.Sprint(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Pair names two documents and the similarity of their vocabularies.
type Pair struct {
	A, B       string
	Similarity float64
}

// ClosestPair compares the tf-idf weighted lemma vectors of every pair of
// analysed documents and returns the most similar one. Stopword lemmas are
// left out. It reports false when fewer than two documents have content.
func ClosestPair(docs []corpus.Document, stopword func(string) bool) (Pair, bool) {
	type entry struct {
		name string
		fp   *textutil.Fingerprint
	}
	var entries []entry
	df := textutil.NewDocumentFrequency()
	for _, d := range docs {
		if !d.OK() {
			continue
		}
		fp := textutil.NewFingerprint(d.Lemmas, stopword)
		if fp == nil {
			continue
		}
		df.Add(fp)
		entries = append(entries, entry{name: d.Filename, fp: fp})
	}
	if len(entries) < 2 {
		return Pair{}, false
	}

	idf := df.IDF()
	for i := range entries {
		entries[i].fp = entries[i].fp.WithIDF(idf)
	}

	best := Pair{Similarity: -1}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			sim := textutil.CosineSimilarity(entries[i].fp, entries[j].fp)
			if sim > best.Similarity {
				best = Pair{A: entries[i].name, B: entries[j].name, Similarity: sim}
			}
		}
	}
	return best, true
}
