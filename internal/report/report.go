package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"corpusstat/internal/corpus"
	"corpusstat/internal/textutil"
)

const (
	histogramWidth = 40
	unknownField   = "?"
)

// Generate renders the text report. Lines are joined with "\n" and the
// report has no trailing newline.
func Generate(docs []corpus.Document, meta corpus.Metadata, opts Options) string {
	valid := make([]corpus.Document, 0, len(docs))
	for _, d := range docs {
		if d.OK() {
			valid = append(valid, d)
		}
	}

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	add("%s", strings.Repeat("=", 60))
	add("ОТЧЁТ ПО АНАЛИЗУ КОРПУСА")
	add("%s\n", strings.Repeat("=", 60))

	writeOverview(add, valid)
	writeDocuments(add, docs, meta, opts)

	add("\nВЫВОДЫ И ИНТЕРПРЕТАЦИЯ:")
	writeCharacters(add, valid, opts)
	writeHighlights(add, valid, meta)
	writeColors(add, valid, opts)

	lemmas := &textutil.Counter{}
	verbs := &textutil.Counter{}
	pos := &textutil.Counter{}
	for _, d := range valid {
		for _, l := range d.Lemmas {
			if !opts.isStopword(l) {
				lemmas.Add(l)
			}
		}
		verbs.AddAll(d.Verbs)
		pos.Merge(d.POS)
	}

	add("\n%d самых частотных лемм:", opts.topLemmas())
	for _, c := range lemmas.MostCommon(opts.topLemmas()) {
		add("  %s: %d", c.Key, c.N)
	}

	words, lineCount := 0, 0
	for _, d := range valid {
		words += d.WordsCount
		lineCount += d.LinesCount
	}
	add("\nСредняя длина текста (слов): %s", average(words, len(valid), 2))
	add("Средняя длина текста (строк): %s", average(lineCount, len(valid), 2))

	add("\n%d самых употребляемых глаголов:", opts.topVerbs())
	for _, c := range verbs.MostCommon(opts.topVerbs()) {
		add("  %s: %d", c.Key, c.N)
	}

	if pos.Len() > 0 {
		top := pos.MostCommon(1)[0]
		add("\nСамая частотная часть речи: %s (%d)", top.Key, top.N)
	}

	return strings.Join(lines, "\n")
}

type lineFunc func(format string, args ...any)

func writeOverview(add lineFunc, valid []corpus.Document) {
	words := 0
	unique := make(map[string]struct{})
	var ttrSum float64
	for _, d := range valid {
		words += d.WordsCount
		ttrSum += d.TTR
		for _, l := range d.Lemmas {
			unique[l] = struct{}{}
		}
	}
	avgTTR := "0"
	if len(valid) > 0 {
		avgTTR = textutil.FormatFloat(textutil.Round(ttrSum/float64(len(valid)), 4))
	}

	add("ОБЩАЯ СТАТИСТИКА:")
	add("  Всего текстов: %d", len(valid))
	add("  Всего слов: %d", words)
	add("  Всего уникальных слов: %d", len(unique))
	add("  Средний TTR: %s\n", avgTTR)
}

func writeDocuments(add lineFunc, docs []corpus.Document, meta corpus.Metadata, opts Options) {
	add("ДЕТАЛЬНАЯ СТАТИСТИКА ПО ФАЙЛАМ:")
	add("%s", strings.Repeat("-", 50))

	for _, d := range docs {
		add("\n📄 %s", meta.Title(d.Filename, d.Filename))
		add("   Автор: %s", meta.Author(d.Filename, unknownField))
		add("   Год: %s", meta.Year(d.Filename, unknownField))
		if !d.OK() {
			add("   Ошибка: %s", d.Err.Error())
			continue
		}
		add("   Слов: %d", d.WordsCount)
		add("   Уникальных лемм: %d", d.UniqueLemmas)
		add("   TTR: %s", ratio(d.TTR, d.WordsCount))
		add("   Лексическая плотность: %s", ratio(d.LexicalDensity, d.WordsCount))
		add("   Самое длинное слово: %s", d.LongestWord)
		add("   Строк: %d", d.LinesCount)
		top := d.TopLemmas
		if len(top) > opts.topLemmas() {
			top = top[:opts.topLemmas()]
		}
		add("   Топ-%d лемм: %s", opts.topLemmas(), joinCounts(top, ":"))
		add("   Части речи: %s", joinCounts(d.POS.Items(), ":"))

		verbs := d.Verbs[:min(len(d.Verbs), opts.topVerbs())]
		add("   %d самых употребляемых глаголов: %s", opts.topVerbs(), strings.Join(verbs, ", "))
	}
}

func writeCharacters(add lineFunc, valid []corpus.Document, opts Options) {
	add("\nУпоминания персонажей (по текстам, один раз на текст):")
	for _, g := range opts.Characters {
		n := 0
		for _, d := range valid {
			if d.HasAny(g.Lemmas) {
				n++
			}
		}
		add("  %s: %d", g.Name, n)
	}
}

func writeHighlights(add lineFunc, valid []corpus.Document, meta corpus.Metadata) {
	if len(valid) > 0 {
		best := valid[0]
		for _, d := range valid[1:] {
			if d.TTR > best.TTR {
				best = d
			}
		}
		add("\nСамый лексически разнообразный текст: %s (TTR=%s)",
			meta.Title(best.Filename, best.Filename), ratio(best.TTR, best.WordsCount))

		authors := &textutil.Counter{}
		for _, d := range valid {
			authors.Add(meta.Author(d.Filename, unknownField))
		}
		top := authors.MostCommon(1)[0]
		add("Автор с наибольшим количеством текстов: %s (%d)", top.Key, top.N)
	}

	longest := ""
	for _, d := range valid {
		if utf8.RuneCountInString(d.LongestWord) > utf8.RuneCountInString(longest) {
			longest = d.LongestWord
		}
	}
	add("Самое длинное слово по корпусу: %s", longest)
}

func writeColors(add lineFunc, valid []corpus.Document, opts Options) {
	add("\nЦветограмма:")
	counts := make([]int, len(opts.Colors))
	peak := 0
	for i, c := range opts.Colors {
		for _, d := range valid {
			if d.HasAny(c.Variants) {
				counts[i]++
			}
		}
		peak = max(peak, counts[i])
	}
	for i, c := range opts.Colors {
		bar := ""
		if counts[i] > 0 {
			bar = strings.Repeat("█", histogramWidth*counts[i]/peak)
		}
		add("%-12s: %s (%d)", c.Name, bar, counts[i])
	}
}

func joinCounts(counts []textutil.Count, sep string) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = c.Key + sep + strconv.Itoa(c.N)
	}
	return strings.Join(parts, ", ")
}

// average prints total/n rounded to places, or the integer 0 when n is 0.
func average(total, n, places int) string {
	if n == 0 {
		return "0"
	}
	return textutil.FormatFloat(textutil.Round(float64(total)/float64(n), places))
}
