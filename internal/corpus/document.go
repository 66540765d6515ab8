package corpus

import (
	"errors"
	"fmt"
	"path/filepath"

	"corpusstat/internal/fileutil"
	"corpusstat/internal/textutil"
)

// DefaultTopLemmas is the number of most frequent non-stopword lemmas kept
// per document.
const DefaultTopLemmas = 10

// Analyzer parses words and recognizes stopword lemmas. *morph.Analyzer
// satisfies it.
type Analyzer interface {
	textutil.Analyzer
	IsStopword(lemma string) bool
}

// Document is the analysis of one corpus file. A document whose Err is set
// carries only its Filename.
type Document struct {
	Filename       string
	Text           string
	WordsCount     int
	Lemmas         []string
	UniqueLemmas   int
	TTR            float64
	LexicalDensity float64
	LongestWord    string
	LinesCount     int
	POS            *textutil.Counter
	TopLemmas      []textutil.Count
	Verbs          []string
	Bytes          int64
	Err            error
}

// OK reports whether the document was analysed.
func (d Document) OK() bool { return d.Err == nil }

// HasAny reports whether any of lemmas occurs in the document.
func (d Document) HasAny(lemmas []string) bool {
	if len(lemmas) == 0 || len(d.Lemmas) == 0 {
		return false
	}
	want := make(map[string]struct{}, len(lemmas))
	for _, l := range lemmas {
		want[l] = struct{}{}
	}
	for _, l := range d.Lemmas {
		if _, ok := want[l]; ok {
			return true
		}
	}
	return false
}

// ReadError explains why a corpus file could not be analysed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	switch {
	case errors.Is(e.Err, fileutil.ErrNotFound):
		return fmt.Sprintf("Файл %s не найден", e.Path)
	case errors.Is(e.Err, fileutil.ErrEncoding):
		return "Неверная кодировка файла"
	default:
		return fmt.Sprintf("Не удалось прочитать файл %s: %v", e.Path, e.Err)
	}
}

func (e *ReadError) Unwrap() error { return e.Err }

// AnalyzeText computes every metric of text.
func AnalyzeText(a Analyzer, filename, text string) Document {
	return analyzeText(a, filename, text, DefaultTopLemmas)
}

func analyzeText(a Analyzer, filename, text string, topLemmas int) Document {
	p := textutil.NewProfile(a, text)

	content := &textutil.Counter{}
	for _, l := range p.Lemmas {
		if !a.IsStopword(l) {
			content.Add(l)
		}
	}

	return Document{
		Filename:       filename,
		Text:           text,
		WordsCount:     p.WordCount(),
		Lemmas:         p.Lemmas,
		UniqueLemmas:   p.UniqueLemmas(),
		TTR:            textutil.Round(p.TTR(), 4),
		LexicalDensity: textutil.Round(p.LexicalDensity(), 4),
		LongestWord:    p.LongestWord(),
		LinesCount:     textutil.CountLines(text),
		POS:            p.POS(),
		TopLemmas:      content.MostCommon(topLemmas),
		Verbs:          p.Verbs(),
		Bytes:          int64(len(text)),
	}
}

// AnalyzeFile reads dir/filename and analyses it. Read failures are
// returned in Document.Err.
func AnalyzeFile(a Analyzer, dir, filename string) Document {
	return analyzeFile(a, dir, filename, DefaultTopLemmas)
}

func analyzeFile(a Analyzer, dir, filename string, topLemmas int) Document {
	path := filepath.Join(dir, filename)
	text, err := fileutil.ReadText(path)
	if err != nil {
		return Document{Filename: filename, Err: &ReadError{Path: path, Err: err}}
	}
	return analyzeText(a, filename, text, topLemmas)
}
