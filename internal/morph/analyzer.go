package morph

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"
)

// Method records which resolution step produced a parse.
type Method string

const (
	MethodIrregular  Method = "irregular"
	MethodDictionary Method = "dictionary"
	MethodSuffix     Method = "suffix"
	MethodUnknown    Method = "unknown"
)

// Parse is one possible analysis of a word form.
type Parse struct {
	Word       string
	NormalForm string
	Tag        Tag
	Score      float64
	Method     Method
}

// Analyzer resolves Russian word forms to lemmas and tags. It is immutable
// once New returns and safe for concurrent use.
type Analyzer struct {
	paradigms map[string]*paradigm
	lemmas    []*lemma
	stems     map[string][]stemRef
	endings   map[string][]*ending
	maxEnding int
	irregular map[string][]irregularForm
	stopwords map[string]struct{}
	stopList  []string
	predictor *predictor
}

// Option configures New.
type Option func(*options)

type options struct {
	fsys   fs.FS
	logger *slog.Logger
}

// WithDataDir loads dictionary files from dir instead of the embedded set.
func WithDataDir(dir string) Option {
	return func(o *options) {
		if strings.TrimSpace(dir) != "" {
			o.fsys = os.DirFS(dir)
		}
	}
}

// WithFS loads dictionary files from fsys.
func WithFS(fsys fs.FS) Option {
	return func(o *options) {
		if fsys != nil {
			o.fsys = fsys
		}
	}
}

// WithLogger sets the logger used to report dictionary statistics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New loads the dictionary and trains the suffix predictor.
func New(opts ...Option) (*Analyzer, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fsys == nil {
		sub, err := fs.Sub(embeddedData, "data")
		if err != nil {
			return nil, fmt.Errorf("embedded dictionary: %w", err)
		}
		o.fsys = sub
	}

	a := &Analyzer{
		paradigms: make(map[string]*paradigm),
		stems:     make(map[string][]stemRef),
		endings:   make(map[string][]*ending),
		irregular: make(map[string][]irregularForm),
		stopwords: make(map[string]struct{}),
	}
	if err := a.loadParadigms(o.fsys); err != nil {
		return nil, err
	}
	if err := a.loadLexicon(o.fsys); err != nil {
		return nil, err
	}
	if err := a.loadIrregular(o.fsys); err != nil {
		return nil, err
	}
	if err := a.loadStopwords(o.fsys); err != nil {
		return nil, err
	}
	a.indexEndings()
	a.predictor = trainPredictor(a.lemmas)

	if o.logger != nil {
		o.logger.Debug("morphology dictionary loaded",
			slog.Int("paradigms", len(a.paradigms)),
			slog.Int("lemmas", len(a.lemmas)),
			slog.Int("irregular_forms", len(a.irregular)),
			slog.Int("stopwords", len(a.stopList)),
			slog.Int("suffixes", a.predictor.size()),
		)
	}
	return a, nil
}

// Parse returns every analysis of word, best first: irregular forms, then
// dictionary parses by lexicon frequency, then predicted parses. A word
// nothing recognizes yields one parse with an unknown tag and the word as
// its own normal form. The empty word has no parses.
func (a *Analyzer) Parse(word string) []Parse {
	if word == "" {
		return nil
	}
	key := foldKey(word)

	var out []Parse
	seen := make(map[string]struct{})
	add := func(p Parse) {
		id := p.NormalForm + " " + p.Tag.String()
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		out = append(out, p)
	}

	for _, p := range a.irregularParses(word, key) {
		add(p)
	}
	for _, p := range a.dictionaryParses(word, key) {
		add(p)
	}
	if len(out) == 0 {
		for _, p := range a.predictor.predict(word, key) {
			add(p)
		}
	}
	if len(out) == 0 {
		return []Parse{{Word: word, NormalForm: word, Score: 1, Method: MethodUnknown}}
	}
	return out
}

// NormalForm returns the lemma of the best parse.
func (a *Analyzer) NormalForm(word string) string {
	parses := a.Parse(word)
	if len(parses) == 0 {
		return word
	}
	return parses[0].NormalForm
}

// Tag returns the tag of the best parse.
func (a *Analyzer) Tag(word string) Tag {
	parses := a.Parse(word)
	if len(parses) == 0 {
		return Tag{}
	}
	return parses[0].Tag
}

// IsStopword reports whether lemma is on the stopword list.
func (a *Analyzer) IsStopword(lemma string) bool {
	_, ok := a.stopwords[foldKey(lemma)]
	return ok
}

// Stopwords returns the stopword list in file order.
func (a *Analyzer) Stopwords() []string {
	return slices.Clone(a.stopList)
}

func (a *Analyzer) irregularParses(word, key string) []Parse {
	forms := a.irregular[key]
	if len(forms) == 0 {
		return nil
	}
	total := 0
	for _, f := range forms {
		total += f.freq
	}
	out := make([]Parse, 0, len(forms))
	for _, f := range forms {
		out = append(out, Parse{
			Word:       word,
			NormalForm: f.lemma,
			Tag:        f.tag,
			Score:      share(f.freq, total),
			Method:     MethodIrregular,
		})
	}
	return out
}

type dictMatch struct {
	lemma  *lemma
	ending *ending
}

func (a *Analyzer) dictionaryParses(word, key string) []Parse {
	runes := []rune(key)
	start := max(len(runes)-a.maxEnding, 1)

	var matches []dictMatch
	for i := start; i <= len(runes); i++ {
		stem := string(runes[:i])
		refs := a.stems[stem]
		if len(refs) == 0 {
			continue
		}
		candidates := a.endings[string(runes[i:])]
		for _, ref := range refs {
			for _, e := range candidates {
				if e.paradigm == ref.lemma.paradigm && e.radical == ref.radical {
					matches = append(matches, dictMatch{lemma: ref.lemma, ending: e})
				}
			}
		}
	}
	if len(matches) == 0 {
		return nil
	}

	slices.SortStableFunc(matches, func(x, y dictMatch) int {
		if x.lemma.freq != y.lemma.freq {
			return y.lemma.freq - x.lemma.freq
		}
		if x.lemma.order != y.lemma.order {
			return x.lemma.order - y.lemma.order
		}
		return x.ending.index - y.ending.index
	})

	weights := make(map[*lemma]struct{})
	total := 0
	for _, m := range matches {
		if _, ok := weights[m.lemma]; !ok {
			weights[m.lemma] = struct{}{}
			total += m.lemma.freq
		}
	}
	perLemma := make(map[*lemma]int)
	for _, m := range matches {
		perLemma[m.lemma]++
	}

	out := make([]Parse, 0, len(matches))
	for _, m := range matches {
		out = append(out, Parse{
			Word:       word,
			NormalForm: m.lemma.word,
			Tag:        m.ending.tag,
			Score:      share(m.lemma.freq, total) / float64(perLemma[m.lemma]),
			Method:     MethodDictionary,
		})
	}
	return out
}

func share(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total)
}
