package report

import "corpusstat/internal/config"

const (
	defaultTopLemmas = 10
	defaultTopVerbs  = 5
)

// Options controls the corpus-wide sections of the report.
type Options struct {
	// Characters are reported in order, one line each.
	Characters []config.CharacterGroup
	// Colors are the histogram rows, in order.
	Colors []config.ColorGroup
	// Stopword filters lemmas out of the corpus top list.
	Stopword  func(lemma string) bool
	TopLemmas int
	TopVerbs  int
}

// OptionsFromConfig builds Options from the [characters], [colors] and
// [analysis] settings.
func OptionsFromConfig(cfg *config.Config, stopword func(string) bool) Options {
	return Options{
		Characters: cfg.Characters,
		Colors:     cfg.Colors,
		Stopword:   stopword,
		TopLemmas:  cfg.Analysis.TopLemmas,
		TopVerbs:   cfg.Analysis.TopVerbs,
	}
}

func (o Options) topLemmas() int {
	if o.TopLemmas > 0 {
		return o.TopLemmas
	}
	return defaultTopLemmas
}

func (o Options) topVerbs() int {
	if o.TopVerbs > 0 {
		return o.TopVerbs
	}
	return defaultTopVerbs
}

func (o Options) isStopword(lemma string) bool {
	return o.Stopword != nil && o.Stopword(lemma)
}
