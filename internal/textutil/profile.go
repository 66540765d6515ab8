package textutil

import (
	"corpusstat/internal/morph"
)

// Analyzer resolves a word to its parses, best first. *morph.Analyzer
// satisfies it.
type Analyzer interface {
	Parse(word string) []morph.Parse
}

// Profile holds one text's tokens together with the best parse of each.
type Profile struct {
	Tokens []string
	Lemmas []string
	Tags   []morph.Tag
}

// NewProfile tokenizes text and parses every token once.
func NewProfile(a Analyzer, text string) *Profile {
	tokens := Tokenize(text)
	p := &Profile{
		Tokens: tokens,
		Lemmas: make([]string, len(tokens)),
		Tags:   make([]morph.Tag, len(tokens)),
	}
	cache := make(map[string]morph.Parse)
	for i, tok := range tokens {
		best, ok := cache[tok]
		if !ok {
			best = bestParse(a, tok)
			cache[tok] = best
		}
		p.Lemmas[i] = best.NormalForm
		p.Tags[i] = best.Tag
	}
	return p
}

func bestParse(a Analyzer, word string) morph.Parse {
	parses := a.Parse(word)
	if len(parses) == 0 {
		return morph.Parse{Word: word, NormalForm: word, Method: morph.MethodUnknown}
	}
	return parses[0]
}

// WordCount returns the number of tokens.
func (p *Profile) WordCount() int { return len(p.Tokens) }

// UniqueLemmas returns the number of distinct lemmas.
func (p *Profile) UniqueLemmas() int { return countDistinct(p.Lemmas) }

// TTR returns distinct tokens over token count.
func (p *Profile) TTR() float64 { return typeTokenRatio(p.Tokens) }

// LexicalDensity returns distinct lemmas over lemma count.
func (p *Profile) LexicalDensity() float64 { return typeTokenRatio(p.Lemmas) }

// LongestWord returns the longest token, first one on a tie.
func (p *Profile) LongestWord() string { return longest(p.Tokens) }

// POS counts tokens per part of speech. Tokens without a known part of
// speech are left out.
func (p *Profile) POS() *Counter {
	c := &Counter{}
	for _, tag := range p.Tags {
		if tag.POS != "" {
			c.Add(string(tag.POS))
		}
	}
	return c
}

// Verbs returns the lemmas of finite verb tokens in text order.
func (p *Profile) Verbs() []string {
	var verbs []string
	for i, tag := range p.Tags {
		if tag.POS == morph.Verb {
			verbs = append(verbs, p.Lemmas[i])
		}
	}
	return verbs
}

// LemmaSet returns the distinct lemmas of the text.
func (p *Profile) LemmaSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.Lemmas))
	for _, l := range p.Lemmas {
		set[l] = struct{}{}
	}
	return set
}

// Contains reports, for each target, whether it occurs among the lemmas:
// 1 if it does, 0 otherwise.
func (p *Profile) Contains(targets []string) map[string]int {
	set := p.LemmaSet()
	out := make(map[string]int, len(targets))
	for _, t := range targets {
		if _, ok := set[t]; ok {
			out[t] = 1
		} else {
			out[t] = 0
		}
	}
	return out
}

// Lemmatize returns the normal form of every token in text.
func Lemmatize(a Analyzer, text string) []string {
	return NewProfile(a, text).Lemmas
}

// CountUniqueLemmas returns the number of distinct lemmas in text.
func CountUniqueLemmas(a Analyzer, text string) int {
	return NewProfile(a, text).UniqueLemmas()
}

// LexicalDensity returns distinct lemmas over lemma count, 0 for a text
// without words.
func LexicalDensity(a Analyzer, text string) float64 {
	return NewProfile(a, text).LexicalDensity()
}

// POSStatistics counts the tokens of text per part of speech in first-seen
// order.
func POSStatistics(a Analyzer, text string) *Counter {
	return NewProfile(a, text).POS()
}

// MostCommonLemmas returns the n most frequent lemmas of text.
func MostCommonLemmas(a Analyzer, text string, n int) []Count {
	return NewCounter(Lemmatize(a, text)...).MostCommon(n)
}

// Verbs returns the lemmas of the finite verbs of text in text order.
func Verbs(a Analyzer, text string) []string {
	return NewProfile(a, text).Verbs()
}

// CountSpecificLemmasUnique marks each target lemma with 1 when text
// contains it at least once and 0 otherwise.
func CountSpecificLemmasUnique(a Analyzer, text string, targets []string) map[string]int {
	return NewProfile(a, text).Contains(targets)
}
