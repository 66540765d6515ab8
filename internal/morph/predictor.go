package morph

import (
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	maxSuffixLen = 5
	minStemLen   = 2
	maxPredicted = 5
)

// transform rewrites the tail of a form into the tail of its lemma.
type transform struct {
	formEnd  string
	lemmaEnd string
	tag      Tag
	count    int
}

// predictor guesses lemmas for unknown words from the endings of known
// ones. For every suffix seen on a generated dictionary form it keeps the
// form-to-lemma rewrites observed with that suffix, most frequent first.
type predictor struct {
	bySuffix map[string][]*transform
}

func trainPredictor(lemmas []*lemma) *predictor {
	p := &predictor{bySuffix: make(map[string][]*transform)}
	index := make(map[string]*transform)

	for _, lem := range lemmas {
		lemmaKey := foldKey(lem.word)
		for _, e := range lem.paradigm.endings {
			if !e.tag.POS.Open() {
				continue
			}
			for _, stem := range lem.radicals[e.radical] {
				p.observe(index, stem+e.text, lemmaKey, e.tag)
			}
		}
	}
	for _, list := range p.bySuffix {
		slices.SortStableFunc(list, func(a, b *transform) int {
			if a.count != b.count {
				return b.count - a.count
			}
			// On equal evidence an -ая/-ый reading is an adjective.
			return adjRank(a.tag) - adjRank(b.tag)
		})
	}
	return p
}

func adjRank(tag Tag) int {
	if tag.POS == AdjFull {
		return 0
	}
	return 1
}

func (p *predictor) observe(index map[string]*transform, form, lemmaKey string, tag Tag) {
	cp := commonPrefix(form, lemmaKey)
	formEnd, lemmaEnd := form[cp:], lemmaKey[cp:]
	endLen := utf8.RuneCountInString(formEnd)

	runes := []rune(form)
	for k := 1; k <= maxSuffixLen && len(runes)-k >= minStemLen; k++ {
		if endLen > k {
			continue
		}
		suffix := string(runes[len(runes)-k:])
		id := suffix + "|" + formEnd + "|" + lemmaEnd + "|" + tag.String()
		if t, ok := index[id]; ok {
			t.count++
			continue
		}
		t := &transform{formEnd: formEnd, lemmaEnd: lemmaEnd, tag: tag, count: 1}
		index[id] = t
		p.bySuffix[suffix] = append(p.bySuffix[suffix], t)
	}
}

// predict applies the rewrites of the longest known suffix of key.
func (p *predictor) predict(word, key string) []Parse {
	runes := []rune(key)
	for k := min(maxSuffixLen, len(runes)-minStemLen); k >= 1; k-- {
		list := p.bySuffix[string(runes[len(runes)-k:])]
		if len(list) == 0 {
			continue
		}
		total := 0
		for _, t := range list {
			total += t.count
		}
		out := make([]Parse, 0, min(len(list), maxPredicted))
		for _, t := range list[:min(len(list), maxPredicted)] {
			if !strings.HasSuffix(key, t.formEnd) {
				continue
			}
			out = append(out, Parse{
				Word:       word,
				NormalForm: strings.TrimSuffix(key, t.formEnd) + t.lemmaEnd,
				Tag:        t.tag,
				Score:      share(t.count, total),
				Method:     MethodSuffix,
			})
		}
		return out
	}
	return nil
}

func (p *predictor) size() int {
	return len(p.bySuffix)
}
