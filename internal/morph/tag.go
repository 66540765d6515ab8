package morph

import (
	"strings"
	"unicode"
)

// POS is a part-of-speech tag. The zero value means unknown.
type POS string

const (
	Noun         POS = "NOUN"
	AdjFull      POS = "ADJF"
	AdjShort     POS = "ADJS"
	Comparative  POS = "COMP"
	Verb         POS = "VERB"
	Infinitive   POS = "INFN"
	PartFull     POS = "PRTF"
	PartShort    POS = "PRTS"
	Gerund       POS = "GRND"
	Numeral      POS = "NUMR"
	Adverb       POS = "ADVB"
	Pronoun      POS = "NPRO"
	Predicative  POS = "PRED"
	Preposition  POS = "PREP"
	Conjunction  POS = "CONJ"
	Particle     POS = "PRCL"
	Interjection POS = "INTJ"
)

var knownPOS = map[POS]struct{}{
	Noun: {}, AdjFull: {}, AdjShort: {}, Comparative: {}, Verb: {},
	Infinitive: {}, PartFull: {}, PartShort: {}, Gerund: {}, Numeral: {},
	Adverb: {}, Pronoun: {}, Predicative: {}, Preposition: {},
	Conjunction: {}, Particle: {}, Interjection: {},
}

// Valid reports whether p is one of the known part-of-speech tags.
func (p POS) Valid() bool {
	_, ok := knownPOS[p]
	return ok
}

// Open reports whether p is an open word class, i.e. one that new words
// join and that the suffix predictor may assign.
func (p POS) Open() bool {
	switch p {
	case Noun, AdjFull, AdjShort, Comparative, Verb, Infinitive, Gerund, Adverb:
		return true
	}
	return false
}

// Tag is the grammatical description of one parse.
type Tag struct {
	POS       POS
	Grammemes []string
}

// String renders the tag OpenCorpora style: "NOUN,nomn,sing". Unknown
// words render as "UNKN".
func (t Tag) String() string {
	head := string(t.POS)
	if head == "" {
		head = "UNKN"
	}
	if len(t.Grammemes) == 0 {
		return head
	}
	return head + "," + strings.Join(t.Grammemes, ",")
}

// Has reports whether the tag carries grammeme g.
func (t Tag) Has(g string) bool {
	for _, v := range t.Grammemes {
		if v == g {
			return true
		}
	}
	return false
}

// parseTag reads a comma separated grammeme list. An all-uppercase first
// item is taken as the part of speech, otherwise def applies.
func parseTag(raw string, def POS) (Tag, error) {
	raw = strings.TrimSpace(raw)
	tag := Tag{POS: def}
	if raw == "" || raw == "-" {
		return tag, nil
	}
	items := strings.Split(raw, ",")
	if isUpper(items[0]) {
		p := POS(items[0])
		if !p.Valid() {
			return Tag{}, &unknownPOSError{pos: items[0]}
		}
		tag.POS = p
		items = items[1:]
	}
	for _, g := range items {
		g = strings.TrimSpace(g)
		if g != "" {
			tag.Grammemes = append(tag.Grammemes, g)
		}
	}
	return tag, nil
}

func isUpper(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

type unknownPOSError struct {
	pos string
}

func (e *unknownPOSError) Error() string {
	return "unknown part of speech " + e.pos
}
