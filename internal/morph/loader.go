package morph

import (
	"bufio"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"unicode/utf8"
)

// paradigm is one inflection class: radical rules plus the endings hung
// on each radical.
type paradigm struct {
	name    string
	pos     POS
	rules   map[int]string
	endings []*ending
}

type ending struct {
	text     string
	radical  int
	index    int
	tag      Tag
	paradigm *paradigm
}

// lemma is one lexicon entry with its radicals resolved.
type lemma struct {
	word     string
	paradigm *paradigm
	freq     int
	order    int
	radicals map[int][]string
}

type stemRef struct {
	lemma   *lemma
	radical int
}

type irregularForm struct {
	lemma string
	tag   Tag
	freq  int
}

// scanLines feeds every meaningful line of name to fn. Blank lines and
// lines starting with "!" are skipped.
func scanLines(fsys fs.FS, name string, fn func(lineNo int, line string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		if err := fn(lineNo, line); err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}

// loadParadigms reads the paradigm blocks. A block starts at "paradigm:"
// and runs to the next one; parents must be declared before children.
func (a *Analyzer) loadParadigms(fsys fs.FS) error {
	var (
		cur    *paradigm
		parent *paradigm
		sufd   []string
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if parent != nil {
			inherited := make([]*ending, 0, len(parent.endings))
			for _, e := range parent.endings {
				text := e.text
				if len(sufd) > 0 {
					suffix := sufd[0]
					if len(sufd) > 1 && endsWithVowel(text) {
						suffix = sufd[1]
					}
					text += suffix
				}
				inherited = append(inherited, &ending{text: text, radical: e.radical, tag: e.tag, paradigm: cur})
			}
			cur.endings = append(inherited, cur.endings...)
		}
		for i, e := range cur.endings {
			e.index = i
		}
		if len(cur.rules) == 0 {
			return fmt.Errorf("paradigm %s has no radical rules", cur.name)
		}
		a.paradigms[cur.name] = cur
		cur, parent, sufd = nil, nil, nil
		return nil
	}

	err := scanLines(fsys, paradigmsFile, func(_ int, line string) error {
		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("malformed line %q", line)
		}
		if key == "paradigm" {
			if err := flush(); err != nil {
				return err
			}
			if _, dup := a.paradigms[rest]; dup {
				return fmt.Errorf("duplicate paradigm %s", rest)
			}
			cur = &paradigm{name: rest, rules: make(map[int]string)}
			return nil
		}
		if cur == nil {
			return fmt.Errorf("%s outside a paradigm block", key)
		}
		switch key {
		case "pos":
			p := POS(rest)
			if !p.Valid() {
				return &unknownPOSError{pos: rest}
			}
			cur.pos = p
		case "parent":
			p, ok := a.paradigms[rest]
			if !ok {
				return fmt.Errorf("paradigm %s: unknown parent %s", cur.name, rest)
			}
			parent = p
		case "sufd":
			sufd = strings.Split(rest, ",")
		case "R":
			n, rule, ok := strings.Cut(rest, ":")
			if !ok {
				return fmt.Errorf("malformed radical rule %q", line)
			}
			num, err := strconv.Atoi(n)
			if err != nil {
				return fmt.Errorf("radical number %q: %w", n, err)
			}
			cur.rules[num] = rule
		case "des":
			fields := strings.SplitN(rest, ":", 3)
			if len(fields) != 3 {
				return fmt.Errorf("malformed ending line %q", line)
			}
			num, err := strconv.Atoi(fields[0])
			if err != nil {
				return fmt.Errorf("radical number %q: %w", fields[0], err)
			}
			tag, err := parseTag(fields[2], cur.pos)
			if err != nil {
				return err
			}
			for _, text := range strings.Split(fields[1], ",") {
				if text == "-" {
					text = ""
				}
				cur.endings = append(cur.endings, &ending{
					text:     foldKey(text),
					radical:  num,
					tag:      tag,
					paradigm: cur,
				})
			}
		default:
			return fmt.Errorf("unknown directive %q", key)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return flush()
}

// applyRule derives a radical from a lemma: "K" keeps it, "n" drops n
// runes, "n,add" drops n runes and appends add.
func applyRule(word, rule string) (string, error) {
	if rule == "K" {
		return word, nil
	}
	n, add, _ := strings.Cut(rule, ",")
	drop, err := strconv.Atoi(n)
	if err != nil {
		return "", fmt.Errorf("radical rule %q: %w", rule, err)
	}
	runes := []rune(word)
	if drop > len(runes) {
		return "", fmt.Errorf("radical rule %q drops more than %q has", rule, word)
	}
	return string(runes[:len(runes)-drop]) + add, nil
}

func (a *Analyzer) loadLexicon(fsys fs.FS) error {
	return scanLines(fsys, lexiconFile, func(_ int, line string) error {
		fields := strings.Split(line, "|")
		if len(fields) < 3 {
			return fmt.Errorf("malformed lexicon entry %q", line)
		}
		p, ok := a.paradigms[fields[1]]
		if !ok {
			return fmt.Errorf("%s: unknown paradigm %s", fields[0], fields[1])
		}
		freq, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf("%s: frequency %q: %w", fields[0], fields[2], err)
		}
		lem := &lemma{
			word:     fields[0],
			paradigm: p,
			freq:     freq,
			order:    len(a.lemmas),
			radicals: make(map[int][]string, len(p.rules)),
		}
		key := foldKey(lem.word)
		for num, rule := range p.rules {
			stem, err := applyRule(key, rule)
			if err != nil {
				return fmt.Errorf("%s: %w", lem.word, err)
			}
			lem.radicals[num] = []string{stem}
		}
		for _, extra := range fields[3:] {
			n, stems, ok := strings.Cut(extra, "=")
			if !ok {
				return fmt.Errorf("%s: malformed radical %q", lem.word, extra)
			}
			num, err := strconv.Atoi(n)
			if err != nil {
				return fmt.Errorf("%s: radical number %q: %w", lem.word, n, err)
			}
			var list []string
			for _, s := range strings.Split(stems, ",") {
				list = append(list, foldKey(s))
			}
			lem.radicals[num] = list
		}
		a.lemmas = append(a.lemmas, lem)
		for num, stems := range lem.radicals {
			for _, s := range stems {
				if s == "" {
					continue
				}
				a.stems[s] = append(a.stems[s], stemRef{lemma: lem, radical: num})
			}
		}
		return nil
	})
}

func (a *Analyzer) loadIrregular(fsys fs.FS) error {
	return scanLines(fsys, irregularFile, func(_ int, line string) error {
		fields := strings.Split(line, ":")
		if len(fields) < 3 || len(fields) > 4 {
			return fmt.Errorf("malformed irregular form %q", line)
		}
		tag, err := parseTag(fields[2], "")
		if err != nil {
			return err
		}
		if tag.POS == "" {
			return fmt.Errorf("irregular form %s has no part of speech", fields[0])
		}
		form := irregularForm{lemma: fields[1], tag: tag, freq: 100}
		if len(fields) == 4 {
			if form.freq, err = strconv.Atoi(fields[3]); err != nil {
				return fmt.Errorf("%s: frequency %q: %w", fields[0], fields[3], err)
			}
		}
		key := foldKey(fields[0])
		a.irregular[key] = append(a.irregular[key], form)
		return nil
	})
}

func (a *Analyzer) loadStopwords(fsys fs.FS) error {
	return scanLines(fsys, stopwordsFile, func(_ int, line string) error {
		key := foldKey(line)
		if _, dup := a.stopwords[key]; dup {
			return nil
		}
		a.stopwords[key] = struct{}{}
		a.stopList = append(a.stopList, line)
		return nil
	})
}

// indexEndings builds the ending lookup table once all paradigms are read.
func (a *Analyzer) indexEndings() {
	for _, p := range a.paradigms {
		for _, e := range p.endings {
			a.endings[e.text] = append(a.endings[e.text], e)
			if n := utf8.RuneCountInString(e.text); n > a.maxEnding {
				a.maxEnding = n
			}
		}
	}
}
