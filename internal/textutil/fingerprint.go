package textutil

import "math"

// Fingerprint is a term-frequency vector over a text's lemmas.
type Fingerprint struct {
	terms map[string]float64
	norm  float64
}

// NewFingerprint counts terms into a vector, skipping any term for which
// skip returns true. It returns nil when no term is left.
func NewFingerprint(terms []string, skip func(string) bool) *Fingerprint {
	counts := make(map[string]float64, len(terms))
	for _, t := range terms {
		if skip != nil && skip(t) {
			continue
		}
		counts[t]++
	}
	if len(counts) == 0 {
		return nil
	}
	return newFingerprint(counts)
}

func newFingerprint(weights map[string]float64) *Fingerprint {
	var sum float64
	for _, w := range weights {
		sum += w * w
	}
	return &Fingerprint{terms: weights, norm: math.Sqrt(sum)}
}

// TermCount returns the number of distinct terms.
func (f *Fingerprint) TermCount() int {
	if f == nil {
		return 0
	}
	return len(f.terms)
}

// WithIDF returns a copy weighted by idf. Terms missing from idf keep
// their raw count; terms whose weight drops to zero are removed.
func (f *Fingerprint) WithIDF(idf map[string]float64) *Fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	weighted := make(map[string]float64, len(f.terms))
	for term, count := range f.terms {
		w := count
		if v, ok := idf[term]; ok {
			w *= v
		}
		if w != 0 {
			weighted[term] = w
		}
	}
	if len(weighted) == 0 {
		return nil
	}
	return newFingerprint(weighted)
}

// DocumentFrequency collects how many fingerprints contain each term.
type DocumentFrequency struct {
	docs int
	df   map[string]int
}

// NewDocumentFrequency returns an empty table.
func NewDocumentFrequency() *DocumentFrequency {
	return &DocumentFrequency{df: make(map[string]int)}
}

// Add registers the distinct terms of fp.
func (d *DocumentFrequency) Add(fp *Fingerprint) {
	if d == nil || fp == nil {
		return
	}
	d.docs++
	for term := range fp.terms {
		d.df[term]++
	}
}

// IDF returns the smoothed weight 1+log((N+1)/(1+df)) per term, nil
// before any Add.
func (d *DocumentFrequency) IDF() map[string]float64 {
	if d == nil || d.docs == 0 {
		return nil
	}
	n := float64(d.docs)
	idf := make(map[string]float64, len(d.df))
	for term, df := range d.df {
		idf[term] = 1 + math.Log((n+1)/(1+float64(df)))
	}
	return idf
}

// CosineSimilarity returns the cosine of the angle between a and b, 0 when
// either is nil or empty.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	if len(b.terms) < len(a.terms) {
		a, b = b, a
	}
	var dot float64
	for term, w := range a.terms {
		dot += w * b.terms[term]
	}
	return dot / (a.norm * b.norm)
}
