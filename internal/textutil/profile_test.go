package textutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"corpusstat/internal/morph"
)

// fakeAnalyzer resolves words from a fixed table; anything else is unknown.
type fakeAnalyzer map[string]morph.Parse

func (f fakeAnalyzer) Parse(word string) []morph.Parse {
	if p, ok := f[word]; ok {
		p.Word = word
		return []morph.Parse{p}
	}
	return []morph.Parse{{Word: word, NormalForm: word, Method: morph.MethodUnknown}}
}

func parse(lemma string, pos morph.POS) morph.Parse {
	return morph.Parse{NormalForm: lemma, Tag: morph.Tag{POS: pos}, Method: morph.MethodDictionary}
}

var witcher = fakeAnalyzer{
	"геральт":  parse("геральт", morph.Noun),
	"геральта": parse("геральт", morph.Noun),
	"увидел":   parse("увидеть", morph.Verb),
	"видел":    parse("видеть", morph.Verb),
	"цири":     parse("цири", morph.Noun),
	"белого":   parse("белый", morph.AdjFull),
	"волка":    parse("волк", morph.Noun),
}

// "видела" is missing from the table on purpose.
const sample = "Геральт увидел Цири. Цири видела белого волка, Геральта видел!"

func TestProfile(t *testing.T) {
	p := NewProfile(witcher, sample)

	wantLemmas := []string{"геральт", "увидеть", "цири", "цири", "видела", "белый", "волк", "геральт", "видеть"}
	if diff := cmp.Diff(wantLemmas, p.Lemmas); diff != "" {
		t.Errorf("Lemmas mismatch (-want +got):\n%s", diff)
	}
	if got := p.WordCount(); got != 9 {
		t.Errorf("WordCount() = %d, want 9", got)
	}
	if got := p.UniqueLemmas(); got != 7 {
		t.Errorf("UniqueLemmas() = %d, want 7", got)
	}
	if got := p.TTR(); got != 8.0/9.0 {
		t.Errorf("TTR() = %v, want %v", got, 8.0/9.0)
	}
	if got := p.LexicalDensity(); got != 7.0/9.0 {
		t.Errorf("LexicalDensity() = %v, want %v", got, 7.0/9.0)
	}
	if got := p.LongestWord(); got != "геральта" {
		t.Errorf("LongestWord() = %q, want геральта", got)
	}

	wantPOS := []Count{{"NOUN", 5}, {"VERB", 2}, {"ADJF", 1}}
	if diff := cmp.Diff(wantPOS, p.POS().Items()); diff != "" {
		t.Errorf("POS() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"увидеть", "видеть"}, p.Verbs()); diff != "" {
		t.Errorf("Verbs() mismatch (-want +got):\n%s", diff)
	}
}

func TestCountSpecificLemmasUnique(t *testing.T) {
	got := CountSpecificLemmasUnique(witcher, sample, []string{"геральт", "йеннифэр", "волк"})
	want := map[string]int{"геральт": 1, "йеннифэр": 0, "волк": 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CountSpecificLemmasUnique mismatch (-want +got):\n%s", diff)
	}
}

func TestMostCommonLemmas(t *testing.T) {
	got := MostCommonLemmas(witcher, sample, 2)
	want := []Count{{"геральт", 2}, {"цири", 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MostCommonLemmas mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageHelpersOnEmptyText(t *testing.T) {
	if got := Lemmatize(witcher, ""); len(got) != 0 {
		t.Errorf("Lemmatize(\"\") = %v", got)
	}
	if got := LexicalDensity(witcher, ""); got != 0 {
		t.Errorf("LexicalDensity(\"\") = %v, want 0", got)
	}
	if got := CountUniqueLemmas(witcher, ""); got != 0 {
		t.Errorf("CountUniqueLemmas(\"\") = %d, want 0", got)
	}
	if got := POSStatistics(witcher, "").Len(); got != 0 {
		t.Errorf("POSStatistics(\"\").Len() = %d, want 0", got)
	}
	if got := Verbs(witcher, ""); got != nil {
		t.Errorf("Verbs(\"\") = %v, want nil", got)
	}
}

func TestProfileWithDictionary(t *testing.T) {
	a, err := morph.New()
	if err != nil {
		t.Fatalf("morph.New() error = %v", err)
	}
	p := NewProfile(a, "Ведьмак сказал, что волки пришли ночью.")

	want := []string{"ведьмак", "сказать", "что", "волк", "прийти", "ночь"}
	if diff := cmp.Diff(want, p.Lemmas); diff != "" {
		t.Errorf("Lemmas mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"сказать", "прийти"}, p.Verbs()); diff != "" {
		t.Errorf("Verbs() mismatch (-want +got):\n%s", diff)
	}
}
