package morph_test

import (
	"sync"
	"testing"

	"corpusstat/internal/morph"
)

func newAnalyzer(t *testing.T) *morph.Analyzer {
	t.Helper()
	a, err := morph.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func TestNormalForm(t *testing.T) {
	a := newAnalyzer(t)

	tests := []struct {
		word string
		want string
		pos  morph.POS
	}{
		{"геральта", "геральт", morph.Noun},
		{"ведьмаки", "ведьмак", morph.Noun},
		{"девочек", "девочка", morph.Noun},
		{"мечом", "меч", morph.Noun},
		{"ночью", "ночь", morph.Noun},
		{"черного", "черный", morph.AdjFull},
		{"чёрного", "черный", morph.AdjFull},
		{"белые", "белый", morph.AdjFull},
		{"говорил", "говорить", morph.Verb},
		{"сказал", "сказать", morph.Verb},
		{"скажу", "сказать", morph.Verb},
		{"знаешь", "знать", morph.Verb},
		{"был", "быть", morph.Verb},
		{"меня", "я", morph.Pronoun},
		{"стали", "стать", morph.Verb},
		{"йеннифэр", "йеннифэр", morph.Noun},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := a.NormalForm(tt.word); got != tt.want {
				t.Errorf("NormalForm(%q) = %q, want %q", tt.word, got, tt.want)
			}
			if got := a.Tag(tt.word).POS; got != tt.pos {
				t.Errorf("Tag(%q).POS = %q, want %q", tt.word, got, tt.pos)
			}
		})
	}
}

func TestParseOrdersIrregularFirst(t *testing.T) {
	a := newAnalyzer(t)

	parses := a.Parse("стали")
	if len(parses) < 2 {
		t.Fatalf("Parse(стали) returned %d parses, want at least 2", len(parses))
	}
	if parses[0].Method != morph.MethodIrregular {
		t.Fatalf("first parse method = %s, want %s", parses[0].Method, morph.MethodIrregular)
	}
	var sawNoun bool
	for _, p := range parses[1:] {
		if p.NormalForm == "сталь" && p.Method == morph.MethodDictionary {
			sawNoun = true
		}
	}
	if !sawNoun {
		t.Fatalf("expected a dictionary parse of сталь among %+v", parses)
	}
}

func TestParseUnknownWord(t *testing.T) {
	a := newAnalyzer(t)

	parses := a.Parse("qwerty")
	if len(parses) != 1 {
		t.Fatalf("Parse(qwerty) returned %d parses, want 1", len(parses))
	}
	p := parses[0]
	if p.NormalForm != "qwerty" || p.Tag.POS != "" || p.Method != morph.MethodUnknown {
		t.Fatalf("unexpected parse %+v", p)
	}
	if p.Tag.String() != "UNKN" {
		t.Fatalf("Tag.String() = %q, want UNKN", p.Tag.String())
	}
}

func TestParseEmptyWord(t *testing.T) {
	a := newAnalyzer(t)
	if got := a.Parse(""); got != nil {
		t.Fatalf("Parse(\"\") = %+v, want nil", got)
	}
}

func TestParsePredictsUnknownCyrillic(t *testing.T) {
	a := newAnalyzer(t)

	parses := a.Parse("кикиморами")
	if len(parses) == 0 {
		t.Fatal("no parses")
	}
	p := parses[0]
	if p.Method != morph.MethodSuffix {
		t.Fatalf("method = %s, want %s", p.Method, morph.MethodSuffix)
	}
	if !p.Tag.POS.Open() {
		t.Fatalf("predicted POS %q is not an open class", p.Tag.POS)
	}
	if p.NormalForm == "" {
		t.Fatal("predicted normal form is empty")
	}
}

func TestParsePredictsAdjectiveForUnknownIvaya(t *testing.T) {
	a := newAnalyzer(t)

	if got := a.NormalForm("красивая"); got != "красивый" {
		t.Fatalf("NormalForm(красивая) = %q, want красивый", got)
	}

	p := a.Parse("игривая")[0]
	if p.Method != morph.MethodSuffix {
		t.Fatalf("method = %s, want %s", p.Method, morph.MethodSuffix)
	}
	if p.Tag.POS != morph.AdjFull {
		t.Fatalf("POS = %s, want %s", p.Tag.POS, morph.AdjFull)
	}
	if p.NormalForm != "игривый" {
		t.Fatalf("normal form = %q, want игривый", p.NormalForm)
	}
}

func TestStopwords(t *testing.T) {
	a := newAnalyzer(t)

	list := a.Stopwords()
	if len(list) != 151 {
		t.Fatalf("len(Stopwords()) = %d, want 151", len(list))
	}
	if list[0] != "и" {
		t.Fatalf("Stopwords()[0] = %q, want и", list[0])
	}
	list[0] = "changed"
	if a.Stopwords()[0] != "и" {
		t.Fatal("Stopwords() exposes internal slice")
	}

	for word, want := range map[string]bool{
		"и":       true,
		"быть":    true,
		"её":      true,
		"ведьмак": false,
	} {
		if got := a.IsStopword(word); got != want {
			t.Errorf("IsStopword(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestAnalyzerConcurrentUse(t *testing.T) {
	a := newAnalyzer(t)
	words := []string{"геральта", "цири", "говорил", "кикиморами", "меня"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				if len(a.Parse(w)) == 0 {
					t.Errorf("Parse(%q) returned nothing", w)
				}
			}
		}()
	}
	wg.Wait()
}

func TestWithDataDirMissing(t *testing.T) {
	if _, err := morph.New(morph.WithDataDir(t.TempDir())); err == nil {
		t.Fatal("expected error for empty data dir")
	}
}
