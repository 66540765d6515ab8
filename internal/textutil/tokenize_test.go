package textutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "cyrillic words",
			input: "Геральт из Ривии",
			want:  []string{"геральт", "из", "ривии"},
		},
		{
			name:  "punctuation and digits split",
			input: "Цири, 12 лет — ведьмачка!",
			want:  []string{"цири", "лет", "ведьмачка"},
		},
		{
			name:  "hyphen splits compound",
			input: "кто-то",
			want:  []string{"кто", "то"},
		},
		{
			name:  "yo kept",
			input: "Ещё ЁЖ",
			want:  []string{"ещё", "ёж"},
		},
		{
			name:  "latin kept",
			input: "The Witcher 3",
			want:  []string{"the", "witcher"},
		},
		{
			name:  "decomposed short i composed",
			input: "мои\u0306",
			want:  []string{"мой"},
		},
		{
			name:  "accented latin splits",
			input: "café",
			want:  []string{"caf"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "no letters",
			input: "123 ... !!!",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestTextMetrics(t *testing.T) {
	text := "Волк шёл, волк выл.\nВолк спал"

	if got := CountWords(text); got != 6 {
		t.Errorf("CountWords() = %d, want 6", got)
	}
	if got := CountLines(text); got != 2 {
		t.Errorf("CountLines() = %d, want 2", got)
	}
	if got := TTR(text); got != 4.0/6.0 {
		t.Errorf("TTR() = %v, want %v", got, 4.0/6.0)
	}
	if got := LongestWord(text); got != "волк" {
		t.Errorf("LongestWord() = %q, want волк", got)
	}
}

func TestEmptyTextMetrics(t *testing.T) {
	if got := TTR(""); got != 0 {
		t.Errorf("TTR(\"\") = %v, want 0", got)
	}
	if got := LongestWord("..."); got != "" {
		t.Errorf("LongestWord() = %q, want empty", got)
	}
	if got := CountLines(""); got != 1 {
		t.Errorf("CountLines(\"\") = %d, want 1", got)
	}
}

func TestLongestWordCountsRunes(t *testing.T) {
	// "ведьмак" is 7 runes but 14 bytes; "witcher" is 7 runes and 7 bytes.
	if got := LongestWord("witcher ведьмак"); got != "witcher" {
		t.Fatalf("LongestWord() = %q, want witcher", got)
	}
	if got := LongestWord("ведьмак witchers"); got != "witchers" {
		t.Fatalf("LongestWord() = %q, want witchers", got)
	}
}
