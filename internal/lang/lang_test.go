package lang

import (
	"testing"

	"github.com/dgallion1/outliner/internal/fragment"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Code
	}{
		{"english default", "The quarterly report shows steady growth", English},
		{"japanese kana", "はじめに この文書について", Japanese},
		{"chinese han", "介绍 中国市场分析", Chinese},
		{"spanish accents", "El análisis de la metodología", Spanish},
		{"german eszett", "Die Straße und ihre Geschichte", German},
		{"russian cyrillic", "Введение в методологию исследования", Russian},
		{"greek", "Εισαγωγή στη μεθοδολογία", Greek},
		{"arabic", "مقدمة في المنهجية", Arabic},
	}
	for _, tc := range cases {
		frags := []fragment.TextFragment{{Text: tc.text, Page: 1, Y: 700}}
		if got := Detect(frags); got != tc.want {
			t.Errorf("%s: Detect(%q) = %s, want %s", tc.name, tc.text, got, tc.want)
		}
	}
}

func TestDetect_KanaTakesPriorityOverHan(t *testing.T) {
	// Japanese text mixes kana and han characters; the kana test runs
	// first so the mixture resolves to Japanese.
	frags := []fragment.TextFragment{{Text: "日本の研究について、この分析では", Page: 1, Y: 700}}
	if got := Detect(frags); got != Japanese {
		t.Errorf("expected ja for mixed kana/han text, got %s", got)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	if got := Detect(nil); got != English {
		t.Errorf("expected en for empty input, got %s", got)
	}
}

func TestKeywords_FallbackToEnglish(t *testing.T) {
	greek := Keywords(Greek)
	english := Keywords(English)
	if len(greek) != len(english) {
		t.Fatalf("expected Greek to fall back to the English table")
	}
	for i := range greek {
		if greek[i] != english[i] {
			t.Fatalf("expected Greek to fall back to the English table")
		}
	}
}

func TestAllKeywords_SpansLanguages(t *testing.T) {
	all := AllKeywords()
	if len(all) == 0 {
		t.Fatal("expected a non-empty combined table")
	}
	found := map[string]bool{}
	for _, kw := range all {
		found[kw] = true
	}
	for _, want := range []string{"introduction", "einleitung", "目次", "введение"} {
		if !found[want] {
			t.Errorf("expected combined table to contain %q", want)
		}
	}
}
