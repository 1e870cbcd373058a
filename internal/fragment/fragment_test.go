package fragment

import "testing"

func TestNewProfile(t *testing.T) {
	frags := []TextFragment{
		{FontSize: 10},
		{FontSize: 14},
		{FontSize: 24},
	}
	p := NewProfile(frags)
	if p.AvgFontSize != 16 {
		t.Errorf("expected avg 16, got %v", p.AvgFontSize)
	}
	if p.MaxFontSize != 24 {
		t.Errorf("expected max 24, got %v", p.MaxFontSize)
	}

	if got := NewProfile(nil); got != (Profile{}) {
		t.Errorf("expected zero profile for empty input, got %+v", got)
	}
}

func TestWindowAt(t *testing.T) {
	frags := make([]TextFragment, 10)
	for i := range frags {
		frags[i].Page = i
	}

	w := WindowAt(frags, 5)
	if len(w.Prev) != 3 || len(w.Next) != 3 {
		t.Fatalf("expected 3/3 window, got %d/%d", len(w.Prev), len(w.Next))
	}
	if w.Prev[0].Page != 2 || w.Next[2].Page != 8 {
		t.Errorf("window misaligned: prev starts at %d, next ends at %d", w.Prev[0].Page, w.Next[2].Page)
	}

	w = WindowAt(frags, 0)
	if len(w.Prev) != 0 || len(w.Next) != 3 {
		t.Errorf("expected 0/3 at the start, got %d/%d", len(w.Prev), len(w.Next))
	}

	w = WindowAt(frags, 9)
	if len(w.Prev) != 3 || len(w.Next) != 0 {
		t.Errorf("expected 3/0 at the end, got %d/%d", len(w.Prev), len(w.Next))
	}
}

func TestIsBoldFont(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"Arial Black", true},
		{"TimesNewRoman", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsBoldFont(tc.name); got != tc.want {
			t.Errorf("IsBoldFont(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}
