package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/fragment"
	"github.com/dgallion1/outliner/internal/lang"
)

func englishCtx(avgFont float64) Context {
	return Context{
		Profile:  fragment.Profile{AvgFontSize: avgFont, MaxFontSize: avgFont * 2},
		Language: lang.English,
	}
}

func TestClassify_NumberedSectionHeading(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())

	f := fragment.TextFragment{
		Text:     "1. Introduction",
		FontSize: 18,
		IsBold:   true,
		Page:     1,
		Y:        900,
	}
	level, ok := c.Classify(f, englishCtx(10))
	if !ok {
		t.Fatal("expected a heading, got none")
	}
	if level != H1 {
		t.Errorf("expected H1, got %s", level)
	}
}

func TestClassify_PreFilters(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())
	ctx := englishCtx(10)

	cases := []struct {
		name string
		frag fragment.TextFragment
	}{
		{"too short", fragment.TextFragment{Text: "Hi", FontSize: 20, Y: 500}},
		{"too many periods", fragment.TextFragment{Text: "e.g. see a.b.c. and d.e.f.", FontSize: 20, Y: 500}},
		{"mostly lowercase prose", fragment.TextFragment{Text: "considerable infrastructure spending increased substantially", FontSize: 20, Y: 500}},
		{"page footer region", fragment.TextFragment{Text: "Quarterly Review", FontSize: 20, Y: 10}},
		{"same letter run", fragment.TextFragment{Text: "Proooosal Document", FontSize: 20, Y: 500}},
		{"repeated word echo", fragment.TextFragment{Text: "Summary Summary Summary", FontSize: 20, Y: 500}},
		{"mid word case flip", fragment.TextFragment{Text: "Prr oPosal Document", FontSize: 20, Y: 500}},
		{"bare year", fragment.TextFragment{Text: "2024", FontSize: 20, Y: 500}},
		{"money line", fragment.TextFragment{Text: "$500,000", FontSize: 20, Y: 500}},
		{"date line", fragment.TextFragment{Text: "March 2024", FontSize: 20, Y: 500}},
		{"title phrase", fragment.TextFragment{Text: "RFP: Request for Proposal", FontSize: 20, Y: 500}},
	}
	for _, tc := range cases {
		if _, ok := c.Classify(tc.frag, ctx); ok {
			t.Errorf("%s: expected rejection for %q", tc.name, tc.frag.Text)
		}
	}
}

func TestClassify_MainSectionOverride(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())

	// Small font, not bold, mid-page: every signal argues against a
	// heading, but the section name forces H1.
	f := fragment.TextFragment{
		Text:     "Executive Summary",
		FontSize: 10,
		Page:     3,
		Y:        400,
	}
	level, ok := c.Classify(f, englishCtx(10))
	if !ok {
		t.Fatal("expected the main section override to fire")
	}
	if level != H1 {
		t.Errorf("expected H1 from override, got %s", level)
	}
}

func TestClassify_BodyProseRejected(t *testing.T) {
	c := NewClassifier(DefaultClassifierConfig())

	// Surrounded by tightly spaced lines, body typography.
	f := fragment.TextFragment{
		Text:     "the city has seen steady growth in water demand over the past decade.",
		FontSize: 10,
		Page:     2,
		Y:        560,
	}
	ctx := englishCtx(10)
	ctx.Neighbors = fragment.Window{
		Prev: []fragment.TextFragment{
			{Text: "previous line", FontSize: 10, Page: 2, Y: 590},
			{Text: "another line", FontSize: 10, Page: 2, Y: 575},
		},
		Next: []fragment.TextFragment{
			{Text: "following line", FontSize: 10, Page: 2, Y: 545},
		},
	}
	if level, ok := c.Classify(f, ctx); ok {
		t.Errorf("expected prose rejection, got %s", level)
	}
}

func TestLooksGarbled(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Proooosal", true},
		{"quest quest quest for bid", true},
		{"RFP: Prr oPosal", true},
		{"Clean Section Heading", false},
		{"1. Introduction", false},
	}
	for _, tc := range cases {
		if got := looksGarbled(tc.text); got != tc.want {
			t.Errorf("looksGarbled(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
