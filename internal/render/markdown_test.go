package render

import (
	"strings"
	"testing"
)

func TestMarkdownRenderer_HeadingTypography(t *testing.T) {
	input := `# Annual Review

Opening remarks for the year.

## Financial Results

Revenue and cost breakdown.
`
	p := &MarkdownRenderer{}
	frags, err := p.Render(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byText := map[string]int{}
	for i, f := range frags {
		byText[f.Text] = i
	}

	h1, ok := byText["Annual Review"]
	if !ok {
		t.Fatalf("missing h1 fragment: %v", frags)
	}
	if frags[h1].FontSize != levelFontSize[1] || !frags[h1].IsBold {
		t.Errorf("expected h1 typography, got %+v", frags[h1])
	}

	h2, ok := byText["Financial Results"]
	if !ok {
		t.Fatalf("missing h2 fragment: %v", frags)
	}
	if frags[h2].FontSize != levelFontSize[2] || !frags[h2].IsBold {
		t.Errorf("expected h2 typography, got %+v", frags[h2])
	}

	body, ok := byText["Opening remarks for the year."]
	if !ok {
		t.Fatalf("missing body fragment: %v", frags)
	}
	if frags[body].FontSize != bodyFontSize || frags[body].IsBold {
		t.Errorf("expected body typography, got %+v", frags[body])
	}

	// Reading order: positions strictly descend on the same page.
	for i := 1; i < len(frags); i++ {
		if frags[i].Page == frags[i-1].Page && frags[i].Y >= frags[i-1].Y {
			t.Errorf("positions not descending: %v then %v", frags[i-1].Y, frags[i].Y)
		}
	}
}

func TestMarkdownRenderer_BodyParagraphEmittedOnce(t *testing.T) {
	input := "# Title\n\nOpening remarks for the year.\n"

	p := &MarkdownRenderer{}
	frags, err := p.Render(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count := 0
	for _, f := range frags {
		if strings.Contains(f.Text, "Opening remarks") {
			count++
			if f.Text != "Opening remarks for the year." {
				t.Errorf("paragraph text corrupted: %q", f.Text)
			}
		}
	}
	if count != 1 {
		t.Errorf("expected the paragraph exactly once, got %d fragments", count)
	}
}

func TestMarkdownRenderer_EmptyInput(t *testing.T) {
	p := &MarkdownRenderer{}
	frags, err := p.Render(strings.NewReader(""), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(frags) != 0 {
		t.Errorf("expected no fragments, got %v", frags)
	}
}
