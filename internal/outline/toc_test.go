package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/fragment"
)

func TestTOCFilter_SuppressesEntriesAfterHeading(t *testing.T) {
	var f TOCFilter

	lines := []fragment.TextFragment{
		{Text: "Table of Contents", Page: 2, Y: 700},
		{Text: "1. Introduction ......... 4", Page: 2, Y: 680},
		{Text: "2. Methodology 9", Page: 2, Y: 660},
		{Text: "Appendix A 22", Page: 2, Y: 640},
	}
	for _, line := range lines {
		if !f.Suppress(line) {
			t.Errorf("expected %q to be suppressed", line.Text)
		}
	}
}

func TestTOCFilter_ExitsOnFirstNonEntry(t *testing.T) {
	var f TOCFilter

	if !f.Suppress(fragment.TextFragment{Text: "Contents", Page: 1, Y: 700}) {
		t.Fatal("expected the contents heading to be suppressed")
	}
	if !f.Suppress(fragment.TextFragment{Text: "1. Background 3", Page: 1, Y: 680}) {
		t.Fatal("expected the entry to be suppressed")
	}

	// A prose line ends the region; on a late page it cannot re-trigger.
	prose := fragment.TextFragment{Text: "This document describes the project scope", Page: 7, Y: 660}
	if f.Suppress(prose) {
		t.Fatal("expected the exiting line to pass through")
	}

	// Entry-shaped text after exit on a late page must not be eaten.
	late := fragment.TextFragment{Text: "Revenue grew by 12", Page: 7, Y: 640}
	if f.Suppress(late) {
		t.Error("expected entry-shaped text on a late page to pass through")
	}
}

func TestTOCFilter_EntryShapeRetriggersOnEarlyPages(t *testing.T) {
	var f TOCFilter

	// No keyword heading: an entry shape on an early page opens the
	// region by itself.
	if !f.Suppress(fragment.TextFragment{Text: "1. Introduction .......... 4", Page: 3, Y: 700}) {
		t.Error("expected dot-leader entry on an early page to be suppressed")
	}
	if !f.Suppress(fragment.TextFragment{Text: "2. Scope 5", Page: 3, Y: 680}) {
		t.Error("expected the following entry to be suppressed")
	}
}

func TestIsTOCEntry(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Introduction .......... 4", true},
		{"Methodology 12", true},
		{"3. Results and Discussion 18", true},
		{"Plain heading text", false},
	}
	for _, tc := range cases {
		if got := isTOCEntry(tc.text); got != tc.want {
			t.Errorf("isTOCEntry(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
