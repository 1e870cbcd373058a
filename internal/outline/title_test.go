package outline

import (
	"testing"

	"github.com/dgallion1/outliner/internal/fragment"
)

func TestExtractTitle_PlaceholderWhenNothingValid(t *testing.T) {
	cases := [][]fragment.TextFragment{
		nil,
		{
			{Text: "Page 1", FontSize: 10, Page: 1, Y: 700},
			{Text: "Copyright 2020 Acme Corp", FontSize: 10, Page: 1, Y: 680},
		},
	}
	for _, frags := range cases {
		if got := ExtractTitle(frags); got != PlaceholderTitle {
			t.Errorf("expected placeholder, got %q", got)
		}
	}
}

func TestExtractTitle_SingleProminentLine(t *testing.T) {
	frags := []fragment.TextFragment{
		{Text: "Annual Report 2025", FontSize: 24, Page: 1, Y: 700},
		{Text: "prepared by the finance team for internal circulation", FontSize: 10, Page: 1, Y: 650},
	}
	if got := ExtractTitle(frags); got != "Annual Report 2025" {
		t.Errorf("expected %q, got %q", "Annual Report 2025", got)
	}
}

func TestExtractTitle_MergesAdjacentLines(t *testing.T) {
	frags := []fragment.TextFragment{
		{Text: "RFP: Request for Proposal", FontSize: 22, Page: 1, Y: 600},
		{Text: "To Develop The Ontario Digital Library", FontSize: 22, Page: 1, Y: 500},
		{Text: "submitted to the ministry of education", FontSize: 10, Page: 1, Y: 400},
	}
	want := "RFP: Request for Proposal To Develop The Ontario Digital Library"
	if got := ExtractTitle(frags); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestIsValidTitle(t *testing.T) {
	cases := []struct {
		title string
		want  bool
	}{
		{"Municipal Water Strategy Review", true},
		{"Short", false},                            // too short
		{"Introduction", false},                     // single word
		{"Copyright 2020 Annual Report", false},     // boilerplate marker
		{"Confidential Planning Document", false},   // boilerplate marker
		{"1234 5678 9012", false},                   // digits only
		{"Draft Proposal For Review", false},        // boilerplate marker
		{"A Study Of Regional Trade Policy", true},
	}
	for _, tc := range cases {
		if got := isValidTitle(tc.title); got != tc.want {
			t.Errorf("isValidTitle(%q) = %v, want %v", tc.title, got, tc.want)
		}
	}
}

func TestSortByPageTopDown(t *testing.T) {
	frags := []fragment.TextFragment{
		{Text: "c", Page: 2, Y: 700},
		{Text: "b", Page: 1, Y: 300},
		{Text: "a", Page: 1, Y: 700},
	}
	sortByPageTopDown(frags)
	got := frags[0].Text + frags[1].Text + frags[2].Text
	if got != "abc" {
		t.Errorf("expected reading order abc, got %s", got)
	}
}
