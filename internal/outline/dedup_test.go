package outline

import (
	"reflect"
	"testing"
)

func TestDedupExact(t *testing.T) {
	headings := []Heading{
		{Level: H1, Text: "Overview", Page: 1},
		{Level: H1, Text: "overview", Page: 1}, // case-insensitive duplicate
		{Level: H1, Text: "Overview", Page: 2}, // different page survives
		{Level: H2, Text: "Overview", Page: 1}, // different level survives
	}
	got := DedupExact(headings)
	if len(got) != 3 {
		t.Fatalf("expected 3 headings, got %d: %v", len(got), got)
	}
	if got[0].Text != "Overview" || got[0].Page != 1 || got[0].Level != H1 {
		t.Errorf("expected the first occurrence to win, got %+v", got[0])
	}
}

func TestDedupSimilar_EarlierWins(t *testing.T) {
	headings := []Heading{
		{Level: H1, Text: "Annual Project Overview Report", Page: 1},
		{Level: H2, Text: "Annual Project Overview Report Summary", Page: 3},
		{Level: H1, Text: "Budget Allocation", Page: 5},
	}
	got := DedupSimilar(headings)
	if len(got) != 2 {
		t.Fatalf("expected 2 headings, got %d: %v", len(got), got)
	}
	if got[0].Page != 1 {
		t.Errorf("expected the earlier heading to survive, got page %d", got[0].Page)
	}
	if got[1].Text != "Budget Allocation" {
		t.Errorf("expected the dissimilar heading to survive, got %q", got[1].Text)
	}
}

func TestDedupSimilar_Idempotent(t *testing.T) {
	headings := []Heading{
		{Level: H1, Text: "Introduction to Distributed Systems", Page: 1},
		{Level: H1, Text: "Consensus Protocols", Page: 4},
		{Level: H2, Text: "Failure Detection Strategies", Page: 7},
	}
	once := DedupSimilar(headings)
	twice := DedupSimilar(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("dedup is not idempotent: %v vs %v", once, twice)
	}
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		a, b string
		want float64
	}{
		{"Project Overview", "project overview", 1.0},
		{"Project Overview", "Budget Report", 0.0},
		{"", "anything", 0.0},
	}
	for _, tc := range cases {
		if got := jaccard(tc.a, tc.b); got != tc.want {
			t.Errorf("jaccard(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
