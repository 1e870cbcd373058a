package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
)

// tocState is the filter's position relative to a table-of-contents
// region.
type tocState int

const (
	tocOutside tocState = iota
	tocInside
)

// tocIndicators flag the start of a contents section by keyword.
var tocIndicators = []string{"table of contents", "contents", "index", "toc"}

// tocEntryPatterns match the shape of a contents entry: text trailed by
// a page number, with or without dot leaders.
var tocEntryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.{3,}\s*\d+$`),
	regexp.MustCompile(`\s\d+$`),
	regexp.MustCompile(`^\d+\.\s+.*\s\d+$`),
	regexp.MustCompile(`^[A-Z][a-z].*\s\d+$`),
}

// lastTOCPage bounds keyword-free TOC detection to early pages.
const lastTOCPage = 6

// TOCFilter suppresses fragments belonging to a detected table of
// contents. It is a two-state sequential filter: once inside a TOC
// region, every entry-shaped line is consumed; the first line that does
// not look like an entry ends the region immediately. A single odd line
// inside a real TOC therefore ends suppression early; callers rely on
// that exit rule.
type TOCFilter struct {
	state tocState
}

// Suppress reports whether the fragment belongs to a TOC region and
// must not reach the classifier. It advances the filter state.
func (t *TOCFilter) Suppress(f fragment.TextFragment) bool {
	text := strings.TrimSpace(f.Text)

	if t.state == tocInside {
		if isTOCEntry(text) {
			return true
		}
		t.state = tocOutside
		// Fall through: the exiting line may itself re-trigger below.
	}

	if isTOCTrigger(text, f.Page) {
		t.state = tocInside
		return true
	}
	return false
}

// isTOCTrigger reports whether a line opens a TOC region: either it
// names the section outright, or it already looks like an entry on an
// early page.
func isTOCTrigger(text string, page int) bool {
	if containsAnyFold(text, tocIndicators) {
		return true
	}
	return page <= lastTOCPage && isTOCEntry(text)
}

// isTOCEntry matches the shape of a single contents entry.
func isTOCEntry(text string) bool {
	for _, p := range tocEntryPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return containsAnyFold(text, tocIndicators)
}
