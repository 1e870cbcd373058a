package outline

import (
	"regexp"
	"sort"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
)

// titleStrategy is one attempt at finding the document title. Strategies
// run in a fixed priority order; the first whose candidate passes
// isValidTitle wins. Keep this an ordered slice, not a map: priority is
// part of the contract.
type titleStrategy func(frags []fragment.TextFragment) string

var titleStrategies = []titleStrategy{
	extractAnchoredTitle,
	extractLargestFontTitle,
	extractFirstPageTitle,
	extractStructuredTitle,
	extractKeywordTitle,
}

// ExtractTitle runs the strategy chain and falls back to the fixed
// placeholder when nothing valid is found.
func ExtractTitle(frags []fragment.TextFragment) string {
	for _, strat := range titleStrategies {
		if title := strat(frags); title != "" && isValidTitle(title) {
			return title
		}
	}
	return PlaceholderTitle
}

// titlePhrasePatterns match report/proposal-style phrasing that anchors
// a multi-line title.
var titlePhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)rfp:?\s*request for proposal`),
	regexp.MustCompile(`(?i)request for proposal`),
	regexp.MustCompile(`(?i)rfp:`),
	regexp.MustCompile(`(?i)request for`),
	regexp.MustCompile(`(?i)proposal for`),
}

// titleBoilerplate disqualifies a line from being part of a title.
var titleBoilerplate = []string{"page", "copyright", "©", "version", "confidential"}

// extractAnchoredTitle scans an early window for title-shaped lines and
// merges spatially adjacent ones (same page within a vertical gap, or a
// plausible continuation near the top of the next page) into one string.
func extractAnchoredTitle(frags []fragment.TextFragment) string {
	if len(frags) == 0 {
		return ""
	}

	var candidates []fragment.TextFragment
	limit := min(len(frags), 150)
	for _, f := range frags[:limit] {
		text := strings.TrimSpace(f.Text)
		if containsAnyFold(text, titleBoilerplate) {
			continue
		}

		phraseMatch := false
		for _, p := range titlePhrasePatterns {
			if p.MatchString(text) {
				phraseMatch = true
				break
			}
		}
		titleShaped := len(text) > 3 &&
			(isTitleCase(text) || isAllUpper(text)) &&
			!strings.HasSuffix(text, ".") &&
			!isDigitsOnly(text) &&
			!hasLeadingDigit(text)

		if phraseMatch || titleShaped {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sortByPageTopDown(candidates)

	var parts []string
	curPage := candidates[0].Page
	curY := candidates[0].Y

	limit = min(len(candidates), 20)
	for _, f := range candidates[:limit] {
		text := strings.TrimSpace(f.Text)
		switch {
		case f.Page == curPage && abs(f.Y-curY) < 250:
			parts = append(parts, text)
			curY = f.Y
		case f.Page == curPage+1 && f.Y > 500:
			// Continuation near the top of the next page.
			parts = append(parts, text)
			curPage = f.Page
			curY = f.Y
		default:
			if len(parts) > 0 {
				combined := strings.Join(parts, " ")
				if len(combined) > 20 && isValidTitle(combined) {
					return combined
				}
			}
			parts = []string{text}
			curPage = f.Page
			curY = f.Y
		}
	}

	if len(parts) > 0 {
		combined := strings.Join(parts, " ")
		if isValidTitle(combined) {
			return combined
		}
	}
	return ""
}

// titleScoreBonuses reward domain keywords when ranking merged
// largest-font candidates.
var titleScoreBonuses = []struct {
	keyword string
	bonus   int
}{
	{"rfp", 50},
	{"proposal", 30},
	{"business plan", 30},
	{"annual report", 20},
}

// extractLargestFontTitle finds the biggest font on the first pages,
// takes everything within 80% of it, and scores every contiguous
// sub-run (length 1-6) that merges cleanly.
func extractLargestFontTitle(frags []fragment.TextFragment) string {
	var early []fragment.TextFragment
	for _, f := range frags {
		if f.Page <= 5 {
			early = append(early, f)
		}
	}
	if len(early) == 0 {
		return ""
	}

	var maxFont float64
	for _, f := range early {
		if f.FontSize > maxFont {
			maxFont = f.FontSize
		}
	}

	var candidates []fragment.TextFragment
	for _, f := range early {
		if f.FontSize >= maxFont*0.8 && len(f.Text) >= 3 && len(f.Text) <= 200 {
			candidates = append(candidates, f)
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	sortByPageTopDown(candidates)

	bestScore := 0
	bestTitle := ""
	for i := range candidates {
		for j := i; j < min(i+6, len(candidates)); j++ {
			var parts []string
			curPage := candidates[i].Page
			curY := candidates[i].Y

		group:
			for k := i; k <= j; k++ {
				f := candidates[k]
				text := strings.TrimSpace(f.Text)
				if containsAnyFold(text, titleBoilerplate) {
					continue
				}
				switch {
				case f.Page == curPage && abs(f.Y-curY) < 200:
					parts = append(parts, text)
					curY = f.Y
				case f.Page == curPage+1 && f.Y > 600:
					parts = append(parts, text)
					curPage = f.Page
					curY = f.Y
				default:
					break group
				}
			}
			if len(parts) == 0 {
				continue
			}

			combined := strings.Join(parts, " ")
			if !isValidTitle(combined) {
				continue
			}
			score := len(combined)
			lower := strings.ToLower(combined)
			for _, b := range titleScoreBonuses {
				if strings.Contains(lower, b.keyword) {
					score += b.bonus
				}
			}
			if score > bestScore {
				bestScore = score
				bestTitle = combined
			}
		}
	}
	if bestTitle != "" {
		return bestTitle
	}
	// Nothing merged and scored; fall back to the first large-font line.
	return strings.TrimSpace(candidates[0].Text)
}

// extractFirstPageTitle scans the first lines of page 1 for a
// title-cased line long enough to mean something.
func extractFirstPageTitle(frags []fragment.TextFragment) string {
	var firstPage []fragment.TextFragment
	for _, f := range frags {
		if f.Page == 1 {
			firstPage = append(firstPage, f)
		}
	}
	limit := min(len(firstPage), 10)
	for _, f := range firstPage[:limit] {
		text := strings.TrimSpace(f.Text)
		lower := strings.ToLower(text)
		if len(text) > 10 &&
			!strings.HasPrefix(lower, "copyright") &&
			!strings.HasPrefix(lower, "version") &&
			!strings.HasPrefix(lower, "page") &&
			!strings.HasPrefix(text, "©") &&
			!isDigitsOnly(text) &&
			isTitleCase(text) {
			return text
		}
	}
	return ""
}

// structuredTitlePatterns match common title shapes: a title-case block
// of moderate length, a title-case line ending in a colon, or a
// title-case line ending on an uppercase letter.
var structuredTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-zA-Z\s]{5,50}$`),
	regexp.MustCompile(`^[A-Z][a-zA-Z\s]+:$`),
	regexp.MustCompile(`^[A-Z][a-zA-Z\s]+[A-Z]$`),
}

func extractStructuredTitle(frags []fragment.TextFragment) string {
	limit := min(len(frags), 20)
	for _, f := range frags[:limit] {
		text := strings.TrimSpace(f.Text)
		for _, p := range structuredTitlePatterns {
			if p.MatchString(text) {
				return text
			}
		}
	}
	return ""
}

// descriptorKeywords are generic document descriptors used by the last
// fallback strategy.
var descriptorKeywords = []string{
	"overview", "introduction", "guide", "manual", "documentation",
	"report", "study", "analysis", "research", "paper", "thesis",
}

func extractKeywordTitle(frags []fragment.TextFragment) string {
	limit := min(len(frags), 30)
	for _, f := range frags[:limit] {
		text := strings.TrimSpace(f.Text)
		if len(text) > 10 && containsAnyFold(text, descriptorKeywords) {
			return text
		}
	}
	return ""
}

// invalidTitleMarkers reject boilerplate masquerading as a title.
var invalidTitleMarkers = []string{
	"copyright", "version", "page", "©",
	"all rights reserved", "confidential", "draft", "preliminary",
}

// isValidTitle is the shared validity gate. The disqualifying checks
// run first; anything that survives them is accepted. Keep the default
// permissive.
func isValidTitle(title string) bool {
	if len(title) < 8 || len(title) > 400 {
		return false
	}
	if containsAnyFold(title, invalidTitleMarkers) {
		return false
	}
	if isDigitsOnly(title) || len(strings.Fields(title)) < 2 {
		return false
	}
	if !hasLetter(title) {
		return false
	}
	return true
}

// sortByPageTopDown orders fragments by page ascending, then top to
// bottom within a page (Y is bottom-origin, so descending).
func sortByPageTopDown(frags []fragment.TextFragment) {
	sort.SliceStable(frags, func(i, j int) bool {
		if frags[i].Page != frags[j].Page {
			return frags[i].Page < frags[j].Page
		}
		return frags[i].Y > frags[j].Y
	})
}

func hasLeadingDigit(s string) bool {
	for i, r := range s {
		if i >= 3 {
			break
		}
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
