package outline

import (
	"regexp"
	"strings"
	"unicode"
)

var spaceRun = regexp.MustCompile(`\s+`)

// normalizeSpace collapses interior whitespace runs to single spaces.
func normalizeSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// isTitleCase reports whether every word that starts with a letter
// starts with an uppercase one, with at least one cased letter present.
// Uppercase letters inside a word (after the first) disqualify it, so
// "Quick Brown Fox" passes and "QUICK brown" does not.
func isTitleCase(s string) bool {
	cased := false
	for _, word := range strings.Fields(s) {
		first := true
		for _, r := range word {
			if !unicode.IsLetter(r) {
				if !first {
					// Punctuation inside a word restarts a "word",
					// matching hyphenated titles like "Self-Study".
					first = true
				}
				continue
			}
			cased = true
			if first {
				if !unicode.IsUpper(r) {
					return false
				}
				first = false
			} else if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return cased
}

// isAllUpper reports whether s contains letters and all of them are
// uppercase.
func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			cased = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return cased
}

// lowercaseRatio is the share of lowercase letters over total length,
// punctuation and spaces included.
func lowercaseRatio(s string) float64 {
	if s == "" {
		return 0
	}
	n := 0
	for _, r := range s {
		if unicode.IsLower(r) {
			n++
		}
	}
	return float64(n) / float64(len([]rune(s)))
}

// uppercaseRatio is the share of uppercase letters over total length.
func uppercaseRatio(s string) float64 {
	if s == "" {
		return 0
	}
	n := 0
	for _, r := range s {
		if unicode.IsUpper(r) {
			n++
		}
	}
	return float64(n) / float64(len([]rune(s)))
}

// isDigitsOnly reports whether s, spaces removed, is all digits.
func isDigitsOnly(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// hasLetter reports whether s contains at least one letter.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// containsAnyFold reports whether the lowercased s contains any of the
// given lowercase needles.
func containsAnyFold(s string, needles []string) bool {
	ls := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(ls, n) {
			return true
		}
	}
	return false
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
