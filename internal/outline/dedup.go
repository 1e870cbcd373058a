package outline

import "strings"

// similarityThreshold is the Jaccard score above which two headings
// count as near-duplicates.
const similarityThreshold = 0.7

type headingKey struct {
	text  string
	page  int
	level Level
}

// DedupExact keeps the first occurrence per (lowercased text, page,
// level) key.
func DedupExact(headings []Heading) []Heading {
	seen := make(map[headingKey]bool, len(headings))
	out := headings[:0:0]
	for _, h := range headings {
		key := headingKey{strings.ToLower(strings.TrimSpace(h.Text)), h.Page, h.Level}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, h)
	}
	return out
}

// DedupSimilar drops headings whose word-set Jaccard similarity against
// any already-accepted heading exceeds the threshold. Earlier headings
// in document order always win over later near-duplicates.
func DedupSimilar(headings []Heading) []Heading {
	var accepted []Heading
	for _, h := range headings {
		dup := false
		for _, a := range accepted {
			if jaccard(h.Text, a.Text) > similarityThreshold {
				dup = true
				break
			}
		}
		if !dup {
			accepted = append(accepted, h)
		}
	}
	return accepted
}

// jaccard is intersection size over union size of the two texts'
// lowercased word sets.
func jaccard(a, b string) float64 {
	wa := wordSet(a)
	wb := wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	inter := 0
	union := len(wb)
	for w := range wa {
		if wb[w] {
			inter++
		} else {
			union++
		}
	}
	return float64(inter) / float64(union)
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = true
	}
	return set
}
