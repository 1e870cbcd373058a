// Package outline is the multi-signal heading and title classification
// engine. It turns positioned, style-annotated text fragments into a
// document title plus an ordered list of heading candidates, combining
// independent typographic, positional, semantic, structural and
// language heuristics into one deterministic ensemble decision.
package outline

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dgallion1/outliner/internal/fragment"
	"github.com/dgallion1/outliner/internal/lang"
)

// Extractor runs the full single-document pipeline: language detection,
// title extraction, TOC filtering, ensemble classification, dedup and
// assembly. It holds no per-document state and is safe for concurrent
// use across documents.
type Extractor struct {
	classifier *Classifier
}

// NewExtractor builds an extractor with the given classifier config.
func NewExtractor(cfg ClassifierConfig) *Extractor {
	return &Extractor{classifier: NewClassifier(cfg)}
}

// Extract produces the outline for one document's fragments. It never
// panics outward: an internal fault is reported as an error-shaped
// result so sibling documents in a batch are unaffected.
func (e *Extractor) Extract(frags []fragment.TextFragment) (res Result) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Title:          ErrorTitle,
				Outline:        []Heading{},
				ProcessingTime: time.Since(start).Seconds(),
				Error:          fmt.Sprintf("internal fault: %v", r),
			}
		}
	}()

	if len(frags) == 0 {
		return Result{
			Title:          PlaceholderTitle,
			Outline:        []Heading{},
			ProcessingTime: time.Since(start).Seconds(),
		}
	}

	profile := fragment.NewProfile(frags)
	language := lang.Detect(frags)
	title := ExtractTitle(frags)

	var headings []Heading
	seen := make(map[headingKey]bool)
	var toc TOCFilter
	lastPage := 1

	for i, f := range frags {
		if f.Page > lastPage {
			lastPage = f.Page
		}
		if toc.Suppress(f) {
			continue
		}

		ctx := Context{
			Neighbors: fragment.WindowAt(frags, i),
			Profile:   profile,
			Language:  language,
		}
		level, ok := e.classifier.Classify(f, ctx)
		if !ok {
			continue
		}

		text := normalizeSpace(f.Text)
		if len(text) < 3 || strings.EqualFold(text, title) {
			continue
		}
		key := headingKey{text: strings.ToLower(text), page: f.Page}
		if seen[key] {
			continue
		}
		seen[key] = true
		headings = append(headings, Heading{
			Level: level,
			Text:  text,
			Page:  f.Page,
			y:     f.Y,
		})
	}

	headings = DedupExact(headings)
	headings = DedupSimilar(headings)
	sortHeadings(headings)
	if headings == nil {
		headings = []Heading{}
	}

	elapsed := time.Since(start).Seconds()
	return Result{
		Title:          title,
		Outline:        headings,
		ProcessingTime: elapsed,
		Metrics: &Metrics{
			TotalFragments:   len(frags),
			HeadingsFound:    len(headings),
			TimePerPage:      elapsed / float64(lastPage),
			DetectedLanguage: string(language),
		},
	}
}

// sortHeadings orders the outline by page ascending, then top to
// bottom within a page. Y is bottom-origin, so descending Y reads
// top-down.
func sortHeadings(headings []Heading) {
	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].y > headings[j].y
	})
}
