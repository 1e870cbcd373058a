package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
	"github.com/dgallion1/outliner/internal/lang"
)

// Context carries everything a signal may read besides the fragment
// itself. Neighbors are a small local window only; no cross-document
// state ever flows through here.
type Context struct {
	Neighbors fragment.Window
	Profile   fragment.Profile
	Language  lang.Code
}

// Signal is one independent heading heuristic. Each scorer is a pure
// function returning a value in [0,1]; the ensemble is a weighted fold
// over the registered signals, which keeps adding or removing one
// mechanical.
type Signal struct {
	Name   string
	Weight float64
	Score  func(f fragment.TextFragment, ctx Context) float64
}

// defaultSignals registers the six scorers with their fixed weights.
// The font-agnostic composite carries extra weight so the ensemble
// stays useful when font metadata lies.
func defaultSignals() []Signal {
	return []Signal{
		{"multi_modal", 0.15, scoreMultiModal},
		{"statistical", 0.15, scoreStatistical},
		{"pattern", 0.15, scorePattern},
		{"language_specific", 0.15, scoreLanguageSpecific},
		{"position", 0.15, scorePosition},
		{"font_agnostic", 0.25, scoreFontAgnostic},
	}
}

// Numbering and section shapes shared by several signals.
var (
	numberedPattern    = regexp.MustCompile(`^\d+\.?\s+`)
	subNumberedPattern = regexp.MustCompile(`^\d+\.\d+\.?\s+`)
	subSubNumbered     = regexp.MustCompile(`^\d+\.\d+\.\d+\.?\s+`)
	letteredPattern    = regexp.MustCompile(`^[A-Z]\.?\s+`)
	romanPattern       = regexp.MustCompile(`^[IVX]+\.?\s+`)
	chapterPattern     = regexp.MustCompile(`(?i)\b(chapter|section|part)\s+\d+`)
	chapterAppendix    = regexp.MustCompile(`(?i)\b(chapter|section|part|appendix)\s+\d+`)
	cjkChapterPattern  = regexp.MustCompile(`第[一二三四五六七八九十]+章`)
	cjkNumberedPattern = regexp.MustCompile(`[一二三四五六七八九十]+\.`)
	leadingDigit       = regexp.MustCompile(`^\d+`)
)

// genericKeywords feed the font-blind semantic bonuses. They span all
// supported languages on purpose: these scorers run before the
// detected language narrows anything down.
var genericKeywords = buildGenericKeywords()

func buildGenericKeywords() []string {
	extra := []string{
		"challenge", "mission", "theme", "round", "test", "case",
		"timeline", "access", "training", "licensing", "support",
		"guidance", "investment", "value", "principles", "practices",
		"processes", "methods", "techniques", "tools", "career",
		"learning", "business", "fundamental", "proposal", "plan",
		"strategy", "evaluation", "preamble", "membership", "resources",
	}
	return append(lang.AllKeywords(), extra...)
}

// scoreMultiModal is a composite of font banding, section-start
// position, semantic bonuses, visual spacing and numbering patterns.
// It thresholds internally into a level and re-enters the ensemble as
// a present/absent 0.8/0 vote.
func scoreMultiModal(f fragment.TextFragment, ctx Context) float64 {
	text := strings.TrimSpace(f.Text)

	if len(text) < 3 || len(text) > 100 {
		return 0
	}
	if strings.Count(text, ".") > 2 {
		return 0
	}
	if lowercaseRatio(text) > 0.8 {
		return 0
	}
	if f.Y < 50 {
		return 0
	}

	var font, position, semantic, visual, sequential float64

	ratio := 1.0
	if ctx.Profile.AvgFontSize > 0 {
		ratio = f.FontSize / ctx.Profile.AvgFontSize
	}
	switch {
	case ratio > 1.5:
		font = 0.9
	case ratio > 1.2:
		font = 0.7
	case ratio > 1.1:
		font = 0.5
	}
	if f.IsBold {
		font += 0.2
	}

	if isSectionStart(f, ctx.Neighbors) {
		position = 0.8
	}
	if len(ctx.Neighbors.Prev)+len(ctx.Neighbors.Next) > 0 {
		// Alignment bonus; fragments carry no x coordinate, so any
		// surrounded line gets it.
		position += 0.3
	}

	semantic = richSemanticScore(text)
	visual = visualSpacingScore(f, ctx.Neighbors)
	sequential = sequentialScore(text)

	final := font*0.25 + position*0.20 + semantic*0.25 + visual*0.15 + sequential*0.15

	if final > 0.3 {
		return 0.8
	}
	return 0
}

// mlFeatures are the surface features feeding the statistical scorer.
type mlFeatures struct {
	length          int
	wordCount       int
	uppercaseRatio  float64
	punctRatio      float64
	titleCaseWords  int
	startsWithDigit bool
	containsColon   bool
	hasParens       bool
	sentenceCount   int
}

func extractFeatures(text string) mlFeatures {
	words := strings.Fields(text)
	titleWords := 0
	for _, w := range words {
		if isTitleCase(w) {
			titleWords++
		}
	}
	punct := 0
	for _, r := range text {
		if strings.ContainsRune(".,;:!?", r) {
			punct++
		}
	}
	n := len([]rune(text))
	var punctRatio float64
	if n > 0 {
		punctRatio = float64(punct) / float64(n)
	}
	return mlFeatures{
		length:          len(text),
		wordCount:       len(words),
		uppercaseRatio:  uppercaseRatio(text),
		punctRatio:      punctRatio,
		titleCaseWords:  titleWords,
		startsWithDigit: leadingDigit.MatchString(text),
		containsColon:   strings.Contains(text, ":"),
		hasParens:       strings.Contains(text, "(") && strings.Contains(text, ")"),
		sentenceCount:   strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?"),
	}
}

// scoreStatistical applies fixed additive/subtractive rules over the
// surface features.
func scoreStatistical(f fragment.TextFragment, _ Context) float64 {
	ft := extractFeatures(strings.TrimSpace(f.Text))
	score := 0.0

	switch {
	case ft.length >= 5 && ft.length <= 80:
		score += 0.2
	case ft.length > 100:
		score -= 0.3
	}
	switch {
	case ft.wordCount >= 1 && ft.wordCount <= 10:
		score += 0.2
	case ft.wordCount > 15:
		score -= 0.2
	}
	switch {
	case ft.uppercaseRatio >= 0.3 && ft.uppercaseRatio <= 0.8:
		score += 0.3
	case ft.uppercaseRatio > 0.9:
		score += 0.1
	}
	switch {
	case ft.punctRatio < 0.1:
		score += 0.2
	case ft.punctRatio > 0.3:
		score -= 0.3
	}
	if float64(ft.titleCaseWords) >= float64(ft.wordCount)*0.5 {
		score += 0.3
	}
	if ft.containsColon {
		score += 0.1
	}
	if ft.hasParens {
		score += 0.1
	}
	if ft.startsWithDigit {
		score += 0.2
	}
	switch {
	case ft.sentenceCount == 0:
		score += 0.2
	case ft.sentenceCount > 2:
		score -= 0.4
	}
	return clamp01(score)
}

// scorePattern measures structural match strength: numbering, chapter
// markers, trailing question marks, short title-cased phrases.
func scorePattern(f fragment.TextFragment, _ Context) float64 {
	text := strings.TrimSpace(f.Text)
	score := 0.0

	switch {
	case numberedPattern.MatchString(text):
		score += 0.4
	case subNumberedPattern.MatchString(text):
		score += 0.3
	case subSubNumbered.MatchString(text):
		score += 0.2
	}
	if letteredPattern.MatchString(text) {
		score += 0.3
	}
	if romanPattern.MatchString(text) {
		score += 0.3
	}
	if chapterAppendix.MatchString(text) {
		score += 0.5
	}
	if strings.HasSuffix(text, "?") {
		score += 0.2
	}
	if len(strings.Fields(text)) <= 5 && isTitleCase(text) {
		score += 0.3
	}
	return clamp01(score)
}

// scoreLanguageSpecific measures keyword overlap against the table for
// the detected language. Japanese and Chinese also score their own
// chapter numbering forms.
func scoreLanguageSpecific(f fragment.TextFragment, ctx Context) float64 {
	text := strings.TrimSpace(f.Text)
	lower := strings.ToLower(text)
	score := 0.0

	for _, kw := range lang.Keywords(ctx.Language) {
		if strings.Contains(lower, kw) {
			score += 0.2
		}
	}

	if ctx.Language == lang.Japanese || ctx.Language == lang.Chinese {
		switch {
		case cjkChapterPattern.MatchString(text):
			score += 0.4
		case cjkNumberedPattern.MatchString(text):
			score += 0.3
		}
	}
	return clamp01(score)
}

// scorePosition uses only the local window: a larger vertical gap
// before the fragment than after it, and a page-top position, both
// argue for a heading.
func scorePosition(f fragment.TextFragment, ctx Context) float64 {
	if len(ctx.Neighbors.Prev)+len(ctx.Neighbors.Next) == 0 {
		return 0.5 // neutral for the first fragment
	}

	score := 0.0
	if prevY, ok := maxYBelow(f, ctx.Neighbors); ok {
		switch spacing := f.Y - prevY; {
		case spacing > 50:
			score += 0.4
		case spacing > 20:
			score += 0.2
		}
	}
	if f.Y > 800 {
		score += 0.2
	}
	return clamp01(score)
}

// scoreFontAgnostic deliberately ignores font size. It combines
// page-top position, semantic keywords, structural shape and spacing
// so the ensemble survives unreliable typography metadata.
func scoreFontAgnostic(f fragment.TextFragment, ctx Context) float64 {
	text := strings.TrimSpace(f.Text)

	if len(text) < 3 || len(text) > 100 {
		return 0
	}
	if strings.Count(text, ".") > 2 {
		return 0
	}
	if lowercaseRatio(text) > 0.8 {
		return 0
	}

	score := 0.0
	switch {
	case f.Y > 800:
		score += 0.4
	case isSectionStart(f, ctx.Neighbors):
		score += 0.3
	}
	score += flatSemanticScore(text) * 0.3
	score += structureScore(text) * 0.3
	score += visualHierarchyScore(f, ctx.Neighbors) * 0.2
	return clamp01(score)
}

// richSemanticScore is the semantic component of the multi-modal
// composite: keyword hits plus generous case-shape bonuses.
func richSemanticScore(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0
	for _, kw := range genericKeywords {
		if strings.Contains(lower, kw) {
			score += 0.15
		}
	}
	if isTitleCase(text) {
		score += 0.4
	}
	if isAllUpper(text) && len(text) < 50 {
		score += 0.3
	}
	if len(strings.Fields(text)) <= 3 && isTitleCase(text) {
		score += 0.2
	}
	return clamp01(score)
}

// flatSemanticScore is the leaner semantic component of the
// font-agnostic composite.
func flatSemanticScore(text string) float64 {
	lower := strings.ToLower(text)
	score := 0.0
	for _, kw := range genericKeywords {
		if strings.Contains(lower, kw) {
			score += 0.1
		}
	}
	if isTitleCase(text) {
		score += 0.3
	}
	if isAllUpper(text) && len(text) < 50 {
		score += 0.2
	}
	if strings.HasSuffix(text, "?") {
		score += 0.2
	}
	return clamp01(score)
}

// structureScore is the numbering/section-shape component of the
// font-agnostic composite.
func structureScore(text string) float64 {
	score := 0.0
	switch {
	case numberedPattern.MatchString(text):
		score += 0.4
	case subNumberedPattern.MatchString(text):
		score += 0.3
	case subSubNumbered.MatchString(text):
		score += 0.2
	}
	if letteredPattern.MatchString(text) {
		score += 0.3
	}
	if romanPattern.MatchString(text) {
		score += 0.3
	}
	if chapterAppendix.MatchString(text) {
		score += 0.5
	}
	if len(strings.Fields(text)) <= 5 && isTitleCase(text) {
		score += 0.3
	}
	if strings.Contains(text, ":") {
		score += 0.1
	}
	return clamp01(score)
}

// sequentialScore is the numbering component of the multi-modal
// composite; unlike structureScore it weights chapter markers without
// appendices and skips the colon bonus.
func sequentialScore(text string) float64 {
	score := 0.0
	switch {
	case numberedPattern.MatchString(text):
		score += 0.4
	case subNumberedPattern.MatchString(text):
		score += 0.3
	case subSubNumbered.MatchString(text):
		score += 0.2
	}
	if letteredPattern.MatchString(text) {
		score += 0.3
	}
	if romanPattern.MatchString(text) {
		score += 0.3
	}
	if chapterPattern.MatchString(text) {
		score += 0.5
	}
	return score
}

// visualSpacingScore gives a flat bonus when either vertical gap around
// the fragment is pronounced.
func visualSpacingScore(f fragment.TextFragment, w fragment.Window) float64 {
	if len(w.Prev) == 0 || len(w.Next) == 0 {
		return 0
	}
	before := abs(f.Y - w.Prev[len(w.Prev)-1].Y)
	after := abs(w.Next[0].Y - f.Y)
	if before > 30 || after > 30 {
		return 0.4
	}
	return 0
}

// visualHierarchyScore is the spacing component of the font-agnostic
// composite; boldness counts here because weight is not size.
func visualHierarchyScore(f fragment.TextFragment, w fragment.Window) float64 {
	if len(w.Prev)+len(w.Next) == 0 {
		return 0.5
	}
	score := 0.0
	if prevY, ok := maxYBelow(f, w); ok && f.Y-prevY > 30 {
		score += 0.3
	}
	if nextY, ok := minYAbove(f, w); ok && nextY-f.Y > 30 {
		score += 0.2
	}
	if f.IsBold {
		score += 0.2
	}
	return clamp01(score)
}

// isSectionStart reports a large vertical gap between the fragment and
// the closest preceding material in the window.
func isSectionStart(f fragment.TextFragment, w fragment.Window) bool {
	if len(w.Prev) == 0 {
		return true
	}
	prevY, ok := maxYBelow(f, w)
	if !ok {
		return true
	}
	return f.Y-prevY > 50
}

// maxYBelow finds the highest neighbor positioned below the fragment.
func maxYBelow(f fragment.TextFragment, w fragment.Window) (float64, bool) {
	found := false
	best := 0.0
	for _, n := range append(append([]fragment.TextFragment{}, w.Prev...), w.Next...) {
		if n.Y < f.Y && (!found || n.Y > best) {
			best = n.Y
			found = true
		}
	}
	return best, found
}

// minYAbove finds the lowest neighbor positioned above the fragment.
func minYAbove(f fragment.TextFragment, w fragment.Window) (float64, bool) {
	found := false
	best := 0.0
	for _, n := range append(append([]fragment.TextFragment{}, w.Prev...), w.Next...) {
		if n.Y > f.Y && (!found || n.Y < best) {
			best = n.Y
			found = true
		}
	}
	return best, found
}
