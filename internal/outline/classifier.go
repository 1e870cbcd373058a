package outline

import (
	"regexp"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
)

// ClassifierConfig exposes the ensemble's tunables. The defaults are
// load-bearing: downstream expectations were calibrated against these
// exact weights and thresholds.
type ClassifierConfig struct {
	// Thresholds on the final ensemble score, highest level first.
	H1Threshold float64
	H2Threshold float64
	H3Threshold float64
	H4Threshold float64

	// MainSectionKeywords force an immediate H1, bypassing scoring.
	MainSectionKeywords []string

	// TitlePhrases mark text already consumed by title extraction.
	TitlePhrases []string

	// MinY rejects fragments too close to the page bottom.
	MinY float64
}

// DefaultClassifierConfig returns the calibrated defaults.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		H1Threshold: 0.5,
		H2Threshold: 0.35,
		H3Threshold: 0.2,
		H4Threshold: 0.1,
		// Multi-word phrases only: bare words like "background" appear
		// in running prose and would short-circuit the scorers.
		MainSectionKeywords: []string{
			"executive summary", "statement of work",
			"terms of reference", "table of annexes",
			"evaluation and awarding of contract",
		},
		TitlePhrases: []string{
			"rfp:", "request for proposal", "proposal for", "business plan",
		},
		MinY: 30,
	}
}

// Classifier decides, per fragment, heading level or none.
type Classifier struct {
	cfg     ClassifierConfig
	signals []Signal
}

// NewClassifier builds a classifier with the default signal set.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{cfg: cfg, signals: defaultSignals()}
}

// nonHeadingPatterns are shapes that are clearly body noise: bare
// numbers, money, percentages, funding lines, years, dates.
var nonHeadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`^\$\d+`),
	regexp.MustCompile(`^\d+%$`),
	regexp.MustCompile(`^\d+\.\d+%$`),
	regexp.MustCompile(`^\d+M\s*\(\d+%\)$`),
	regexp.MustCompile(`^[A-Z]\s*$`),
	regexp.MustCompile(`^\d+\.\d+$`),
	regexp.MustCompile(`^(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}$`),
	regexp.MustCompile(`^\d{4}$`),
}

// garbleCasePattern flags OCR artifacts where case flips mid-word
// ("Prr oPosal"). Camel-case brand names are an accepted false
// positive.
var garbleCasePattern = regexp.MustCompile(`[a-z]{1,2}[A-Z]{1,2}[a-z]{1,2}`)

// Classify returns the heading level for a fragment, or ok=false when
// it is body text. Pre-filters short-circuit: a rejected fragment is
// never a heading regardless of what the signals would say.
func (c *Classifier) Classify(f fragment.TextFragment, ctx Context) (Level, bool) {
	text := strings.TrimSpace(f.Text)

	if len(text) < 3 || len(text) > 150 {
		return "", false
	}
	if strings.Count(text, ".") > 3 {
		return "", false
	}
	if lowercaseRatio(text) > 0.85 {
		return "", false
	}
	if f.Y < c.cfg.MinY {
		return "", false
	}
	if looksGarbled(text) {
		return "", false
	}
	for _, p := range nonHeadingPatterns {
		if p.MatchString(text) {
			return "", false
		}
	}
	if containsAnyFold(text, c.cfg.TitlePhrases) {
		return "", false
	}

	// Hard override: main section names are H1 no matter what the
	// scores say.
	if containsAnyFold(text, c.cfg.MainSectionKeywords) {
		return H1, true
	}

	final := 0.0
	for _, sig := range c.signals {
		final += sig.Score(f, ctx) * sig.Weight
	}

	switch {
	case final > c.cfg.H1Threshold:
		return H1, true
	case final > c.cfg.H2Threshold:
		return H2, true
	case final > c.cfg.H3Threshold:
		return H3, true
	case final > c.cfg.H4Threshold:
		return H4, true
	}
	return "", false
}

// looksGarbled detects OCR corruption: long same-letter runs, a word
// echoed three times, or mid-word case flips.
func looksGarbled(text string) bool {
	run := 1
	var prev rune
	for _, r := range text {
		if r == prev && isASCIILetter(r) {
			run++
			if run >= 4 {
				return true
			}
		} else {
			run = 1
		}
		prev = r
	}

	words := strings.Fields(text)
	for i := 0; i+2 < len(words); i++ {
		if words[i] == words[i+1] && words[i+1] == words[i+2] && hasLetter(words[i]) {
			return true
		}
	}

	return garbleCasePattern.MatchString(text)
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
