package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
)

// TextRenderer handles plain text files. Every non-blank line becomes
// one fragment with uniform typography and synthetic positions.
type TextRenderer struct{}

func (p *TextRenderer) Render(r io.Reader, filename string) ([]fragment.TextFragment, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frags []fragment.TextFragment
	var pl placer
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			pl.next() // blank lines still consume vertical space
			continue
		}
		frags = pl.emit(frags, line, 0)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return frags, nil
}

// DegradedFragments fabricates fragments from raw text when a real
// renderer fails entirely: uniform font size, everything on page 1,
// synthetic descending positions. Best-effort continuity beats
// aborting the document.
func DegradedFragments(text string) []fragment.TextFragment {
	var frags []fragment.TextFragment
	for i, line := range strings.Split(text, "\n") {
		line = cleanText(line)
		if line == "" {
			continue
		}
		frags = append(frags, fragment.TextFragment{
			Text:     line,
			FontSize: 12.0,
			FontName: "default",
			Page:     1,
			Y:        1000 - float64(i),
		})
	}
	return frags
}
