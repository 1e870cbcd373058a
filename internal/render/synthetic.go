package render

import "github.com/dgallion1/outliner/internal/fragment"

// Synthetic layout constants for formats without real coordinates.
// Lines flow top-down from y=750 in 14pt steps, 50 lines per page,
// mirroring a letter-sized page in a bottom-origin coordinate system.
const (
	synthTopY        = 750.0
	synthLineStep    = 14.0
	synthLinesPerPag = 50
)

// Synthetic font sizes keyed by structural heading level. Body text is
// 10pt so level-derived sizes band well above the document average.
var levelFontSize = map[int]float64{
	1: 24, 2: 20, 3: 17, 4: 15, 5: 13, 6: 12,
}

const bodyFontSize = 10.0

// placer fabricates page numbers and descending y positions for
// structure-only formats.
type placer struct {
	line int
}

func (p *placer) next() (page int, y float64) {
	page = p.line/synthLinesPerPag + 1
	y = synthTopY - synthLineStep*float64(p.line%synthLinesPerPag)
	p.line++
	return page, y
}

// emit appends a fragment at the next synthetic position. level 0 is
// body text; 1-6 map to heading font sizes with a bold flag.
func (p *placer) emit(frags []fragment.TextFragment, text string, level int) []fragment.TextFragment {
	text = cleanText(text)
	if text == "" {
		return frags
	}
	size := bodyFontSize
	bold := false
	name := "synthetic"
	if level > 0 {
		size = levelFontSize[level]
		bold = true
		name = "synthetic-bold"
	}
	page, y := p.next()
	return append(frags, fragment.TextFragment{
		Text:     text,
		FontSize: size,
		FontName: name,
		IsBold:   bold,
		Page:     page,
		Y:        y,
	})
}
