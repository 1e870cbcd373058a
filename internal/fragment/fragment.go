package fragment

import "strings"

// TextFragment is one line of extracted text with position and style
// metadata. Fragments arrive in reading order: page ascending, then
// extraction order within a page. Y uses a bottom-origin coordinate,
// so larger values are closer to the page top.
type TextFragment struct {
	Text     string
	FontSize float64
	FontName string
	IsBold   bool
	Page     int
	Y        float64
}

// Profile holds document-wide statistics computed once after rendering
// and read-only for the remainder of the run.
type Profile struct {
	AvgFontSize float64
	MaxFontSize float64
}

// NewProfile computes font statistics over all fragments.
func NewProfile(frags []TextFragment) Profile {
	if len(frags) == 0 {
		return Profile{}
	}
	var sum, max float64
	for _, f := range frags {
		sum += f.FontSize
		if f.FontSize > max {
			max = f.FontSize
		}
	}
	return Profile{
		AvgFontSize: sum / float64(len(frags)),
		MaxFontSize: max,
	}
}

// Window is the local neighborhood of a fragment, used by the spacing
// and position signals. Prev holds up to three preceding fragments in
// reading order, Next up to three following ones.
type Window struct {
	Prev []TextFragment
	Next []TextFragment
}

// WindowAt builds the neighbor window around index i.
func WindowAt(frags []TextFragment, i int) Window {
	var w Window
	lo := i - 3
	if lo < 0 {
		lo = 0
	}
	w.Prev = frags[lo:i]
	hi := i + 4
	if hi > len(frags) {
		hi = len(frags)
	}
	if i+1 < hi {
		w.Next = frags[i+1 : hi]
	}
	return w
}

// IsBoldFont is a best-effort lexical guess: PDF font names embed the
// weight, e.g. "Helvetica-Bold" or "Arial Black".
func IsBoldFont(name string) bool {
	n := strings.ToLower(name)
	return strings.Contains(n, "bold") || strings.Contains(n, "black")
}
