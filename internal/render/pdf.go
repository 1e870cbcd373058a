package render

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dgallion1/outliner/internal/fragment"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFRenderer extracts positioned, style-annotated lines from PDF
// files. When structured extraction fails it degrades to plain text
// with fabricated typography rather than failing the document.
type PDFRenderer struct{}

func (p *PDFRenderer) Render(r io.Reader, filename string) ([]fragment.TextFragment, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	frags, err := extractPositionedText(tmpPath)
	if err != nil || len(frags) == 0 {
		// Degraded path: plain text, uniform fonts, synthetic positions.
		text, perr := extractPlainText(tmpPath)
		if perr != nil {
			if err == nil {
				err = perr
			}
			return nil, fmt.Errorf("extract pdf text: %w", err)
		}
		return DegradedFragments(text), nil
	}
	return frags, nil
}

func extractPositionedText(path string) ([]fragment.TextFragment, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var frags []fragment.TextFragment
	numPages := reader.NumPage()
	for n := 1; n <= numPages; n++ {
		page := reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		// Top-down reading order: Position is bottom-origin.
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Position > rows[j].Position
		})

		for _, row := range rows {
			if len(row.Content) == 0 {
				continue
			}
			var sb []byte
			for _, t := range row.Content {
				sb = append(sb, t.S...)
			}
			text := cleanText(string(sb))
			if text == "" {
				continue
			}
			size, name := dominantFont(row.Content)
			frags = append(frags, fragment.TextFragment{
				Text:     text,
				FontSize: size,
				FontName: name,
				IsBold:   fragment.IsBoldFont(name),
				Page:     n,
				Y:        float64(row.Position),
			})
		}
	}
	return frags, nil
}

// dominantFont returns the most common font size and name in a row;
// runs within a line often mix fonts at word boundaries.
func dominantFont(texts []pdflib.Text) (float64, string) {
	sizeCount := make(map[float64]int)
	nameCount := make(map[string]int)
	var sizes []float64
	var names []string
	for _, t := range texts {
		if sizeCount[t.FontSize] == 0 {
			sizes = append(sizes, t.FontSize)
		}
		sizeCount[t.FontSize]++
		if t.Font != "" {
			if nameCount[t.Font] == 0 {
				names = append(names, t.Font)
			}
			nameCount[t.Font]++
		}
	}

	bestSize := 0.0
	bestN := 0
	for _, s := range sizes {
		if sizeCount[s] > bestN {
			bestSize, bestN = s, sizeCount[s]
		}
	}
	bestName := ""
	bestN = 0
	for _, n := range names {
		if nameCount[n] > bestN {
			bestName, bestN = n, nameCount[n]
		}
	}
	return bestSize, bestName
}

func extractPlainText(path string) (string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var out []byte
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if i > 1 {
			out = append(out, '\n')
		}
		out = append(out, text...)
	}
	return string(out), nil
}
