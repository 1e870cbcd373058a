package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/outliner/internal/fragment"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownRenderer handles Markdown files using goldmark. Heading
// levels map to synthetic font sizes so downstream typography signals
// keep working.
type MarkdownRenderer struct{}

func (p *MarkdownRenderer) Render(r io.Reader, filename string) ([]fragment.TextFragment, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var frags []fragment.TextFragment
	var pl placer

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			frags = pl.emit(frags, string(node.Text(src)), node.Level)
		default:
			for _, line := range strings.Split(extractText(n, src), "\n") {
				frags = pl.emit(frags, line, 0)
			}
		}
	}
	return frags, nil
}

// extractText gets the text content of a goldmark AST node. A block
// node's Lines() already span the source its inline children cover, so
// the child walk runs only when no block lines exist (container nodes
// like lists); doing both would emit every paragraph twice.
func extractText(n ast.Node, src []byte) string {
	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines.Len() > 0 {
			var buf bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(src))
			}
			return strings.TrimSpace(buf.String())
		}
	}
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
