// Package markdown converts post sources to HTML fragments.
package markdown

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/util"
)

// Converter renders Markdown to HTML with fenced code blocks
// syntax-highlighted through chroma. The language is guessed when a
// fence carries no hint; line numbers are never emitted. Highlighted
// blocks are wrapped in a div with the "highlight" class so the
// stylesheets shipped with the site keep applying.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter builds a converter. It is configured once per run and
// reused for every post.
func NewConverter() *Converter {
	return &Converter{
		md: goldmark.New(
			goldmark.WithExtensions(
				highlighting.NewHighlighting(
					highlighting.WithGuessLanguage(true),
					highlighting.WithFormatOptions(
						chromahtml.WithClasses(true),
						chromahtml.WithLineNumbers(false),
					),
					highlighting.WithWrapperRenderer(renderHighlightWrapper),
				),
			),
		),
	}
}

func renderHighlightWrapper(w util.BufWriter, _ highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="highlight">`)
	} else {
		_, _ = w.WriteString("</div>\n")
	}
}

// Convert renders src to an HTML fragment.
func (c *Converter) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
