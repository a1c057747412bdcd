package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// markdown renders static copy through glamour. A nil renderer falls back
// to the raw text.
type markdown struct {
	renderer *glamour.TermRenderer
}

func newMarkdown(style string, wrap int) markdown {
	if wrap <= 0 {
		wrap = 72
	}
	var opt glamour.TermRendererOption
	switch style {
	case "", "auto":
		opt = glamour.WithAutoStyle()
	default:
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(wrap))
	if err != nil {
		return markdown{}
	}
	return markdown{renderer: r}
}

func (md markdown) render(src string) string {
	if md.renderer == nil {
		return src
	}
	out, err := md.renderer.Render(src)
	if err != nil {
		return src
	}
	return strings.Trim(out, "\n")
}
