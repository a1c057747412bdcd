package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const landingCopy = `# Ready to Build

Your clean canvas awaits. Start creating something beautiful.`

// LandingModel is the static placeholder screen. It has no state and no
// operations; Render only lays the copy out for the given size.
type LandingModel struct {
	markdown markdown
}

// NewLandingModel creates the landing screen
func NewLandingModel(opts Options) LandingModel {
	return newLandingModel(newMarkdown(opts.MarkdownStyle, opts.MarkdownWrap))
}

func newLandingModel(md markdown) LandingModel {
	return LandingModel{markdown: md}
}

// Render draws the landing copy centered in width x height.
// A zero size skips the centering.
func (l LandingModel) Render(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		l.markdown.render(landingCopy),
		"",
		LandingDividerStyle.Render(strings.Repeat("─", 12)),
		"",
		LandingDotStyle.Render("●"),
	)
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
