package ui

// Layout constants for terminal sizing
const (
	// Responsive breakpoints. The wide threshold is configurable and
	// defaults to DefaultWideWidth; the extra-wide one is derived from it.
	SmallWidth       = 60
	DefaultWideWidth = 120

	CardWidth      = 34
	SidebarWidth   = 30
	SliderWidth    = 20
	ModalMaxWidth  = 96
	HelpHeight     = 1
	ModalHeightPct = 90
)

// layoutConfig provides breakpoint decisions for a terminal size
type layoutConfig struct {
	width     int
	height    int
	wideWidth int
}

func newLayoutConfig(width, height, wideWidth int) layoutConfig {
	if wideWidth <= 0 {
		wideWidth = DefaultWideWidth
	}
	return layoutConfig{width: width, height: height, wideWidth: wideWidth}
}

// isWide reports whether the sidebar sits beside the products and is
// always shown
func (l layoutConfig) isWide() bool {
	return l.width >= l.wideWidth
}

// extraWideWidth is the width from which the grid grows to three columns
func (l layoutConfig) extraWideWidth() int {
	return l.wideWidth + l.wideWidth/4
}

// gridColumns mirrors a 1 / 2 / 3 column responsive grid
func (l layoutConfig) gridColumns() int {
	switch {
	case l.width >= l.extraWideWidth():
		return 3
	case l.width >= SmallWidth:
		return 2
	default:
		return 1
	}
}

// modalSize returns the quick-view panel's outer width and height
func (l layoutConfig) modalSize() (int, int) {
	w := l.width - 4
	if w > ModalMaxWidth {
		w = ModalMaxWidth
	}
	if w < 0 {
		w = 0
	}
	h := l.height * ModalHeightPct / 100
	return w, h
}
