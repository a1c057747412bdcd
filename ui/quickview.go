package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
)

const productDescription = `### Description

This premium product offers exceptional quality and performance. Built with the latest technology and designed for durability, it's the perfect choice for customers who demand excellence.`

var productInfo = []string{
	"Free shipping on orders over $50",
	"30-day return policy",
	"1-year manufacturer warranty",
	"Secure payment processing",
}

// quickViewControl is a focusable control of the panel
type quickViewControl int

const (
	controlClose quickViewControl = iota
	controlDecrement
	controlIncrement
	controlCart
	controlWishlist
	controlCount
)

// QuickViewContent is the structured content of an open panel
type QuickViewContent struct {
	Name              string
	Image             string
	ImagePosition     int
	ImageCount        int
	ImageBadge        string
	Stars             []bool
	RatingText        string
	Price             string
	OriginalPrice     string
	SaveBadge         string
	Quantity          int
	DecrementDisabled bool
}

// QuickViewModel shows one product's detail in an overlay.
// It owns its quantity counter; a new panel starts at quantity 1.
type QuickViewModel struct {
	selection types.Selection
	open      bool
	quantity  int
	focus     quickViewControl
	image     int
	viewport  viewport.Model
	markdown  markdown
	keys      quickViewKeyMap
	width     int
	height    int
}

// NewQuickViewModel mounts a panel for the given selection
func NewQuickViewModel(selection types.Selection, open bool, md markdown) QuickViewModel {
	return QuickViewModel{
		selection: selection,
		open:      open,
		quantity:  1,
		focus:     controlClose,
		viewport:  viewport.New(0, 0),
		markdown:  md,
		keys:      quickViewKeys,
	}
}

// Init initializes the model
func (m QuickViewModel) Init() tea.Cmd {
	return nil
}

// Quantity returns the current quantity
func (m QuickViewModel) Quantity() int { return m.quantity }

// IsOpen reports whether the panel is shown
func (m QuickViewModel) IsOpen() bool { return m.open }

// Selection returns the product the panel was mounted with
func (m QuickViewModel) Selection() types.Selection { return m.selection }

// KeyMap returns the panel key bindings for help rendering
func (m QuickViewModel) KeyMap() help.KeyMap { return m.keys }

// Increment raises the quantity by one
func (m *QuickViewModel) Increment() {
	m.quantity++
	m.refresh()
}

// Decrement lowers the quantity by one, never below 1
func (m *QuickViewModel) Decrement() {
	if m.quantity > 1 {
		m.quantity--
		m.refresh()
	}
}

// SetSize sizes the scrollable content area to the terminal
func (m *QuickViewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	w, h := newLayoutConfig(width, height, 0).modalSize()
	frameW, frameH := ModalStyle.GetFrameSize()
	m.viewport.Width = max(w-frameW, 0)
	m.viewport.Height = max(h-frameH, 0)
	m.refresh()
}

// Update handles messages
func (m QuickViewModel) Update(msg tea.Msg) (QuickViewModel, tea.Cmd) {
	if _, ok := m.selection.Product(); !ok || !m.open {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Close):
			return m, requestClose()
		case key.Matches(msg, m.keys.Increment):
			m.Increment()
			return m, nil
		case key.Matches(msg, m.keys.Decrement):
			m.Decrement()
			return m, nil
		case key.Matches(msg, m.keys.Cart), key.Matches(msg, m.keys.Wishlist):
			// No cart or wishlist exists
			return m, nil
		case key.Matches(msg, m.keys.NextFocus):
			m.focus = (m.focus + 1) % controlCount
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PrevFocus):
			m.focus = (m.focus + controlCount - 1) % controlCount
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Activate):
			return m.activate()
		case key.Matches(msg, m.keys.PrevImage):
			m.cycleImage(-1)
			return m, nil
		case key.Matches(msg, m.keys.NextImage):
			m.cycleImage(1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m QuickViewModel) activate() (QuickViewModel, tea.Cmd) {
	switch m.focus {
	case controlClose:
		return m, requestClose()
	case controlDecrement:
		m.Decrement()
	case controlIncrement:
		m.Increment()
	}
	return m, nil
}

func (m *QuickViewModel) cycleImage(delta int) {
	p, ok := m.selection.Product()
	if !ok {
		return
	}
	n := len(p.Gallery())
	m.image = ((m.image+delta)%n + n) % n
	m.refresh()
}

// Content returns the panel content, or false when no product is selected
func (m QuickViewModel) Content() (QuickViewContent, bool) {
	p, ok := m.selection.Product()
	if !ok {
		return QuickViewContent{}, false
	}

	gallery := p.Gallery()
	c := QuickViewContent{
		Name:              p.Name(),
		Image:             gallery[m.image%len(gallery)],
		ImagePosition:     m.image%len(gallery) + 1,
		ImageCount:        len(gallery),
		Stars:             starStates(p.Rating()),
		RatingText:        fmt.Sprintf("%d (%d reviews)", p.Rating(), p.Reviews()),
		Price:             types.FormatPrice(p.Price()),
		Quantity:          m.quantity,
		DecrementDisabled: m.quantity <= 1,
	}
	if orig, ok := p.OriginalPrice(); ok {
		c.OriginalPrice = types.FormatPrice(orig)
	}
	if d, ok := p.SaleDiscount(); ok {
		c.ImageBadge = fmt.Sprintf("-%d%%", d)
		c.SaveBadge = fmt.Sprintf("Save %d%%", d)
	}
	return c, true
}

// View renders the panel; empty when closed or without a product
func (m QuickViewModel) View() string {
	if !m.open {
		return ""
	}
	body, ok := m.body()
	if !ok {
		return ""
	}
	if m.viewport.Height == 0 {
		return ModalStyle.Render(body)
	}
	return ModalStyle.Render(m.viewport.View())
}

func (m *QuickViewModel) refresh() {
	if body, ok := m.body(); ok {
		m.viewport.SetContent(body)
	}
}

func (m QuickViewModel) body() (string, bool) {
	c, ok := m.Content()
	if !ok {
		return "", false
	}

	var b strings.Builder

	// Header: close control
	b.WriteString(m.button("[x]", controlClose, false))
	b.WriteString("\n\n")

	// Image area
	image := ImageStyle.Render(fmt.Sprintf("[%s]", c.Image)) +
		SubtleStyle.Render(fmt.Sprintf("  %d/%d", c.ImagePosition, c.ImageCount))
	if c.ImageBadge != "" {
		image = BadgeStyle.Render(c.ImageBadge) + " " + image
	}
	b.WriteString(image + "\n\n")

	// Name and rating
	b.WriteString(HeadingStyle.Render(c.Name) + "\n")
	b.WriteString(renderStarStates(c.Stars) + " " + SubtleStyle.Render(c.RatingText) + "\n\n")

	// Price
	price := []string{PriceStyle.Render(c.Price)}
	if c.OriginalPrice != "" {
		price = append(price, OriginalPriceStyle.Render(c.OriginalPrice))
	}
	if c.SaveBadge != "" {
		price = append(price, BadgeStyle.Render(c.SaveBadge))
	}
	b.WriteString(strings.Join(price, " ") + "\n\n")

	// Description
	b.WriteString(m.markdown.render(productDescription) + "\n\n")

	// Quantity stepper
	b.WriteString(SidebarSectionStyle.Render("Quantity") + "\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		m.button("[-]", controlDecrement, c.DecrementDisabled),
		fmt.Sprintf(" %3d ", c.Quantity),
		m.button("[+]", controlIncrement, false),
	))
	b.WriteString("\n\n")

	// Actions
	b.WriteString(m.button("Add to Cart", controlCart, false) + "  " +
		m.button("Add to Wishlist", controlWishlist, false))
	b.WriteString("\n\n")

	// Additional info
	info := make([]string, len(productInfo))
	for i, line := range productInfo {
		info[i] = SubtleStyle.Render("• " + line)
	}
	b.WriteString(strings.Join(info, "\n"))

	return b.String(), true
}

func (m QuickViewModel) button(label string, control quickViewControl, disabled bool) string {
	switch {
	case disabled:
		return ButtonDisabledStyle.Render(label)
	case m.focus == control:
		return ButtonFocusedStyle.Render(label)
	default:
		return ButtonStyle.Render(label)
	}
}

func renderStarStates(states []bool) string {
	var b strings.Builder
	for _, filled := range states {
		if filled {
			b.WriteString(StarFilledStyle.Render(starFilled))
		} else {
			b.WriteString(StarEmptyStyle.Render(starEmpty))
		}
	}
	return b.String()
}
