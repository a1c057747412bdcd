package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
)

const (
	starFilled = "★"
	starEmpty  = "☆"
	starCount  = 5
)

// starStates returns the five star positions; index < rating is filled.
// The rating is not clamped.
func starStates(rating int) []bool {
	out := make([]bool, starCount)
	for i := range out {
		out[i] = i < rating
	}
	return out
}

// renderStars draws the five star positions for a rating
func renderStars(rating int) string {
	return renderStarStates(starStates(rating))
}

// renderPriceLine draws price, struck-through original price and sale badge
func renderPriceLine(p types.Product) string {
	parts := []string{PriceStyle.Render(types.FormatPrice(p.Price()))}
	if orig, ok := p.OriginalPrice(); ok {
		parts = append(parts, OriginalPriceStyle.Render(types.FormatPrice(orig)))
	}
	if d, ok := p.SaleDiscount(); ok {
		parts = append(parts, BadgeStyle.Render(fmt.Sprintf("-%d%%", d)))
	}
	return strings.Join(parts, " ")
}

// renderCard draws a grid card for a product
func renderCard(p types.Product, selected bool) string {
	inner := CardWidth - 4 // border + padding
	name := truncate(p.Name(), inner)
	image := truncate(fmt.Sprintf("[%s]", p.Image()), inner)

	lines := []string{
		ImageStyle.Render(image),
		ProductNameStyle.Render(name),
		renderStars(p.Rating()) + SubtleStyle.Render(fmt.Sprintf(" (%s)", formatCount(p.Reviews()))),
		renderPriceLine(p),
	}

	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	return style.Width(CardWidth - 2).Render(strings.Join(lines, "\n"))
}

// ProductDelegate renders products in the single-column list view mode
type ProductDelegate struct{}

// Height returns the height of a list item (3 lines)
func (d ProductDelegate) Height() int {
	return 3
}

// Spacing returns the spacing between list items
func (d ProductDelegate) Spacing() int {
	return 1
}

// Update handles updates for the delegate (no-op for products)
func (d ProductDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

// Render renders a single product item
func (d ProductDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	product, ok := item.(types.Product)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	// Line 1: Id + Name + Price
	idStr := fmt.Sprintf("#%-3d", product.ID())
	priceStr := types.FormatPrice(product.Price())
	availableForName := m.Width() - lipgloss.Width(idStr) - lipgloss.Width(priceStr) - 1
	nameStr := pad(truncate(product.Name(), availableForName), availableForName)

	var line1 string
	if isSelected {
		idStyle := lipgloss.NewStyle().Foreground(DraculaCyan).Bold(true)
		nameStyle := lipgloss.NewStyle().Foreground(DraculaPink).Bold(true)
		line1 = idStyle.Render(idStr) + nameStyle.Render(nameStr) + " " + PriceStyle.Render(priceStr)
	} else {
		idStyle := lipgloss.NewStyle().Foreground(DraculaComment)
		line1 = idStyle.Render(idStr) + ProductNameStyle.UnsetBold().Render(nameStr) + " " + PriceStyle.UnsetBold().Render(priceStr)
	}

	// Line 2: Stars, reviews, original price and badge (indented)
	indent := "    "
	line2 := indent + renderStars(product.Rating()) +
		SubtleStyle.Render(fmt.Sprintf(" %d (%d reviews)", product.Rating(), product.Reviews()))
	if orig, ok := product.OriginalPrice(); ok {
		line2 += " " + OriginalPriceStyle.Render(types.FormatPrice(orig))
	}
	if disc, ok := product.SaleDiscount(); ok {
		line2 += " " + BadgeStyle.Render(fmt.Sprintf("Save %d%%", disc))
	}

	// Line 3: Image reference (indented, dimmed)
	line3 := indent + ImageStyle.Render(truncate(product.Image(), m.Width()-len(indent)))

	fmt.Fprint(w, line1+"\n"+line2+"\n"+line3)
}

// truncate shortens s to at most width cells, ending with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// pad right-pads s with spaces to width cells
func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// formatCount formats a count with K/M suffixes
// 1000 -> "1.0K", 1422 -> "1.4K", 1000000 -> "1.0M"
func formatCount(count int) string {
	if count >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(count)/1000000)
	}
	if count >= 1000 {
		return fmt.Sprintf("%.1fK", float64(count)/1000)
	}
	return fmt.Sprintf("%d", count)
}
