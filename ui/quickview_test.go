package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/types"
)

func openQuickView(t *testing.T, id int) QuickViewModel {
	t.Helper()
	p, err := catalog.New().Product(id)
	if err != nil {
		t.Fatalf("Product(%d): %v", id, err)
	}
	return NewQuickViewModel(types.Selected(p), true, markdown{})
}

func TestQuickView_StartsAtQuantityOne(t *testing.T) {
	m := openQuickView(t, 1)
	if m.Quantity() != 1 {
		t.Fatalf("Quantity() = %d, want 1", m.Quantity())
	}
	c, ok := m.Content()
	if !ok {
		t.Fatal("Content() not ok")
	}
	if !c.DecrementDisabled {
		t.Error("decrement should be disabled at quantity 1")
	}
}

func TestQuickView_QuantityFloor(t *testing.T) {
	m := openQuickView(t, 1)

	for i := 0; i < 3; i++ {
		m, _ = m.Update(runeKey("+"))
	}
	if m.Quantity() != 4 {
		t.Fatalf("after 3 increments Quantity() = %d, want 4", m.Quantity())
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(runeKey("-"))
	}
	if m.Quantity() != 1 {
		t.Fatalf("after 10 decrements Quantity() = %d, want 1", m.Quantity())
	}
}

func TestQuickView_NoUpperBound(t *testing.T) {
	m := openQuickView(t, 1)
	for i := 0; i < 500; i++ {
		m.Increment()
	}
	if m.Quantity() != 501 {
		t.Errorf("Quantity() = %d, want 501", m.Quantity())
	}
}

func TestQuickView_CloseEmitsIntent(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"x", runeKey("x")},
		{"enter on focused close", tea.KeyMsg{Type: tea.KeyEnter}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openQuickView(t, 2)
			_, cmd := m.Update(tt.msg)
			if cmd == nil {
				t.Fatal("expected close command")
			}
			if _, ok := cmd().(CloseQuickViewMsg); !ok {
				t.Errorf("cmd() = %T, want CloseQuickViewMsg", cmd())
			}
		})
	}
}

func TestQuickView_FocusActivation(t *testing.T) {
	m := openQuickView(t, 1)

	// close -> decrement -> increment
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("increment should not emit a command")
	}
	if m.Quantity() != 2 {
		t.Fatalf("Quantity() = %d, want 2", m.Quantity())
	}

	// back to decrement
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	if m.Quantity() != 1 {
		t.Errorf("Quantity() = %d, want 1", m.Quantity())
	}
}

func TestQuickView_CartAndWishlistAreInert(t *testing.T) {
	m := openQuickView(t, 1)
	m.Increment()

	for _, k := range []string{"c", "w"} {
		var cmd tea.Cmd
		m, cmd = m.Update(runeKey(k))
		if cmd != nil {
			t.Errorf("%q emitted a command", k)
		}
	}
	if m.Quantity() != 2 {
		t.Errorf("Quantity() = %d, want 2", m.Quantity())
	}
}

func TestQuickView_SaleContent(t *testing.T) {
	m := openQuickView(t, 3)

	got, ok := m.Content()
	if !ok {
		t.Fatal("Content() not ok")
	}
	want := QuickViewContent{
		Name:              "Luxury Smart Watch",
		Image:             catalog.Watch,
		ImagePosition:     1,
		ImageCount:        5,
		ImageBadge:        "-25%",
		Stars:             []bool{true, true, true, true, false},
		RatingText:        "4 (203 reviews)",
		Price:             "$399.99",
		OriginalPrice:     "$499.99",
		SaveBadge:         "Save 25%",
		Quantity:          1,
		DecrementDisabled: true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Content() mismatch (-want +got):\n%s", diff)
	}

	view := m.View()
	for _, s := range []string{"$399.99", "$499.99", "Save 25%", "-25%", "Luxury Smart Watch"} {
		if !strings.Contains(view, s) {
			t.Errorf("View() missing %q", s)
		}
	}
}

func TestQuickView_PlainContent(t *testing.T) {
	m := openQuickView(t, 2)

	c, ok := m.Content()
	if !ok {
		t.Fatal("Content() not ok")
	}
	if c.Price != "$999.99" {
		t.Errorf("Price = %q, want $999.99", c.Price)
	}
	if c.OriginalPrice != "" || c.SaveBadge != "" || c.ImageBadge != "" {
		t.Errorf("unexpected sale content: %+v", c)
	}

	view := m.View()
	if strings.Contains(view, "Save") {
		t.Error("View() should not show a save badge")
	}
}

func TestQuickView_OriginalPriceStruckThrough(t *testing.T) {
	if !OriginalPriceStyle.GetStrikethrough() {
		t.Fatal("OriginalPriceStyle should strike through")
	}
	withANSI(t)

	struck := struckText(openQuickView(t, 3).View())
	if !strings.Contains(struck, "$499.99") {
		t.Errorf("$499.99 should be struck through, struck text = %q", struck)
	}
	if strings.Contains(struck, "$399.99") {
		t.Error("the current price should not be struck through")
	}

	if struck := struckText(openQuickView(t, 2).View()); struck != "" {
		t.Errorf("product without an original price has struck text %q", struck)
	}
}

func TestQuickView_StaticCopy(t *testing.T) {
	view := openQuickView(t, 4).View()
	for _, s := range append([]string{"Description", "Add to Cart", "Add to Wishlist", "Quantity"}, productInfo...) {
		if !strings.Contains(view, s) {
			t.Errorf("View() missing %q", s)
		}
	}
}

func TestQuickView_ImageCycling(t *testing.T) {
	m := openQuickView(t, 2) // smartphone, headphones, camera

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	c, _ := m.Content()
	if c.Image != catalog.Headphones || c.ImagePosition != 2 {
		t.Errorf("after right: image %q at %d", c.Image, c.ImagePosition)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	c, _ = m.Content()
	if c.Image != catalog.Camera || c.ImagePosition != 3 {
		t.Errorf("after wrap: image %q at %d", c.Image, c.ImagePosition)
	}
}

func TestQuickView_EmptySelection(t *testing.T) {
	m := NewQuickViewModel(types.NoSelection(), true, markdown{})

	if m.View() != "" {
		t.Error("View() should be empty without a product")
	}
	if _, ok := m.Content(); ok {
		t.Error("Content() should not be ok without a product")
	}
	m, cmd := m.Update(runeKey("+"))
	if cmd != nil || m.Quantity() != 1 {
		t.Error("Update should be a no-op without a product")
	}
}

func TestQuickView_Closed(t *testing.T) {
	p, _ := catalog.New().Product(1)
	m := NewQuickViewModel(types.Selected(p), false, markdown{})

	if m.View() != "" {
		t.Error("View() should be empty when closed")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil {
		t.Error("closed panel should ignore keys")
	}
}

func TestQuickView_SizedViewport(t *testing.T) {
	m := openQuickView(t, 1)
	m.SetSize(100, 40)

	view := m.View()
	if !strings.Contains(view, "Premium Wireless Headphones") {
		t.Error("sized View() should show the product name")
	}
}
