package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	"github.com/google/go-cmp/cmp"
	"github.com/qyinm/shoptui/catalog"
)

func TestStarStates(t *testing.T) {
	tests := []struct {
		rating int
		want   []bool
	}{
		{0, []bool{false, false, false, false, false}},
		{1, []bool{true, false, false, false, false}},
		{3, []bool{true, true, true, false, false}},
		{5, []bool{true, true, true, true, true}},
		{-2, []bool{false, false, false, false, false}},
		{9, []bool{true, true, true, true, true}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, starStates(tt.rating)); diff != "" {
			t.Errorf("starStates(%d) mismatch (-want +got):\n%s", tt.rating, diff)
		}
	}
}

func TestRenderStars(t *testing.T) {
	got := renderStars(4)
	if strings.Count(got, starFilled) != 4 || strings.Count(got, starEmpty) != 1 {
		t.Errorf("renderStars(4) = %q", got)
	}
}

func TestRenderPriceLine(t *testing.T) {
	c := catalog.New()
	sale, _ := c.Product(1)
	plain, _ := c.Product(4)

	line := renderPriceLine(sale)
	for _, s := range []string{"$199.99", "$249.99", "-20%"} {
		if !strings.Contains(line, s) {
			t.Errorf("sale price line missing %q: %q", s, line)
		}
	}

	line = renderPriceLine(plain)
	if !strings.Contains(line, "$1299.99") || strings.Contains(line, "%") {
		t.Errorf("plain price line = %q", line)
	}
}

func TestRenderPriceLine_StrikesOriginalOnly(t *testing.T) {
	withANSI(t)
	c := catalog.New()
	sale, _ := c.Product(1)
	plain, _ := c.Product(2)

	if got := struckText(renderPriceLine(sale)); got != "$249.99" {
		t.Errorf("struck text = %q, want $249.99", got)
	}
	if got := struckText(renderPriceLine(plain)); got != "" {
		t.Errorf("struck text = %q, want none", got)
	}
}

func TestProductDelegate_Render(t *testing.T) {
	c := catalog.New()
	p, _ := c.Product(3)
	l := list.New([]list.Item{p}, ProductDelegate{}, 80, 10)

	var buf bytes.Buffer
	ProductDelegate{}.Render(&buf, l, 0, p)
	out := buf.String()

	want := ProductDelegate{}.Height()
	if got := strings.Count(out, "\n") + 1; got != want {
		t.Errorf("rendered %d lines, want %d", got, want)
	}
	for _, s := range []string{"#3", "Luxury Smart Watch", "$399.99", "$499.99", "Save 25%", "203 reviews", catalog.Watch} {
		if !strings.Contains(out, s) {
			t.Errorf("Render() missing %q:\n%s", s, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Hello", 10, "Hello"},
		{"Hello World", 6, "Hello…"},
		{"Hello", 0, ""},
		{"Hello", 5, "Hello"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{234, "234"},
		{1000, "1.0K"},
		{1422, "1.4K"},
		{1000000, "1.0M"},
	}
	for _, tt := range tests {
		if got := formatCount(tt.in); got != tt.want {
			t.Errorf("formatCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLayoutConfig(t *testing.T) {
	l := newLayoutConfig(130, 50, 0)
	if l.wideWidth != DefaultWideWidth {
		t.Errorf("wideWidth = %d, want default", l.wideWidth)
	}
	if !l.isWide() {
		t.Error("130 should be wide")
	}

	w, h := newLayoutConfig(200, 50, 100).modalSize()
	if w != ModalMaxWidth || h != 45 {
		t.Errorf("modalSize() = %dx%d, want %dx45", w, h, ModalMaxWidth)
	}

	w, _ = newLayoutConfig(2, 10, 100).modalSize()
	if w != 0 {
		t.Errorf("modalSize() width = %d, want 0", w)
	}

	if got := newLayoutConfig(125, 40, 100).gridColumns(); got != 3 {
		t.Errorf("gridColumns() = %d, want 3 at the derived extra-wide width", got)
	}
}
