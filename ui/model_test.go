package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/shoptui/catalog"
	"github.com/qyinm/shoptui/types"
)

func newTestModel(t *testing.T, route types.Route) Model {
	t.Helper()
	return NewModel(catalog.New(), route, Options{MarkdownStyle: "ascii"})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out, cmd
}

func TestModel_LandingRoute(t *testing.T) {
	m := newTestModel(t, types.LandingRoute())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if _, ok := m.Listing(); ok {
		t.Error("listing should not be active on the landing route")
	}
	view := m.View()
	for _, s := range []string{"Ready to Build", "Your clean canvas awaits.", "●"} {
		if !strings.Contains(view, s) {
			t.Errorf("View() missing %q", s)
		}
	}
	if !strings.Contains(view, "quit") {
		t.Error("View() should show the help footer")
	}
}

func TestModel_CategoryRoute(t *testing.T) {
	m := newTestModel(t, types.CategoryRoute("audio"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 60})

	l, ok := m.Listing()
	if !ok {
		t.Fatal("listing should be active")
	}
	if l.Category() != "audio" {
		t.Errorf("Category() = %q, want audio", l.Category())
	}
	if !strings.Contains(m.View(), "Audio Products") {
		t.Error("View() should show the category heading")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel(t, types.LandingRoute())
		_, cmd := update(t, m, msg)
		if cmd == nil {
			t.Fatalf("%q: expected quit command", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%q: cmd() = %T, want tea.QuitMsg", msg.String(), cmd())
		}
	}
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, types.CategoryRoute("audio"))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 150, Height: 60})

	if strings.Contains(m.View(), "max price") {
		t.Error("short help should not list slider keys")
	}
	m, _ = update(t, m, runeKey("?"))
	if !strings.Contains(m.View(), "max price") {
		t.Error("full help should list slider keys")
	}
}

func TestModel_QuickViewFlow(t *testing.T) {
	m := newTestModel(t, types.CategoryRoute("watches"))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should request quick view")
	}
	m, _ = update(t, m, cmd())
	m, _ = update(t, m, runeKey("+"))

	l, _ := m.Listing()
	if !l.QuickViewOpen() || l.QuickView().Quantity() != 2 {
		t.Fatalf("open=%v quantity=%d, want open with 2", l.QuickViewOpen(), l.QuickView().Quantity())
	}
	if !strings.Contains(m.View(), "qty up") {
		t.Error("help footer should switch to quick view keys")
	}

	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, cmd())

	l, _ = m.Listing()
	if l.QuickViewOpen() {
		t.Error("quick view should be closed")
	}
}

func TestModel_OpenProduct(t *testing.T) {
	m := newTestModel(t, types.CategoryRoute("electronics"))
	if err := m.OpenProduct(5); err != nil {
		t.Fatalf("OpenProduct(5): %v", err)
	}
	l, _ := m.Listing()
	p, ok := l.Selection().Product()
	if !ok || p.ID() != 5 {
		t.Error("product 5 should be selected")
	}

	if err := m.OpenProduct(42); !errors.Is(err, catalog.ErrProductNotFound) {
		t.Errorf("OpenProduct(42) = %v, want ErrProductNotFound", err)
	}

	landing := newTestModel(t, types.LandingRoute())
	if err := landing.OpenProduct(1); !errors.Is(err, ErrNoListing) {
		t.Errorf("OpenProduct on landing = %v, want ErrNoListing", err)
	}
}

func TestModel_NavigateDiscardsState(t *testing.T) {
	m := newTestModel(t, types.CategoryRoute("electronics"))
	m, _ = update(t, m, runeKey("2"))
	if err := m.OpenProduct(1); err != nil {
		t.Fatal(err)
	}

	m.Navigate(types.LandingRoute())
	m.Navigate(types.CategoryRoute("electronics"))

	l, _ := m.Listing()
	if l.ViewMode() != types.GridView || l.QuickViewOpen() {
		t.Error("remounted listing should start from defaults")
	}
	if m.Route().Path() != "/category/electronics" {
		t.Errorf("Route().Path() = %q", m.Route().Path())
	}
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t, types.CategoryRoute("audio"))
	if m.Init() == nil {
		t.Error("Init should set the window title")
	}
}

func TestLandingModel_Render(t *testing.T) {
	l := newLandingModel(markdown{})

	unsized := l.Render(0, 0)
	if !strings.Contains(unsized, "# Ready to Build") {
		t.Error("raw copy should be shown without a renderer")
	}

	sized := l.Render(80, 20)
	if got := strings.Count(sized, "\n") + 1; got != 20 {
		t.Errorf("Render(80, 20) has %d lines, want 20", got)
	}
	if !strings.Contains(sized, "Start creating something beautiful.") {
		t.Error("sized render should keep the copy")
	}
}
