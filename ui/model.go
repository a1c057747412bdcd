package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
)

// ErrNoListing is returned when a listing operation is requested while
// another screen is active
var ErrNoListing = errors.New("listing screen not active")

// Options configures the screens
type Options struct {
	WideWidth     int
	MarkdownStyle string
	MarkdownWrap  int
	Logger        *zap.Logger
}

// Model is the main TUI model. It routes to one screen at a time.
type Model struct {
	source   types.ProductSource
	opts     Options
	markdown markdown
	route    types.Route
	landing  LandingModel
	listing  ListingModel
	help     help.Model
	keys     globalKeyMap
	width    int
	height   int
	logger   *zap.Logger
}

// NewModel creates a new Model showing the screen for route
func NewModel(source types.ProductSource, route types.Route, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.WideWidth <= 0 {
		opts.WideWidth = DefaultWideWidth
	}

	m := Model{
		source:   source,
		opts:     opts,
		markdown: newMarkdown(opts.MarkdownStyle, opts.MarkdownWrap),
		help:     help.New(),
		keys:     globalKeys,
		logger:   opts.Logger,
	}
	m.Navigate(route)
	return m
}

// Route returns the active route
func (m Model) Route() types.Route { return m.route }

// Listing returns the listing screen and whether it is active
func (m Model) Listing() (ListingModel, bool) {
	return m.listing, m.route.Screen() == types.CategoryScreen
}

// Navigate mounts a fresh screen for route; the previous screen's state
// is discarded
func (m *Model) Navigate(route types.Route) {
	m.route = route
	m.listing = ListingModel{}
	switch route.Screen() {
	case types.CategoryScreen:
		m.listing = newListingModel(route.Category(), m.source, m.opts, m.markdown)
		if m.width > 0 || m.height > 0 {
			m.listing.SetSize(m.width, m.height-HelpHeight)
		}
	default:
		m.landing = newLandingModel(m.markdown)
	}
	m.logger.Info("navigated", zap.String("path", route.Path()), zap.Stringer("screen", route.Screen()))
}

// OpenProduct opens quick view for a product id on the listing screen
func (m *Model) OpenProduct(id int) error {
	if m.route.Screen() != types.CategoryScreen {
		return fmt.Errorf("open product %d: %w", id, ErrNoListing)
	}
	return m.listing.OpenQuickView(id)
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	title := "shoptui"
	if m.route.Screen() == types.CategoryScreen {
		title = "shoptui - " + displayCategory(m.route.Category()) + " Products"
	}
	return tea.SetWindowTitle(title)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.route.Screen() == types.CategoryScreen {
			m.listing.SetSize(msg.Width, msg.Height-HelpHeight)
		}
		return m, nil
	}

	if m.route.Screen() == types.CategoryScreen {
		var cmd tea.Cmd
		m.listing, cmd = m.listing.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current screen with the help footer
func (m Model) View() string {
	var screen string
	var keys help.KeyMap
	switch m.route.Screen() {
	case types.CategoryScreen:
		screen = m.listing.View()
		keys = m.listing.KeyMap()
	default:
		screen = m.landing.Render(m.width, m.height-HelpHeight)
		keys = landingKeyMap{Help: m.keys.Help, Quit: m.keys.Quit}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		screen,
		StatusBarStyle.Render(m.help.View(keys)),
	)
}
