package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	headerHeight     = 5
	paginationHeight = 2
	defaultListWidth = 80
	defaultListRows  = 30
)

// sidebar rows: category checkboxes, brand checkboxes, clear button
var sidebarRows = len(types.CategoryFilters) + len(types.BrandFilters) + 1

// ListingModel is the category listing screen. It owns all mutable UI
// state of the page; nothing outlives the instance.
type ListingModel struct {
	category string
	source   types.ProductSource
	products []types.Product
	cursor   int

	selection     types.Selection
	quickViewOpen bool
	quickView     QuickViewModel

	viewMode          types.ViewMode
	priceRange        types.PriceRange
	filtersVisible    bool
	sort              types.SortOption
	checkedCategories map[string]bool
	checkedBrands     map[string]bool
	sidebarFocused    bool
	sidebarCursor     int

	list      list.Model
	markdown  markdown
	keys      listingKeyMap
	wideWidth int
	width     int
	height    int
	logger    *zap.Logger
}

// NewListingModel mounts the listing screen for a category
func NewListingModel(category string, source types.ProductSource, opts Options) ListingModel {
	return newListingModel(category, source, opts, newMarkdown(opts.MarkdownStyle, opts.MarkdownWrap))
}

func newListingModel(category string, source types.ProductSource, opts Options, md markdown) ListingModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	products := source.CategoryProducts(category)
	items := make([]list.Item, len(products))
	for i, p := range products {
		items[i] = p
	}

	// List view mode renders through a bubbles list with the product delegate
	l := list.New(items, ProductDelegate{}, defaultListWidth, defaultListRows)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	m := ListingModel{
		category:          category,
		source:            source,
		products:          products,
		selection:         types.NoSelection(),
		quickView:         NewQuickViewModel(types.NoSelection(), false, md),
		viewMode:          types.GridView,
		priceRange:        types.DefaultPriceRange(),
		filtersVisible:    false,
		sort:              types.SortFeatured,
		checkedCategories: make(map[string]bool),
		checkedBrands:     make(map[string]bool),
		list:              l,
		markdown:          md,
		keys:              listingKeys,
		wideWidth:         opts.WideWidth,
		logger:            logger.With(zap.String("screen", "category"), zap.String("category", category)),
	}
	m.logger.Debug("listing mounted", zap.Int("products", len(products)))
	return m
}

// Init initializes the model
func (m ListingModel) Init() tea.Cmd {
	return nil
}

// Accessors
func (m ListingModel) Category() string              { return m.category }
func (m ListingModel) Selection() types.Selection    { return m.selection }
func (m ListingModel) QuickViewOpen() bool           { return m.quickViewOpen }
func (m ListingModel) QuickView() QuickViewModel     { return m.quickView }
func (m ListingModel) ViewMode() types.ViewMode      { return m.viewMode }
func (m ListingModel) PriceRange() types.PriceRange  { return m.priceRange }
func (m ListingModel) FiltersVisible() bool          { return m.filtersVisible }
func (m ListingModel) Sort() types.SortOption        { return m.sort }
func (m ListingModel) Cursor() int                   { return m.cursor }
func (m ListingModel) CategoryChecked(c string) bool { return m.checkedCategories[c] }
func (m ListingModel) BrandChecked(b string) bool    { return m.checkedBrands[b] }

// Products returns the displayed product collection
func (m ListingModel) Products() []types.Product {
	out := make([]types.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Columns returns the number of product columns of the current layout
func (m ListingModel) Columns() int {
	if m.viewMode == types.ListView {
		return 1
	}
	return m.layout().gridColumns()
}

// SidebarShown reports whether the filter sidebar is rendered
func (m ListingModel) SidebarShown() bool {
	return m.layout().isWide() || m.filtersVisible
}

// KeyMap returns the active key bindings for help rendering
func (m ListingModel) KeyMap() help.KeyMap {
	if m.quickViewOpen {
		return m.quickView.KeyMap()
	}
	k := m.keys
	k.showFilters = !m.layout().isWide()
	return k
}

func (m ListingModel) layout() layoutConfig {
	return newLayoutConfig(m.width, m.height, m.wideWidth)
}

// SelectForQuickView selects p and opens a freshly mounted quick-view panel
func (m *ListingModel) SelectForQuickView(p types.Product) {
	m.selection = types.Selected(p)
	m.quickViewOpen = true
	m.quickView = NewQuickViewModel(m.selection, true, m.markdown)
	if m.width > 0 || m.height > 0 {
		m.quickView.SetSize(m.width, m.height)
	}
	for i, candidate := range m.products {
		if candidate.ID() == p.ID() {
			m.setCursor(i)
			break
		}
	}
	m.logger.Debug("quick view opened", zap.Int("product_id", p.ID()))
}

// OpenQuickView looks up a product by id and opens quick view for it
func (m *ListingModel) OpenQuickView(id int) error {
	p, err := m.source.Product(id)
	if err != nil {
		return fmt.Errorf("open quick view: %w", err)
	}
	m.SelectForQuickView(p)
	return nil
}

// CloseQuickView clears the selection and closes the panel
func (m *ListingModel) CloseQuickView() {
	if p, ok := m.selection.Product(); ok {
		m.logger.Debug("quick view closed", zap.Int("product_id", p.ID()))
	}
	m.selection = types.NoSelection()
	m.quickViewOpen = false
	m.quickView = NewQuickViewModel(types.NoSelection(), false, m.markdown)
}

// SetViewMode switches the layout; the products are untouched
func (m *ListingModel) SetViewMode(v types.ViewMode) {
	if m.viewMode == v {
		return
	}
	m.viewMode = v
	m.list.Select(m.cursor)
	m.logger.Debug("view mode changed", zap.Stringer("view_mode", v))
}

// ToggleViewMode alternates between grid and list
func (m *ListingModel) ToggleViewMode() {
	m.SetViewMode(m.viewMode.Toggle())
}

// ToggleFilters flips the filter panel flag. The toggle is only offered
// below the wide threshold, where the sidebar is otherwise hidden.
func (m *ListingModel) ToggleFilters() {
	if m.layout().isWide() {
		return
	}
	m.filtersVisible = !m.filtersVisible
	if !m.filtersVisible {
		m.sidebarFocused = false
	}
	m.logger.Debug("filters toggled", zap.Bool("visible", m.filtersVisible))
}

// SetPriceRange stores the slider bounds. They never filter the products.
func (m *ListingModel) SetPriceRange(r types.PriceRange) {
	m.priceRange = r
	m.logger.Debug("price range changed", zap.Int("lower", r.Lower()), zap.Int("upper", r.Upper()))
}

// CycleSort selects the next sort option. The products keep their order.
func (m *ListingModel) CycleSort() {
	m.sort = m.sort.Next()
	m.logger.Debug("sort changed", zap.String("sort", m.sort.Value()))
}

// ToggleCategory flips a category checkbox
func (m *ListingModel) ToggleCategory(c string) {
	m.checkedCategories[c] = !m.checkedCategories[c]
	m.logger.Debug("category filter toggled", zap.String("filter", c), zap.Bool("checked", m.checkedCategories[c]))
}

// ToggleBrand flips a brand checkbox
func (m *ListingModel) ToggleBrand(b string) {
	m.checkedBrands[b] = !m.checkedBrands[b]
	m.logger.Debug("brand filter toggled", zap.String("filter", b), zap.Bool("checked", m.checkedBrands[b]))
}

// SetSize adjusts the list and panel dimensions to the terminal
func (m *ListingModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	listWidth := width
	if m.layout().isWide() {
		listWidth -= SidebarWidth + 2
	}
	listHeight := height - headerHeight - paginationHeight
	if listHeight < 0 {
		listHeight = 0
	}
	m.list.SetSize(max(listWidth, 0), listHeight)
	m.quickView.SetSize(width, height)

	// A hidden sidebar cannot hold focus
	if !m.SidebarShown() {
		m.sidebarFocused = false
	}
}

func (m *ListingModel) setCursor(i int) {
	if len(m.products) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = clampInt(i, 0, len(m.products)-1)
	m.list.Select(m.cursor)
}

// Update handles messages
func (m ListingModel) Update(msg tea.Msg) (ListingModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case QuickViewRequestedMsg:
		m.SelectForQuickView(msg.Product)
		return m, nil

	case CloseQuickViewMsg:
		m.CloseQuickView()
		return m, nil
	}

	if m.quickViewOpen {
		var cmd tea.Cmd
		m.quickView, cmd = m.quickView.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ListingModel) handleKey(msg tea.KeyMsg) (ListingModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.GridMode):
		m.SetViewMode(types.GridView)
		return m, nil
	case key.Matches(msg, m.keys.ListMode):
		m.SetViewMode(types.ListView)
		return m, nil
	case key.Matches(msg, m.keys.ToggleView):
		m.ToggleViewMode()
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.CycleSort()
		return m, nil
	case key.Matches(msg, m.keys.Filters):
		m.ToggleFilters()
		return m, nil
	case key.Matches(msg, m.keys.LowerDown):
		m.SetPriceRange(m.priceRange.MoveLower(-types.PriceStep))
		return m, nil
	case key.Matches(msg, m.keys.LowerUp):
		m.SetPriceRange(m.priceRange.MoveLower(types.PriceStep))
		return m, nil
	case key.Matches(msg, m.keys.UpperDown):
		m.SetPriceRange(m.priceRange.MoveUpper(-types.PriceStep))
		return m, nil
	case key.Matches(msg, m.keys.UpperUp):
		m.SetPriceRange(m.priceRange.MoveUpper(types.PriceStep))
		return m, nil
	case key.Matches(msg, m.keys.Sidebar):
		if m.SidebarShown() {
			m.sidebarFocused = !m.sidebarFocused
		}
		return m, nil
	}

	if m.sidebarFocused {
		return m.handleSidebarKey(msg)
	}

	cols := m.Columns()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.setCursor(m.cursor - cols)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < len(m.products) {
			m.setCursor(m.cursor + cols)
		}
	case key.Matches(msg, m.keys.Left):
		m.setCursor(m.cursor - 1)
	case key.Matches(msg, m.keys.Right):
		m.setCursor(m.cursor + 1)
	case key.Matches(msg, m.keys.QuickView):
		if m.cursor < len(m.products) {
			return m, requestQuickView(m.products[m.cursor])
		}
	}
	return m, nil
}

func (m ListingModel) handleSidebarKey(msg tea.KeyMsg) (ListingModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.sidebarCursor = clampInt(m.sidebarCursor-1, 0, sidebarRows-1)
	case key.Matches(msg, m.keys.Down):
		m.sidebarCursor = clampInt(m.sidebarCursor+1, 0, sidebarRows-1)
	case key.Matches(msg, m.keys.Check):
		nc := len(types.CategoryFilters)
		switch {
		case m.sidebarCursor < nc:
			m.ToggleCategory(types.CategoryFilters[m.sidebarCursor])
		case m.sidebarCursor < nc+len(types.BrandFilters):
			m.ToggleBrand(types.BrandFilters[m.sidebarCursor-nc])
		default:
			// "Clear All Filters" is inert
		}
	}
	return m, nil
}

// View renders the screen, or the quick-view panel over it when open
func (m ListingModel) View() string {
	if m.quickViewOpen {
		panel := m.quickView.View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
		}
		return panel
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.viewProducts(), "", m.viewPagination())

	var body string
	switch {
	case m.layout().isWide():
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), "  ", main)
	case m.filtersVisible:
		body = lipgloss.JoinVertical(lipgloss.Left, m.viewSidebar(), "", main)
	default:
		body = main
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), "", body)
}

// displayCategory capitalizes the first letter of each word of the route
// parameter and leaves the rest as given
func displayCategory(category string) string {
	return cases.Title(language.Und, cases.NoLower).String(category)
}

func (m ListingModel) viewHeader() string {
	name := displayCategory(m.category)
	n := len(m.products)

	breadcrumb := BreadcrumbStyle.Render("Home / ") + BreadcrumbActiveStyle.Render(name)
	heading := HeadingStyle.Render(name + " Products")
	count := SubtleStyle.Render(fmt.Sprintf("Showing 1-%d of %d products", n, n))

	gridBtn, listBtn := ButtonStyle.Render("▦ Grid"), ButtonStyle.Render("≡ List")
	if m.viewMode == types.GridView {
		gridBtn = ButtonActiveStyle.Render("▦ Grid")
	} else {
		listBtn = ButtonActiveStyle.Render("≡ List")
	}
	controls := []string{
		gridBtn + listBtn,
		ButtonStyle.Render("Sort: " + m.sort.Label() + " ▾"),
	}
	if !m.layout().isWide() {
		label := "Filters"
		if m.filtersVisible {
			label = "Filters ✓"
		}
		controls = append(controls, ButtonStyle.Render(label))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		breadcrumb,
		heading,
		count,
		strings.Join(controls, "  "),
	)
}

func (m ListingModel) viewProducts() string {
	if m.viewMode == types.ListView {
		return m.list.View()
	}

	cols := m.Columns()
	var rows []string
	for start := 0; start < len(m.products); start += cols {
		end := min(start+cols, len(m.products))
		cards := make([]string, 0, cols)
		for i := start; i < end; i++ {
			cards = append(cards, renderCard(m.products[i], !m.sidebarFocused && i == m.cursor))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m ListingModel) viewSidebar() string {
	var b strings.Builder
	b.WriteString(SidebarTitleStyle.Render("Filters") + "\n\n")

	row := 0
	checkbox := func(label string, checked bool) string {
		mark := "[ ]"
		if checked {
			mark = "[x]"
		}
		prefix := "  "
		if m.sidebarFocused && m.sidebarCursor == row {
			prefix = SidebarCursorStyle.Render("> ")
		}
		row++
		return prefix + mark + " " + label + "\n"
	}

	b.WriteString(SidebarSectionStyle.Render("Categories") + "\n")
	for _, c := range types.CategoryFilters {
		b.WriteString(checkbox(c, m.checkedCategories[c]))
	}

	b.WriteString("\n" + SidebarSectionStyle.Render("Price Range") + "\n")
	b.WriteString("  " + renderSlider(m.priceRange) + "\n")
	lo := fmt.Sprintf("$%d", m.priceRange.Lower())
	hi := fmt.Sprintf("$%d", m.priceRange.Upper())
	b.WriteString("  " + SubtleStyle.Render(lo+strings.Repeat(" ", max(SliderWidth-len(lo)-len(hi), 1))+hi) + "\n")

	b.WriteString("\n" + SidebarSectionStyle.Render("Brands") + "\n")
	for _, brand := range types.BrandFilters {
		b.WriteString(checkbox(brand, m.checkedBrands[brand]))
	}

	b.WriteString("\n")
	clearBtn := ButtonStyle.Render("[Clear All Filters]")
	if m.sidebarFocused && m.sidebarCursor == row {
		clearBtn = ButtonFocusedStyle.Render("[Clear All Filters]")
	}
	b.WriteString(clearBtn)

	return SidebarStyle.Width(SidebarWidth - 2).Render(b.String())
}

// renderSlider draws a two-thumb slider track for the range
func renderSlider(r types.PriceRange) string {
	pos := func(v int) int {
		return clampInt(v*(SliderWidth-1)/types.PriceMax, 0, SliderWidth-1)
	}
	lo, hi := pos(r.Lower()), pos(r.Upper())

	var b strings.Builder
	for i := 0; i < SliderWidth; i++ {
		switch {
		case i == lo || i == hi:
			b.WriteString(SliderRangeStyle.Render("●"))
		case i > lo && i < hi:
			b.WriteString(SliderRangeStyle.Render("━"))
		default:
			b.WriteString(SliderTrackStyle.Render("─"))
		}
	}
	return b.String()
}

func (m ListingModel) viewPagination() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		ButtonStyle.Render("Previous"),
		ButtonActiveStyle.Render("1"),
		ButtonStyle.Render("2"),
		ButtonStyle.Render("3"),
		ButtonStyle.Render("Next"),
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
