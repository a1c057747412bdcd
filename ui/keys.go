package ui

import "github.com/charmbracelet/bubbles/key"

type globalKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

var globalKeys = globalKeyMap{
	Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

type listingKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	QuickView   key.Binding
	GridMode    key.Binding
	ListMode    key.Binding
	ToggleView  key.Binding
	Sort        key.Binding
	Filters     key.Binding
	Sidebar     key.Binding
	Check       key.Binding
	LowerDown   key.Binding
	LowerUp     key.Binding
	UpperDown   key.Binding
	UpperUp     key.Binding
	Help        key.Binding
	Quit        key.Binding
	showFilters bool
}

var listingKeys = listingKeyMap{
	Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
	Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
	QuickView:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "quick view")),
	GridMode:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "grid")),
	ListMode:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "list")),
	ToggleView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "grid/list")),
	Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
	Filters:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
	Sidebar:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "sidebar")),
	Check:      key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "check")),
	LowerDown:  key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "min price")),
	LowerUp:    key.NewBinding(key.WithKeys("]")),
	UpperDown:  key.NewBinding(key.WithKeys("{"), key.WithHelp("{/}", "max price")),
	UpperUp:    key.NewBinding(key.WithKeys("}")),
	Help:       globalKeys.Help,
	Quit:       globalKeys.Quit,
}

// ShortHelp returns short help key bindings (for help.Model)
func (k listingKeyMap) ShortHelp() []key.Binding {
	short := []key.Binding{k.Up, k.QuickView, k.ToggleView, k.Sort}
	if k.showFilters {
		short = append(short, k.Filters)
	}
	return append(short, k.Help, k.Quit)
}

// FullHelp returns full help key bindings
func (k listingKeyMap) FullHelp() [][]key.Binding {
	view := []key.Binding{k.GridMode, k.ListMode, k.ToggleView, k.Sort}
	if k.showFilters {
		view = append(view, k.Filters)
	}
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.QuickView},
		view,
		{k.Sidebar, k.Check, k.LowerDown, k.UpperDown},
		{k.Help, k.Quit},
	}
}

type quickViewKeyMap struct {
	Close     key.Binding
	Increment key.Binding
	Decrement key.Binding
	Cart      key.Binding
	Wishlist  key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Activate  key.Binding
	PrevImage key.Binding
	NextImage key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var quickViewKeys = quickViewKeyMap{
	Close:     key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "close")),
	Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "qty up")),
	Decrement: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "qty down")),
	Cart:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "add to cart")),
	Wishlist:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wishlist")),
	NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
	Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),
	PrevImage: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev image")),
	NextImage: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next image")),
	Help:      globalKeys.Help,
	Quit:      globalKeys.Quit,
}

// ShortHelp returns short help key bindings (for help.Model)
func (k quickViewKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Close, k.Increment, k.Decrement, k.NextFocus, k.Activate, k.Quit}
}

// FullHelp returns full help key bindings
func (k quickViewKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Close, k.Increment, k.Decrement},
		{k.Cart, k.Wishlist, k.NextFocus, k.PrevFocus, k.Activate},
		{k.PrevImage, k.NextImage},
		{k.Help, k.Quit},
	}
}

type landingKeyMap struct {
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns short help key bindings (for help.Model)
func (k landingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

// FullHelp returns full help key bindings
func (k landingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}
