package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qyinm/shoptui/types"
)

// Intent messages passed from child views to their owner

// QuickViewRequestedMsg asks the listing to open quick view for a product
type QuickViewRequestedMsg struct {
	Product types.Product
}

// CloseQuickViewMsg asks the owner of a quick-view panel to close it
type CloseQuickViewMsg struct{}

// requestQuickView returns a tea.Cmd that emits a QuickViewRequestedMsg
func requestQuickView(p types.Product) tea.Cmd {
	return func() tea.Msg {
		return QuickViewRequestedMsg{Product: p}
	}
}

// requestClose returns a tea.Cmd that emits a CloseQuickViewMsg
func requestClose() tea.Cmd {
	return func() tea.Msg {
		return CloseQuickViewMsg{}
	}
}
