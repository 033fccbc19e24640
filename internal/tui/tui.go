package tui

import (
	"shopfront-cli/internal/api"
	"shopfront-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the storefront browse TUI. initialQuery seeds the filter state
// (the terminal analog of opening a bookmarked URL).
func Run(client *api.Client, st store.Store, initialQuery string) error {
	applyColorProfilePreference()
	m := newShopModel(client, st, initialQuery)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// RunAdmin starts the admin console TUI. If token is non-empty the login
// screen is skipped and the session starts authenticated.
func RunAdmin(client *api.Client, token string) error {
	applyColorProfilePreference()
	m := newAdminModel(client, token)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
