package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor pairs throughout.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

var (
	colorMuted  lipgloss.TerminalColor = ac("240", "243")
	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorTitleFg  lipgloss.TerminalColor = ac("235", "252")
	colorDangerFg lipgloss.TerminalColor = ac("124", "203")
	colorOKFg     lipgloss.TerminalColor = ac("28", "77")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorTitleFg)

	breadcrumbStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// Footer line with the canonical query string (the "address bar").
	locationStyle = lipgloss.NewStyle().Foreground(colorAccent)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)

	minibufferStyle = lipgloss.NewStyle().Foreground(colorDangerFg)

	selectedRowStyle = lipgloss.NewStyle().
				Background(colorSelectedBg).
				Foreground(colorSelectedFg)

	sidebarLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)

	sidebarActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	inStockStyle    = lipgloss.NewStyle().Foreground(colorOKFg)
	outOfStockStyle = lipgloss.NewStyle().Foreground(colorMuted)

	priceStyle = lipgloss.NewStyle().Bold(true)
)

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which suits
// non-interactive output but can accidentally disable colors in a TUI. Here
// only NO_COLOR is honored; otherwise the terminal's capabilities decide,
// with COLORTERM/TERM trusted when the probe under-reports.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}
