package tui

import (
	"fmt"
	"io"
	"strings"

	"shopfront-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type productItem struct {
	product model.Product
}

func (p productItem) FilterValue() string { return p.product.Name }

// productDelegate renders one product per row: name, price, availability.
type productDelegate struct{}

func (d productDelegate) Height() int                             { return 1 }
func (d productDelegate) Spacing() int                            { return 0 }
func (d productDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d productDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(productItem)
	if !ok {
		return
	}
	p := it.product

	avail := outOfStockStyle.Render("out of stock")
	if p.Available {
		avail = inStockStyle.Render("in stock")
	}
	line := fmt.Sprintf("%s  %s  %s",
		p.Name,
		priceStyle.Render(fmt.Sprintf("%.2f", p.Price)),
		avail,
	)

	maxW := m.Width() - 2
	if maxW > 0 {
		line = lipgloss.NewStyle().MaxWidth(maxW).Render(line)
	}
	if index == m.Index() {
		line = selectedRowStyle.Render("> " + line)
	} else {
		line = "  " + line
	}
	fmt.Fprint(w, line)
}

func newProductList() list.Model {
	l := list.New([]list.Item{}, productDelegate{}, 0, 0)
	l.Title = "Products"
	// The shop view renders its own header and footer, so keep the list
	// chrome minimal. Server-side search replaces the built-in filter.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetKeys("q")

	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)

	return l
}

func productListItems(products []model.Product) []list.Item {
	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, productItem{product: p})
	}
	return items
}

// truncateLine cuts s to max terminal cells, counting display width rather
// than bytes so styled and wide-rune text truncates cleanly.
func truncateLine(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if max <= 0 || xansi.StringWidth(s) <= max {
		return s
	}
	if max <= 1 {
		return xansi.Cut(s, 0, max)
	}
	return xansi.Cut(s, 0, max-1) + "…"
}
