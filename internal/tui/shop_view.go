package tui

import (
	"fmt"
	"strings"

	"shopfront-cli/internal/catalog"
	"shopfront-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

const sidebarWidth = 26

var sortLabels = map[catalog.Sort]string{
	catalog.SortPriceAsc:  "price ↑",
	catalog.SortPriceDesc: "price ↓",
	catalog.SortNameAsc:   "name a-z",
	catalog.SortNameDesc:  "name z-a",
}

func (m shopModel) View() string {
	if m.width == 0 {
		return "Loading…"
	}
	if m.showDetail {
		if p, ok := m.selectedProduct(); ok {
			return m.viewDetail(p)
		}
	}

	var b strings.Builder

	b.WriteString(" " + titleStyle.Render("Shopfront") + "\n")
	b.WriteString(" " + m.viewSearchBar() + "\n\n")

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.viewSidebar(),
		"  ",
		m.viewProducts(),
	)
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

func (m shopModel) viewSearchBar() string {
	label := sidebarLabelStyle.Render("Search:")
	if m.focus == focusSearch {
		label = sidebarActiveStyle.Render("Search:")
	}
	return label + " " + m.searchInput.View()
}

func (m shopModel) viewSidebar() string {
	f := m.ctrl.Filters()

	catLabel := "all"
	if m.catSel >= 0 && m.catSel < len(m.categories) {
		catLabel = m.categories[m.catSel].Name
	} else if f.CategoryID != "" {
		// Filter set from the seeded query before categories loaded.
		catLabel = "#" + f.CategoryID
	}

	stock := "no"
	if f.InStock {
		stock = "yes"
	}
	min := f.MinPrice
	if min == "" {
		min = "-"
	}
	max := f.MaxPrice
	if max == "" {
		max = "-"
	}
	if m.minInput.Focused() {
		min = m.minInput.View()
	}
	if m.maxInput.Focused() {
		max = m.maxInput.View()
	}

	rows := []struct {
		ctl   sidebarControl
		label string
		value string
	}{
		{sidebarCategory, "Category", catLabel},
		{sidebarMinPrice, "Min price", min},
		{sidebarMaxPrice, "Max price", max},
		{sidebarInStock, "In stock", stock},
		{sidebarSort, "Sort", sortLabels[f.Sort]},
		{sidebarReset, "Reset", ""},
	}

	var lines []string
	for _, r := range rows {
		line := fmt.Sprintf("%-10s %s", r.label, r.value)
		if m.focus == focusSidebar && m.sidebarSel == r.ctl {
			line = sidebarActiveStyle.Render("> " + line)
		} else {
			line = sidebarLabelStyle.Render("  " + line)
		}
		lines = append(lines, truncateLine(line, sidebarWidth+16))
	}

	return lipgloss.NewStyle().Width(sidebarWidth).Render(strings.Join(lines, "\n"))
}

func (m shopModel) viewProducts() string {
	if m.fetching && len(m.products) == 0 {
		return sidebarLabelStyle.Render("Loading…")
	}
	if len(m.products) == 0 {
		return sidebarLabelStyle.Render("No products match the current filters.")
	}
	return m.productList.View()
}

func (m shopModel) viewFooter() string {
	f := m.ctrl.Filters()

	loc := m.ctrl.Location()
	if loc == "" {
		loc = "/"
	} else {
		loc = "/?" + loc
	}

	page := fmt.Sprintf("page %d", f.Page)
	parts := []string{locationStyle.Render(loc), breadcrumbStyle.Render(page)}
	if m.fetching {
		parts = append(parts, breadcrumbStyle.Render("…"))
	}
	line := " " + strings.Join(parts, "  ")

	help := helpStyle.Render(" / search · tab filters · [ ] page · enter detail · x reset · q quit")

	out := line + "\n" + help
	if m.minibufferText != "" {
		out += "\n " + minibufferStyle.Render(m.minibufferText)
	}
	return out
}

func (m shopModel) viewDetail(p model.Product) string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render(p.Name) + "\n\n")

	avail := outOfStockStyle.Render("out of stock")
	if p.Available {
		avail = inStockStyle.Render("in stock")
	}
	b.WriteString(fmt.Sprintf(" %s  %s\n", priceStyle.Render(fmt.Sprintf("%.2f", p.Price)), avail))

	cat := p.Category
	if cat == "" {
		cat = model.CategoryName(m.categories, p.CategoryID)
	}
	b.WriteString(" " + breadcrumbStyle.Render("Category: "+cat) + "\n")
	if p.BuyURL != "" {
		b.WriteString(" " + locationStyle.Render("Buy: "+p.BuyURL) + "\n")
	}
	if p.URL != "" {
		b.WriteString(" " + breadcrumbStyle.Render("Image: "+p.URL) + "\n")
	}

	if desc := renderMarkdown(p.Description, m.width-4); desc != "" {
		b.WriteString("\n" + desc + "\n")
	}

	b.WriteString("\n" + helpStyle.Render(" esc back · q quit"))
	return b.String()
}
