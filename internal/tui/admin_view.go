package tui

import (
	"fmt"
	"strings"

	"shopfront-cli/internal/model"
)

func (m adminModel) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	switch m.mode {
	case adminLogin:
		return m.viewLogin()
	case adminCreating, adminEditing:
		return m.viewForm()
	}
	return m.viewIdle()
}

func (m adminModel) viewLogin() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render("Shopfront admin") + "\n\n")
	b.WriteString(" " + sidebarLabelStyle.Render("Login   ") + " " + m.loginInput.View() + "\n")
	b.WriteString(" " + sidebarLabelStyle.Render("Password") + " " + m.passwordInput.View() + "\n\n")
	if m.loggingIn {
		b.WriteString(" " + breadcrumbStyle.Render("Signing in…") + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(" tab switch field · enter submit · ctrl+c quit"))
	if m.minibufferText != "" {
		b.WriteString("\n " + minibufferStyle.Render(m.minibufferText))
	}
	return b.String()
}

func (m adminModel) viewIdle() string {
	var b strings.Builder

	b.WriteString(" " + titleStyle.Render("Shopfront admin") + "\n\n")

	prodTab := "Products"
	catTab := "Categories"
	if m.section == sectionProducts {
		prodTab = sidebarActiveStyle.Render(prodTab)
		catTab = sidebarLabelStyle.Render(catTab)
	} else {
		prodTab = sidebarLabelStyle.Render(prodTab)
		catTab = sidebarActiveStyle.Render(catTab)
	}
	b.WriteString(" " + prodTab + "  " + catTab)
	if m.busy {
		b.WriteString("  " + breadcrumbStyle.Render("…"))
	}
	b.WriteString("\n\n")

	if m.section == sectionProducts {
		b.WriteString(m.viewProductTable())
	} else {
		b.WriteString(m.viewCategoryList())
	}

	b.WriteString("\n")
	if m.pendingDeleteID != 0 || m.pendingDeleteCatID != 0 {
		b.WriteString(" " + minibufferStyle.Render("Delete? press y to confirm") + "\n")
	}
	b.WriteString(m.viewAdminHelp())
	if m.minibufferText != "" {
		b.WriteString("\n " + minibufferStyle.Render(m.minibufferText))
	}
	return b.String()
}

func (m adminModel) viewProductTable() string {
	if len(m.products) == 0 {
		return " " + sidebarLabelStyle.Render("No products.") + "\n"
	}

	var b strings.Builder
	b.WriteString(" " + breadcrumbStyle.Render(fmt.Sprintf("%-5s %-28s %-10s %-14s %s", "id", "name", "price", "category", "stock")) + "\n")

	rows := m.visibleRows()
	start, end := tableWindow(m.prodCursor, len(m.products), rows)
	for i := start; i < end; i++ {
		p := m.products[i]
		cat := p.Category
		if cat == "" {
			cat = model.CategoryName(m.categories, p.CategoryID)
		}
		stock := "out"
		if p.Available {
			stock = "in"
		}
		line := fmt.Sprintf("%-5d %-28s %-10.2f %-14s %s",
			p.ID, truncateLine(p.Name, 28), p.Price, truncateLine(cat, 14), stock)
		if i == m.prodCursor {
			b.WriteString(" " + selectedRowStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("   " + line + "\n")
		}
	}
	return b.String()
}

func (m adminModel) viewCategoryList() string {
	var b strings.Builder

	if len(m.categories) == 0 {
		b.WriteString(" " + sidebarLabelStyle.Render("No categories.") + "\n")
	}
	for i, c := range m.categories {
		line := fmt.Sprintf("%-5d %s", c.ID, c.Name)
		if i == m.catCursor {
			b.WriteString(" " + selectedRowStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("   " + line + "\n")
		}
	}

	b.WriteString("\n " + sidebarLabelStyle.Render("New:") + " " + m.newCatInput.View() + "\n")
	return b.String()
}

func (m adminModel) viewForm() string {
	var b strings.Builder

	title := "New product"
	if m.mode == adminEditing {
		title = fmt.Sprintf("Edit product %d", m.editingID)
	}
	b.WriteString(" " + titleStyle.Render(title) + "\n\n")

	avail := "[ ] available"
	if m.availToggle {
		avail = "[x] available"
	}

	rows := []struct {
		field int
		label string
		view  string
	}{
		{formName, "Name", m.nameInput.View()},
		{formDescription, "Description", m.descArea.View()},
		{formPrice, "Price", m.priceInput.View()},
		{formCategory, "Category", m.categoryInput.View()},
		{formBuyURL, "Buy URL", m.buyURLInput.View()},
		{formImage, "Image", m.imageInput.View()},
		{formAvailable, "", avail},
	}
	for _, r := range rows {
		marker := "  "
		if m.formFocus == r.field {
			marker = sidebarActiveStyle.Render("> ")
		}
		if r.label != "" {
			b.WriteString(" " + marker + sidebarLabelStyle.Render(fmt.Sprintf("%-12s", r.label)) + " " + r.view + "\n")
		} else {
			b.WriteString(" " + marker + r.view + "\n")
		}
	}

	if m.busy {
		b.WriteString("\n " + breadcrumbStyle.Render("Saving…") + "\n")
	}
	b.WriteString("\n" + helpStyle.Render(" tab next field · space toggle · ctrl+s save · esc cancel"))
	if m.minibufferText != "" {
		b.WriteString("\n " + minibufferStyle.Render(m.minibufferText))
	}
	return b.String()
}

func (m adminModel) viewAdminHelp() string {
	if m.section == sectionProducts {
		return helpStyle.Render(" n new · enter edit · d delete · tab categories · r refresh · ctrl+l logout · q quit")
	}
	return helpStyle.Render(" n new · d delete · tab products · r refresh · ctrl+l logout · q quit")
}

// visibleRows bounds the product table to the terminal height.
func (m adminModel) visibleRows() int {
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}
	return rows
}

// tableWindow keeps cursor within the rendered [start, end) slice.
func tableWindow(cursor, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := cursor - rows/2
	if start < 0 {
		start = 0
	}
	if start+rows > total {
		start = total - rows
	}
	return start, start + rows
}
