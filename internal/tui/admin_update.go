package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case loginDoneMsg:
		m.loggingIn = false
		if msg.err != nil {
			cmd := m.showMinibuffer("Login failed: " + msg.err.Error())
			return m, cmd
		}
		m.client.SetToken(msg.token)
		m.mode = adminIdle
		m.loginInput.Blur()
		m.passwordInput.Blur()
		m.passwordInput.SetValue("")
		return m, tea.Batch(m.fetchList(), m.fetchCats())

	case adminListMsg:
		m.busy = false
		if msg.err != nil {
			cmd := m.showMinibuffer("Load failed: " + msg.err.Error())
			return m, cmd
		}
		m.products = msg.items
		if m.prodCursor >= len(m.products) {
			m.prodCursor = 0
		}
		return m, nil

	case adminCatsMsg:
		if msg.err != nil {
			cmd := m.showMinibuffer("Categories failed: " + msg.err.Error())
			return m, cmd
		}
		m.categories = msg.cats
		if m.catCursor >= len(m.categories) {
			m.catCursor = 0
		}
		return m, nil

	case productSavedMsg:
		m.busy = false
		if msg.err != nil {
			// Keep the form open so nothing typed is lost.
			cmd := m.showMinibuffer("Save failed: " + msg.err.Error())
			return m, cmd
		}
		m.closeForm()
		// The server assigns the id and stored image path, so re-fetch
		// instead of patching the row locally.
		m.busy = true
		return m, m.fetchList()

	case productDeletedMsg:
		m.busy = false
		if msg.err != nil {
			cmd := m.showMinibuffer("Delete failed: " + msg.err.Error())
			return m, cmd
		}
		m.removeProductLocally(msg.id)
		return m, nil

	case categorySavedMsg:
		m.busy = false
		if msg.err != nil {
			cmd := m.showMinibuffer("Save failed: " + msg.err.Error())
			return m, cmd
		}
		m.newCatInput.SetValue("")
		m.newCatInput.Blur()
		return m, m.fetchCats()

	case categoryDeletedMsg:
		m.busy = false
		if msg.err != nil {
			cmd := m.showMinibuffer("Delete failed: " + msg.err.Error())
			return m, cmd
		}
		// Products referencing the deleted category are left alone; their
		// category renders as "-" until edited.
		return m, m.fetchCats()

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateAdminKeys(msg)
	}

	return m, nil
}

func (m adminModel) updateAdminKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case adminLogin:
		return m.updateLoginKeys(msg)
	case adminCreating, adminEditing:
		return m.updateFormKeys(msg)
	}
	if m.newCatInput.Focused() {
		return m.updateNewCatKeys(msg)
	}
	return m.updateIdleKeys(msg)
}

func (m adminModel) updateLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.loginInput.Value() == "" && m.passwordInput.Value() == "" {
			return m, tea.Quit
		}
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.loginInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.loginInput.Blur()
			m.passwordInput.Focus()
		}
		return m, nil
	case "enter":
		if m.loginFocus == 0 {
			m.loginFocus = 1
			m.loginInput.Blur()
			m.passwordInput.Focus()
			return m, nil
		}
		if m.loggingIn {
			return m, nil
		}
		m.loggingIn = true
		return m, m.loginCmd()
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.loginInput, cmd = m.loginInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

func (m adminModel) updateIdleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Pending delete confirmations eat the next keypress.
	if m.pendingDeleteID != 0 {
		id := m.pendingDeleteID
		m.pendingDeleteID = 0
		if msg.String() == "y" {
			m.busy = true
			return m, m.deleteProductCmd(id)
		}
		return m, nil
	}
	if m.pendingDeleteCatID != 0 {
		id := m.pendingDeleteCatID
		m.pendingDeleteCatID = 0
		if msg.String() == "y" {
			m.busy = true
			return m, m.deleteCategoryCmd(id)
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "ctrl+l":
		// Logout: drop the session token and per-session caches.
		m.client.ClearToken()
		m.client.ResetCategoryCache()
		m.products = nil
		m.categories = nil
		m.prodCursor = 0
		m.catCursor = 0
		m.mode = adminLogin
		m.loginFocus = 0
		m.loginInput.SetValue("")
		m.passwordInput.SetValue("")
		m.loginInput.Focus()
		return m, nil

	case "tab":
		if m.section == sectionProducts {
			m.section = sectionCategories
		} else {
			m.section = sectionProducts
		}
		return m, nil

	case "r":
		m.busy = true
		return m, tea.Batch(m.fetchList(), m.fetchCats())

	case "up", "k":
		if m.section == sectionProducts && m.prodCursor > 0 {
			m.prodCursor--
		}
		if m.section == sectionCategories && m.catCursor > 0 {
			m.catCursor--
		}
		return m, nil

	case "down", "j":
		if m.section == sectionProducts && m.prodCursor < len(m.products)-1 {
			m.prodCursor++
		}
		if m.section == sectionCategories && m.catCursor < len(m.categories)-1 {
			m.catCursor++
		}
		return m, nil

	case "n":
		if m.section == sectionProducts {
			m.openCreateForm()
			return m, nil
		}
		m.newCatInput.Focus()
		return m, nil

	case "enter", "e":
		if m.section != sectionProducts {
			return m, nil
		}
		if p, ok := m.selectedProduct(); ok {
			m.openEditForm(p)
		}
		return m, nil

	case "d", "delete":
		if m.section == sectionProducts {
			if p, ok := m.selectedProduct(); ok {
				m.pendingDeleteID = p.ID
			}
			return m, nil
		}
		if c, ok := m.selectedCategory(); ok {
			m.pendingDeleteCatID = c.ID
		}
		return m, nil
	}

	return m, nil
}

func (m adminModel) updateNewCatKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.newCatInput.SetValue("")
		m.newCatInput.Blur()
		return m, nil
	case "enter":
		name := m.newCatInput.Value()
		if name == "" {
			m.newCatInput.Blur()
			return m, nil
		}
		m.busy = true
		return m, m.createCategoryCmd(name)
	}

	var cmd tea.Cmd
	m.newCatInput, cmd = m.newCatInput.Update(msg)
	return m, cmd
}

func (m adminModel) updateFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil

	case "tab", "down":
		if m.formFocus == formDescription && msg.String() == "down" {
			break
		}
		m.focusFormField((m.formFocus + 1) % formFieldCount)
		return m, nil

	case "shift+tab", "up":
		if m.formFocus == formDescription && msg.String() == "up" {
			break
		}
		m.focusFormField((m.formFocus + formFieldCount - 1) % formFieldCount)
		return m, nil

	case "ctrl+s":
		if m.busy {
			return m, nil
		}
		m.busy = true
		cmd := m.saveProductCmd()
		return m, cmd

	case "enter":
		if m.formFocus == formDescription {
			break
		}
		if m.formFocus == formAvailable {
			m.availToggle = !m.availToggle
			return m, nil
		}
		m.focusFormField((m.formFocus + 1) % formFieldCount)
		return m, nil

	case " ":
		if m.formFocus == formAvailable {
			m.availToggle = !m.availToggle
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case formName:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case formDescription:
		m.descArea, cmd = m.descArea.Update(msg)
	case formPrice:
		m.priceInput, cmd = m.priceInput.Update(msg)
	case formCategory:
		m.categoryInput, cmd = m.categoryInput.Update(msg)
	case formBuyURL:
		m.buyURLInput, cmd = m.buyURLInput.Update(msg)
	case formImage:
		m.imageInput, cmd = m.imageInput.Update(msg)
	}
	return m, cmd
}
