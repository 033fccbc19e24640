package tui

import (
	"strconv"
	"time"

	"shopfront-cli/internal/api"
	"shopfront-cli/internal/catalog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var sortCycle = []catalog.Sort{
	catalog.SortPriceAsc,
	catalog.SortPriceDesc,
	catalog.SortNameAsc,
	catalog.SortNameDesc,
}

func catIDString(id int) string { return strconv.Itoa(id) }

func (m shopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLayout()
		return m, nil

	case searchDebounceMsg:
		// Only the newest token fires; stale ticks fall through silently.
		v, ok := m.searchDeb.Take(msg.token)
		if !ok {
			return m, nil
		}
		cmd := m.apply(func(f catalog.Filters) catalog.Filters {
			f.Search = v
			return f
		})
		return m, cmd

	case productsMsg:
		if msg.seq != m.fetchSeq {
			// Superseded request; a newer query owns the view.
			return m, nil
		}
		m.fetching = false
		if msg.err != nil {
			if api.IsCancelled(msg.err) {
				return m, nil
			}
			// Never leave a stale result for a different query on screen.
			m.setProducts(nil)
			debugLogf("product fetch failed: %v", msg.err)
			cmd := m.showMinibuffer("Load failed: " + msg.err.Error())
			return m, cmd
		}
		m.setProducts(msg.items)
		return m, nil

	case categoriesMsg:
		if msg.err != nil {
			// Categories are non-blocking: browse continues without the filter.
			m.categories = nil
			debugLogf("category fetch failed: %v", msg.err)
			return m, nil
		}
		m.categories = msg.cats
		m.syncCatSel()
		return m, nil

	case minibufferClearMsg:
		if msg.seq == m.minibufferSeq {
			m.minibufferText = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m shopModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focus == focusSearch {
		return m.updateSearchKeys(msg)
	}
	if m.focus == focusSidebar && (m.minInput.Focused() || m.maxInput.Focused()) {
		return m.updatePriceEditKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if m.fetchCancel != nil {
			m.fetchCancel()
		}
		m.searchDeb.Cancel()
		return m, tea.Quit

	case "/":
		m.focus = focusSearch
		m.searchInput.Focus()
		return m, textinput.Blink

	case "tab":
		if m.focus == focusList {
			m.focus = focusSidebar
		} else {
			m.focus = focusList
		}
		return m, nil

	case "[":
		if m.ctrl.Filters().Page <= 1 {
			return m, nil
		}
		cmd := m.apply(func(f catalog.Filters) catalog.Filters {
			f.Page--
			return f
		})
		return m, cmd

	case "]":
		cmd := m.apply(func(f catalog.Filters) catalog.Filters {
			f.Page++
			return f
		})
		return m, cmd

	case "x":
		return m.resetAll()

	case "r":
		cmd := m.startFetch()
		return m, cmd
	}

	if m.focus == focusSidebar {
		return m.updateSidebarKeys(msg)
	}

	// Product list navigation + detail toggle.
	switch msg.String() {
	case "enter", "d":
		if _, ok := m.selectedProduct(); ok {
			m.showDetail = !m.showDetail
			m.persistState()
		}
		return m, nil
	case "esc":
		if m.showDetail {
			m.showDetail = false
			m.persistState()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.productList, cmd = m.productList.Update(msg)
	return m, cmd
}

func (m shopModel) updateSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "tab":
		m.searchInput.Blur()
		m.focus = focusList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var inputCmd tea.Cmd
	m.searchInput, inputCmd = m.searchInput.Update(msg)
	after := m.searchInput.Value()
	if after == before {
		return m, inputCmd
	}

	// Every keystroke rearms the gate; the query only changes once input has
	// been quiet for the debounce window.
	token := m.searchDeb.Put(after)
	tick := tea.Tick(searchDebounceDelay, func(time.Time) tea.Msg { return searchDebounceMsg{token: token} })
	return m, tea.Batch(inputCmd, tick)
}

func (m shopModel) updatePriceEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	editingMax := m.maxInput.Focused()

	switch msg.String() {
	case "enter":
		m.minInput.Blur()
		m.maxInput.Blur()
		min := m.minInput.Value()
		max := m.maxInput.Value()
		cmd := m.apply(func(f catalog.Filters) catalog.Filters {
			f.MinPrice = min
			f.MaxPrice = max
			return f
		})
		return m, cmd
	case "esc":
		// Revert to the committed values.
		f := m.ctrl.Filters()
		m.minInput.SetValue(f.MinPrice)
		m.maxInput.SetValue(f.MaxPrice)
		m.minInput.Blur()
		m.maxInput.Blur()
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	if editingMax {
		m.maxInput, cmd = m.maxInput.Update(msg)
	} else {
		m.minInput, cmd = m.minInput.Update(msg)
	}
	return m, cmd
}

func (m shopModel) updateSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.sidebarSel > 0 {
			m.sidebarSel--
		}
		return m, nil
	case "down", "j":
		if m.sidebarSel < sidebarControlCount-1 {
			m.sidebarSel++
		}
		return m, nil
	case "esc":
		m.focus = focusList
		return m, nil
	}

	switch m.sidebarSel {
	case sidebarCategory:
		switch msg.String() {
		case "left", "h":
			return m.cycleCategory(-1)
		case "right", "l", "enter", " ":
			return m.cycleCategory(1)
		}

	case sidebarMinPrice:
		if msg.String() == "enter" {
			m.minInput.Focus()
			return m, textinput.Blink
		}

	case sidebarMaxPrice:
		if msg.String() == "enter" {
			m.maxInput.Focus()
			return m, textinput.Blink
		}

	case sidebarInStock:
		switch msg.String() {
		case "enter", " ", "left", "right", "h", "l":
			cmd := m.apply(func(f catalog.Filters) catalog.Filters {
				f.InStock = !f.InStock
				return f
			})
			return m, cmd
		}

	case sidebarSort:
		switch msg.String() {
		case "left", "h":
			return m.cycleSort(-1)
		case "right", "l", "enter", " ":
			return m.cycleSort(1)
		}

	case sidebarReset:
		if msg.String() == "enter" || msg.String() == " " {
			return m.resetAll()
		}
	}

	return m, nil
}

func (m shopModel) cycleCategory(dir int) (tea.Model, tea.Cmd) {
	if len(m.categories) == 0 {
		return m, nil
	}
	// Cycle through "all" (-1) plus each category.
	n := len(m.categories)
	m.catSel += dir
	if m.catSel >= n {
		m.catSel = -1
	}
	if m.catSel < -1 {
		m.catSel = n - 1
	}

	id := ""
	if m.catSel >= 0 {
		id = catIDString(m.categories[m.catSel].ID)
	}
	cmd := m.apply(func(f catalog.Filters) catalog.Filters {
		f.CategoryID = id
		return f
	})
	return m, cmd
}

func (m shopModel) cycleSort(dir int) (tea.Model, tea.Cmd) {
	f := m.ctrl.Filters()
	idx := 0
	for i, s := range sortCycle {
		if s == f.Sort {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(sortCycle)) % len(sortCycle)
	next := sortCycle[idx]
	cmd := m.apply(func(f catalog.Filters) catalog.Filters {
		f.Sort = next
		return f
	})
	return m, cmd
}

func (m shopModel) resetAll() (tea.Model, tea.Cmd) {
	m.searchDeb.Cancel()
	m.searchInput.SetValue("")
	m.minInput.SetValue("")
	m.maxInput.SetValue("")
	m.catSel = -1
	if !m.ctrl.Reset() {
		return m, nil
	}
	m.persistState()
	cmd := m.startFetch()
	return m, cmd
}
