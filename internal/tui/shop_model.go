package tui

import (
	"context"
	"time"

	"shopfront-cli/internal/api"
	"shopfront-cli/internal/catalog"
	"shopfront-cli/internal/model"
	"shopfront-cli/internal/store"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const searchDebounceDelay = catalog.DebounceDelay * time.Millisecond

type shopModel struct {
	client *api.Client
	store  store.Store

	// ctrl owns the filter state and its canonical query string; nothing else
	// writes filters.
	ctrl      *catalog.Controller
	searchDeb catalog.Debounce

	width  int
	height int

	focus      focusArea
	sidebarSel sidebarControl

	searchInput textinput.Model
	minInput    textinput.Model
	maxInput    textinput.Model

	productList list.Model
	products    []model.Product
	categories  []model.Category
	// catSel indexes categories; -1 means "all categories".
	catSel int

	showDetail bool

	// fetchSeq identifies the newest list request; fetchCancel aborts the
	// in-flight one. Results carrying an older seq are discarded on arrival.
	fetchSeq    int
	fetchCancel context.CancelFunc
	fetching    bool

	// initialCmd carries the startup fetch prepared by the constructor
	// (Init receives the model by value, so it cannot bump fetchSeq itself).
	initialCmd tea.Cmd

	minibufferText string
	minibufferSeq  int
}

func newShopModel(client *api.Client, st store.Store, initialQuery string) shopModel {
	m := shopModel{
		client: client,
		store:  st,
		ctrl:   catalog.NewController(initialQuery),
		focus:  focusList,
		catSel: -1,
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search products"
	m.searchInput.CharLimit = 200
	m.searchInput.Width = 40

	m.minInput = textinput.New()
	m.minInput.Placeholder = "min"
	m.minInput.CharLimit = 12
	m.minInput.Width = 8

	m.maxInput = textinput.New()
	m.maxInput.Placeholder = "max"
	m.maxInput.CharLimit = 12
	m.maxInput.Width = 8

	m.productList = newProductList()

	// Reflect the seeded query in the inputs.
	f := m.ctrl.Filters()
	m.searchInput.SetValue(f.Search)
	m.minInput.SetValue(f.MinPrice)
	m.maxInput.SetValue(f.MaxPrice)

	m.initialCmd = m.startFetch()

	return m
}

func (m shopModel) Init() tea.Cmd {
	return tea.Batch(m.initialCmd, m.fetchCategories(), textinput.Blink)
}

// startFetch issues the list request for the current location, cancelling any
// request still in flight. Only a result carrying the returned seq will be
// accepted.
func (m *shopModel) startFetch() tea.Cmd {
	if m.fetchCancel != nil {
		m.fetchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.fetchCancel = cancel
	m.fetchSeq++
	m.fetching = true

	seq := m.fetchSeq
	query := m.ctrl.Location()
	client := m.client
	return func() tea.Msg {
		items, err := client.FetchProducts(ctx, query)
		return productsMsg{seq: seq, items: items, err: err}
	}
}

// fetchCategories runs once at startup; failure degrades to an empty set and
// never blocks the product list.
func (m shopModel) fetchCategories() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cats, err := client.Categories(context.Background())
		return categoriesMsg{cats: cats, err: err}
	}
}

// apply routes a filter edit through the controller and re-fetches when the
// location changed. The persisted UI state follows the location
// replace-style.
func (m *shopModel) apply(mut func(catalog.Filters) catalog.Filters) tea.Cmd {
	if !m.ctrl.Apply(mut) {
		return nil
	}
	m.persistState()
	return m.startFetch()
}

func (m *shopModel) persistState() {
	// Best-effort: a failed save must never disturb browsing.
	_ = m.store.SaveUIState(context.Background(), &store.UIState{
		LastQuery:  m.ctrl.Location(),
		ShowDetail: m.showDetail,
	})
}

func (m *shopModel) setProducts(items []model.Product) {
	m.products = items
	m.productList.SetItems(productListItems(items))
}

func (m *shopModel) selectedProduct() (model.Product, bool) {
	it, ok := m.productList.SelectedItem().(productItem)
	if !ok {
		return model.Product{}, false
	}
	return it.product, true
}

func (m *shopModel) showMinibuffer(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}

// syncCatSel aligns the category cursor with the controller state (used after
// categories arrive and after reset).
func (m *shopModel) syncCatSel() {
	f := m.ctrl.Filters()
	m.catSel = -1
	if f.CategoryID == "" {
		return
	}
	for i, c := range m.categories {
		if catIDString(c.ID) == f.CategoryID {
			m.catSel = i
			return
		}
	}
}

func (m *shopModel) resizeLayout() {
	listW := m.width - sidebarWidth - 4
	if listW < 20 {
		listW = m.width - 2
	}
	listH := m.height - 8
	if listH < 3 {
		listH = 3
	}
	m.productList.SetSize(listW, listH)
}
