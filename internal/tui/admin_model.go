package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"shopfront-cli/internal/api"
	"shopfront-cli/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Admin form fields, in tab order.
const (
	formName = iota
	formDescription
	formPrice
	formCategory
	formBuyURL
	formImage
	formAvailable

	formFieldCount
)

type adminModel struct {
	client *api.Client

	width  int
	height int

	mode    adminMode
	section adminSection
	// editingID is the product id scoped by mode == adminEditing.
	editingID int

	loginInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loggingIn     bool

	products   []model.Product
	categories []model.Category
	prodCursor int
	catCursor  int

	// pendingDeleteID / pendingDeleteCatID hold the id awaiting "y"
	// confirmation; 0 means no pending delete.
	pendingDeleteID    int
	pendingDeleteCatID int

	nameInput     textinput.Model
	priceInput    textinput.Model
	categoryInput textinput.Model
	buyURLInput   textinput.Model
	imageInput    textinput.Model
	descArea      textarea.Model
	availToggle   bool
	formFocus     int

	newCatInput textinput.Model
	busy        bool

	minibufferText string
	minibufferSeq  int

	initialCmd tea.Cmd
}

func newAdminModel(client *api.Client, token string) adminModel {
	m := adminModel{
		client: client,
		mode:   adminLogin,
	}

	m.loginInput = textinput.New()
	m.loginInput.Placeholder = "Login"
	m.loginInput.CharLimit = 100
	m.loginInput.Width = 32
	m.loginInput.Focus()

	m.passwordInput = textinput.New()
	m.passwordInput.Placeholder = "Password"
	m.passwordInput.CharLimit = 100
	m.passwordInput.Width = 32
	m.passwordInput.EchoMode = textinput.EchoPassword

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "Name"
	m.nameInput.CharLimit = 200
	m.nameInput.Width = 48

	m.priceInput = textinput.New()
	m.priceInput.Placeholder = "Price"
	m.priceInput.CharLimit = 12
	m.priceInput.Width = 12

	m.categoryInput = textinput.New()
	m.categoryInput.Placeholder = "Category id"
	m.categoryInput.CharLimit = 6
	m.categoryInput.Width = 12

	m.buyURLInput = textinput.New()
	m.buyURLInput.Placeholder = "Buy URL (optional)"
	m.buyURLInput.CharLimit = 500
	m.buyURLInput.Width = 48

	m.imageInput = textinput.New()
	m.imageInput.Placeholder = "Image file path (optional)"
	m.imageInput.CharLimit = 500
	m.imageInput.Width = 48

	m.descArea = textarea.New()
	m.descArea.Placeholder = "Description"
	m.descArea.CharLimit = 0
	m.descArea.SetWidth(48)
	m.descArea.SetHeight(4)
	m.descArea.ShowLineNumbers = false

	m.newCatInput = textinput.New()
	m.newCatInput.Placeholder = "New category"
	m.newCatInput.CharLimit = 100
	m.newCatInput.Width = 32

	if tok := strings.TrimSpace(token); tok != "" {
		client.SetToken(tok)
		m.mode = adminIdle
		m.initialCmd = tea.Batch(m.fetchList(), m.fetchCats())
	}

	return m
}

func (m adminModel) Init() tea.Cmd {
	if m.initialCmd != nil {
		return tea.Batch(m.initialCmd, textinput.Blink)
	}
	return textinput.Blink
}

// The admin console has no superseding queries: mutations and refreshes run
// one at a time (busy flag), so plain background contexts suffice and the
// transport timeout bounds each call.

func (m adminModel) fetchList() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		items, err := client.FetchProducts(context.Background(), "")
		return adminListMsg{items: items, err: err}
	}
}

func (m adminModel) fetchCats() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		cats, err := client.RefreshCategories(context.Background())
		return adminCatsMsg{cats: cats, err: err}
	}
}

func (m adminModel) loginCmd() tea.Cmd {
	client := m.client
	login := m.loginInput.Value()
	password := m.passwordInput.Value()
	return func() tea.Msg {
		tok, err := client.Login(context.Background(), login, password)
		return loginDoneMsg{token: tok, err: err}
	}
}

func (m adminModel) saveProductCmd() tea.Cmd {
	client := m.client
	form := api.ProductForm{
		Name:        strings.TrimSpace(m.nameInput.Value()),
		Description: m.descArea.Value(),
		Price:       strings.TrimSpace(m.priceInput.Value()),
		CategoryID:  strings.TrimSpace(m.categoryInput.Value()),
		Available:   m.availToggle,
		BuyURL:      strings.TrimSpace(m.buyURLInput.Value()),
	}
	imagePath := strings.TrimSpace(m.imageInput.Value())
	id := m.editingID
	creating := m.mode == adminCreating
	return func() tea.Msg {
		var err error
		if creating {
			err = client.CreateProduct(context.Background(), form, imagePath)
		} else {
			err = client.UpdateProduct(context.Background(), id, form, imagePath)
		}
		return productSavedMsg{err: err}
	}
}

func (m adminModel) deleteProductCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteProduct(context.Background(), id)
		return productDeletedMsg{id: id, err: err}
	}
}

func (m adminModel) createCategoryCmd(name string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.CreateCategory(context.Background(), name)
		return categorySavedMsg{err: err}
	}
}

func (m adminModel) deleteCategoryCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteCategory(context.Background(), id)
		return categoryDeletedMsg{id: id, err: err}
	}
}

func (m *adminModel) showMinibuffer(text string) tea.Cmd {
	m.minibufferText = text
	m.minibufferSeq++
	seq := m.minibufferSeq
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg { return minibufferClearMsg{seq: seq} })
}

func (m *adminModel) selectedProduct() (model.Product, bool) {
	if m.prodCursor < 0 || m.prodCursor >= len(m.products) {
		return model.Product{}, false
	}
	return m.products[m.prodCursor], true
}

func (m *adminModel) selectedCategory() (model.Category, bool) {
	if m.catCursor < 0 || m.catCursor >= len(m.categories) {
		return model.Category{}, false
	}
	return m.categories[m.catCursor], true
}

// removeProductLocally drops id from the local list (optimistic delete
// confirmed by the server; no re-fetch needed).
func (m *adminModel) removeProductLocally(id int) {
	out := m.products[:0]
	for _, p := range m.products {
		if p.ID != id {
			out = append(out, p)
		}
	}
	m.products = out
	if m.prodCursor >= len(m.products) && m.prodCursor > 0 {
		m.prodCursor = len(m.products) - 1
	}
}

func (m *adminModel) openCreateForm() {
	m.mode = adminCreating
	m.editingID = 0
	m.nameInput.SetValue("")
	m.priceInput.SetValue("")
	m.categoryInput.SetValue("")
	m.buyURLInput.SetValue("")
	m.imageInput.SetValue("")
	m.descArea.SetValue("")
	m.availToggle = false
	m.focusFormField(formName)
}

func (m *adminModel) openEditForm(p model.Product) {
	m.mode = adminEditing
	m.editingID = p.ID
	m.nameInput.SetValue(p.Name)
	m.priceInput.SetValue(strconv.FormatFloat(p.Price, 'f', -1, 64))
	m.categoryInput.SetValue(strconv.Itoa(p.CategoryID))
	m.buyURLInput.SetValue(p.BuyURL)
	m.imageInput.SetValue("")
	m.descArea.SetValue(p.Description)
	m.availToggle = p.Available
	m.focusFormField(formName)
}

func (m *adminModel) closeForm() {
	m.mode = adminIdle
	m.editingID = 0
	m.blurForm()
}

func (m *adminModel) blurForm() {
	m.nameInput.Blur()
	m.priceInput.Blur()
	m.categoryInput.Blur()
	m.buyURLInput.Blur()
	m.imageInput.Blur()
	m.descArea.Blur()
}

func (m *adminModel) focusFormField(field int) {
	m.formFocus = field
	m.blurForm()
	switch field {
	case formName:
		m.nameInput.Focus()
	case formDescription:
		m.descArea.Focus()
	case formPrice:
		m.priceInput.Focus()
	case formCategory:
		m.categoryInput.Focus()
	case formBuyURL:
		m.buyURLInput.Focus()
	case formImage:
		m.imageInput.Focus()
	case formAvailable:
		// Toggle row; no text input to focus.
	}
}
