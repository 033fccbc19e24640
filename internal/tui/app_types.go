package tui

import (
	"shopfront-cli/internal/model"
)

// Shop view focus areas. Keys route to the focused control first; global
// bindings only fire when no text input is active.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusSidebar
)

// Sidebar controls, top to bottom.
type sidebarControl int

const (
	sidebarCategory sidebarControl = iota
	sidebarMinPrice
	sidebarMaxPrice
	sidebarInStock
	sidebarSort
	sidebarReset

	sidebarControlCount
)

// searchDebounceMsg wakes the search debounce gate; only the newest token
// fires (stale ticks fall through).
type searchDebounceMsg struct{ token int }

// productsMsg delivers a list-request result. seq identifies the request;
// anything older than the model's current fetch seq is discarded so an
// out-of-order completion can never overwrite a newer result.
type productsMsg struct {
	seq   int
	items []model.Product
	err   error
}

type categoriesMsg struct {
	cats []model.Category
	err  error
}

type minibufferClearMsg struct{ seq int }

// Admin console modes. Creating/Editing correspond to the open form modal.
type adminMode int

const (
	adminLogin adminMode = iota
	adminIdle
	adminCreating
	adminEditing
)

// Admin screen sections (products table vs category manager).
type adminSection int

const (
	sectionProducts adminSection = iota
	sectionCategories
)

type loginDoneMsg struct {
	token string
	err   error
}

type adminListMsg struct {
	items []model.Product
	err   error
}

type adminCatsMsg struct {
	cats []model.Category
	err  error
}

// productSavedMsg reports a create/update write. Success closes the form and
// triggers a full list re-fetch (the server assigns ids and image paths, so
// there is no optimistic insert).
type productSavedMsg struct{ err error }

// productDeletedMsg reports a delete write. Success removes the row locally
// without a re-fetch; failure leaves the list untouched.
type productDeletedMsg struct {
	id  int
	err error
}

type categorySavedMsg struct{ err error }

type categoryDeletedMsg struct {
	id  int
	err error
}
