package catalog

// Sort is one of the orderings the read endpoint understands.
type Sort string

const (
	SortPriceAsc  Sort = "price_asc"
	SortPriceDesc Sort = "price_desc"
	SortNameAsc   Sort = "name_asc"
	SortNameDesc  Sort = "name_desc"
)

// ValidSort reports whether s is a recognized sort value.
func ValidSort(s Sort) bool {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

const (
	DefaultSort     = SortPriceAsc
	DefaultPage     = 1
	DefaultPageSize = 24
)

// Filters is the canonical catalog query. It is a value object: every
// mutation replaces the whole value (see Controller).
//
// MinPrice/MaxPrice stay textual on purpose: they come from free-form input
// and are forwarded verbatim; the server does the numeric comparison.
type Filters struct {
	Search     string
	CategoryID string
	MinPrice   string
	MaxPrice   string
	InStock    bool
	Sort       Sort
	Page       int
	PageSize   int
}

// DefaultFilters returns the zero query: every field at its default, which
// encodes to the empty query string.
func DefaultFilters() Filters {
	return Filters{
		Sort:     DefaultSort,
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}
}
