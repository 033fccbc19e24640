package catalog

import (
	"net/url"
	"strconv"
	"strings"
)

// Query keys use the read endpoint's snake_case names.
const (
	keySearch     = "search"
	keyCategoryID = "category_id"
	keyMinPrice   = "min_price"
	keyMaxPrice   = "max_price"
	keyInStock    = "in_stock"
	keySort       = "sort"
	keyPage       = "page"
	keyPageSize   = "page_size"
)

// EncodeQuery serializes f as a URL query string, eliding every field that
// still has its default value. DefaultFilters() encodes to "".
func EncodeQuery(f Filters) string {
	v := url.Values{}
	if f.Search != "" {
		v.Set(keySearch, f.Search)
	}
	if f.CategoryID != "" {
		v.Set(keyCategoryID, f.CategoryID)
	}
	if f.MinPrice != "" {
		v.Set(keyMinPrice, f.MinPrice)
	}
	if f.MaxPrice != "" {
		v.Set(keyMaxPrice, f.MaxPrice)
	}
	if f.InStock {
		v.Set(keyInStock, "true")
	}
	if f.Sort != DefaultSort {
		v.Set(keySort, string(f.Sort))
	}
	if f.Page != DefaultPage {
		v.Set(keyPage, strconv.Itoa(f.Page))
	}
	if f.PageSize != DefaultPageSize {
		v.Set(keyPageSize, strconv.Itoa(f.PageSize))
	}
	return v.Encode()
}

// DecodeQuery parses a query string back into Filters. It is total: absent or
// malformed values fall back to their defaults and unknown keys are ignored,
// so any input yields a usable query. A leading "?" is tolerated.
func DecodeQuery(rawQuery string) Filters {
	rawQuery = strings.TrimPrefix(strings.TrimSpace(rawQuery), "?")

	f := DefaultFilters()
	v, err := url.ParseQuery(rawQuery)
	if err != nil {
		return f
	}

	f.Search = v.Get(keySearch)
	f.CategoryID = strings.TrimSpace(v.Get(keyCategoryID))
	f.MinPrice = strings.TrimSpace(v.Get(keyMinPrice))
	f.MaxPrice = strings.TrimSpace(v.Get(keyMaxPrice))
	f.InStock = strings.EqualFold(v.Get(keyInStock), "true")
	if s := Sort(v.Get(keySort)); ValidSort(s) {
		f.Sort = s
	}
	if n, err := strconv.Atoi(v.Get(keyPage)); err == nil && n >= 1 {
		f.Page = n
	}
	if n, err := strconv.Atoi(v.Get(keyPageSize)); err == nil && n > 0 {
		f.PageSize = n
	}
	return f
}
