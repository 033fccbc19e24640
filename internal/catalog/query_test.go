package catalog

import "testing"

func TestEncodeQuery_DefaultsElideToEmpty(t *testing.T) {
	if got := EncodeQuery(DefaultFilters()); got != "" {
		t.Fatalf("expected empty query for default filters, got %q", got)
	}
}

func TestEncodeQuery_EmitsOnlyNonDefaultKeys(t *testing.T) {
	f := DefaultFilters()
	f.Search = "milk"
	f.CategoryID = "2"

	if got := EncodeQuery(f); got != "category_id=2&search=milk" {
		t.Fatalf("unexpected query: %q", got)
	}
}

func TestEncodeQuery_InStockOnlyWhenTrue(t *testing.T) {
	f := DefaultFilters()
	f.InStock = true
	if got := EncodeQuery(f); got != "in_stock=true" {
		t.Fatalf("unexpected query: %q", got)
	}
}

func TestDecodeQuery_RoundTrip(t *testing.T) {
	cases := []Filters{
		DefaultFilters(),
		{Search: "milk", CategoryID: "2", Sort: SortPriceAsc, Page: 1, PageSize: 24},
		{Search: "a b+c", Sort: SortNameDesc, Page: 7, PageSize: 48},
		{MinPrice: "10", MaxPrice: "99.50", InStock: true, Sort: SortPriceDesc, Page: 1, PageSize: 24},
		{CategoryID: "14", Sort: SortNameAsc, Page: 3, PageSize: 12},
	}
	for _, want := range cases {
		got := DecodeQuery(EncodeQuery(want))
		if got != want {
			t.Fatalf("round trip mismatch:\n want %+v\n got  %+v", want, got)
		}
	}
}

func TestDecodeQuery_ReencodeIsIdempotent(t *testing.T) {
	queries := []string{
		"",
		"search=milk&category_id=2",
		"in_stock=true&min_price=10&sort=name_desc",
		"page=3&page_size=12",
	}
	for _, q := range queries {
		once := EncodeQuery(DecodeQuery(q))
		twice := EncodeQuery(DecodeQuery(once))
		if once != twice {
			t.Fatalf("re-encode not idempotent for %q: %q vs %q", q, once, twice)
		}
	}
}

func TestDecodeQuery_MalformedValuesFallBackToDefaults(t *testing.T) {
	cases := []struct {
		raw  string
		want Filters
	}{
		{"page=abc", DefaultFilters()},
		{"page=0", DefaultFilters()},
		{"page=-3", DefaultFilters()},
		{"page_size=nope", DefaultFilters()},
		{"page_size=0", DefaultFilters()},
		{"sort=bogus", DefaultFilters()},
		{"in_stock=maybe", DefaultFilters()},
		// Invalid percent-encoding makes the whole query unparsable.
		{"search=%zz", DefaultFilters()},
	}
	for _, tc := range cases {
		if got := DecodeQuery(tc.raw); got != tc.want {
			t.Fatalf("DecodeQuery(%q):\n want %+v\n got  %+v", tc.raw, tc.want, got)
		}
	}
}

func TestDecodeQuery_UnknownKeysIgnored(t *testing.T) {
	got := DecodeQuery("utm_source=mail&search=tea&flavor=green")
	want := DefaultFilters()
	want.Search = "tea"
	if got != want {
		t.Fatalf("unknown keys should be ignored:\n want %+v\n got  %+v", want, got)
	}
}

func TestDecodeQuery_LeadingQuestionMarkTolerated(t *testing.T) {
	got := DecodeQuery("?search=milk&page=2")
	if got.Search != "milk" || got.Page != 2 {
		t.Fatalf("unexpected decode: %+v", got)
	}
}

func TestDecodeQuery_CaseInsensitiveInStock(t *testing.T) {
	if !DecodeQuery("in_stock=TRUE").InStock {
		t.Fatalf("expected in_stock=TRUE to decode as true")
	}
}
