package catalog

import "testing"

func TestController_SeedFromQuery(t *testing.T) {
	c := NewController("search=milk&category_id=2&page=3")
	f := c.Filters()
	if f.Search != "milk" || f.CategoryID != "2" || f.Page != 3 {
		t.Fatalf("unexpected seeded filters: %+v", f)
	}
	if c.Location() != "category_id=2&page=3&search=milk" {
		t.Fatalf("unexpected seeded location: %q", c.Location())
	}
}

func TestController_SeedFromGarbageYieldsDefaults(t *testing.T) {
	c := NewController("page=abc&sort=wat")
	if c.Filters() != DefaultFilters() {
		t.Fatalf("expected defaults, got %+v", c.Filters())
	}
	if c.Location() != "" {
		t.Fatalf("expected empty location, got %q", c.Location())
	}
}

func TestController_FilterEditResetsPage(t *testing.T) {
	c := NewController("page=3")

	changed := c.Apply(func(f Filters) Filters {
		f.MinPrice = "10"
		return f
	})
	if !changed {
		t.Fatalf("expected a location change")
	}
	if got := c.Filters().Page; got != 1 {
		t.Fatalf("expected page reset to 1, got %d", got)
	}
	if got := c.Filters().MinPrice; got != "10" {
		t.Fatalf("expected minPrice applied, got %q", got)
	}
}

func TestController_ExplicitPageNavigationKeepsFilters(t *testing.T) {
	c := NewController("search=milk")

	c.Apply(func(f Filters) Filters {
		f.Page = 4
		return f
	})
	f := c.Filters()
	if f.Page != 4 {
		t.Fatalf("expected page 4, got %d", f.Page)
	}
	if f.Search != "milk" {
		t.Fatalf("expected search preserved, got %q", f.Search)
	}
}

func TestController_NoopApplyReportsUnchanged(t *testing.T) {
	c := NewController("search=milk")
	if c.Apply(func(f Filters) Filters { return f }) {
		t.Fatalf("identity apply must not report a change")
	}
}

func TestController_SearchEditFromDeepPage(t *testing.T) {
	c := NewController("search=milk&page=5")
	c.Apply(func(f Filters) Filters {
		f.Search = "milks"
		return f
	})
	if got := c.Filters().Page; got != 1 {
		t.Fatalf("search edit should reset page, got %d", got)
	}
	if got := c.Location(); got != "search=milks" {
		t.Fatalf("unexpected location: %q", got)
	}
}

func TestController_ResetRestoresDefaultsAtomically(t *testing.T) {
	c := NewController("search=milk&category_id=2&min_price=5&in_stock=true&sort=name_desc&page=9&page_size=12")
	if !c.Reset() {
		t.Fatalf("expected reset to change the location")
	}
	if c.Filters() != DefaultFilters() {
		t.Fatalf("expected defaults after reset, got %+v", c.Filters())
	}
	if c.Location() != "" {
		t.Fatalf("expected empty location after reset, got %q", c.Location())
	}
}

func TestController_ResetFromDefaultsIsNoop(t *testing.T) {
	c := NewController("")
	if c.Reset() {
		t.Fatalf("reset from defaults must not report a change")
	}
}
