package catalog

// Controller is the sole owner of the active Filters value and of its
// canonical query-string form (the "location"). Everything else reads
// snapshots; mutation goes through Apply/Reset only.
//
// The location is updated replace-style: there is exactly one current value
// and no history.
type Controller struct {
	filters  Filters
	location string
}

// NewController seeds the controller by decoding rawQuery. An empty or
// malformed query yields the defaults.
func NewController(rawQuery string) *Controller {
	c := &Controller{filters: DecodeQuery(rawQuery)}
	c.location = EncodeQuery(c.filters)
	return c
}

// Filters returns a snapshot of the current query.
func (c *Controller) Filters() Filters { return c.filters }

// Location returns the current encoded query string ("" when everything is
// at its default).
func (c *Controller) Location() string { return c.location }

// Apply replaces the current Filters with mut(current).
//
// Any edit that leaves Page untouched resets it to 1: changing criteria
// always starts over from the first page. Explicit page navigation sets Page
// to a different value and is therefore exempt.
//
// Returns true when the location changed (i.e. a re-fetch is warranted).
func (c *Controller) Apply(mut func(Filters) Filters) bool {
	prev := c.filters
	next := mut(prev)
	if next.Page == prev.Page && next != prev {
		next.Page = 1
	}
	return c.replace(next)
}

// Reset restores every field to its default in one step.
func (c *Controller) Reset() bool {
	return c.replace(DefaultFilters())
}

func (c *Controller) replace(next Filters) bool {
	c.filters = next
	loc := EncodeQuery(next)
	if loc == c.location {
		return false
	}
	c.location = loc
	return true
}
