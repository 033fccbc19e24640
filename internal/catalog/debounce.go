package catalog

// DebounceDelay is how long search input must stay quiet before it is
// propagated to the query.
const DebounceDelay = 400 // milliseconds

// Debounce delays propagation of a rapidly changing string until it settles.
//
// It is deliberately timer-free: the caller schedules a wakeup for each Put
// (in the TUI, a tea.Tick carrying the returned token) and hands the token
// back via Take. Only the token from the newest Put is honored, so stale
// wakeups fall through without emitting. That keeps the gate single-threaded
// and makes the emitted values a strict subsequence of the inputs.
type Debounce struct {
	seq     int
	pending string
	armed   bool
}

// Put records v as the latest input and returns a token identifying it.
// Any previously pending value is superseded.
func (d *Debounce) Put(v string) int {
	d.seq++
	d.pending = v
	d.armed = true
	return d.seq
}

// Take resolves a wakeup. It emits the pending value only when token matches
// the newest Put and nothing has been cancelled in between; otherwise it
// reports ok=false and the caller does nothing.
func (d *Debounce) Take(token int) (v string, ok bool) {
	if !d.armed || token != d.seq {
		return "", false
	}
	d.armed = false
	return d.pending, true
}

// Cancel drops any pending value without emitting (teardown path).
func (d *Debounce) Cancel() {
	d.armed = false
	d.pending = ""
}
