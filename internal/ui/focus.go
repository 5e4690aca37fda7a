package ui

// FocusRing rotates focus across named regions: the query box and result
// list of a view, or the fields of a form.
type FocusRing struct {
	Order   []string
	current int
}

// NewFocusRing focuses the first id.
func NewFocusRing(ids ...string) *FocusRing {
	return &FocusRing{Order: ids}
}

// Current returns the focused id, or "" for an empty ring.
func (f *FocusRing) Current() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.Order[f.current]
}

// Is reports whether id has focus.
func (f *FocusRing) Is(id string) bool {
	return f.Current() == id
}

// Index returns the position of the focused id.
func (f *FocusRing) Index() int { return f.current }

// Next moves focus forward, wrapping at the end.
func (f *FocusRing) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.current = (f.current + 1) % len(f.Order)
	return f.Current()
}

// Prev moves focus backward, wrapping at the start.
func (f *FocusRing) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.current = (f.current - 1 + len(f.Order)) % len(f.Order)
	return f.Current()
}

// Set focuses id and reports whether it is part of the ring.
func (f *FocusRing) Set(id string) bool {
	for i, o := range f.Order {
		if o == id {
			f.current = i
			return true
		}
	}
	return false
}
