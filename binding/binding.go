// Package binding associates a History with each input element and routes
// commit and navigation events into it.
package binding

import (
	"histpad/history"
)

// Element is the binder's handle on an input field: read the displayed
// value, replace the displayed value. The host guarantees elements are
// comparable so they can key the store.
type Element interface {
	Value() string
	SetValue(string)
}

// Direction a navigation key points.
type Direction uint8

const (
	None Direction = iota
	Older
	Newer
)

// Gesture is the distilled form of a key event: whether the history
// modifier was held and which way the pressed key points. It is computed
// once at the UI boundary so nothing below it inspects raw key events.
type Gesture struct {
	ModifierHeld bool
	Direction    Direction
}

// Qualifies reports whether the gesture should trigger history navigation.
func (g Gesture) Qualifies() bool {
	return g.ModifierHeld && g.Direction != None
}

// Binder owns the element-to-History association and translates commit and
// navigation events into History calls.
type Binder struct {
	store Store
	max   int
}

// New returns a Binder backed by store, or by a fresh MapStore when store is
// nil. max is the per-element history capacity; values below 1 fall back to
// history.DefaultCap.
func New(store Store, max int) *Binder {
	if store == nil {
		store = NewMapStore()
	}
	return &Binder{store: store, max: max}
}

// resolve returns the element's History, creating and associating one on
// first use.
func (b *Binder) resolve(el Element) *history.History {
	if h, ok := b.store.Get(el); ok {
		return h
	}
	h := history.New(b.max)
	b.store.Set(el, h)
	return h
}

// OnCommit records the element's displayed value as a history entry. An
// empty value is not committed and does not create a History for an element
// that has none yet.
func (b *Binder) OnCommit(el Element) {
	if el.Value() == "" {
		return
	}
	b.resolve(el).Push(el.Value())
}

// OnNavigate handles a key gesture on el. Gestures without the modifier or
// with a key that is not one of the two navigation keys are dropped before
// touching the store. A qualifying gesture saves the displayed value as the
// session's unsubmitted value, moves the cursor, and writes the result back
// into the element, even when the result is "".
func (b *Binder) OnNavigate(el Element, g Gesture) {
	if !g.Qualifies() {
		return
	}
	h := b.resolve(el)
	h.Save(el.Value())
	var result string
	switch g.Direction {
	case Older:
		result = h.Prev()
	case Newer:
		result = h.Next()
	}
	el.SetValue(result)
}

// Reset abandons the element's navigation session, if it has one.
func (b *Binder) Reset(el Element) {
	if h, ok := b.store.Get(el); ok {
		h.Reset()
	}
}

// Entries returns the element's committed entries, oldest first, or nil for
// an element that has no History yet.
func (b *Binder) Entries(el Element) []string {
	if h, ok := b.store.Get(el); ok {
		return h.Entries()
	}
	return nil
}
