package cycle

import "errors"

// ErrNoItems is returned when a Cursor is constructed over an empty sequence.
// Wrap-around has no meaning without at least one item, so construction
// rejects the degenerate case instead of leaving it to the call sites.
var ErrNoItems = errors.New("cycle: item sequence is empty")

// Cursor tracks the currently displayed position in a fixed ordered sequence
// of text items. The sequence is copied at construction and never mutated;
// the index always satisfies 0 <= index < len(items).
type Cursor struct {
	items []string
	index int
}

// New creates a Cursor positioned at the first item. The input slice is
// copied so later mutation by the caller cannot affect the sequence.
func New(items []string) (*Cursor, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	owned := make([]string, len(items))
	copy(owned, items)

	return &Cursor{items: owned}, nil
}

// Advance moves the cursor forward one position, wrapping from the last item
// back to the first, and returns the newly current item. It cannot fail for
// a constructed Cursor.
func (c *Cursor) Advance() string {
	c.index = (c.index + 1) % len(c.items)
	return c.items[c.index]
}

// Retreat moves the cursor back one position, wrapping from the first item
// to the last. The length is added before taking the modulo so the operand
// never goes negative.
func (c *Cursor) Retreat() string {
	c.index = (c.index - 1 + len(c.items)) % len(c.items)
	return c.items[c.index]
}

// Reset returns the cursor to the first item and returns it.
func (c *Cursor) Reset() string {
	c.index = 0
	return c.items[c.index]
}

// Current returns the item at the cursor position.
func (c *Cursor) Current() string {
	return c.items[c.index]
}

// Position returns the zero-based cursor index.
func (c *Cursor) Position() int {
	return c.index
}

// Len returns the number of items in the sequence.
func (c *Cursor) Len() int {
	return len(c.items)
}

// Items returns a copy of the item sequence.
func (c *Cursor) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)
	return out
}
