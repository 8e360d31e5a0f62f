// Package pager tracks how much of the ordered working set is on screen.
package pager

// DefaultPageSize is how many records each page adds.
const DefaultPageSize = 15

// Cursor counts materialized records. It only grows between resets.
type Cursor struct {
	size  int
	count int
}

// New returns a cursor showing one page. Non-positive sizes fall back to
// DefaultPageSize.
func New(pageSize int) *Cursor {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Cursor{size: pageSize, count: pageSize}
}

// PageSize returns the page increment.
func (c *Cursor) PageSize() int { return c.size }

// Reset returns to one page. Called whenever the working set is re-derived.
func (c *Cursor) Reset() { c.count = c.size }

// Count is the raw cursor value; it may exceed the working set.
func (c *Cursor) Count() int { return c.count }

// HasMore reports whether records beyond the cursor exist.
func (c *Cursor) HasMore(total int) bool { return c.count < total }

// Advance adds a page if more records exist and reports whether it did.
func (c *Cursor) Advance(total int) bool {
	if !c.HasMore(total) {
		return false
	}
	c.count += c.size
	return true
}

// Visible is how many of total records are on screen.
func (c *Cursor) Visible(total int) int {
	return min(c.count, total)
}

// Slice returns the visible prefix of items.
func Slice[T any](c *Cursor, items []T) []T {
	return items[:c.Visible(len(items))]
}
