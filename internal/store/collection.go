// Package store holds the in-memory budget collections owned by one form session.
package store

import (
	"slices"

	"github.com/theirongolddev/presupuesto/internal/model"
)

// Collection is an ordered set of rows keyed by a per-collection integer id.
// Insertion order is display and export order. The zero value is empty and ready to use.
type Collection[T any, P interface {
	*T
	model.Record
}] struct {
	rows []T
}

// Add validates draft and appends it with id = max(existing ids, 0) + 1.
// Any id already on draft is ignored. On a validation failure the collection is
// unchanged and the returned error is a *model.ValidationError; callers that
// want the lenient form behaviour can simply drop it.
func (c *Collection[T, P]) Add(draft T) (int, error) {
	rec := P(&draft)
	if err := rec.Validate(); err != nil {
		return 0, err
	}
	id := c.maxID() + 1
	rec.AssignID(id)
	rec.Derive()
	c.rows = append(c.rows, draft)
	return id, nil
}

// Update sets one field on the row with the given id and recomputes its derived
// totals. A missing id is a no-op. A rejected value leaves the row untouched.
func (c *Collection[T, P]) Update(id int, field string, value any) error {
	i := c.index(id)
	if i < 0 {
		return nil
	}
	next := c.rows[i]
	if err := P(&next).Set(field, value); err != nil {
		return err
	}
	c.rows[i] = next
	return nil
}

// Delete removes the row with the given id and reports whether one was removed.
// Remaining ids are never shifted.
func (c *Collection[T, P]) Delete(id int) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.rows = slices.Delete(c.rows, i, i+1)
	return true
}

// List returns a copy of the rows in insertion order.
func (c *Collection[T, P]) List() []T {
	return slices.Clone(c.rows)
}

// Get returns the row with the given id.
func (c *Collection[T, P]) Get(id int) (T, bool) {
	i := c.index(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return c.rows[i], true
}

// Len returns the number of rows.
func (c *Collection[T, P]) Len() int {
	return len(c.rows)
}

func (c *Collection[T, P]) index(id int) int {
	for i := range c.rows {
		if P(&c.rows[i]).RecordID() == id {
			return i
		}
	}
	return -1
}

func (c *Collection[T, P]) maxID() int {
	maxID := 0
	for i := range c.rows {
		if id := P(&c.rows[i]).RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID
}
