// Package tags maintains the deduplicated, order-preserving label lists used
// for profile skills and interests.
//
// Matching is exact-string, case-sensitive, after trimming surrounding
// whitespace. "Go" and "go" are distinct tags; this is a deliberate product
// choice, not an oversight.
package tags

import "strings"

// Collection is an ordered sequence of distinct, non-empty, trimmed strings.
// The zero value is an empty collection ready to use. Operations return a new
// Collection (or the receiver unchanged on a no-op); the backing slice of a
// returned Collection is never shared for mutation.
type Collection struct {
	values []string
}

// New builds a Collection from the given values, applying the same trimming
// and deduplication rules as Add, in order.
func New(values ...string) Collection {
	var c Collection
	for _, v := range values {
		c = c.Add(v)
	}
	return c
}

// Add appends the trimmed value unless it is empty or already present.
// Adding an existing value is a no-op, so Add is idempotent.
func (c Collection) Add(s string) Collection {
	t := strings.TrimSpace(s)
	if t == "" || c.Contains(t) {
		return c
	}
	next := make([]string, 0, len(c.values)+1)
	next = append(next, c.values...)
	next = append(next, t)
	return Collection{values: next}
}

// Remove drops the single occurrence of value, if present. Order of the
// remaining values is preserved.
func (c Collection) Remove(value string) Collection {
	for i, v := range c.values {
		if v == value {
			next := make([]string, 0, len(c.values)-1)
			next = append(next, c.values[:i]...)
			next = append(next, c.values[i+1:]...)
			return Collection{values: next}
		}
	}
	return c
}

// Contains reports whether value is present (exact match, no trimming).
func (c Collection) Contains(value string) bool {
	for _, v := range c.values {
		if v == value {
			return true
		}
	}
	return false
}

// Values returns the tags in insertion order. The returned slice is a copy;
// it is never nil so it can be sent to the API as an empty JSON array.
func (c Collection) Values() []string {
	out := make([]string, len(c.values))
	copy(out, c.values)
	return out
}

// Len returns the number of tags.
func (c Collection) Len() int {
	return len(c.values)
}
