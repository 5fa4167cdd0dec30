/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

// Pair is one property-name→value binding.
type Pair struct {
	Property string
	Value    any
}

// Criteria is an ordered equality-criteria map, constructed per call.
// Property names are resolved to column names at the mapper boundary; an
// unregistered property name fails the whole operation.
type Criteria struct {
	pairs []Pair
}

// NewCriteria creates an empty criteria set. Empty criteria compile to a
// statement with no WHERE clause.
func NewCriteria() *Criteria {
	return &Criteria{}
}

// Eq appends an equality condition and returns the criteria for chaining.
func (c *Criteria) Eq(property string, value any) *Criteria {
	c.pairs = append(c.pairs, Pair{Property: property, Value: value})
	return c
}

// Pairs returns the conditions in insertion order.
func (c *Criteria) Pairs() []Pair {
	if c == nil {
		return nil
	}
	return c.pairs
}

// Len returns the number of conditions. A nil criteria has zero.
func (c *Criteria) Len() int {
	if c == nil {
		return 0
	}
	return len(c.pairs)
}

// Updates is an ordered property→new-value field set for update operations.
type Updates struct {
	pairs []Pair
}

// NewUpdates creates an empty update-field set.
func NewUpdates() *Updates {
	return &Updates{}
}

// Set appends a field assignment and returns the set for chaining.
func (u *Updates) Set(property string, value any) *Updates {
	u.pairs = append(u.pairs, Pair{Property: property, Value: value})
	return u
}

// Pairs returns the assignments in insertion order.
func (u *Updates) Pairs() []Pair {
	if u == nil {
		return nil
	}
	return u.pairs
}

// Len returns the number of assignments. A nil set has zero.
func (u *Updates) Len() int {
	if u == nil {
		return 0
	}
	return len(u.pairs)
}
