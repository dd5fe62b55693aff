// Package search filters catalog entries by optional name, id and genre terms.
package search

import (
	"fmt"
	"strconv"
	"strings"
)

// Criteria holds the optional search terms. Zero values mean no constraint.
type Criteria struct {
	Name  string
	ID    int64
	Genre string
}

// Normalize trims the string terms and clears a non-positive id.
func (c Criteria) Normalize() Criteria {
	c.Name = strings.TrimSpace(c.Name)
	c.Genre = strings.TrimSpace(c.Genre)
	if c.ID < 0 {
		c.ID = 0
	}
	return c
}

// IsEmpty reports whether the normalized criteria constrain nothing.
func (c Criteria) IsEmpty() bool {
	n := c.Normalize()
	return n.Name == "" && n.ID == 0 && n.Genre == ""
}

// String renders the active terms for display, e.g. "name: a, genre: Action".
func (c Criteria) String() string {
	n := c.Normalize()
	var parts []string
	if n.Name != "" {
		parts = append(parts, "name: "+n.Name)
	}
	if n.ID != 0 {
		parts = append(parts, fmt.Sprintf("id: %d", n.ID))
	}
	if n.Genre != "" {
		parts = append(parts, "genre: "+n.Genre)
	}
	return strings.Join(parts, ", ")
}

// ParseID parses an id term. Blank, unparsable or non-positive input
// yields 0, which means no id constraint.
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
