// Package domain contains the core types of a slice session: usages,
// the nodes that wrap them, and the settings that shape a session.
package domain

import "fmt"

// Location is the identity-relevant payload of a usage: the range it
// occupies inside its containing file.
type Location struct {
	File  string
	Start int
	End   int
	Line  int
}

// String renders the location as file:line.
func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Entity is an element of the analyzed program. Its location may change
// whenever the analyzed system advances its revision.
type Entity interface {
	// ID is a stable handle for the entity, independent of its location.
	ID() string
	// Location reports where the entity currently lives.
	Location() Location
	// Text is the source snippet shown in previews.
	Text() string
}

// Usage is one occurrence of a traced entity within the slice, stamped
// with the revision that was current when it was produced.
type Usage struct {
	Entity   Entity
	Revision uint64
}

// Location reports the current location of the underlying entity.
func (u Usage) Location() Location {
	if u.Entity == nil {
		return Location{}
	}
	return u.Entity.Location()
}

// String renders the usage for logs.
func (u Usage) String() string {
	if u.Entity == nil {
		return "<nil usage>"
	}
	return fmt.Sprintf("%s@%s", u.Entity.ID(), u.Entity.Location())
}

// Navigable is anything that can jump to its source.
type Navigable interface {
	CanNavigate() bool
	Navigate(requestFocus bool) error
}
