// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package spaces defines the space-directory data model and the
// resolution engine that turns human-readable paths into concrete
// spaces.
//
// The model mirrors the FenixEDU spaces API: a tree of campuses,
// buildings, floors, and rooms, where every node is addressed by an
// opaque upstream identifier.  Nothing in this package performs
// network I/O itself; all fetching goes through the Directory
// interface, so the resolver can be driven equally by the live
// FenixEDU client in the fenix package or by a scripted directory in
// tests.
//
// Nothing here is ever cached.  Every resolution re-fetches its nodes
// from the Directory, one fetch per hierarchy level.  The upstream
// tree changes rarely enough that staleness is not worth an
// invalidation protocol, and the lack of shared state keeps
// concurrent requests trivially independent.
package spaces

// Directory is a view of the upstream space tree.  Implementations
// fetch nodes on demand and classify their failures using the error
// types in this package.
type Directory interface {
	// Root returns the top-level spaces (the campuses).
	Root() ([]ChildRef, error)

	// Space fetches one node by its opaque upstream identifier.
	// A missing id yields ErrNoSuchSpace; an unreachable or
	// failing upstream yields ErrUpstream; a response body that
	// does not parse yields ErrMalformedData.
	Space(id string) (*SpaceNode, error)
}

// ChildRef is a shallow reference to a space inside its parent's
// child list.  It carries just enough to locate the next id to
// dereference.
type ChildRef struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
}

// Capacity is the seating capacity attached to leaf rooms.
type Capacity struct {
	Normal int `json:"normal" mapstructure:"normal"`
}

// SpaceNode is one fully fetched node of the space tree.
type SpaceNode struct {
	// ID is the opaque upstream identifier, immutable once
	// assigned.
	ID string `json:"id" mapstructure:"id"`

	// Name is the display name; it may contain accents, spaces,
	// and slashes, and must be sanitized before comparison.
	Name string `json:"name" mapstructure:"name"`

	// Type is the upstream's own type tag ("CAMPUS", "BUILDING",
	// "FLOOR", "ROOM").  It is decoded for completeness but never
	// trusted: upstream typing is inconsistent, so room-ness is
	// derived structurally via IsRoom.
	Type string `json:"type,omitempty" mapstructure:"type"`

	// Children holds shallow references to the contained spaces,
	// in upstream order.
	Children []ChildRef `json:"containedSpaces" mapstructure:"containedSpaces"`

	// Capacity is present only on leaf rooms.
	Capacity *Capacity `json:"capacity,omitempty" mapstructure:"capacity"`
}

// IsRoom reports whether the node is a leaf room.  A node is a room
// iff it has no children; this is the sole discriminator between
// containers and rooms.
func (node *SpaceNode) IsRoom() bool {
	return len(node.Children) == 0
}
