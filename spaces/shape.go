// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package spaces

// Room is the wire representation of a leaf room: the full node
// without the (empty) child list.
type Room struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Capacity *Capacity `json:"capacity,omitempty"`
}

// Shape decides the wire representation for a resolved node.  A leaf
// room becomes a Room with its capacity; a container collapses to
// just its child list, since the caller already knows what it asked
// for and containers carry no capacity.  This is the only branch in
// response formatting, and it is applied uniformly by every fetch
// endpoint.
func Shape(node *SpaceNode) interface{} {
	if node.IsRoom() {
		return Room{ID: node.ID, Name: node.Name, Capacity: node.Capacity}
	}
	return node.Children
}
