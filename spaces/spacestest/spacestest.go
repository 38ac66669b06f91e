// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package spacestest provides a scripted in-memory spaces.Directory
// for tests.  It records every fetch, so tests can assert not just on
// resolution results but on how many upstream calls a resolution
// performed.
package spacestest

import (
	"github.com/asint/fenix-rooms/spaces"
)

// Directory is a spaces.Directory backed by a fixed node map.
type Directory struct {
	// RootRefs is returned by Root().
	RootRefs []spaces.ChildRef

	// Nodes maps ids to nodes returned by Space().
	Nodes map[string]*spaces.SpaceNode

	// Fail, if non-nil, is returned verbatim from every call.
	Fail error

	// Fetches counts Space() calls, including failed ones.
	Fetches int

	// RootFetches counts Root() calls.
	RootFetches int
}

// New creates an empty scripted directory.
func New() *Directory {
	return &Directory{Nodes: make(map[string]*spaces.SpaceNode)}
}

// Add registers a node and returns a shallow reference to it, ready
// to drop into a parent's child list or RootRefs.
func (d *Directory) Add(node *spaces.SpaceNode) spaces.ChildRef {
	d.Nodes[node.ID] = node
	return spaces.ChildRef{ID: node.ID, Name: node.Name}
}

// Root implements spaces.Directory.
func (d *Directory) Root() ([]spaces.ChildRef, error) {
	d.RootFetches++
	if d.Fail != nil {
		return nil, d.Fail
	}
	return d.RootRefs, nil
}

// Space implements spaces.Directory.
func (d *Directory) Space(id string) (*spaces.SpaceNode, error) {
	d.Fetches++
	if d.Fail != nil {
		return nil, d.Fail
	}
	node, present := d.Nodes[id]
	if !present {
		return nil, spaces.ErrNoSuchSpace{Name: id}
	}
	return node, nil
}
