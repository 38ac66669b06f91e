// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/asint/fenix-rooms/spaces"
)

// SpacesList gets the top level of the space hierarchy, the list of
// campi.  The list is returned as-is, not shaped; its members are
// references, not full spaces.
func (api *restAPI) SpacesList(ctx *context) (interface{}, error) {
	return api.Directory.Root()
}

// SpaceByID fetches one space by its opaque upstream id.
func (api *restAPI) SpaceByID(ctx *context) (interface{}, error) {
	node, err := api.Directory.Space(ctx.ID)
	if err != nil {
		return nil, err
	}
	return spaces.Shape(node), nil
}

// SpaceByPath resolves a chain of space names, one directory fetch
// per level, and returns the shaped final space.  Both the free-form
// path route and the fixed-depth campus routes land here; by the time
// the context is built they are the same thing.
func (api *restAPI) SpaceByPath(ctx *context) (interface{}, error) {
	node, err := api.Resolver.ResolvePath(ctx.Path)
	if err != nil {
		return nil, err
	}
	return spaces.Shape(node), nil
}
