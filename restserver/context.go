// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/asint/fenix-rooms/restdata"
	"github.com/gorilla/mux"
)

// errUnmarshal is returned if the post contract is violated and a
// handler function is passed the wrong type.
var errUnmarshal = restdata.ErrBadRequest{
	Err: errors.New("Invalid input format"),
}

// context holds all of the information that can be extracted from URL
// parameters.
type context struct {
	// ID is the opaque upstream space id from an /api/id route.
	ID string

	// Path holds the name segments to resolve, in order, from
	// either the free-form /api/path route or the fixed-depth
	// campus routes.
	Path []string
}

func (api *restAPI) Context(req *http.Request) (*context, error) {
	ctx := &context{}
	vars := mux.Vars(req)

	if id, present := vars["id"]; present {
		ctx.ID = id
	}

	if path, present := vars["path"]; present {
		for _, segment := range strings.Split(path, "/") {
			if segment != "" {
				ctx.Path = append(ctx.Path, segment)
			}
		}
		if len(ctx.Path) == 0 {
			return nil, restdata.ErrBadRequest{
				Err: errors.New("Empty space path"),
			}
		}
	}

	// The fixed-depth routes contribute their segments in
	// hierarchy order.  Not every route has every variable; absent
	// ones simply do not extend the path.
	for _, name := range []string{"campus", "building", "floor", "floor2", "room"} {
		if segment, present := vars[name]; present {
			ctx.Path = append(ctx.Path, segment)
		}
	}

	return ctx, nil
}
