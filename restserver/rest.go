// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains a small REST skeleton framework.  Each route
// gets a resourceHandler naming the handler functions for the methods
// it supports; the handler takes care of decoding the request body,
// recovering from panics, and mapping errors to HTTP statuses, so the
// per-route functions only deal in domain objects and domain errors.

import (
	"fmt"
	"net/http"
	"reflect"

	"github.com/asint/fenix-rooms/restdata"
	"github.com/ugorji/go/codec"
)

// errMethodNotAllowed is used within the resourceHandler
// implementation to flag an error if a particular HTTP method is not
// allowed.  This corresponds exactly to the 405 Method Not Allowed
// HTTP status code.
type errMethodNotAllowed struct {
	Method string
}

func (e errMethodNotAllowed) Error() string {
	return fmt.Sprintf("Method %v not allowed", e.Method)
}

func (e errMethodNotAllowed) HTTPStatus() int {
	return http.StatusMethodNotAllowed
}

// responseCreated is returned as a value response from handler
// functions that want to indicate that a new resource was created.
type responseCreated struct {
	// Body contains the object sent in the body of the response.
	Body interface{}
}

type resourceHandler struct {
	// Representation is an object of the type expected in request
	// bodies for this resource.  A copy of this object will be
	// passed to the Post and Delete handler functions.
	Representation interface{}

	// Context reads an HTTP request and produces a context object.
	Context func(req *http.Request) (*context, error)

	// Get, if non-nil, returns a representation of the object.
	Get func(*context) (interface{}, error)

	// Post, if non-nil, takes some arbitrary action.  The
	// interface parameter is guaranteed to be the same type as
	// Representation.  The return can be any useful return value,
	// including responseCreated.
	Post func(*context, interface{}) (interface{}, error)

	// Delete, if non-nil, deletes something.  The interface
	// parameter is the decoded request body if Representation is
	// non-nil, mirroring Post; the checkout route sends its
	// user and room ids this way.
	Delete func(*context, interface{}) (interface{}, error)
}

func (h *resourceHandler) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	var (
		ctx     *context
		in, out interface{}
		err     error
		status  int
	)

	// Recover from panics by sending an HTTP error.
	defer func() {
		if recovered := recover(); recovered != nil {
			response := restdata.ErrorResponse{}
			response.FromPanic(recovered)
			resp.Header().Set("Content-Type", restdata.JSONMediaType)
			resp.WriteHeader(http.StatusInternalServerError)
			json := &codec.JsonHandle{}
			encoder := codec.NewEncoder(resp, json)
			encoder.MustEncode(response)
		}
	}()

	// Get bits from URL parameters
	ctx, err = h.Context(req)

	// Read the JSON body, if one is expected
	needBody := h.Representation != nil &&
		(req.Method == "POST" || req.Method == "DELETE")
	if err == nil && needBody {
		// Make a new object of the same type as h.Representation
		in = reflect.Zero(reflect.TypeOf(h.Representation)).Interface()

		// Then decode the message body into that object
		contentType := req.Header.Get("Content-Type")
		err = restdata.Decode(contentType, req.Body, &in)
		if err != nil {
			if _, hasStatus := err.(restdata.ErrorStatus); !hasStatus {
				err = restdata.ErrBadRequest{Err: err}
			}
		}
	}

	// Actually call the handler method
	if err == nil {
		// We will return this if the method is unexpected or
		// we don't have a handler for it
		err = errMethodNotAllowed{Method: req.Method}
		switch req.Method {
		case "GET", "HEAD":
			if h.Get != nil {
				out, err = h.Get(ctx)
			}
		case "POST":
			if h.Post != nil {
				out, err = h.Post(ctx, in)
			}
		case "DELETE":
			if h.Delete != nil {
				out, err = h.Delete(ctx, in)
			}
		}
	}

	// Fix up the final result based on what we know.
	if err != nil {
		status = restdata.StatusFor(err)
		response := restdata.ErrorResponse{}
		response.FromError(err)
		out = response
	} else if out == nil {
		status = http.StatusNoContent
	} else if created, isCreated := out.(responseCreated); isCreated {
		status = http.StatusCreated
		out = created.Body
	} else {
		status = http.StatusOK
	}
	if req.Method == "HEAD" {
		out = nil
	}

	// Actually send the response
	if out != nil {
		resp.Header().Set("Content-Type", restdata.JSONMediaType)
	}
	resp.WriteHeader(status)
	if out != nil {
		json := &codec.JsonHandle{}
		encoder := codec.NewEncoder(resp, json)
		encoder.MustEncode(out)
	}
}
