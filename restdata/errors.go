// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/spaces"
)

// ErrorStatus describes errors that correspond to specific HTTP
// status codes.
type ErrorStatus interface {
	// HTTPStatus returns the HTTP status code for this error.
	HTTPStatus() int
}

// ErrUnsupportedMediaType is returned from Decode() if the provided
// Content-Type: is unrecognized.  This translates directly into the
// equivalent HTTP 415 error.
type ErrUnsupportedMediaType struct {
	Type string
}

func (e ErrUnsupportedMediaType) Error() string {
	return fmt.Sprintf("Unsupported media type %q", e.Type)
}

// HTTPStatus returns a fixed 415 Unsupported Media Type error code.
func (e ErrUnsupportedMediaType) HTTPStatus() int {
	return http.StatusUnsupportedMediaType
}

// ErrBadRequest is returned when there is an error decoding HTTP
// headers or the request body.
type ErrBadRequest struct {
	Err error
}

func (e ErrBadRequest) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 400 Bad Request HTTP status code.
func (e ErrBadRequest) HTTPStatus() int {
	return http.StatusBadRequest
}

// ErrNotFound is a wrapper error that indicates that, due to the
// embedded error, a REST service should return a 404 Not Found error.
type ErrNotFound struct {
	Err error
}

func (e ErrNotFound) Error() string {
	return e.Err.Error()
}

// HTTPStatus returns a fixed 404 Not Found error code.
func (e ErrNotFound) HTTPStatus() int {
	return http.StatusNotFound
}

// ErrUnauthorized is returned when a request needs the administrator
// id and does not have it.
type ErrUnauthorized struct{}

func (e ErrUnauthorized) Error() string {
	return "Unauthorized access to the room registry"
}

// HTTPStatus returns a fixed 401 Unauthorized error code.
func (e ErrUnauthorized) HTTPStatus() int {
	return http.StatusUnauthorized
}

// StatusFor picks the HTTP status code for an error.  Errors that
// know their own status are asked; the well-known spaces and registry
// errors get the mapping from the design: not-found is 404, an
// upstream outage is 503, malformed upstream data is 500, and
// registry validation conflicts are 422.  Anything else is a 500.
func StatusFor(err error) int {
	if errS, hasStatus := err.(ErrorStatus); hasStatus {
		return errS.HTTPStatus()
	}
	switch err.(type) {
	case spaces.ErrNoSuchSpace:
		return http.StatusNotFound
	case spaces.ErrUpstream:
		return http.StatusServiceUnavailable
	case spaces.ErrMalformedData:
		return http.StatusInternalServerError
	}
	switch err {
	case registry.ErrNoUsername:
		return http.StatusBadRequest
	case registry.ErrUserExists, registry.ErrRoomExists, registry.ErrAlreadyCheckedIn:
		return http.StatusUnprocessableEntity
	case registry.ErrNoSuchUser, registry.ErrNoSuchRoom, registry.ErrNoSuchCheckin:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// FromError populates an ErrorResponse based on an error value.  The
// well-known spaces and registry errors are remapped to specific
// e.Error codes so that ToError can reconstruct them on the client
// side.
func (e *ErrorResponse) FromError(err error) {
	e.Error = "error"
	e.Message = err.Error()
	switch err {
	case registry.ErrNoUsername:
		e.Error = "ErrNoUsername"
	case registry.ErrUserExists:
		e.Error = "ErrUserExists"
	case registry.ErrRoomExists:
		e.Error = "ErrRoomExists"
	case registry.ErrNoSuchUser:
		e.Error = "ErrNoSuchUser"
	case registry.ErrNoSuchRoom:
		e.Error = "ErrNoSuchRoom"
	case registry.ErrAlreadyCheckedIn:
		e.Error = "ErrAlreadyCheckedIn"
	case registry.ErrNoSuchCheckin:
		e.Error = "ErrNoSuchCheckin"
	}
	switch et := err.(type) {
	case spaces.ErrNoSuchSpace:
		e.Error = "ErrNoSuchSpace"
		e.Value = et.Name
	case spaces.ErrUpstream:
		e.Error = "ErrUpstream"
	case spaces.ErrMalformedData:
		e.Error = "ErrMalformedData"
	case ErrUnauthorized:
		e.Error = "ErrUnauthorized"
	case ErrNotFound:
		// Discard the wrapper and report the embedded error
		e.FromError(et.Err)
	case ErrBadRequest:
		e.FromError(et.Err)
	}
}

// ToError converts e back to a well-known error, if that is possible.
// If not, returns a plain error with e.Message text.
func (e *ErrorResponse) ToError() error {
	switch e.Error {
	case "ErrNoUsername":
		return registry.ErrNoUsername
	case "ErrUserExists":
		return registry.ErrUserExists
	case "ErrRoomExists":
		return registry.ErrRoomExists
	case "ErrNoSuchUser":
		return registry.ErrNoSuchUser
	case "ErrNoSuchRoom":
		return registry.ErrNoSuchRoom
	case "ErrAlreadyCheckedIn":
		return registry.ErrAlreadyCheckedIn
	case "ErrNoSuchCheckin":
		return registry.ErrNoSuchCheckin
	case "ErrNoSuchSpace":
		return spaces.ErrNoSuchSpace{Name: e.Value}
	case "ErrUpstream":
		return spaces.ErrUpstream{Status: http.StatusServiceUnavailable}
	case "ErrMalformedData":
		return spaces.ErrMalformedData{Err: errors.New(e.Message)}
	case "ErrUnauthorized":
		return ErrUnauthorized{}
	default:
		return errors.New(e.Message)
	}
}

// FromPanic populates an error response based on a panic.  Typical
// use is:
//
//     defer func() {
//         if obj := recover(); obj != nil {
//             resp := restdata.ErrorResponse{}
//             resp.FromPanic(obj)
//             // write resp out as makes sense
//         }
//     }
func (e *ErrorResponse) FromPanic(obj interface{}) {
	e.Error = "panic"
	if recoveredError, isError := obj.(error); isError {
		e.Message = recoveredError.Error()
	} else {
		e.Message = fmt.Sprintf("%+v", obj)
	}
	var stack [4096]byte
	len := runtime.Stack(stack[:], false)
	e.Stack = string(stack[:len])
}
