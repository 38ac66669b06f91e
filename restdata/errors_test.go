// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"errors"
	"net/http"
	"testing"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/spaces"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound,
		StatusFor(spaces.ErrNoSuchSpace{Name: "tagus"}))
	assert.Equal(t, http.StatusServiceUnavailable,
		StatusFor(spaces.ErrUpstream{Status: 500}))
	assert.Equal(t, http.StatusInternalServerError,
		StatusFor(spaces.ErrMalformedData{Err: errors.New("bad json")}))
	assert.Equal(t, http.StatusBadRequest, StatusFor(registry.ErrNoUsername))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(registry.ErrUserExists))
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(registry.ErrAlreadyCheckedIn))
	assert.Equal(t, http.StatusNotFound, StatusFor(registry.ErrNoSuchCheckin))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(ErrUnauthorized{}))
	assert.Equal(t, http.StatusUnsupportedMediaType,
		StatusFor(ErrUnsupportedMediaType{Type: "text/html"}))
	assert.Equal(t, http.StatusInternalServerError,
		StatusFor(errors.New("anything else")))
}

// TestErrorRoundTrip verifies that the well-known errors survive the
// FromError/ToError trip a client sees.
func TestErrorRoundTrip(t *testing.T) {
	for _, err := range []error{
		registry.ErrNoUsername,
		registry.ErrUserExists,
		registry.ErrRoomExists,
		registry.ErrNoSuchUser,
		registry.ErrNoSuchRoom,
		registry.ErrAlreadyCheckedIn,
		registry.ErrNoSuchCheckin,
		spaces.ErrNoSuchSpace{Name: "pavilhao-sul"},
		ErrUnauthorized{},
	} {
		resp := ErrorResponse{}
		resp.FromError(err)
		assert.Equal(t, err, resp.ToError(), "error %v", err)
	}
}

func TestErrorRoundTripWrapped(t *testing.T) {
	resp := ErrorResponse{}
	resp.FromError(ErrNotFound{Err: registry.ErrNoSuchRoom})
	assert.Equal(t, registry.ErrNoSuchRoom, resp.ToError())

	resp = ErrorResponse{}
	resp.FromError(errors.New("something odd"))
	assert.Equal(t, "error", resp.Error)
	assert.EqualError(t, resp.ToError(), "something odd")
}

func TestFromPanic(t *testing.T) {
	resp := ErrorResponse{}
	resp.FromPanic("oops")
	assert.Equal(t, "panic", resp.Error)
	assert.Equal(t, "oops", resp.Message)
	assert.NotEmpty(t, resp.Stack)
}
