// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures shared between the
// REST servers and clients in this repository: the request bodies of
// the proxy API, the error envelope, and the JSON codec helpers.
//
// Responses reuse the domain types directly: resolved spaces are
// shaped by the spaces package, and registry records marshal as
// themselves.  Timestamps are RFC 3339 strings on the wire.
//
// Errors travel as ErrorResponse with a failing HTTP status.  The
// well-known spaces and registry errors round-trip through the Error
// field, so a Go client gets back the same typed error the server
// saw.
package restdata

// JSONMediaType is the wire format for every request and response
// body.
const JSONMediaType = "application/json"

// CreateUserRequest is the body of POST /api/create_user and of
// POST {db}/users.
type CreateUserRequest struct {
	Username string `json:"username"`
}

// CreateRoomRequest is the body of POST /api/create_room.  UserID
// must be the administrator id (0); Location, Capacity, and FenixID
// are stored in the registry after FenixID passes the room-existence
// check.
type CreateRoomRequest struct {
	UserID   *int   `json:"user_id"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	FenixID  string `json:"fenix_id"`
}

// RoomRequest is the body of POST {db}/rooms: CreateRoomRequest
// without the admin credential, which the persistence service never
// sees.
type RoomRequest struct {
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
	FenixID  string `json:"fenix_id"`
}

// CheckinRequest is the body of POST /api/check_in, DELETE
// /api/check_out, and their persistence-side equivalents.
type CheckinRequest struct {
	UserID int `json:"user_id"`
	RoomID int `json:"room_id"`
}

// ErrorResponse can be a response to any method, generally
// accompanied by a failing HTTP status code.
type ErrorResponse struct {
	// Error is a short code for the failure: the name of a
	// well-known spaces or registry error, the string "panic", or
	// the string "error" for anything else.
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Value is an extra parameter to the error if applicable,
	// such as the path segment that failed to resolve.
	Value string `json:"value,omitempty"`

	// Stack holds a formatted backtrace, if the method failed due
	// to a panic.
	Stack string `json:"stack,omitempty"`
}
