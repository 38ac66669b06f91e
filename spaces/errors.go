// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package spaces

import (
	"fmt"
)

// The resolution engine distinguishes exactly three failure kinds.
// ErrNoSuchSpace is user-correctable; ErrUpstream and ErrMalformedData
// are not.  Callers are expected to switch on the concrete type.

// ErrNoSuchSpace is returned when a path segment matches no sibling,
// or when an opaque id does not exist upstream.  No upstream fetch is
// attempted for an unmatched segment.
type ErrNoSuchSpace struct {
	// Name holds the offending segment or id, echoed back to the
	// caller.
	Name string
}

func (err ErrNoSuchSpace) Error() string {
	return fmt.Sprintf("No space found with name %v", err.Name)
}

// ErrUpstream is returned when the space-directory service cannot be
// reached or answers with a non-success status.  The message stays
// generic; upstream internals are not surfaced to clients.
type ErrUpstream struct {
	// Status holds the upstream HTTP status code, or zero if the
	// failure happened in transport before any status arrived.
	Status int

	// Err holds the underlying transport error, if any.
	Err error
}

func (err ErrUpstream) Error() string {
	if err.Status != 0 {
		return "The space directory service had an error"
	}
	return fmt.Sprintf("The space directory service is unreachable: %v", err.Err)
}

// Transport reports whether the failure happened before any HTTP
// status was received.
func (err ErrUpstream) Transport() bool {
	return err.Status == 0
}

// ErrMalformedData is returned when an upstream response body does
// not parse into the expected shape.  This is not expected in normal
// operation and propagates as an internal error rather than a
// not-found or an upstream outage.
type ErrMalformedData struct {
	Err error
}

func (err ErrMalformedData) Error() string {
	return fmt.Sprintf("Malformed space data: %v", err.Err)
}
