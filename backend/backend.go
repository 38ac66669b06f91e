// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a rooms
// Registry based on command-line flags.
package backend

import (
	"errors"
	"strings"

	"github.com/asint/fenix-rooms/memory"
	"github.com/asint/fenix-rooms/postgres"
	"github.com/asint/fenix-rooms/regclient"
	"github.com/asint/fenix-rooms/registry"
)

// Backend describes user-visible parameters to store the room
// registry.  This implements the flag.Value interface, and so a
// typical use is
//
//     func main() {
//         backend := backend.Backend{Implementation: "memory"}
//         flag.Var(&backend, "backend", "impl:address of the room registry")
//         flag.Parse()
//         reg, err := backend.Registry()
//     }
//
// Supported backends are "memory" (no address), "postgres" with a
// database connection string, and "rest" with the base URL of another
// bookkeeping server.
type Backend struct {
	// Implementation holds the name of the implementation; for
	// instance, "memory".
	Implementation string

	// Address holds some backend-specific address, such as a
	// database connect string.
	Address string
}

// Registry creates a new rooms registry.  This generally should be
// only called once.  If the backend has in-process state, such as a
// database connection pool or an in-memory store, calling this
// multiple times will create multiple copies of that state.  In
// particular, if b.Implementation is "memory", multiple calls to this
// will create multiple independent registries.
func (b *Backend) Registry() (registry.Registry, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "postgres":
		return postgres.New(b.Address)
	case "rest":
		return regclient.New(b.Address)
	default:
		return nil, errors.New("unknown registry backend " + b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address", where
// address can be any string.  Neither this nor Registry() validates
// the address part of the string before actually making a connection.
//
// This is part of the flag.Value interface.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	b.Implementation = parts[0]
	if len(parts) == 2 {
		b.Address = parts[1]
	} else {
		b.Address = ""
	}
	switch b.Implementation {
	case "memory", "postgres", "rest":
		return nil
	}
	return errors.New("unknown registry backend " + b.Implementation)
}
