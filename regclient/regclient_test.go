// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package regclient_test

import (
	"net/http/httptest"
	"testing"

	"github.com/asint/fenix-rooms/memory"
	"github.com/asint/fenix-rooms/regclient"
	"github.com/asint/fenix-rooms/registry/registrytest"
	"github.com/asint/fenix-rooms/regserver"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic Registry tests through an object stack where
// the REST client code talks to the REST server code, which points at
// an in-memory backend.
type Suite struct {
	registrytest.Suite
	server *httptest.Server
}

func (s *Suite) SetupTest() {
	backend := memory.NewWithClock(s.Clock)
	s.server = httptest.NewServer(regserver.NewRouter(backend))
	reg, err := regclient.New(s.server.URL)
	if err != nil {
		s.T().Fatalf("could not create rest registry: %v", err)
	}
	s.Registry = reg
}

func (s *Suite) TearDownTest() {
	s.server.Close()
}

func TestRegistry(t *testing.T) {
	suite.Run(t, &Suite{})
}

func TestBadURL(t *testing.T) {
	_, err := regclient.New("://not-a-url")
	if err == nil {
		t.Fatal("expected error for an unparseable URL")
	}
}
