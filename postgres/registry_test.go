// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package postgres

import (
	"database/sql"
	"os"
	"testing"

	"github.com/asint/fenix-rooms/registry/registrytest"
	"github.com/stretchr/testify/suite"
)

// Suite runs the generic Registry tests against a real PostgreSQL
// database.  Set FENIX_ROOMS_TEST_PG to a libpq connection string to
// enable it; the named database is dropped and recreated around the
// run.
type Suite struct {
	registrytest.Suite
	connectionString string
}

func (s *Suite) SetupTest() {
	reg, err := NewWithClock(s.connectionString, s.Clock)
	if err != nil {
		s.T().Fatalf("could not connect to postgres: %v", err)
	}
	s.Registry = reg
}

func (s *Suite) TearDownTest() {
	db, err := sql.Open("postgres", s.connectionString)
	if err == nil {
		_ = Drop(db)
		_ = db.Close()
	}
}

func TestRegistry(t *testing.T) {
	connectionString := os.Getenv("FENIX_ROOMS_TEST_PG")
	if connectionString == "" {
		t.Skip("set FENIX_ROOMS_TEST_PG to run postgres tests")
	}
	suite.Run(t, &Suite{connectionString: connectionString})
}
