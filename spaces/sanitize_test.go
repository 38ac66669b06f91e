// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package spaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBasics(t *testing.T) {
	assert.Equal(t, "", Sanitize(""))
	assert.Equal(t, "atrio", Sanitize("Átrio"))
	assert.Equal(t, "atrio", Sanitize("atrio"))
	assert.Equal(t, "sala-1_2", Sanitize("Sala 1/2"))
	assert.Equal(t, "pavilhao-central", Sanitize("Pavilhão Central"))
	assert.Equal(t, "tecnologico-e-nuclear", Sanitize("Tecnológico e Nuclear"))
	assert.Equal(t, "accao", Sanitize("Acção"))
}

func TestSanitizePassthrough(t *testing.T) {
	// Characters outside the transliteration table survive as is.
	assert.Equal(t, "größe", Sanitize("Größe"))
	assert.Equal(t, "1.07", Sanitize("1.07"))
}

func TestSanitizeIdempotent(t *testing.T) {
	names := []string{
		"", "Átrio", "Sala 1/2", "Pavilhão Central", "Informática I",
		"a b/c", "ALAMEDA", "Taguspark",
	}
	for _, name := range names {
		once := Sanitize(name)
		assert.Equal(t, once, Sanitize(once), "sanitize not idempotent on %q", name)
	}
}
