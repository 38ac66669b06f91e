// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package spaces

import (
	"strings"
	"unicode"
)

// translit maps the accented characters that appear in FenixEDU
// display names to their bare Latin letters.  This is a fixed
// transliteration table for Portuguese, not general Unicode
// normalization; anything outside the table passes through unchanged.
var translit = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c',
}

// Sanitize normalizes a display name into a comparison key: it
// lowercases the input, replaces spaces with "-" and slashes with
// "_", and strips Portuguese diacritics via the fixed table above.
// Both sides of a name comparison go through Sanitize, so matching is
// case-, diacritic-, and separator-insensitive while still being an
// exact match on the transliterated form.
//
// Sanitize is total over any string, including the empty string, and
// idempotent.
func Sanitize(name string) string {
	return strings.Map(func(c rune) rune {
		switch c {
		case ' ':
			return '-'
		case '/':
			return '_'
		}
		c = unicode.ToLower(c)
		if t, ok := translit[c]; ok {
			return t
		}
		return c
	}, name)
}
