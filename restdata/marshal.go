// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"

	"github.com/ugorji/go/codec"
)

// Decode tries to decode a restdata object from a reader, such as an
// HTTP request or response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5; in practice the original
		// clients of this API never set a Content-Type on GET
		// responses either, so default to JSON rather than
		// rejecting.
		contentType = JSONMediaType
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}

	switch mediaType {
	case "text/json", JSONMediaType:
		json := &codec.JsonHandle{}
		decoder := codec.NewDecoder(r, json)
		err = decoder.Decode(out)
	default:
		err = ErrUnsupportedMediaType{Type: mediaType}
	}
	return err
}

// Encode writes a restdata object to a writer as JSON.
func Encode(w io.Writer, in interface{}) error {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	return encoder.Encode(in)
}

// MustEncode is Encode but panics on failure; use it only where the
// caller is already inside a panic recovery path.
func MustEncode(w io.Writer, in interface{}) {
	json := &codec.JsonHandle{}
	encoder := codec.NewEncoder(w, json)
	encoder.MustEncode(in)
}
