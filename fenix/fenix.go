// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package fenix provides the spaces.Directory implementation that
// talks to the FenixEDU space-directory API.
//
// Call New() with the base URL of the spaces endpoint; for instance,
//
//     dir, err := fenix.New("https://fenix.tecnico.ulisboa.pt/api/fenix/v1/spaces")
//
// The base URL is injected rather than compiled in so that tests can
// redirect the client at a mock server.
//
// Upstream payloads are decoded in two steps: first into untyped
// JSON, then field-mapped into the spaces model.  The upstream wire
// format carries more fields than the model wants ("type" tags,
// event lists, parent links); the two-step decode drops the extras
// and tolerates the upstream's loose typing without trusting it.
package fenix

import (
	"bytes"
	"net/http"
	"net/url"

	"github.com/asint/fenix-rooms/spaces"
	"github.com/mitchellh/mapstructure"
	"github.com/ugorji/go/codec"
)

// DefaultBaseURL is the production FenixEDU spaces endpoint.
const DefaultBaseURL = "https://fenix.tecnico.ulisboa.pt/api/fenix/v1/spaces"

// Client implements spaces.Directory against a live FenixEDU
// service.
type Client struct {
	resource
}

// New creates a FenixEDU directory client rooted at baseURL.
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{resource: resource{URL: u}}, nil
}

// NewWithHTTPClient creates a client with an explicit *http.Client,
// for callers that need custom timeouts.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) (*Client, error) {
	c, err := New(baseURL)
	if err == nil {
		c.Client = httpClient
	}
	return c, err
}

// Root implements spaces.Directory.  The top-level listing comes from
// a single fixed-URL GET; this is the base case that seeds every
// path resolution.
func (c *Client) Root() ([]spaces.ChildRef, error) {
	body, err := c.GetBytes(c.URL)
	if err != nil {
		return nil, err
	}
	var refs []spaces.ChildRef
	if err = decodeBody(body, &refs); err != nil {
		return nil, err
	}
	return refs, nil
}

// Space implements spaces.Directory, fetching one node by opaque id.
func (c *Client) Space(id string) (*spaces.SpaceNode, error) {
	u, err := c.Template(c.URL.String()+"{/id}", map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	body, err := c.GetBytes(u)
	if upstream, failed := err.(spaces.ErrUpstream); failed {
		// A 404 here means the id itself is unknown, which is
		// the user's problem, not the upstream's.
		if upstream.Status == http.StatusNotFound {
			return nil, spaces.ErrNoSuchSpace{Name: id}
		}
		return nil, err
	} else if err != nil {
		return nil, err
	}
	node := &spaces.SpaceNode{}
	if err = decodeBody(body, node); err != nil {
		return nil, err
	}
	return node, nil
}

// decodeBody decodes an upstream JSON body into out via an untyped
// intermediate, classifying every failure as malformed data.
func decodeBody(body []byte, out interface{}) error {
	var raw interface{}
	json := &codec.JsonHandle{}
	decoder := codec.NewDecoder(bytes.NewReader(body), json)
	if err := decoder.Decode(&raw); err != nil {
		return spaces.ErrMalformedData{Err: err}
	}

	// WeaklyTypedInput smooths over the upstream's habit of
	// switching between numbers and numeric strings.
	config := &mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	}
	mapper, err := mapstructure.NewDecoder(config)
	if err != nil {
		return spaces.ErrMalformedData{Err: err}
	}
	if err := mapper.Decode(raw); err != nil {
		return spaces.ErrMalformedData{Err: err}
	}
	return nil
}
