// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package fenix

// This file provides the generic HTTP plumbing for the FenixEDU
// client: URL construction from URI templates, and a GET helper that
// classifies failures into the three-kind spaces error taxonomy.

import (
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/asint/fenix-rooms/spaces"
	"github.com/jtacoma/uritemplates"
)

// resource is any fetchable upstream URL.
type resource struct {
	URL    *url.URL
	Client *http.Client
}

// Template expands an RFC 6570 URI template against the resource's
// own URL and returns the resulting absolute URL.
func (r *resource) Template(template string, vars map[string]interface{}) (*url.URL, error) {
	tmpl, err := uritemplates.Parse(template)
	if err != nil {
		return nil, err
	}
	expanded, err := tmpl.Expand(vars)
	if err != nil {
		return nil, err
	}
	return r.URL.Parse(expanded)
}

// GetBytes performs a GET and returns the response body.  Transport
// failures and non-success statuses both come back as
// spaces.ErrUpstream; a 404 is the caller's to interpret, so the
// status is preserved in the error.
func (r *resource) GetBytes(u *url.URL) ([]byte, error) {
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(u.String())
	if err != nil {
		return nil, spaces.ErrUpstream{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, spaces.ErrUpstream{Status: resp.StatusCode}
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, spaces.ErrUpstream{Err: err}
	}
	return body, nil
}
