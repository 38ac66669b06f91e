// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package main

import (
	"errors"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// sessionFile lives in the working directory, next to wherever the
// tool is being used.
const sessionFile = "fenix-rooms-user.yaml"

// session is the saved login state.
type session struct {
	ServerURL string `yaml:"server_url"`
	UserID    int    `yaml:"user_id"`
	Username  string `yaml:"username"`
}

// loadSession reads the session file from the working directory.
func loadSession() (*session, error) {
	bytes, err := ioutil.ReadFile(sessionFile)
	if err != nil {
		return nil, errors.New("not logged in; run login first")
	}
	sess := &session{}
	if err := yaml.Unmarshal(bytes, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Save writes the session file to the working directory.
func (s *session) Save() error {
	bytes, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(sessionFile, bytes, 0600)
}
