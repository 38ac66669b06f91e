// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// requestLogger is a negroni middleware that logs one line per
// request.
type requestLogger struct {
	Logger *logrus.Logger
}

func (l requestLogger) ServeHTTP(w http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(w, req)

	fields := logrus.Fields{
		"method":   req.Method,
		"path":     req.URL.Path,
		"duration": time.Since(start),
	}
	if rw, ok := w.(negroni.ResponseWriter); ok {
		fields["status"] = rw.Status()
	}
	l.Logger.WithFields(fields).Info("request")
}
