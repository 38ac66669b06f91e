// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

// Package fenix-roomsd is the rooms service daemon.  It serves the
// public /api routes (space resolution proxied from FenixEDU plus
// user, room, and checkin bookkeeping), Prometheus metrics under
// /metrics, and optionally the raw bookkeeping protocol under /db so
// that other instances can use this one as their "rest" registry
// backend.
package main

import (
	"flag"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/asint/fenix-rooms/backend"
	"github.com/asint/fenix-rooms/fenix"
	"github.com/asint/fenix-rooms/regserver"
	"github.com/asint/fenix-rooms/restserver"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
	"gopkg.in/yaml.v2"
)

// config mirrors the daemon flags for the optional YAML configuration
// file.  Flags given explicitly on the command line win over the
// file.
type config struct {
	HTTP        string `yaml:"http"`
	Fenix       string `yaml:"fenix"`
	Backend     string `yaml:"backend"`
	ServeDB     bool   `yaml:"serve_db"`
	LogRequests bool   `yaml:"log_requests"`
}

func main() {
	httpBind := flag.String("http", "",
		"[ip]:port for the HTTP interface (default :8888, or the PORT environment variable)")
	fenixURL := flag.String("fenix", fenix.DefaultBaseURL,
		"base URL of the FenixEDU spaces API")
	registryBackend := backend.Backend{Implementation: "memory"}
	flag.Var(&registryBackend, "backend",
		"impl[:address] of the room registry")
	configFile := flag.String("config", "", "configuration YAML file")
	serveDB := flag.Bool("serve-db", false,
		"also serve the bookkeeping protocol under /db")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configFile != "" {
		cfg, err := loadConfigYaml(*configFile)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err":    err,
				"config": *configFile,
			}).Fatal("Could not load YAML configuration")
		}
		if !explicit["http"] && cfg.HTTP != "" {
			*httpBind = cfg.HTTP
		}
		if !explicit["fenix"] && cfg.Fenix != "" {
			*fenixURL = cfg.Fenix
		}
		if !explicit["backend"] && cfg.Backend != "" {
			if err := registryBackend.Set(cfg.Backend); err != nil {
				logrus.WithFields(logrus.Fields{
					"err":     err,
					"backend": cfg.Backend,
				}).Fatal("Invalid registry backend")
			}
		}
		if !explicit["serve-db"] {
			*serveDB = cfg.ServeDB
		}
		if !explicit["log-requests"] {
			*logRequests = cfg.LogRequests
		}
	}

	// The original deployment ran on a platform that hands the
	// listen port down in the environment.
	if *httpBind == "" {
		if port := os.Getenv("PORT"); port != "" {
			*httpBind = ":" + port
		} else {
			*httpBind = ":8888"
		}
	}

	reg, err := registryBackend.Registry()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": registryBackend.String(),
		}).Fatal("Could not create registry backend")
	}

	fenixDir, err := fenix.New(*fenixURL)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
			"url": *fenixURL,
		}).Fatal("Could not create FenixEDU client")
	}
	dir := instrumentedDirectory{Directory: fenixDir}

	r := mux.NewRouter()
	restserver.PopulateRouter(r, dir, reg)
	if *serveDB {
		regserver.PopulateRouter(r.PathPrefix("/db").Subrouter(), reg)
	}
	r.Handle("/metrics", promhttp.Handler())

	go observeRegistry(reg)

	n := negroni.New(negroni.NewRecovery())
	if *logRequests {
		n.Use(requestLogger{Logger: logrus.StandardLogger()})
	}
	n.UseHandler(r)

	logrus.WithFields(logrus.Fields{
		"http":    *httpBind,
		"fenix":   *fenixURL,
		"backend": registryBackend.String(),
	}).Info("Serving rooms API")
	err = http.ListenAndServe(*httpBind, n)
	logrus.WithFields(logrus.Fields{
		"err": err,
	}).Fatal("HTTP server stopped")
}

func loadConfigYaml(filename string) (config, error) {
	var result config
	bytes, err := ioutil.ReadFile(filename)
	if err == nil {
		err = yaml.Unmarshal(bytes, &result)
	}
	return result, err
}
