// Copyright 2017 the Fenix Rooms authors.
// This software is released under an MIT/X11 open source license.

package main

import (
	"time"

	"github.com/asint/fenix-rooms/registry"
	"github.com/asint/fenix-rooms/spaces"
	"github.com/prometheus/client_golang/prometheus"
)

var registryRecords = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: "fenix",
		Subsystem: "rooms",
		Name:      "registry_records",
		Help:      "Number of records in the room registry",
	},
	[]string{
		"kind",
	},
)

var upstreamRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "fenix",
		Subsystem: "rooms",
		Name:      "upstream_requests_total",
		Help:      "Requests made to the FenixEDU space directory",
	},
	[]string{
		"operation",
		"outcome",
	},
)

func init() {
	prometheus.MustRegister(registryRecords)
	prometheus.MustRegister(upstreamRequests)
}

// observeRegistry periodically copies the registry record counts into
// the Prometheus gauges.  Runs forever; wants to be a goroutine.
func observeRegistry(reg registry.Registry) {
	for range time.Tick(15 * time.Second) {
		summary, err := reg.Summarize()
		if err != nil {
			continue
		}
		registryRecords.With(prometheus.Labels{"kind": "users"}).Set(float64(summary.Users))
		registryRecords.With(prometheus.Labels{"kind": "rooms"}).Set(float64(summary.Rooms))
		registryRecords.With(prometheus.Labels{"kind": "checkins"}).Set(float64(summary.Checkins))
	}
}

// instrumentedDirectory counts every upstream directory call.
type instrumentedDirectory struct {
	spaces.Directory
}

func (d instrumentedDirectory) Root() ([]spaces.ChildRef, error) {
	refs, err := d.Directory.Root()
	upstreamRequests.With(prometheus.Labels{
		"operation": "root",
		"outcome":   outcome(err),
	}).Inc()
	return refs, err
}

func (d instrumentedDirectory) Space(id string) (*spaces.SpaceNode, error) {
	node, err := d.Directory.Space(id)
	upstreamRequests.With(prometheus.Labels{
		"operation": "space",
		"outcome":   outcome(err),
	}).Inc()
	return node, err
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
