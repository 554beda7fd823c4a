// SPDX-License-Identifier: MIT

// Package metrics defines the Prometheus metrics of a sampling run.
//
// A run is a batch job, so metrics live on a private registry and are exported
// once at the end with WriteTextfile (node_exporter textfile collector format)
// instead of being scraped. A nil *Recorder is valid and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Sample outcome labels for snowball_samples_total.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder holds the run's collectors and their registry.
type Recorder struct {
	reg *prometheus.Registry

	samplesTotal   *prometheus.CounterVec
	sampleNodes    prometheus.Histogram
	sampleEdges    prometheus.Histogram
	sampleDuration prometheus.Histogram
	zoneNodes      *prometheus.CounterVec
}

// NewRecorder creates a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		samplesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snowball_samples_total",
				Help: "Snowball samples attempted, by outcome",
			},
			[]string{"status"},
		),
		sampleNodes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snowball_sample_nodes",
				Help:    "Nodes per snowball sample",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
		),
		sampleEdges: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snowball_sample_edges",
				Help:    "Edges per induced subgraph",
				Buckets: prometheus.ExponentialBuckets(10, 4, 10),
			},
		),
		sampleDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "snowball_sample_duration_seconds",
				Help:    "Wall time to expand, induce and write one sample",
				Buckets: prometheus.DefBuckets,
			},
		),
		zoneNodes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "snowball_zone_nodes_total",
				Help: "Sampled nodes by zone, summed over samples",
			},
			[]string{"zone"},
		),
	}
	r.reg.MustRegister(r.samplesTotal, r.sampleNodes, r.sampleEdges, r.sampleDuration, r.zoneNodes)

	return r
}

// Registry exposes the private registry, e.g. for Gather in tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// ObserveSample records a successful sample. zoneCounts[i] is the number of
// nodes in zone i.
func (r *Recorder) ObserveSample(nodes, edges int, elapsed time.Duration, zoneCounts []int) {
	if r == nil {
		return
	}
	r.samplesTotal.WithLabelValues(StatusOK).Inc()
	r.sampleNodes.Observe(float64(nodes))
	r.sampleEdges.Observe(float64(edges))
	r.sampleDuration.Observe(elapsed.Seconds())
	for z, n := range zoneCounts {
		r.zoneNodes.WithLabelValues(strconv.Itoa(z)).Add(float64(n))
	}
}

// SampleFailed records a failed sample.
func (r *Recorder) SampleFailed() {
	if r == nil {
		return
	}
	r.samplesTotal.WithLabelValues(StatusError).Inc()
}

// WriteTextfile writes every metric to path in the Prometheus text format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, r.reg)
}
