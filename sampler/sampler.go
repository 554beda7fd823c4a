// SPDX-License-Identifier: MIT
//
// Package sampler drives a repeated snowball sampling run over one loaded graph:
// it validates the run parameters, draws disjoint seed sets from one PRNG,
// expands, induces and writes every sample (optionally in parallel) and, only
// when every sample succeeded, writes the manifest in sample-index order.
package sampler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/internal/logging"
	"github.com/katalvlaran/snowball/metrics"
	"github.com/katalvlaran/snowball/output"
	"github.com/katalvlaran/snowball/seeds"
	"github.com/katalvlaran/snowball/snowball"
	"github.com/katalvlaran/snowball/subgraph"
)

// ErrInvalidParameter is the run-level invalid-parameter kind.
var ErrInvalidParameter = snowball.ErrInvalidParameter

// Params describes one sampling run.
type Params struct {
	NumSamples int
	NumSeeds   int
	NumWaves   int

	// Workers bounds how many samples are processed at once.
	Workers int

	// SampleTimeout bounds each sample's expansion; 0 disables it.
	SampleTimeout time.Duration

	// RandSeed seeds the run's only PRNG.
	RandSeed uint64
}

// SampleReport summarizes one written sample.
type SampleReport struct {
	Index   int
	Seeds   []int
	Nodes   int
	Edges   int
	Zones   []int // node count per zone
	Waves   int   // waves actually run
	Elapsed time.Duration
	Files   output.ManifestEntry
}

// Report summarizes a successful run.
type Report struct {
	RunID    string
	RandSeed uint64
	Samples  []SampleReport
	Elapsed  time.Duration
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithLogger sets the log entry used for run and per-sample messages.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Sampler) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(s *Sampler) { s.rec = rec }
}

// Sampler runs sampling jobs over one read-only graph.
type Sampler struct {
	graph  *core.Graph
	writer *output.Writer
	log    *logrus.Entry
	rec    *metrics.Recorder
}

// New returns a Sampler over g writing through w.
func New(g *core.Graph, w *output.Writer, opts ...Option) *Sampler {
	s := &Sampler{
		graph:  g,
		writer: w,
		log:    logrus.NewEntry(logging.Discard()),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes one sampling run. The output directory is created only after
// the parameters pass validation, and any manifest from an earlier run is
// removed before the first sample is written. On any error no manifest is
// written; sample files already renamed into place are left behind.
func (s *Sampler) Run(ctx context.Context, p Params) (*Report, error) {
	start := time.Now()
	if err := s.validate(p); err != nil {
		return nil, err
	}

	sets, err := seeds.Draw(seeds.NewRand(p.RandSeed), s.graph.Vertices(), p.NumSamples, p.NumSeeds)
	if err != nil {
		return nil, err
	}
	if err := s.writer.Prepare(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := s.log.WithField("run_id", runID)
	log.WithFields(logrus.Fields{
		"samples":   p.NumSamples,
		"seeds":     p.NumSeeds,
		"waves":     p.NumWaves,
		"workers":   p.Workers,
		"rand_seed": p.RandSeed,
	}).Info("sampling started")

	reports := make([]SampleReport, len(sets))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.Workers)
	for i, set := range sets {
		eg.Go(func() error {
			rep, err := s.sampleOne(egCtx, log, i, set, p)
			if err != nil {
				// samples cut short because a sibling failed are not failures
				if !errors.Is(err, context.Canceled) || ctx.Err() != nil {
					s.rec.SampleFailed()
				}
				return fmt.Errorf("sample %d: %w", i, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.WithError(err).Error("sampling failed, manifest not written")
		return nil, err
	}

	entries := make([]output.ManifestEntry, len(reports))
	for i, r := range reports {
		entries[i] = r.Files
	}
	if err := s.writer.WriteManifest(entries); err != nil {
		log.WithError(err).Error("writing manifest")
		return nil, err
	}

	rep := &Report{RunID: runID, RandSeed: p.RandSeed, Samples: reports, Elapsed: time.Since(start)}
	log.WithFields(logrus.Fields{
		"samples": len(reports),
		"elapsed": rep.Elapsed.String(),
	}).Info("sampling finished")

	return rep, nil
}

// validate rejects impossible runs before any file is touched.
func (s *Sampler) validate(p Params) error {
	switch {
	case s.graph == nil:
		return snowball.ErrGraphNil
	case s.writer == nil:
		return fmt.Errorf("%w: nil output writer", ErrInvalidParameter)
	case p.NumSamples < 1:
		return fmt.Errorf("%w: num_samples=%d must be at least 1", ErrInvalidParameter, p.NumSamples)
	case p.NumSeeds < 1:
		return fmt.Errorf("%w: num_seeds=%d must be at least 1", ErrInvalidParameter, p.NumSeeds)
	case p.NumWaves < 0:
		return fmt.Errorf("%w: num_waves=%d is negative", ErrInvalidParameter, p.NumWaves)
	case p.Workers < 1:
		return fmt.Errorf("%w: workers=%d must be at least 1", ErrInvalidParameter, p.Workers)
	case p.SampleTimeout < 0:
		return fmt.Errorf("%w: negative sample timeout", ErrInvalidParameter)
	}
	if need, have := p.NumSamples*p.NumSeeds, s.graph.VertexCount(); need > have {
		return fmt.Errorf("%w: %d samples × %d seeds needs %d nodes, graph has %d",
			ErrInvalidParameter, p.NumSamples, p.NumSeeds, need, have)
	}

	return nil
}

// sampleOne expands, induces and writes sample i.
func (s *Sampler) sampleOne(ctx context.Context, log *logrus.Entry, i int, set []int, p Params) (SampleReport, error) {
	if err := contextErr(ctx); err != nil {
		return SampleReport{}, err
	}
	start := time.Now()

	sctx := ctx
	if p.SampleTimeout > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, p.SampleTimeout)
		defer cancel()
	}

	sample, err := snowball.Expand(s.graph, set, p.NumWaves, snowball.WithContext(sctx))
	if err != nil {
		return SampleReport{}, err
	}
	res, err := subgraph.Induce(s.graph, sample.Nodes)
	if err != nil {
		return SampleReport{}, err
	}
	entry, err := s.writer.WriteSample(i, res, sample.Zones)
	if err != nil {
		return SampleReport{}, err
	}

	rep := SampleReport{
		Index:   i,
		Seeds:   set,
		Nodes:   res.Len(),
		Edges:   res.Graph.EdgeCount(),
		Zones:   sample.Zones.Counts(),
		Waves:   sample.WavesRun,
		Elapsed: time.Since(start),
		Files:   entry,
	}
	s.rec.ObserveSample(rep.Nodes, rep.Edges, rep.Elapsed, rep.Zones)
	log.WithFields(logrus.Fields{
		"sample":  i,
		"seeds":   set,
		"nodes":   rep.Nodes,
		"edges":   rep.Edges,
		"zones":   rep.Zones,
		"waves":   rep.Waves,
		"elapsed": rep.Elapsed.String(),
	}).Info("sample written")

	return rep, nil
}

// contextErr maps a finished context onto the run error kinds.
func contextErr(ctx context.Context) error {
	err := ctx.Err()
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", snowball.ErrOperationTimeout, err)
	}

	return err
}
