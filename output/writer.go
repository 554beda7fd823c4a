// SPDX-License-Identifier: MIT
//
// Package output writes the per-sample files and the sample manifest in the
// directory layout consumed by EstimNetDirected:
//
//	subgraph<i>.txt   Pajek subgraph, nodes numbered by position in the sample order
//	subzone<i>.txt    "zone" header, then one zone per line in the same order
//	subactor<i>.txt   attribute file placeholder (empty)
//	sampledesc.txt    "<N> <zone file> <subgraph file> <actor file>" per sample
//
// Every file is written to a temporary name and renamed into place, so a
// failed run never leaves a half-written file behind. Existing files with the
// same names are overwritten. Prepare removes a manifest left by an earlier
// run, so sampledesc.txt only exists after a run that wrote every sample.
package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/snowball/pajek"
	"github.com/katalvlaran/snowball/subgraph"
)

var (
	// ErrIOFailure wraps any create, write, close or rename failure.
	ErrIOFailure = errors.New("output: I/O failure")

	// ErrZoneMissing is returned when a node in the sample order has no zone.
	ErrZoneMissing = errors.New("output: node has no zone")
)

// ManifestName is the file name of the sample manifest.
const ManifestName = "sampledesc.txt"

// ZoneLookup resolves the zone of a sampled node. *zone.Tracker and
// *snowball.Sample both satisfy it.
type ZoneLookup interface {
	Zone(node int) (int, bool)
}

// Paths names the three files of one sample.
type Paths struct {
	Subgraph string
	Zone     string
	Actor    string
}

// ManifestEntry is one line of sampledesc.txt.
type ManifestEntry struct {
	NodeCount int
	Zone      string
	Subgraph  string
	Actor     string
}

// String renders the entry as it appears in the manifest, without newline.
func (m ManifestEntry) String() string {
	return strconv.Itoa(m.NodeCount) + " " + m.Zone + " " + m.Subgraph + " " + m.Actor
}

// Option configures a Writer.
type Option func(*Writer)

// WithZoneHeader controls the leading "zone" line of zone files (default on).
func WithZoneHeader(on bool) Option {
	return func(w *Writer) { w.zoneHeader = on }
}

// Writer writes sample files into one output directory. Distinct sample
// indices touch distinct files, so WriteSample may run concurrently.
//
// Zone files start with a "zone" header line by default, the attribute name
// EstimNetDirected reads from line 1. With the header, zone row k+1 describes
// the node at position k of the sample order; WithZoneHeader(false) drops the
// header and makes row k describe position k.
type Writer struct {
	dir        string
	zoneHeader bool
}

// NewWriter returns a Writer for dir. Nothing touches the disk until Prepare.
func NewWriter(dir string, opts ...Option) *Writer {
	w := &Writer{dir: dir, zoneHeader: true}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Prepare creates the output directory (and parents) and deletes a manifest
// from an earlier run. Call it once per run, before the first WriteSample.
func (w *Writer) Prepare() error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIOFailure, w.dir, err)
	}
	manifest := filepath.Join(w.dir, ManifestName)
	if err := os.Remove(manifest); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", ErrIOFailure, manifest, err)
	}

	return nil
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Paths returns the file names for sample i.
func (w *Writer) Paths(i int) Paths {
	n := strconv.Itoa(i)

	return Paths{
		Subgraph: filepath.Join(w.dir, "subgraph"+n+".txt"),
		Zone:     filepath.Join(w.dir, "subzone"+n+".txt"),
		Actor:    filepath.Join(w.dir, "subactor"+n+".txt"),
	}
}

// WriteSample writes the subgraph, zone and actor files of sample i and
// returns its manifest entry. Line k+1 of the zone file (after the header)
// and node k+1 of the subgraph file both refer to res.Order[k].
func (w *Writer) WriteSample(i int, res *subgraph.Result, zones ZoneLookup) (ManifestEntry, error) {
	p := w.Paths(i)

	if err := writeAtomic(p.Subgraph, func(out io.Writer) error {
		return pajek.WriteSubgraph(out, res)
	}); err != nil {
		return ManifestEntry{}, err
	}
	if err := writeAtomic(p.Zone, func(out io.Writer) error {
		return w.writeZones(out, res.Order, zones)
	}); err != nil {
		return ManifestEntry{}, err
	}
	if err := writeAtomic(p.Actor, func(io.Writer) error { return nil }); err != nil {
		return ManifestEntry{}, err
	}

	return ManifestEntry{
		NodeCount: res.Len(),
		Zone:      p.Zone,
		Subgraph:  p.Subgraph,
		Actor:     p.Actor,
	}, nil
}

// WriteManifest writes sampledesc.txt with one line per entry, in the order given.
func (w *Writer) WriteManifest(entries []ManifestEntry) error {
	return writeAtomic(filepath.Join(w.dir, ManifestName), func(out io.Writer) error {
		for _, e := range entries {
			if _, err := io.WriteString(out, e.String()+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *Writer) writeZones(out io.Writer, order []int, zones ZoneLookup) error {
	buf := make([]byte, 0, 8*len(order)+8)
	if w.zoneHeader {
		buf = append(buf, "zone\n"...)
	}
	for _, node := range order {
		z, ok := zones.Zone(node)
		if !ok {
			return fmt.Errorf("%w: %d", ErrZoneMissing, node)
		}
		buf = strconv.AppendInt(buf, int64(z), 10)
		buf = append(buf, '\n')
	}
	_, err := out.Write(buf)

	return err
}
