package output_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowball/core"
	"github.com/katalvlaran/snowball/output"
	"github.com/katalvlaran/snowball/snowball"
	"github.com/katalvlaran/snowball/subgraph"
)

// sampleChain expands 1 wave from node 3 of the directed chain 1→…→5.
func sampleChain(t *testing.T) (*subgraph.Result, *snowball.Sample) {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 1; i < 5; i++ {
		_, err := g.AddEdge(i, i+1)
		require.NoError(t, err)
	}
	s, err := snowball.Expand(g, []int{3}, 1)
	require.NoError(t, err)
	res, err := subgraph.Induce(g, s.Nodes)
	require.NoError(t, err)

	return res, s
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(b)
}

// newWriter returns a prepared Writer for dir.
func newWriter(t *testing.T, dir string, opts ...output.Option) *output.Writer {
	t.Helper()
	w := output.NewWriter(dir, opts...)
	require.NoError(t, w.Prepare())

	return w
}

func TestWriter_Paths(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")
	w := output.NewWriter(dir)

	p := w.Paths(7)
	assert.Equal(t, filepath.Join(dir, "subgraph7.txt"), p.Subgraph)
	assert.Equal(t, filepath.Join(dir, "subzone7.txt"), p.Zone)
	assert.Equal(t, filepath.Join(dir, "subactor7.txt"), p.Actor)
	assert.Equal(t, dir, w.Dir())
	assert.NoDirExists(t, dir)
}

func TestWriter_WriteSample(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w := newWriter(t, dir)

	res, s := sampleChain(t)
	entry, err := w.WriteSample(0, res, s)
	require.NoError(t, err)

	assert.Equal(t, 3, entry.NodeCount)
	// order is 2,3,4 → zones 1,0,1
	assert.Equal(t, "zone\n1\n0\n1\n", readFile(t, entry.Zone))
	assert.Equal(t, "*vertices 3\n*arcs\n1 2\n2 3\n", readFile(t, entry.Subgraph))
	assert.Equal(t, "", readFile(t, entry.Actor))

	require.NoError(t, w.WriteManifest([]output.ManifestEntry{entry}))
	want := "3 " + entry.Zone + " " + entry.Subgraph + " " + entry.Actor + "\n"
	assert.Equal(t, want, readFile(t, filepath.Join(dir, output.ManifestName)))

	// only final names remain, no temp files
	names, err := os.ReadDir(dir)
	require.NoError(t, err)
	var got []string
	for _, n := range names {
		got = append(got, n.Name())
	}
	sort.Strings(got)
	assert.Equal(t, []string{"sampledesc.txt", "subactor0.txt", "subgraph0.txt", "subzone0.txt"}, got)
}

func TestWriter_NoZoneHeaderAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	w := newWriter(t, dir, output.WithZoneHeader(false))

	p := w.Paths(1)
	require.NoError(t, os.WriteFile(p.Zone, []byte("stale content that is longer\n"), 0o644))

	res, s := sampleChain(t)
	_, err := w.WriteSample(1, res, s)
	require.NoError(t, err)
	assert.Equal(t, "1\n0\n1\n", readFile(t, p.Zone))
}

func TestWriter_ManifestOrder(t *testing.T) {
	dir := t.TempDir()
	w := newWriter(t, dir)

	entries := []output.ManifestEntry{
		{NodeCount: 5, Zone: "z0", Subgraph: "g0", Actor: "a0"},
		{NodeCount: 2, Zone: "z1", Subgraph: "g1", Actor: "a1"},
	}
	require.NoError(t, w.WriteManifest(entries))
	assert.Equal(t, "5 z0 g0 a0\n2 z1 g1 a1\n", readFile(t, filepath.Join(dir, output.ManifestName)))
}

func TestWriter_ZoneMissing(t *testing.T) {
	w := newWriter(t, t.TempDir())

	res, _ := sampleChain(t)
	_, err := w.WriteSample(0, res, noZones{})
	assert.ErrorIs(t, err, output.ErrZoneMissing)
	assert.NoFileExists(t, w.Paths(0).Zone)
}

type noZones struct{}

func (noZones) Zone(int) (int, bool) { return 0, false }

func TestWriter_IOFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	assert.ErrorIs(t, output.NewWriter(filepath.Join(blocker, "sub")).Prepare(), output.ErrIOFailure)

	dir := filepath.Join(base, "out")
	w := newWriter(t, dir)
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, nil, 0o644))

	res, s := sampleChain(t)
	_, err := w.WriteSample(0, res, s)
	assert.ErrorIs(t, err, output.ErrIOFailure)
	assert.ErrorIs(t, w.WriteManifest(nil), output.ErrIOFailure)
}

func TestWriter_PrepareRemovesStaleManifest(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, output.ManifestName)
	require.NoError(t, os.WriteFile(manifest, []byte("9 old old old\n"), 0o644))

	w := output.NewWriter(dir)
	require.NoError(t, w.Prepare())
	assert.NoFileExists(t, manifest)

	// a second Prepare with nothing to remove is fine
	require.NoError(t, w.Prepare())
}

func TestWriter_PrepareCannotRemoveManifest(t *testing.T) {
	dir := t.TempDir()
	// a non-empty directory under the manifest name cannot be removed
	require.NoError(t, os.MkdirAll(filepath.Join(dir, output.ManifestName, "x"), 0o755))

	err := output.NewWriter(dir).Prepare()
	assert.ErrorIs(t, err, output.ErrIOFailure)
}
