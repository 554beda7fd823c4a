package metrics_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/snowball/metrics"
)

func family(t *testing.T, r *metrics.Recorder, name string) *dto.MetricFamily {
	t.Helper()
	fams, err := r.Registry().Gather()
	require.NoError(t, err)
	for _, f := range fams {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric family %s not gathered", name)

	return nil
}

func counterByLabel(f *dto.MetricFamily, value string) float64 {
	for _, m := range f.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}

	return 0
}

func TestRecorder_ObserveSample(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveSample(6, 9, 20*time.Millisecond, []int{2, 3, 1})
	r.ObserveSample(4, 3, 10*time.Millisecond, []int{2, 2})
	r.SampleFailed()

	samples := family(t, r, "snowball_samples_total")
	assert.Equal(t, 2.0, counterByLabel(samples, metrics.StatusOK))
	assert.Equal(t, 1.0, counterByLabel(samples, metrics.StatusError))

	zones := family(t, r, "snowball_zone_nodes_total")
	assert.Equal(t, 4.0, counterByLabel(zones, "0"))
	assert.Equal(t, 5.0, counterByLabel(zones, "1"))
	assert.Equal(t, 1.0, counterByLabel(zones, "2"))

	nodes := family(t, r, "snowball_sample_nodes")
	require.Len(t, nodes.GetMetric(), 1)
	assert.Equal(t, uint64(2), nodes.GetMetric()[0].GetHistogram().GetSampleCount())
	assert.Equal(t, 10.0, nodes.GetMetric()[0].GetHistogram().GetSampleSum())
}

func TestRecorder_WriteTextfile(t *testing.T) {
	r := metrics.NewRecorder()
	r.ObserveSample(3, 2, time.Millisecond, []int{1, 2})

	path := filepath.Join(t.TempDir(), "snowball.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `snowball_samples_total{status="ok"} 1`)
	assert.Contains(t, string(b), `snowball_zone_nodes_total{zone="1"} 2`)
}

func TestRecorder_Nil(t *testing.T) {
	var r *metrics.Recorder
	r.ObserveSample(1, 1, time.Second, []int{1})
	r.SampleFailed()
	assert.NoError(t, r.WriteTextfile(filepath.Join(t.TempDir(), "x.prom")))
}
