package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/agbru/fibseq/internal/sequence"
)

func TestMetrics_ObserveSequence(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveSequence(sequence.Generate(sequence.DefaultLimit), sequence.DefaultLimit, time.Microsecond)

	require.Equal(t, float64(1000), testutil.ToFloat64(m.limit))
	require.Equal(t, float64(15), testutil.ToFloat64(m.termsGenerated))
	require.Equal(t, float64(987), testutil.ToFloat64(m.largestTerm))
	require.Equal(t, 1, testutil.CollectAndCount(m.generationSeconds))
}

func TestMetrics_ObserveSequence_Empty(t *testing.T) {
	t.Parallel()
	m := New()

	m.ObserveSequence(sequence.Generate(0), 0, 0)

	require.Equal(t, float64(0), testutil.ToFloat64(m.termsGenerated))
	require.Equal(t, float64(0), testutil.ToFloat64(m.largestTerm))
}

func TestMetrics_RecordRun(t *testing.T) {
	t.Parallel()
	m := New()

	m.RecordRun(StatusSuccess)
	m.RecordRun(StatusSuccess)
	m.RecordRun(StatusFailure)

	require.Equal(t, float64(2), testutil.ToFloat64(m.runsTotal.WithLabelValues(StatusSuccess)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.runsTotal.WithLabelValues(StatusFailure)))
	require.Greater(t, testutil.ToFloat64(m.lastRunTimestamp), float64(0))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveSequence(sequence.Generate(sequence.DefaultLimit), sequence.DefaultLimit, time.Microsecond)
	m.ObservePrinted(15)
	m.RecordRun(StatusSuccess)

	path := filepath.Join(t.TempDir(), "fibseq.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(content)

	for _, want := range []string{
		"fibseq_limit 1000",
		"fibseq_terms_generated 15",
		"fibseq_largest_term 987",
		"fibseq_terms_printed 15",
		`fibseq_runs_total{status="success"} 1`,
		"fibseq_generation_duration_seconds_count 1",
	} {
		require.True(t, strings.Contains(body, want), "textfile should contain %q, got:\n%s", want, body)
	}
	require.False(t, strings.Contains(body, "go_goroutines"), "textfile must not carry runtime metrics")
}

func TestMetrics_WriteTextfile_BadPath(t *testing.T) {
	t.Parallel()
	m := New()

	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "fibseq.prom"))
	require.Error(t, err)
}
