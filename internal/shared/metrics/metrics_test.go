package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderExposesAllSeries(t *testing.T) {
	IncSummarizeStarted()
	IncSummarizeCompleted()
	IncSummarizeFailed()
	ObserveSummarizeDurationMs(123)

	out := Render()
	for _, name := range []string{
		"summarize_started_total",
		"summarize_completed_total",
		"summarize_failed_total",
		"summarize_duration_ms_bucket",
		"summarize_duration_ms_sum",
		"summarize_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("missing series %q in:\n%s", name, out)
		}
	}
}

func TestHistogramBucketsDisjoint(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("count = %d, want 3", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("per-bucket counts = %v", snap.counts)
	}
	if snap.sum != 5055 {
		t.Fatalf("sum = %v", snap.sum)
	}
}

func TestHistogramRenderingIsMonotonic(t *testing.T) {
	h := newHistogram([]float64{50, 100, 250})
	h.Observe(60)

	var buf bytes.Buffer
	writeHistogram(&buf, "test_ms", "test", h.Snapshot())
	out := buf.String()

	wantLines := []string{
		`test_ms_bucket{le="50"} 0`,
		`test_ms_bucket{le="100"} 1`,
		`test_ms_bucket{le="250"} 1`,
		`test_ms_bucket{le="+Inf"} 1`,
		`test_ms_count 1`,
	}
	for _, line := range wantLines {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in:\n%s", line, out)
		}
	}

	// Cumulative bucket values must never decrease, +Inf included.
	h.Observe(5)
	h.Observe(70)
	h.Observe(9999)
	snap := h.Snapshot()
	var cumulative, prev uint64
	for i := range snap.buckets {
		cumulative += snap.counts[i]
		if cumulative < prev {
			t.Fatalf("bucket %d not monotonic: %d < %d", i, cumulative, prev)
		}
		prev = cumulative
	}
	if snap.count < cumulative {
		t.Fatalf("+Inf bucket %d smaller than finite buckets %d", snap.count, cumulative)
	}
}

func TestObserveClampsNegativeDurations(t *testing.T) {
	before := summarizeDuration.Snapshot()
	ObserveSummarizeDurationMs(-5)
	after := summarizeDuration.Snapshot()
	if after.count != before.count+1 {
		t.Fatalf("observation not recorded")
	}
	if after.sum != before.sum {
		t.Fatalf("negative value should clamp to zero")
	}
}
