package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func find(t *testing.T, mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	t.Helper()
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveBuildDuration(5 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeFailed)
	pr.SetSidebarLinks(22)
	pr.AddValidationWarnings(3)
	pr.AddValidationWarnings(0)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	outcomes := find(t, mfs, "navbuilder_build_outcomes_total")
	got := map[string]float64{}
	for _, m := range outcomes.GetMetric() {
		got[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	if got["success"] != 2 || got["failed"] != 1 {
		t.Fatalf("unexpected outcomes: %v", got)
	}
	if v := find(t, mfs, "navbuilder_sidebar_links").GetMetric()[0].GetGauge().GetValue(); v != 22 {
		t.Fatalf("sidebar links = %v, want 22", v)
	}
	if v := find(t, mfs, "navbuilder_validation_warnings_total").GetMetric()[0].GetCounter().GetValue(); v != 3 {
		t.Fatalf("warnings = %v, want 3", v)
	}
	if c := find(t, mfs, "navbuilder_build_duration_seconds").GetMetric()[0].GetHistogram().GetSampleCount(); c != 1 {
		t.Fatalf("duration samples = %d, want 1", c)
	}
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveBuildDuration(time.Second)
	pr.IncBuildOutcome(OutcomeWarning)
	pr.SetSidebarLinks(1)
	pr.AddValidationWarnings(1)
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeSuccess)
	r.SetSidebarLinks(3)
	r.AddValidationWarnings(2)
}

func TestOutcomeFor(t *testing.T) {
	cases := []struct {
		err      error
		warnings int
		want     BuildOutcome
	}{
		{nil, 0, OutcomeSuccess},
		{nil, 2, OutcomeWarning},
		{errors.New("boom"), 2, OutcomeFailed},
	}
	for _, tc := range cases {
		if got := OutcomeFor(tc.err, tc.warnings); got != tc.want {
			t.Errorf("OutcomeFor(%v, %d) = %s, want %s", tc.err, tc.warnings, got, tc.want)
		}
	}
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncBuildOutcome(OutcomeSuccess)

	path := filepath.Join(t.TempDir(), "navbuilder.prom")
	if err := WriteTextfile(path, reg); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `navbuilder_build_outcomes_total{outcome="success"} 1`) {
		t.Fatalf("textfile missing outcome counter:\n%s", data)
	}

	if err := WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"), reg); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
