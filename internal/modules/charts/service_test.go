package charts

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestBuildInvestmentChartSeries(t *testing.T) {
	service := NewService(zerolog.Nop())

	chart := service.BuildInvestmentChart(0.3, 72.6, 4.6)

	// Three reference curves plus the user's curve
	if len(chart.Series) != 4 {
		t.Fatalf("got %d series, want 4", len(chart.Series))
	}

	wantLabels := []string{
		"v = 0.5 (High Vuln)",
		"v = 0.3 (Med Vuln)",
		"v = 0.1 (Low Vuln)",
		"Current User Input (v=0.30)",
	}
	for i, want := range wantLabels {
		if chart.Series[i].Label != want {
			t.Errorf("series[%d].Label = %q, want %q", i, chart.Series[i].Label, want)
		}
	}

	for i, s := range chart.Series {
		isReference := i < 3
		if s.Reference != isReference {
			t.Errorf("series[%d].Reference = %v, want %v", i, s.Reference, isReference)
		}
	}
}

func TestBuildInvestmentChartSampling(t *testing.T) {
	service := NewService(zerolog.Nop())

	chart := service.BuildInvestmentChart(0.3, 72.6, 4.6)

	for _, s := range chart.Series {
		if len(s.Points) != 300 {
			t.Fatalf("series %q has %d points, want 300", s.Label, len(s.Points))
		}

		first := s.Points[0]
		last := s.Points[len(s.Points)-1]
		if first.Loss != 0 {
			t.Errorf("series %q starts at L=%v, want 0", s.Label, first.Loss)
		}
		if math.Abs(last.Loss-150) > 1e-9 {
			t.Errorf("series %q ends at L=%v, want 150", s.Label, last.Loss)
		}

		// Strictly increasing loss axis, investment never negative
		for i := 1; i < len(s.Points); i++ {
			if s.Points[i].Loss <= s.Points[i-1].Loss {
				t.Fatalf("series %q not strictly increasing at index %d", s.Label, i)
			}
			if s.Points[i].Investment < 0 {
				t.Fatalf("series %q has negative investment at index %d", s.Label, i)
			}
		}
	}
}

func TestBuildInvestmentChartThresholds(t *testing.T) {
	service := NewService(zerolog.Nop())

	chart := service.BuildInvestmentChart(0.3, 72.6, 4.6)

	want := []struct {
		value float64
		label string
	}{
		{1, "Tier 2 Threshold ($1M)"},
		{3, "Tier 3 Threshold ($3M)"},
		{7, "Tier 4 Threshold ($7M)"},
	}

	if len(chart.Thresholds) != len(want) {
		t.Fatalf("got %d thresholds, want %d", len(chart.Thresholds), len(want))
	}
	for i, w := range want {
		if chart.Thresholds[i].Value != w.value {
			t.Errorf("thresholds[%d].Value = %v, want %v", i, chart.Thresholds[i].Value, w.value)
		}
		if chart.Thresholds[i].Label != w.label {
			t.Errorf("thresholds[%d].Label = %q, want %q", i, chart.Thresholds[i].Label, w.label)
		}
	}
}

func TestBuildInvestmentChartHighlight(t *testing.T) {
	service := NewService(zerolog.Nop())

	chart := service.BuildInvestmentChart(0.5, 150, 10.247)

	if chart.Highlight.Label != "Your Selection" {
		t.Errorf("Highlight.Label = %q, want %q", chart.Highlight.Label, "Your Selection")
	}
	if chart.Highlight.Point.Loss != 150 {
		t.Errorf("Highlight.Point.Loss = %v, want 150", chart.Highlight.Point.Loss)
	}
	if chart.Highlight.Point.Investment != 10.247 {
		t.Errorf("Highlight.Point.Investment = %v, want 10.247", chart.Highlight.Point.Investment)
	}
}

func TestBuildInvestmentChartUserCurveMatchesModel(t *testing.T) {
	service := NewService(zerolog.Nop())

	// The user curve at v=0.3 must coincide with the 0.3 reference curve
	chart := service.BuildInvestmentChart(0.3, 72.6, 4.6)

	ref := chart.Series[1] // v = 0.3 (Med Vuln)
	user := chart.Series[3]

	for i := range ref.Points {
		if ref.Points[i] != user.Points[i] {
			t.Fatalf("user curve diverges from reference at index %d: %+v vs %+v",
				i, user.Points[i], ref.Points[i])
		}
	}
}
