// Package charts builds renderer-agnostic chart descriptions for the
// dashboard. The service replicates Figure 1 of the 2020 cost-benefit paper:
// optimal investment curves over potential loss for several vulnerability
// levels, with the user's selection highlighted.
package charts

import (
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats"

	"github.com/aristath/gordonloeb/internal/modules/investment"
	"github.com/aristath/gordonloeb/pkg/formulas"
)

// Sampling grid for the loss axis. Presentation resolution, not a model
// constant: any sufficiently dense grid draws the same curve.
const (
	lossRangeMin = 0.0
	lossRangeMax = 150.0
	samplePoints = 300
)

// Reference curves from the paper's Figure 1, drawn behind the user's curve.
var referenceCurves = []struct {
	vulnerability float64
	label         string
}{
	{0.5, "v = 0.5 (High Vuln)"},
	{0.3, "v = 0.3 (Med Vuln)"},
	{0.1, "v = 0.1 (Low Vuln)"},
}

// Point is one (loss, investment) sample on a curve.
type Point struct {
	Loss       float64 `json:"loss"`
	Investment float64 `json:"investment"`
}

// Series is one labeled curve. Reference marks the fixed background curves
// so the renderer can de-emphasize them.
type Series struct {
	Label     string  `json:"label"`
	Reference bool    `json:"reference"`
	Points    []Point `json:"points"`
}

// Threshold is a horizontal annotation line at a fixed investment level.
type Threshold struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Highlight marks the user's current selection on the chart.
type Highlight struct {
	Label string `json:"label"`
	Point Point  `json:"point"`
}

// ChartDescription is the full renderer-agnostic chart: labeled series,
// the highlighted selection and the tier threshold annotations. Rendering
// to pixels is the UI collaborator's concern.
type ChartDescription struct {
	Title      string      `json:"title"`
	XLabel     string      `json:"x_label"`
	YLabel     string      `json:"y_label"`
	Series     []Series    `json:"series"`
	Highlight  Highlight   `json:"highlight"`
	Thresholds []Threshold `json:"thresholds"`
}

// Service builds investment charts. Stateless: every chart is sampled fresh.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new chart service
func NewService(log zerolog.Logger) *Service {
	return &Service{
		log: log.With().Str("module", "charts").Logger(),
	}
}

// BuildInvestmentChart samples the optimal-investment curve over
// L in [0, 150] for the three reference vulnerabilities plus the user's
// current one, and marks the user's (L, z*) selection.
func (s *Service) BuildInvestmentChart(vUser, lossInput, zUser float64) ChartDescription {
	losses := floats.Span(make([]float64, samplePoints), lossRangeMin, lossRangeMax)

	series := make([]Series, 0, len(referenceCurves)+1)
	for _, ref := range referenceCurves {
		series = append(series, sampleCurve(ref.label, true, ref.vulnerability, losses))
	}
	series = append(series, sampleCurve(
		fmt.Sprintf("Current User Input (v=%.2f)", vUser), false, vUser, losses))

	return ChartDescription{
		Title:  "Replication of Figure 1: Optimal Investment Levels",
		XLabel: "Potential Loss (L) in Millions ($)",
		YLabel: "Optimal Investment (z) in Millions ($)",
		Series: series,
		Highlight: Highlight{
			Label: "Your Selection",
			Point: Point{Loss: lossInput, Investment: zUser},
		},
		Thresholds: []Threshold{
			{Value: investment.Tier2Threshold, Label: "Tier 2 Threshold ($1M)"},
			{Value: investment.Tier3Threshold, Label: "Tier 3 Threshold ($3M)"},
			{Value: investment.Tier4Threshold, Label: "Tier 4 Threshold ($7M)"},
		},
	}
}

// sampleCurve evaluates the model at every loss sample for one vulnerability
func sampleCurve(label string, reference bool, v float64, losses []float64) Series {
	points := make([]Point, len(losses))
	for i, loss := range losses {
		points[i] = Point{
			Loss:       loss,
			Investment: formulas.OptimalInvestment(v, loss),
		}
	}

	return Series{
		Label:     label,
		Reference: reference,
		Points:    points,
	}
}
