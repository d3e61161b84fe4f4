package investment

import (
	"github.com/rs/zerolog"

	"github.com/aristath/gordonloeb/pkg/formulas"
)

// Evaluation is the full model output for one (v, L) pair. Every field is
// recomputed on each call; nothing is cached or stored between requests.
type Evaluation struct {
	Vulnerability      float64 `json:"vulnerability"`
	PotentialLoss      float64 `json:"potential_loss"`
	OptimalInvestment  float64 `json:"optimal_investment"`
	Tier               Tier    `json:"tier"`
	TierLabel          string  `json:"tier_label"`
	BaselineBreachProb float64 `json:"baseline_breach_probability"`
	ResidualBreachProb float64 `json:"residual_breach_probability"`
	ExpectedCost       float64 `json:"expected_cost"`
	ExpectedNetBenefit float64 `json:"expected_net_benefit"`
}

// SliderRange describes one bounded input control for the dashboard.
type SliderRange struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Parameters describes the model's input controls so the UI can configure
// its sliders without hardcoding the paper's ranges.
type Parameters struct {
	Vulnerability SliderRange `json:"vulnerability"`
	PotentialLoss SliderRange `json:"potential_loss"`
}

// Service evaluates the Gordon-Loeb model. It is stateless: each Evaluate
// call is a fresh computation over its two scalar inputs.
type Service struct {
	defaultVulnerability float64
	defaultLoss          float64
	log                  zerolog.Logger
}

// NewService creates an investment evaluation service. The defaults seed the
// dashboard's sliders on first load.
func NewService(defaultVulnerability, defaultLoss float64, log zerolog.Logger) *Service {
	return &Service{
		defaultVulnerability: defaultVulnerability,
		defaultLoss:          defaultLoss,
		log:                  log.With().Str("module", "investment").Logger(),
	}
}

// Evaluate computes the optimal investment for a (v, L) pair along with the
// implied NIST tier and the paper's surrounding quantities.
func (s *Service) Evaluate(v, loss float64) Evaluation {
	z := formulas.OptimalInvestment(v, loss)
	tier := ClassifyTier(z)

	return Evaluation{
		Vulnerability:      v,
		PotentialLoss:      loss,
		OptimalInvestment:  z,
		Tier:               tier,
		TierLabel:          tier.Label(),
		BaselineBreachProb: v,
		ResidualBreachProb: formulas.BreachProbability(z, v),
		ExpectedCost:       formulas.ExpectedCost(z, v, loss),
		ExpectedNetBenefit: formulas.ExpectedNetBenefit(z, v, loss),
	}
}

// Parameters returns the slider ranges from the paper's dashboard: v in
// [0, 1] stepped by 0.05, L in [1, 150] millions stepped by 0.1.
func (s *Service) Parameters() Parameters {
	return Parameters{
		Vulnerability: SliderRange{Min: 0, Max: 1, Step: 0.05, Default: s.defaultVulnerability},
		PotentialLoss: SliderRange{Min: 1, Max: 150, Step: 0.1, Default: s.defaultLoss},
	}
}
