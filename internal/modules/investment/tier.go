package investment

import "fmt"

// Tier is the NIST Cybersecurity Framework implementation tier implied by an
// optimal investment level, following the mapping used in the 2020
// cost-benefit paper (pages 6-7).
type Tier int

const (
	Tier1Partial Tier = iota + 1
	Tier2RiskInformed
	Tier3Repeatable
	Tier4Adaptive
)

// Investment thresholds (in millions) separating consecutive tiers.
// A value exactly on a threshold belongs to the higher tier.
const (
	Tier2Threshold = 1.0
	Tier3Threshold = 3.0
	Tier4Threshold = 7.0
)

// ClassifyTier maps an optimal investment level to the implied NIST tier.
// The ladder is evaluated highest-to-lowest with inclusive lower bounds, so
// boundary values land in the higher tier.
func ClassifyTier(z float64) Tier {
	switch {
	case z >= Tier4Threshold:
		return Tier4Adaptive
	case z >= Tier3Threshold:
		return Tier3Repeatable
	case z >= Tier2Threshold:
		return Tier2RiskInformed
	default:
		return Tier1Partial
	}
}

// Label returns the display string used by the dashboard, e.g. "Tier 3 (Repeatable)".
func (t Tier) Label() string {
	switch t {
	case Tier1Partial:
		return "Tier 1 (Partial)"
	case Tier2RiskInformed:
		return "Tier 2 (Risk Informed)"
	case Tier3Repeatable:
		return "Tier 3 (Repeatable)"
	case Tier4Adaptive:
		return "Tier 4 (Adaptive)"
	}
	return fmt.Sprintf("Tier(%d)", int(t))
}

// slug is the stable API identifier for the tier.
func (t Tier) slug() string {
	switch t {
	case Tier1Partial:
		return "tier_1_partial"
	case Tier2RiskInformed:
		return "tier_2_risk_informed"
	case Tier3Repeatable:
		return "tier_3_repeatable"
	case Tier4Adaptive:
		return "tier_4_adaptive"
	}
	return "tier_unknown"
}

// MarshalJSON encodes the tier as its stable identifier, e.g. "tier_3_repeatable".
func (t Tier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.slug() + `"`), nil
}

func (t Tier) String() string {
	return t.Label()
}
