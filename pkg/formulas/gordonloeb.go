package formulas

import "math"

// OptimalInvestment calculates the optimal security investment z* for an
// information asset, using the corrected formula from "Integrating
// Cost-Benefit Analysis into the NIST Cybersecurity Framework via the
// Gordon-Loeb Model" (2020), page 6.
//
// Formula:
//
//	z* = sqrt(2vL) - 2
//
// Args:
//
//	v: Vulnerability - probability of a breach before any investment (expected in [0, 1])
//	loss: Potential loss L if the asset is compromised (in millions)
//
// Returns:
//
//	Optimal investment in the same unit as loss, never negative
func OptimalInvestment(v, loss float64) float64 {
	term := 2 * v * loss

	// Guard the sqrt domain. Unreachable while v and loss are non-negative,
	// but the function stays total for unconstrained inputs.
	if term < 0 {
		return 0.0
	}

	z := math.Sqrt(term) - 2

	// Investment cannot be negative
	return math.Max(0.0, z)
}

// BreachProbability calculates the remaining probability of a breach after
// investing z, using the paper's security breach probability function:
//
//	s(z, v) = v / (1 + z/2)
//
// At z = 0 this is the baseline vulnerability v; it decays toward zero as
// investment grows.
func BreachProbability(z, v float64) float64 {
	if z < 0 {
		z = 0
	}
	return v / (1 + z/2)
}

// ExpectedCost calculates the total expected cost of investing z against a
// potential loss: residual expected loss plus the investment itself.
//
// Formula:
//
//	E(z) = vL / (1 + z/2) + z
//
// The optimal investment returned by OptimalInvestment minimizes this
// function over z >= 0.
func ExpectedCost(z, v, loss float64) float64 {
	return BreachProbability(z, v)*loss + z
}

// ExpectedNetBenefit calculates the expected savings from investing z versus
// not investing at all: the reduction in expected loss minus the investment.
//
// Formula:
//
//	ENB(z) = (v - s(z, v)) * L - z
func ExpectedNetBenefit(z, v, loss float64) float64 {
	return (v-BreachProbability(z, v))*loss - z
}
