package investment

import "testing"

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want Tier
	}{
		{
			name: "zero investment",
			z:    0.0,
			want: Tier1Partial,
		},
		{
			name: "just below tier 2 boundary",
			z:    0.999,
			want: Tier1Partial,
		},
		{
			name: "exactly on tier 2 boundary",
			z:    1.0,
			want: Tier2RiskInformed,
		},
		{
			name: "just below tier 3 boundary",
			z:    2.999,
			want: Tier2RiskInformed,
		},
		{
			name: "exactly on tier 3 boundary",
			z:    3.0,
			want: Tier3Repeatable,
		},
		{
			name: "paper worked example",
			z:    4.6,
			want: Tier3Repeatable,
		},
		{
			name: "just below tier 4 boundary",
			z:    6.999,
			want: Tier3Repeatable,
		},
		{
			name: "exactly on tier 4 boundary",
			z:    7.0,
			want: Tier4Adaptive,
		},
		{
			name: "well above tier 4 boundary",
			z:    10.247,
			want: Tier4Adaptive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyTier(tt.z); got != tt.want {
				t.Errorf("ClassifyTier(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestTierLabels(t *testing.T) {
	tests := []struct {
		tier Tier
		want string
	}{
		{Tier1Partial, "Tier 1 (Partial)"},
		{Tier2RiskInformed, "Tier 2 (Risk Informed)"},
		{Tier3Repeatable, "Tier 3 (Repeatable)"},
		{Tier4Adaptive, "Tier 4 (Adaptive)"},
	}

	for _, tt := range tests {
		if got := tt.tier.Label(); got != tt.want {
			t.Errorf("Tier(%d).Label() = %q, want %q", int(tt.tier), got, tt.want)
		}
	}
}

func TestTierMarshalJSON(t *testing.T) {
	got, err := Tier3Repeatable.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON returned error: %v", err)
	}
	if string(got) != `"tier_3_repeatable"` {
		t.Errorf("MarshalJSON = %s, want %q", got, "tier_3_repeatable")
	}
}
