// Construction-time validation.
package civ

import (
	"fmt"
	"math"
)

// TraitMax is the upper bound of the trait scale.
const TraitMax = 10.0

// ValidationError reports a rejected construction parameter: a trait out
// of range, a bad turn count, a malformed scenario. It is the only error
// kind produced while building a simulation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Validate rejects traits that are not finite or fall outside 0..TraitMax.
// A zero trait is legal; tech_rate 0 in particular means a civilization
// that never researches.
func (t Traits) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"intelligence", t.Intelligence},
		{"tech_rate", t.TechRate},
		{"aggressiveness", t.Aggressiveness},
		{"cooperation", t.Cooperation},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return invalidf(c.name, "must be a finite number")
		}
		if c.value < 0 || c.value > TraitMax {
			return invalidf(c.name, "must be between 0 and %g, got %g", TraitMax, c.value)
		}
	}
	return nil
}

// Validate rejects tuning the model cannot run on. Every field is
// scenario-overridable, so each must be finite and non-negative, and the
// combat loss cap must be a fraction.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"initial_population", p.InitialPopulation},
		{"initial_resources", p.InitialResources},
		{"initial_tech_level", p.InitialTechLevel},
		{"gather_rate_base", p.GatherRateBase},
		{"upkeep_per_capita", p.UpkeepPerCapita},
		{"starvation_factor", p.StarvationFactor},
		{"growth_rate_base", p.GrowthRateBase},
		{"tech_gain_base", p.TechGainBase},
		{"research_cost_per_point", p.ResearchCostPerPoint},
		{"research_min_reserve", p.ResearchMinReserve},
		{"strength_tech_exponent", p.StrengthTechExponent},
		{"conflict_threshold", p.ConflictThreshold},
		{"cooperation_threshold", p.CooperationThreshold},
		{"raid_aggression_gap", p.RaidAggressionGap},
		{"raid_strength_ratio", p.RaidStrengthRatio},
		{"combat_loss_base", p.CombatLossBase},
		{"combat_max_loss_fraction", p.CombatMaxLossFraction},
		{"coop_resource_bonus", p.CoopResourceBonus},
		{"coop_tech_bonus", p.CoopTechBonus},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return invalidf(c.name, "must be a finite number")
		}
		if c.value < 0 {
			return invalidf(c.name, "must not be negative, got %g", c.value)
		}
	}
	if p.CombatMaxLossFraction > 1 {
		return invalidf("combat_max_loss_fraction", "must be within [0, 1], got %g", p.CombatMaxLossFraction)
	}
	return nil
}
