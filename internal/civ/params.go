// Tuning constants for the simulation model.
package civ

// Params holds every tuning constant in the model. One Params value is
// shared by all civilizations in a run; scenario files may override any
// field by its snake_case key.
type Params struct {
	InitialPopulation float64 `yaml:"initial_population"`
	InitialResources  float64 `yaml:"initial_resources"`
	InitialTechLevel  float64 `yaml:"initial_tech_level"`

	GatherRateBase   float64 `yaml:"gather_rate_base"`  // resources per citizen per turn at tech 0
	UpkeepPerCapita  float64 `yaml:"upkeep_per_capita"` // resources consumed per citizen per turn
	StarvationFactor float64 `yaml:"starvation_factor"` // lives lost per unit of unmet upkeep
	GrowthRateBase   float64 `yaml:"growth_rate_base"`

	TechGainBase         float64 `yaml:"tech_gain_base"`
	ResearchCostPerPoint float64 `yaml:"research_cost_per_point"`
	ResearchMinReserve   float64 `yaml:"research_min_reserve"` // stockpile needed before any research

	StrengthTechExponent float64 `yaml:"strength_tech_exponent"`

	ConflictThreshold    float64 `yaml:"conflict_threshold"`    // combined aggressiveness above this provokes war
	CooperationThreshold float64 `yaml:"cooperation_threshold"` // combined cooperation above this starts trade
	RaidAggressionGap    float64 `yaml:"raid_aggression_gap"`   // extra aggressiveness a raider needs over its victim
	RaidStrengthRatio    float64 `yaml:"raid_strength_ratio"`   // strength advantage a raider needs

	CombatLossBase        float64 `yaml:"combat_loss_base"`
	CombatMaxLossFraction float64 `yaml:"combat_max_loss_fraction"` // cap on per-battle losses

	CoopResourceBonus float64 `yaml:"coop_resource_bonus"`
	CoopTechBonus     float64 `yaml:"coop_tech_bonus"`
}

// DefaultParams returns the reference tuning. These values keep a lone
// mid-trait civilization stable for hundreds of turns while leaving
// starvation reachable from a bad start.
func DefaultParams() Params {
	return Params{
		InitialPopulation: 1000,
		InitialResources:  500,
		InitialTechLevel:  1.0,

		GatherRateBase:   0.5,
		UpkeepPerCapita:  0.1,
		StarvationFactor: 1.5,
		GrowthRateBase:   0.01,

		TechGainBase:         0.01,
		ResearchCostPerPoint: 50,
		ResearchMinReserve:   50,

		StrengthTechExponent: 1.5,

		ConflictThreshold:    6.0,
		CooperationThreshold: 12.0,
		RaidAggressionGap:    3.0,
		RaidStrengthRatio:    1.5,

		CombatLossBase:        0.1,
		CombatMaxLossFraction: 0.9,

		CoopResourceBonus: 0.05,
		CoopTechBonus:     0.02,
	}
}
