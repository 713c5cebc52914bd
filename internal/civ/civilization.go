// Package civ models a single civilization: four fixed traits, four
// mutable state variables, and the internal phase that advances them
// each turn (gather, consume, grow, develop).
package civ

import "math"

// Traits are fixed at construction and never change. All four live on a
// 0..10 scale; the interaction thresholds in Params are calibrated to it.
type Traits struct {
	Intelligence   float64 `yaml:"intelligence" json:"intelligence"`     // research potential
	TechRate       float64 `yaml:"tech_rate" json:"tech_rate"`           // research speed; 0 means no research ever
	Aggressiveness float64 `yaml:"aggressiveness" json:"aggressiveness"` // appetite for conflict
	Cooperation    float64 `yaml:"cooperation" json:"cooperation"`       // appetite for trade and growth bonus
}

// Civilization is one actor in the simulation. State moves only through
// the methods below, which keep population non-negative, tech_level
// non-decreasing, and dead civilizations inert.
type Civilization struct {
	Name   string `json:"name"`
	Traits Traits `json:"traits"`

	Population float64 `json:"population"`
	Resources  float64 `json:"resources"`
	TechLevel  float64 `json:"tech_level"`
	Alive      bool    `json:"alive"`

	params Params
}

// New validates the name, traits, and tuning and returns a living
// civilization with starting state drawn from p.
func New(name string, t Traits, p Params) (*Civilization, error) {
	if name == "" {
		return nil, invalidf("name", "must not be empty")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Civilization{
		Name:       name,
		Traits:     t,
		Population: p.InitialPopulation,
		Resources:  p.InitialResources,
		TechLevel:  p.InitialTechLevel,
		Alive:      true,
		params:     p,
	}, nil
}

// Params returns the tuning the civilization was built with.
func (c *Civilization) Params() Params {
	return c.params
}

// Strength is the military weight used by the interaction phase:
// population scaled by tech_level raised to the strength exponent.
// A dead civilization has strength 0.
func (c *Civilization) Strength() float64 {
	if !c.Alive {
		return 0
	}
	return c.Population * math.Pow(c.TechLevel, c.params.StrengthTechExponent)
}

// Gather adds one turn of resource production: every point of population
// gathers the base rate, improved by technology and scaled by the yield
// factor (1.0 when climate modulation is off). Returns the amount gathered.
func (c *Civilization) Gather(yield float64) float64 {
	if !c.Alive {
		return 0
	}
	gathered := c.Population * c.params.GatherRateBase * (1 + c.TechLevel/10) * yield
	if gathered < 0 {
		gathered = 0
	}
	c.Resources += gathered
	return gathered
}

// Consumption reports what one Consume call did.
type Consumption struct {
	Consumed       float64 `json:"consumed"`
	Deficit        float64 `json:"deficit"`
	PopulationLost float64 `json:"population_lost"`
	Starved        bool    `json:"starved"`
	Died           bool    `json:"died"`
}

// Consume subtracts population upkeep for the turn. A shortfall clamps
// resources to zero and starves population in proportion to the deficit;
// the civilization dies if nobody is left.
func (c *Civilization) Consume() Consumption {
	if !c.Alive {
		return Consumption{}
	}
	needed := c.Population * c.params.UpkeepPerCapita
	c.Resources -= needed
	out := Consumption{Consumed: needed}
	if c.Resources >= 0 {
		return out
	}

	out.Deficit = -c.Resources
	c.Resources = 0

	// Starvation: each unit of unmet upkeep costs StarvationFactor lives.
	loss := out.Deficit / c.params.UpkeepPerCapita * c.params.StarvationFactor
	if loss > c.Population {
		loss = c.Population
	}
	c.Population -= loss
	out.PopulationLost = loss
	out.Starved = loss > 0

	if c.Population <= 0 {
		c.Die()
		out.Died = true
	}
	return out
}

// Grow adds population growth for the turn. Growth scales with resource
// abundance relative to upkeep and with the cooperation trait; an empty
// stockpile means no growth at all. Returns the growth added.
func (c *Civilization) Grow() float64 {
	if !c.Alive || c.Resources <= 0 {
		return 0
	}
	abundance := 1 + c.Resources/(c.Population*c.params.UpkeepPerCapita*5+1)
	if abundance < 0 {
		abundance = 0
	}
	growth := c.Population * c.params.GrowthRateBase * abundance * (1 + c.Traits.Cooperation/20)
	c.Population += growth
	return growth
}

// Research reports what one Develop call did.
type Research struct {
	Spent  float64 `json:"spent"`
	Gained float64 `json:"gained"`
}

// Develop converts resources into tech_level. Research needs a minimum
// reserve on hand, slows as tech_level rises, and stops entirely when the
// tech_rate trait is zero.
func (c *Civilization) Develop() Research {
	if !c.Alive || c.Resources < c.params.ResearchMinReserve {
		return Research{}
	}
	// Potential gain per thousand citizens, dampened by current tech.
	potential := c.Traits.Intelligence * c.Traits.TechRate * c.params.TechGainBase *
		(c.Population / 1000) / (1 + c.TechLevel*0.1)
	spend := potential * c.params.ResearchCostPerPoint
	if spend > c.Resources {
		spend = c.Resources
	}
	if spend <= 0 {
		return Research{}
	}
	gain := spend / c.params.ResearchCostPerPoint
	c.Resources -= spend
	c.TechLevel += gain
	return Research{Spent: spend, Gained: gain}
}

// ApplyConflictLosses removes combat casualties and destroyed resources.
// Losses never drive either value below zero and never touch tech_level.
func (c *Civilization) ApplyConflictLosses(popLoss, resLoss float64) {
	if !c.Alive {
		return
	}
	if popLoss > 0 {
		c.Population -= popLoss
		if c.Population < 0 {
			c.Population = 0
		}
	}
	if resLoss > 0 {
		c.Resources -= resLoss
		if c.Resources < 0 {
			c.Resources = 0
		}
	}
}

// ApplyCooperationBonus adds the trade and knowledge-sharing gains from a
// cooperation round. Negative inputs are ignored.
func (c *Civilization) ApplyCooperationBonus(resBonus, techBonus float64) {
	if !c.Alive {
		return
	}
	if resBonus > 0 {
		c.Resources += resBonus
	}
	if techBonus > 0 {
		c.TechLevel += techBonus
	}
}

// Die marks the civilization as eliminated: population drops to zero and
// every later method call is a no-op. Idempotent. Resources and tech_level
// keep their last values for reporting.
func (c *Civilization) Die() {
	if !c.Alive {
		return
	}
	c.Alive = false
	c.Population = 0
}

// Snapshot is an immutable copy of a civilization's visible state. The
// interaction phase reads snapshots taken before any deltas are applied,
// so resolution order never changes the math.
type Snapshot struct {
	Name       string  `json:"name"`
	Traits     Traits  `json:"traits"`
	Population float64 `json:"population"`
	Resources  float64 `json:"resources"`
	TechLevel  float64 `json:"tech_level"`
	Strength   float64 `json:"strength"`
	Alive      bool    `json:"alive"`
}

// Snapshot copies the current state.
func (c *Civilization) Snapshot() Snapshot {
	return Snapshot{
		Name:       c.Name,
		Traits:     c.Traits,
		Population: c.Population,
		Resources:  c.Resources,
		TechLevel:  c.TechLevel,
		Strength:   c.Strength(),
		Alive:      c.Alive,
	}
}
