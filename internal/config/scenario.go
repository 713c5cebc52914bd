// Package config describes run scenarios: who plays, for how long, under
// which tuning. Scenarios load from YAML over a fully-populated default,
// so a file only has to spell out what it changes.
package config

import (
	"fmt"

	"github.com/emberfall/rival-realms/internal/civ"
)

// CivDef declares one civilization in a scenario. Trait keys sit inline
// next to the name.
type CivDef struct {
	Name   string     `yaml:"name"`
	Traits civ.Traits `yaml:",inline"`
}

// ClimateDef controls yield modulation.
type ClimateDef struct {
	Enabled   bool    `yaml:"enabled"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
}

// Scenario is a complete run description.
type Scenario struct {
	Name          string     `yaml:"name"`
	Seed          int64      `yaml:"seed"`
	Turns         int        `yaml:"turns"`
	Climate       ClimateDef `yaml:"climate"`
	Params        civ.Params `yaml:"params"`
	Civilizations []CivDef   `yaml:"civilizations"`
}

// Default returns the reference scenario: bookish Aethel against warlike
// Borog, one hundred turns, seed 42.
func Default() Scenario {
	return Scenario{
		Name:    "twin-empires",
		Seed:    42,
		Turns:   100,
		Climate: ClimateDef{Enabled: true, Amplitude: 0.15, Frequency: 0.05},
		Params:  civ.DefaultParams(),
		Civilizations: []CivDef{
			{Name: "Aethel", Traits: civ.Traits{Intelligence: 8, TechRate: 7, Aggressiveness: 3, Cooperation: 8}},
			{Name: "Borog", Traits: civ.Traits{Intelligence: 5, TechRate: 4, Aggressiveness: 9, Cooperation: 2}},
		},
	}
}

// Validate checks the scenario the same way the engine will, so a bad
// file fails before anything runs.
func (s Scenario) Validate() error {
	if s.Turns < 1 {
		return &civ.ValidationError{Field: "turns", Reason: fmt.Sprintf("must be at least 1, got %d", s.Turns)}
	}
	if err := s.Params.Validate(); err != nil {
		return err
	}
	if len(s.Civilizations) < 2 {
		return &civ.ValidationError{Field: "civilizations", Reason: fmt.Sprintf("need at least 2, got %d", len(s.Civilizations))}
	}
	seen := make(map[string]bool, len(s.Civilizations))
	for _, def := range s.Civilizations {
		if def.Name == "" {
			return &civ.ValidationError{Field: "civilizations", Reason: "every civilization needs a name"}
		}
		if seen[def.Name] {
			return &civ.ValidationError{Field: "civilizations", Reason: fmt.Sprintf("duplicate name %q", def.Name)}
		}
		seen[def.Name] = true
		if err := def.Traits.Validate(); err != nil {
			return fmt.Errorf("civilization %s: %w", def.Name, err)
		}
	}
	return nil
}

// Build constructs the scenario's civilizations.
func (s Scenario) Build() ([]*civ.Civilization, error) {
	civs := make([]*civ.Civilization, 0, len(s.Civilizations))
	for _, def := range s.Civilizations {
		c, err := civ.New(def.Name, def.Traits, s.Params)
		if err != nil {
			return nil, fmt.Errorf("civilization %s: %w", def.Name, err)
		}
		civs = append(civs, c)
	}
	return civs, nil
}
