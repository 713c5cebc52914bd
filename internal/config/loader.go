package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a scenario file. Absent keys keep their Default values, so a
// file may override just the parts it cares about. A civilizations list,
// when present, replaces the default pair outright; an explicitly empty
// list is a validation error, not a fallback.
func Load(path string) (Scenario, error) {
	s := Default()
	defaultCivs := s.Civilizations
	s.Civilizations = nil

	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	// An explicit empty list decodes to a non-nil slice; only an absent or
	// null civilizations key restores the default pair.
	if s.Civilizations == nil {
		s.Civilizations = defaultCivs
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}
