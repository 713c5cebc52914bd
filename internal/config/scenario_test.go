package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/emberfall/rival-realms/internal/civ"
)

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write scenario: %v", err)
	}
	return path
}

func TestDefaultScenarioIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	civs, err := s.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(civs) != 2 {
		t.Fatalf("Build() returned %d civilizations, want 2", len(civs))
	}
	if civs[0].Name != "Aethel" || civs[1].Name != "Borog" {
		t.Fatalf("Build() names = %s, %s; want Aethel, Borog", civs[0].Name, civs[1].Name)
	}
	if got, want := civs[0].Population, s.Params.InitialPopulation; got != want {
		t.Fatalf("built civilization population = %v, want %v", got, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeScenario(t, `
name: border-wars
seed: 7
turns: 25
climate:
  amplitude: 0.3
params:
  upkeep_per_capita: 0.2
civilizations:
  - name: Ulm
    intelligence: 6
    tech_rate: 6
    aggressiveness: 6
    cooperation: 6
  - name: Ved
    intelligence: 2
    tech_rate: 2
    aggressiveness: 9
    cooperation: 1
  - name: Khar
    intelligence: 9
    tech_rate: 9
    aggressiveness: 1
    cooperation: 9
`)
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Name != "border-wars" || s.Seed != 7 || s.Turns != 25 {
		t.Fatalf("Load() header = %q/%d/%d, want border-wars/7/25", s.Name, s.Seed, s.Turns)
	}
	if !s.Climate.Enabled || s.Climate.Amplitude != 0.3 || s.Climate.Frequency != 0.05 {
		t.Fatalf("climate = %+v, want enabled with amplitude 0.3 and default frequency", s.Climate)
	}
	if s.Params.UpkeepPerCapita != 0.2 {
		t.Fatalf("UpkeepPerCapita = %v, want 0.2", s.Params.UpkeepPerCapita)
	}
	if s.Params.GatherRateBase != 0.5 {
		t.Fatalf("GatherRateBase = %v, want default 0.5", s.Params.GatherRateBase)
	}
	if len(s.Civilizations) != 3 {
		t.Fatalf("civilizations = %d, want 3", len(s.Civilizations))
	}
	if s.Civilizations[2].Traits.Cooperation != 9 {
		t.Fatalf("Khar cooperation = %v, want 9", s.Civilizations[2].Traits.Cooperation)
	}
}

func TestLoadKeepsDefaultsWhenAbsent(t *testing.T) {
	s, err := Load(writeScenario(t, "turns: 12\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Turns != 12 {
		t.Fatalf("Turns = %d, want 12", s.Turns)
	}
	if s.Seed != 42 || s.Name != "twin-empires" {
		t.Fatalf("defaults lost: seed %d name %q", s.Seed, s.Name)
	}
	if len(s.Civilizations) != 2 || s.Civilizations[0].Name != "Aethel" {
		t.Fatalf("default civilizations lost: %+v", s.Civilizations)
	}
}

func TestLoadReplacesCivilizationList(t *testing.T) {
	s, err := Load(writeScenario(t, `
civilizations:
  - name: Norr
    intelligence: 4
    tech_rate: 4
    aggressiveness: 4
    cooperation: 4
  - name: Surr
    intelligence: 5
    tech_rate: 5
    aggressiveness: 5
    cooperation: 5
`))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, def := range s.Civilizations {
		if def.Name == "Aethel" || def.Name == "Borog" {
			t.Fatalf("default pair leaked into replaced list: %+v", s.Civilizations)
		}
	}
	if len(s.Civilizations) != 2 {
		t.Fatalf("civilizations = %d, want 2", len(s.Civilizations))
	}
}

func TestLoadRejectsBadScenarios(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"zero turns", "turns: 0\n"},
		{"explicit empty civilizations", "civilizations: []\n"},
		{"negative initial population", `
params:
  initial_population: -1
`},
		{"NaN upkeep", `
params:
  upkeep_per_capita: .nan
`},
		{"loss cap above one", `
params:
  combat_max_loss_fraction: 1.5
`},
		{"single civilization", `
civilizations:
  - name: Solo
    intelligence: 5
    tech_rate: 5
    aggressiveness: 5
    cooperation: 5
`},
		{"duplicate names", `
civilizations:
  - name: Twin
    intelligence: 5
    tech_rate: 5
    aggressiveness: 5
    cooperation: 5
  - name: Twin
    intelligence: 6
    tech_rate: 6
    aggressiveness: 6
    cooperation: 6
`},
		{"trait out of range", `
civilizations:
  - name: Titan
    intelligence: 50
    tech_rate: 5
    aggressiveness: 5
    cooperation: 5
  - name: Mouse
    intelligence: 1
    tech_rate: 1
    aggressiveness: 1
    cooperation: 1
`},
		{"unnamed civilization", `
civilizations:
  - intelligence: 5
    tech_rate: 5
    aggressiveness: 5
    cooperation: 5
  - name: Named
    intelligence: 5
    tech_rate: 5
    aggressiveness: 5
    cooperation: 5
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeScenario(t, tc.body))
			if err == nil {
				t.Fatalf("Load() accepted a bad scenario")
			}
			var verr *civ.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Load() error = %v, want a validation error", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("Load() succeeded on a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	if _, err := Load(writeScenario(t, "turns: [not a number\n")); err == nil {
		t.Fatalf("Load() accepted malformed YAML")
	}
}
