package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A Profile overrides the built-in distribution presets from a YAML file,
// for workloads the two presets don't cover. Overhead defaults to the
// built-in per-record cost when the file leaves it out.
type Profile struct {
	Name     string  `yaml:"name"`
	Location float64 `yaml:"location"`
	Scale    float64 `yaml:"scale"`
	Overhead int64   `yaml:"overhead"`
}

// LoadProfile reads and validates a distribution profile.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	profile := Profile{Overhead: RecordOverhead}
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}

	if profile.Scale < 0 {
		return nil, fmt.Errorf("profile %s: scale must be >= 0, got %g", path, profile.Scale)
	}

	if profile.Overhead < 0 {
		return nil, fmt.Errorf("profile %s: overhead must be >= 0, got %d", path, profile.Overhead)
	}

	if profile.Name == "" {
		profile.Name = "custom"
	}

	return &profile, nil
}

// Distribution converts the profile into a sampler-ready distribution.
func (p *Profile) Distribution() Distribution {
	return Distribution{Name: p.Name, Location: p.Location, Scale: p.Scale}
}
