package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Fixture is the top-level shape of a YAML scenario file: a named
// graph plus the ordered builder calls that construct and drive it.
type Fixture struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// LoadFixture reads and parses a YAML scenario file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", path, err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixture %s: %w", path, err)
	}

	return &f, nil
}
