package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/ageofwar/internal/models"
)

// ScenarioFile represents the on-disk structure of a battle scenario
type ScenarioFile struct {
	Name  string         `json:"name" yaml:"name"`
	You   map[string]int `json:"you" yaml:"you"`
	Enemy map[string]int `json:"enemy" yaml:"enemy"`
}

// Scenario is a loaded battle: both armies as entered by the user
type Scenario struct {
	Name  string
	You   models.Army
	Enemy models.Army
}

// LoadScenario loads a scenario from a .yaml, .yml or .json file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var raw ScenarioFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q (use .yaml, .yml or .json)", ext)
	}

	scenario, err := raw.ToScenario()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if scenario.Name == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

// ToScenario resolves unit names and validates counts
func (f ScenarioFile) ToScenario() (*Scenario, error) {
	you, err := models.ArmyFromCounts(f.You)
	if err != nil {
		return nil, fmt.Errorf("you: %w", err)
	}
	enemy, err := models.ArmyFromCounts(f.Enemy)
	if err != nil {
		return nil, fmt.Errorf("enemy: %w", err)
	}
	return &Scenario{Name: f.Name, You: you, Enemy: enemy}, nil
}
