package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/gildedrose/internal/shop"
)

// Scenario defines a conformance test scenario.
// A scenario ages a list of items for a number of days and checks the
// per-day snapshots against expectations and assertions.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Days is the number of updates to run.
	Days int `yaml:"days"`

	// Items is the opening stock (day 0).
	Items []shop.Item `yaml:"items"`

	// Expect lists checkpoints on specific days.
	Expect []Checkpoint `yaml:"expect,omitempty"`

	// Assertions are checked across every day of the run.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Checkpoint lists expected item states on one day.
type Checkpoint struct {
	Day   int            `yaml:"day"`
	Items []ExpectedItem `yaml:"items"`
}

// ExpectedItem is a subset match against one item.
// Nil fields are not compared.
type ExpectedItem struct {
	// Index is the item's position in Scenario.Items.
	Index int `yaml:"index"`

	SellIn  *int `yaml:"sell_in,omitempty"`
	Quality *int `yaml:"quality,omitempty"`
}

// Assertion validates a property over the whole run.
type Assertion struct {
	// Type specifies the assertion type:
	// - "quality_in_range": bounded qualities stay in [0, 50]
	// - "legendary_fixed": Sulfuras never changes
	// - "non_decreasing": quality of item Index never drops
	// - "non_increasing": quality of item Index never rises
	Type string `yaml:"type"`

	// Index is the item position (used by non_decreasing, non_increasing).
	Index int `yaml:"index,omitempty"`
}

// Assertion type constants.
const (
	AssertQualityInRange = "quality_in_range"
	AssertLegendaryFixed = "legendary_fixed"
	AssertNonDecreasing  = "non_decreasing"
	AssertNonIncreasing  = "non_increasing"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "sellin:" vs "sell_in:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
// Item qualities are not checked here; an out-of-range quality is
// reported by Run.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Days < 0 {
		return fmt.Errorf("days must be non-negative")
	}

	if len(s.Items) == 0 {
		return fmt.Errorf("items list is required and must be non-empty")
	}

	if len(s.Expect) == 0 && len(s.Assertions) == 0 {
		return fmt.Errorf("at least one expect checkpoint or assertion is required")
	}

	for i, cp := range s.Expect {
		if cp.Day < 0 || cp.Day > s.Days {
			return fmt.Errorf("expect[%d]: day %d outside [0, %d]", i, cp.Day, s.Days)
		}
		if len(cp.Items) == 0 {
			return fmt.Errorf("expect[%d]: items list is required", i)
		}
		for j, ei := range cp.Items {
			if ei.Index < 0 || ei.Index >= len(s.Items) {
				return fmt.Errorf("expect[%d].items[%d]: index %d out of range", i, j, ei.Index)
			}
			if ei.SellIn == nil && ei.Quality == nil {
				return fmt.Errorf("expect[%d].items[%d]: sell_in or quality is required", i, j)
			}
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a, len(s.Items)); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, itemCount int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertQualityInRange, AssertLegendaryFixed:
		// No parameters
	case AssertNonDecreasing, AssertNonIncreasing:
		if a.Index < 0 || a.Index >= itemCount {
			return fmt.Errorf("assertions[%d]: index %d out of range for %s", index, a.Index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
