package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/lazyq/internal/value"
)

// Scenario names a sample and the expectations its output must meet.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Sample is the registered name of the sample to run.
	Sample string `yaml:"sample"`

	// Assertions are evaluated in order against the sample's output.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion checks one property of a sample's output.
type Assertion struct {
	// Type is one of equals, contains, count, first or error.
	Type string `yaml:"type"`

	// Value is the expected value (used by equals, contains, first).
	// It is kept as a node so that an explicit null can be told apart
	// from an absent field.
	Value yaml.Node `yaml:"value,omitempty"`

	// Count is the expected array length (used by count).
	Count *int `yaml:"count,omitempty"`

	// Code is the expected operator error code (used by error).
	Code string `yaml:"code,omitempty"`
}

// Assertion type constants.
const (
	AssertEquals   = "equals"
	AssertContains = "contains"
	AssertCount    = "count"
	AssertFirst    = "first"
	AssertError    = "error"
)

// HasValue reports whether the assertion carries a value, including null.
func (a *Assertion) HasValue() bool {
	return !a.Value.IsZero()
}

// Expected decodes the assertion's value.
func (a *Assertion) Expected() (value.Value, error) {
	var raw any
	if err := a.Value.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return value.FromAny(raw)
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos such as "assertion:" for "assertions:".
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

// LoadDir loads every *.yaml scenario in dir, ordered by file name.
// Scenario names must be unique across the directory.
func LoadDir(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if prev, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%s: scenario %q already defined in %s", filepath.Base(path), s.Name, prev)
		}
		seen[s.Name] = filepath.Base(path)
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Sample == "" {
		return fmt.Errorf("sample is required")
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
		if s.Assertions[i].Type == AssertError && len(s.Assertions) > 1 {
			return fmt.Errorf("assertions[%d]: error cannot be combined with other assertions", i)
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertEquals, AssertContains, AssertFirst:
		if !a.HasValue() {
			return fmt.Errorf("assertions[%d]: value is required for %s", index, a.Type)
		}
		if _, err := a.Expected(); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case AssertCount:
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for count", index)
		}
		if *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative", index)
		}
	case AssertError:
		if a.Code == "" {
			return fmt.Errorf("assertions[%d]: code is required for error", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
