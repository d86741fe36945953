package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/dashview/internal/aggregate"
	"github.com/roach88/dashview/internal/model"
)

// Scenario is a scripted dashboard session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Seed is an optional seed file. Relative paths are resolved against the
	// scenario file's directory by LoadScenario.
	Seed string `yaml:"seed,omitempty"`

	// Records is an optional inline starting collection. Seed and Records
	// are mutually exclusive; with neither, the built-in data is used.
	Records []model.Record `yaml:"records,omitempty"`

	// PageSize is the initial page size. Zero means the default.
	PageSize int `yaml:"page_size,omitempty"`

	// Steps are applied in order.
	Steps []Step `yaml:"steps"`

	// Assertions are checked against the state after the last step.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one session mutation.
type Step struct {
	Op       string         `yaml:"op"`
	Query    string         `yaml:"query,omitempty"`
	Key      string         `yaml:"key,omitempty"`
	Page     int            `yaml:"page,omitempty"`
	PageSize int            `yaml:"page_size,omitempty"`
	Records  []model.Record `yaml:"records,omitempty"`

	// ExpectError is the error code the step must fail with.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Step ops.
const (
	OpSetQuery    = "set_query"
	OpRequestSort = "request_sort"
	OpClearSort   = "clear_sort"
	OpGoToPage    = "go_to_page"
	OpSetPageSize = "set_page_size"
	OpReplace     = "replace"
)

// Assertion checks the final session state.
type Assertion struct {
	Type string `yaml:"type"`

	// IDs is the expected visible page (visible_ids).
	IDs []model.ID `yaml:"ids,omitempty"`

	// Value is the expected number (total_pages, current_page,
	// filtered_count, aggregate).
	Value *float64 `yaml:"value,omitempty"`

	// Scope and Metric select the aggregate (aggregate).
	Scope  string `yaml:"scope,omitempty"`
	Metric string `yaml:"metric,omitempty"`

	// Sort is the expected sort as "key direction" or "none" (sort).
	Sort string `yaml:"sort,omitempty"`
}

// Assertion type constants.
const (
	AssertVisibleIDs    = "visible_ids"
	AssertTotalPages    = "total_pages"
	AssertCurrentPage   = "current_page"
	AssertFilteredCount = "filtered_count"
	AssertSort          = "sort"
	AssertAggregate     = "aggregate"
)

// LoadScenario reads and parses a scenario YAML file. Unknown keys are
// rejected, and a relative seed path is resolved against the file's
// directory.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if scenario.Seed != "" && !filepath.IsAbs(scenario.Seed) {
		scenario.Seed = filepath.Join(filepath.Dir(path), scenario.Seed)
	}
	return scenario, nil
}

// ParseScenario decodes and validates scenario YAML. Seed paths are left as
// written.
func ParseScenario(data []byte) (*Scenario, error) {
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

// LoadDir loads every *.yaml and *.yml scenario in dir, sorted by file name.
func LoadDir(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	scenarios := make([]*Scenario, 0, len(names))
	for _, name := range names {
		s, err := LoadScenario(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Seed != "" && len(s.Records) > 0 {
		return fmt.Errorf("seed and records are mutually exclusive")
	}
	if s.PageSize < 0 {
		return fmt.Errorf("page_size must be non-negative")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if err := validateStep(i, step); err != nil {
			return err
		}
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, a); err != nil {
			return err
		}
	}
	return nil
}

func validateStep(index int, step Step) error {
	switch step.Op {
	case OpSetQuery, OpClearSort, OpGoToPage, OpSetPageSize, OpReplace:
	case OpRequestSort:
		if step.Key == "" {
			return fmt.Errorf("steps[%d]: key is required for request_sort", index)
		}
	case "":
		return fmt.Errorf("steps[%d]: op is required", index)
	default:
		return fmt.Errorf("steps[%d]: unknown op %q", index, step.Op)
	}

	if step.ExpectError != "" {
		switch model.ErrorCode(step.ExpectError) {
		case model.ErrCodeInvalidInput, model.ErrCodeInvalidConfiguration,
			model.ErrCodeOutOfRange, model.ErrCodeEmptyCollection:
		default:
			return fmt.Errorf("steps[%d]: unknown error code %q", index, step.ExpectError)
		}
	}
	return nil
}

func validateAssertion(index int, a Assertion) error {
	switch a.Type {
	case AssertVisibleIDs:
	case AssertTotalPages, AssertCurrentPage, AssertFilteredCount:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for %s", index, a.Type)
		}
	case AssertSort:
		if a.Sort == "" {
			return fmt.Errorf("assertions[%d]: sort is required for sort", index)
		}
	case AssertAggregate:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for aggregate", index)
		}
		if _, ok := metrics[a.Metric]; !ok {
			return fmt.Errorf("assertions[%d]: unknown metric %q", index, a.Metric)
		}
		if _, err := aggregate.ParseScope(a.Scope); err != nil {
			return fmt.Errorf("assertions[%d]: %w", index, err)
		}
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
