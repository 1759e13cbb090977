package harness

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/hamdanyasser/hotelref/internal/hotel"
)

// Scenario is a scripted run against a fresh catalog.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario demonstrates.
	Description string `yaml:"description"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`

	// Assertions check the final state.
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one catalog operation.
type Step struct {
	Op       string       `yaml:"op"`
	ID       int64        `yaml:"id,omitempty"`
	Position int          `yaml:"position,omitempty"`
	Query    string       `yaml:"query,omitempty"`
	Hotel    *HotelFields `yaml:"hotel,omitempty"`
	Expect   *StepExpect  `yaml:"expect,omitempty"`
}

// HotelFields holds the fields a step sets. Unset fields are nil, which
// matters for update: only set fields change.
type HotelFields struct {
	Name     *string `yaml:"name,omitempty"`
	Phone    *string `yaml:"phone,omitempty"`
	Website  *string `yaml:"website,omitempty"`
	Location *string `yaml:"location,omitempty"`
	Nearby   *string `yaml:"nearby,omitempty"`
	Food     *string `yaml:"food,omitempty"`
	ImageRef *int64  `yaml:"image_ref,omitempty"`
}

// Apply copies the set fields onto h.
func (f *HotelFields) Apply(h hotel.Hotel) hotel.Hotel {
	if f == nil {
		return h
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&h.Name, f.Name)
	set(&h.Phone, f.Phone)
	set(&h.Website, f.Website)
	set(&h.Location, f.Location)
	set(&h.Nearby, f.Nearby)
	set(&h.Food, f.Food)
	if f.ImageRef != nil {
		h.ImageRef = *f.ImageRef
	}
	return h
}

// StepExpect is checked against a step's outcome. Only set fields are
// compared.
type StepExpect struct {
	// Error is the expected error kind (see errorKind); empty means success.
	Error    string   `yaml:"error,omitempty"`
	ID       *int64   `yaml:"id,omitempty"`
	Position *int     `yaml:"position,omitempty"`
	Count    *int     `yaml:"count,omitempty"`
	Found    *bool    `yaml:"found,omitempty"`
	Names    []string `yaml:"names,omitempty"`
}

// Assertion validates the final state.
type Assertion struct {
	Type     string            `yaml:"type"`
	Names    []string          `yaml:"names,omitempty"`
	Count    int               `yaml:"count,omitempty"`
	Position int               `yaml:"position,omitempty"`
	ID       int64             `yaml:"id,omitempty"`
	Fields   map[string]string `yaml:"fields,omitempty"`
}

// Step operations.
const (
	OpSeed      = "seed"
	OpInsert    = "insert"
	OpAdd       = "add"
	OpAddCancel = "add_cancel"
	OpUpdate    = "update"
	OpDelete    = "delete"
	OpGet       = "get"
	OpSelect    = "select"
	OpSearch    = "search"
	OpCount     = "count"
	OpRefresh   = "refresh"
	OpReset     = "reset"
)

var knownOps = []string{
	OpSeed, OpInsert, OpAdd, OpAddCancel, OpUpdate, OpDelete,
	OpGet, OpSelect, OpSearch, OpCount, OpRefresh, OpReset,
}

// Assertion type constants.
const (
	AssertListOrder     = "list_order"
	AssertListCount     = "list_count"
	AssertScroll        = "scroll"
	AssertInvalidations = "invalidations"
	AssertRecord        = "record"
)

var knownAssertions = []string{
	AssertListOrder, AssertListCount, AssertScroll, AssertInvalidations, AssertRecord,
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

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if !slices.Contains(knownOps, step.Op) {
			return fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}
		switch step.Op {
		case OpInsert, OpAdd, OpUpdate:
			if step.Hotel == nil {
				return fmt.Errorf("steps[%d]: %s requires hotel", i, step.Op)
			}
		}
	}

	for i, a := range s.Assertions {
		if !slices.Contains(knownAssertions, a.Type) {
			return fmt.Errorf("assertions[%d]: unknown type %q", i, a.Type)
		}
		if a.Type == AssertRecord && a.ID == 0 {
			return fmt.Errorf("assertions[%d]: record requires id", i)
		}
	}

	return nil
}
