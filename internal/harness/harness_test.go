package harness

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamdanyasser/hotelref/internal/catalog"
	"github.com/hamdanyasser/hotelref/internal/hotel"
	"github.com/hamdanyasser/hotelref/internal/schema"
	"github.com/hamdanyasser/hotelref/internal/store"
)

func sampleHotel() hotel.Hotel {
	return hotel.Hotel{
		ID:       4,
		Name:     "City Center Hotel",
		Phone:    "+961 1 456789",
		Website:  "www.citycenter.com",
		Location: "Hamra, Beirut",
		ImageRef: 1,
	}
}

func mustParse(t *testing.T, src string) *Scenario {
	t.Helper()
	s, err := ParseScenario([]byte(src))
	require.NoError(t, err)
	return s
}

func TestRun_EmptyStoreStartsEmpty(t *testing.T) {
	result, err := Run(mustParse(t, `
name: empty
description: "nothing seeded"
steps:
  - op: count
    expect: { count: 0 }
  - op: select
    position: 0
    expect: { error: out_of_range }
`))
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Final)
	assert.Equal(t, 0, result.Invalidations)
	assert.Equal(t, []int{}, result.Scrolls)
	require.Len(t, result.Trace, 2)
	assert.Equal(t, "count=0", result.Trace[0].Outcome)
	assert.Equal(t, "error: out_of_range", result.Trace[1].Outcome)
}

func TestRun_StepExpectationFailure(t *testing.T) {
	result, err := Run(mustParse(t, `
name: wrong
description: "expects the wrong id"
steps:
  - op: seed
  - op: add
    hotel: { name: "Zenith Suites" }
    expect: { id: 1 }
`))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "steps[1] add: id = 7, want 1")
}

func TestRun_UnexpectedErrorFailsStep(t *testing.T) {
	result, err := Run(mustParse(t, `
name: unexpected
description: "delete of a missing id without an expect clause"
steps:
  - op: delete
    id: 42
`))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unexpected error")
	assert.Equal(t, "error: not_found", result.Trace[0].Outcome)
}

func TestRun_WrongErrorKind(t *testing.T) {
	result, err := Run(mustParse(t, `
name: kind
description: "expects the wrong error kind"
steps:
  - op: delete
    id: 42
    expect: { error: invalid_mutation }
`))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], `error = "not_found", want "invalid_mutation"`)
}

func TestRun_AssertionFailures(t *testing.T) {
	result, err := Run(mustParse(t, `
name: assertions
description: "every assertion is wrong"
steps:
  - op: seed
assertions:
  - type: list_count
    count: 5
  - type: scroll
    position: 0
  - type: invalidations
    count: 3
  - type: record
    id: 99
`))
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "list has 6 records, want 5")
	assert.Contains(t, result.Errors[1], "no scroll signal")
	assert.Contains(t, result.Errors[2], "1 invalidations, want 3")
	assert.Contains(t, result.Errors[3], "record 99 not found")
}

func TestRun_UpdateValidatesBeforeWriting(t *testing.T) {
	result, err := Run(mustParse(t, `
name: blank_update
description: "blanking a name is rejected"
steps:
  - op: seed
  - op: update
    id: 1
    hotel: { name: "" }
    expect: { error: validation }
assertions:
  - type: record
    id: 1
    fields: { name: "Grand Plaza Hotel" }
  - type: invalidations
    count: 1
`))
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("x: %w", store.ErrNotFound), "not_found"},
		{fmt.Errorf("x: %w", store.ErrInvalidMutation), "invalid_mutation"},
		{&schema.ValidationError{Field: "name", Message: "required"}, "validation"},
		{catalog.ErrOutOfRange, "out_of_range"},
		{catalog.ErrUnknownSession, "unknown_session"},
		{&store.StorageError{Op: "open", Err: errors.New("disk")}, "storage_unavailable"},
		{errors.New("other"), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, errorKind(tt.err))
		})
	}
}

func TestDescribeInput(t *testing.T) {
	name := "Zenith Suites"
	ref := int64(2)

	assert.Equal(t, "", describeInput(Step{Op: OpSeed}))
	assert.Equal(t, "id=3", describeInput(Step{Op: OpGet, ID: 3}))
	assert.Equal(t, "position=0", describeInput(Step{Op: OpSelect}))
	assert.Equal(t, `query=""`, describeInput(Step{Op: OpSearch}))
	assert.Equal(t,
		`id=5 name="Zenith Suites" image_ref=2`,
		describeInput(Step{Op: OpUpdate, ID: 5, Hotel: &HotelFields{Name: &name, ImageRef: &ref}}),
	)
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, "[]", quoteList(nil))
	assert.Equal(t, `["a", "b \"c\""]`, quoteList([]string{"a", `b "c"`}))
}

func TestSequentialIDs(t *testing.T) {
	g := sequentialIDs("add")
	assert.Equal(t, "add-1", g.Generate())
	assert.Equal(t, "add-2", g.Generate())
}
