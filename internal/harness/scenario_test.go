package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScenario_Valid(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: basic
description: "seed then add"
steps:
  - op: seed
  - op: add
    hotel: { name: "Zenith Suites", image_ref: 3 }
    expect: { id: 7, position: 6 }
assertions:
  - type: record
    id: 7
    fields: { name: "Zenith Suites" }
`))
	require.NoError(t, err)

	assert.Equal(t, "basic", s.Name)
	require.Len(t, s.Steps, 2)
	assert.Equal(t, OpSeed, s.Steps[0].Op)
	assert.Nil(t, s.Steps[0].Expect)

	add := s.Steps[1]
	require.NotNil(t, add.Hotel)
	require.NotNil(t, add.Hotel.Name)
	assert.Equal(t, "Zenith Suites", *add.Hotel.Name)
	require.NotNil(t, add.Hotel.ImageRef)
	assert.Equal(t, int64(3), *add.Hotel.ImageRef)
	assert.Nil(t, add.Hotel.Phone)
	require.NotNil(t, add.Expect.ID)
	assert.Equal(t, int64(7), *add.Expect.ID)
	require.NotNil(t, add.Expect.Position)
	assert.Equal(t, 6, *add.Expect.Position)

	require.Len(t, s.Assertions, 1)
	assert.Equal(t, map[string]string{"name": "Zenith Suites"}, s.Assertions[0].Fields)
}

func TestParseScenario_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: x\ndescription: y\nsteps:\n  - op: seed\n    colour: red\n",
			wantErr: "field colour not found",
		},
		{
			name:    "missing name",
			yaml:    "description: y\nsteps:\n  - op: seed\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: x\nsteps:\n  - op: seed\n",
			wantErr: "description is required",
		},
		{
			name:    "no steps",
			yaml:    "name: x\ndescription: y\n",
			wantErr: "steps list is required",
		},
		{
			name:    "unknown op",
			yaml:    "name: x\ndescription: y\nsteps:\n  - op: teleport\n",
			wantErr: `unknown op "teleport"`,
		},
		{
			name:    "add without hotel",
			yaml:    "name: x\ndescription: y\nsteps:\n  - op: add\n",
			wantErr: "add requires hotel",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: x\ndescription: y\nsteps:\n  - op: seed\nassertions:\n  - type: vibes\n",
			wantErr: `unknown type "vibes"`,
		},
		{
			name:    "record without id",
			yaml:    "name: x\ndescription: y\nsteps:\n  - op: seed\nassertions:\n  - type: record\n",
			wantErr: "record requires id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHotelFields_ApplyOnlySetFields(t *testing.T) {
	name := "Renamed"
	ref := int64(4)
	f := &HotelFields{Name: &name, ImageRef: &ref}

	base := sampleHotel()
	got := f.Apply(base)

	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, int64(4), got.ImageRef)
	assert.Equal(t, base.ID, got.ID)
	assert.Equal(t, base.Phone, got.Phone)
	assert.Equal(t, base.Location, got.Location)
}
