package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/dashview/internal/model"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "test.yaml", `
name: test_scenario
description: "Test scenario for validation"
page_size: 3
steps:
  - op: set_query
    query: cairo
  - op: go_to_page
    page: 4
    expect_error: OUT_OF_RANGE
assertions:
  - type: visible_ids
    ids: [1, 4, 10]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "test_scenario", scenario.Name)
	assert.Equal(t, "Test scenario for validation", scenario.Description)
	assert.Equal(t, 3, scenario.PageSize)
	require.Len(t, scenario.Steps, 2)
	assert.Equal(t, OpSetQuery, scenario.Steps[0].Op)
	assert.Equal(t, "cairo", scenario.Steps[0].Query)
	assert.Equal(t, "OUT_OF_RANGE", scenario.Steps[1].ExpectError)
	require.Len(t, scenario.Assertions, 1)
	assert.Equal(t, []model.ID{1, 4, 10}, scenario.Assertions[0].IDs)
}

func TestLoadScenario_ResolvesSeedRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := writeScenario(t, dir, "seeded.yaml", `
name: seeded
description: "seeded"
seed: seeds/data.yaml
assertions:
  - type: total_pages
    value: 1
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "seeds", "data.yaml"), scenario.Seed)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_UnknownField(t *testing.T) {
	_, err := ParseScenario([]byte(`
name: typo
description: "typo"
assertion:
  - type: visible_ids
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParseScenario_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing name",
			yaml:    "description: d\nassertions: [{type: visible_ids}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: n\nassertions: [{type: visible_ids}]\n",
			wantErr: "description is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: n\ndescription: d\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "seed and records",
			yaml:    "name: n\ndescription: d\nseed: a.yaml\nrecords: [{id: 1}]\nassertions: [{type: visible_ids}]\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "unknown op",
			yaml:    "name: n\ndescription: d\nsteps: [{op: jump}]\nassertions: [{type: visible_ids}]\n",
			wantErr: `steps[0]: unknown op "jump"`,
		},
		{
			name:    "sort without key",
			yaml:    "name: n\ndescription: d\nsteps: [{op: request_sort}]\nassertions: [{type: visible_ids}]\n",
			wantErr: "key is required",
		},
		{
			name:    "unknown error code",
			yaml:    "name: n\ndescription: d\nsteps: [{op: clear_sort, expect_error: BOOM}]\nassertions: [{type: visible_ids}]\n",
			wantErr: `unknown error code "BOOM"`,
		},
		{
			name:    "count without value",
			yaml:    "name: n\ndescription: d\nassertions: [{type: total_pages}]\n",
			wantErr: "value is required for total_pages",
		},
		{
			name:    "unknown metric",
			yaml:    "name: n\ndescription: d\nassertions: [{type: aggregate, metric: median, value: 1}]\n",
			wantErr: `unknown metric "median"`,
		},
		{
			name:    "unknown scope",
			yaml:    "name: n\ndescription: d\nassertions: [{type: aggregate, scope: some, metric: count, value: 1}]\n",
			wantErr: "unknown aggregate scope",
		},
		{
			name:    "unknown assertion",
			yaml:    "name: n\ndescription: d\nassertions: [{type: final_state}]\n",
			wantErr: `unknown assertion type "final_state"`,
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

func TestLoadDir_SortedByFileName(t *testing.T) {
	dir := t.TempDir()
	body := "description: d\nassertions: [{type: visible_ids}]\n"
	writeScenario(t, dir, "b.yaml", "name: second\n"+body)
	writeScenario(t, dir, "a.yml", "name: first\n"+body)
	writeScenario(t, dir, "notes.txt", "ignored")

	scenarios, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "first", scenarios[0].Name)
	assert.Equal(t, "second", scenarios[1].Name)
}

func TestLoadDir_Testdata(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	assert.Len(t, scenarios, 4)
}
