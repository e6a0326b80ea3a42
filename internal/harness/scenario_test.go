package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/lazyq/internal/value"
)

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/left-outer-join.yaml")
	require.NoError(t, err)

	assert.Equal(t, "left_outer_join", s.Name)
	assert.Equal(t, "left-outer-join", s.Sample)
	require.Len(t, s.Assertions, 3)
	assert.Equal(t, AssertCount, s.Assertions[0].Type)
	require.NotNil(t, s.Assertions[0].Count)
	assert.Equal(t, 21, *s.Assertions[0].Count)

	want := value.NewObject(
		value.F("category", value.String("Vegetables")),
		value.F("product", value.String("(No products)")),
	)
	got, err := s.Assertions[2].Expected()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does-not-exist.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_ExplicitNull(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: n
description: d
sample: maybe-first-matching-element
assertions:
  - type: equals
    value: null
`))
	require.NoError(t, err)
	assert.True(t, s.Assertions[0].HasValue())

	got, err := s.Assertions[0].Expected()
	require.NoError(t, err)
	assert.Equal(t, value.Null{}, got)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "unknown field",
			yaml: "name: n\ndescription: d\nsample: s\nassertion:\n  - type: count\n    count: 1\n",
			want: "failed to parse YAML",
		},
		{
			name: "missing name",
			yaml: "description: d\nsample: s\nassertions:\n  - type: count\n    count: 1\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: n\nsample: s\nassertions:\n  - type: count\n    count: 1\n",
			want: "description is required",
		},
		{
			name: "missing sample",
			yaml: "name: n\ndescription: d\nassertions:\n  - type: count\n    count: 1\n",
			want: "sample is required",
		},
		{
			name: "no assertions",
			yaml: "name: n\ndescription: d\nsample: s\n",
			want: "assertions list is required",
		},
		{
			name: "missing type",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - count: 1\n",
			want: "type is required",
		},
		{
			name: "unknown type",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: trace_order\n",
			want: `unknown assertion type "trace_order"`,
		},
		{
			name: "equals without value",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: equals\n",
			want: "value is required for equals",
		},
		{
			name: "count without count",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: count\n",
			want: "count is required",
		},
		{
			name: "negative count",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: count\n    count: -1\n",
			want: "count must be non-negative",
		},
		{
			name: "error without code",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: error\n",
			want: "code is required",
		},
		{
			name: "error mixed with others",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: count\n    count: 1\n  - type: error\n    code: NO_ELEMENT\n",
			want: "error cannot be combined",
		},
		{
			name: "non-string mapping key",
			yaml: "name: n\ndescription: d\nsample: s\nassertions:\n  - type: equals\n    value: {1: a}\n",
			want: "not a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDir(t *testing.T) {
	scenarios, err := LoadDir("testdata/scenarios")
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	// Ordered by file name.
	assert.Equal(t, "element_at_out_of_range", scenarios[0].Name)
}

func TestLoadDir_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	body := []byte("name: same\ndescription: d\nsample: select\nassertions:\n  - type: count\n    count: 10\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), body, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), body, 0o644))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "same" already defined in a.yaml`)
}

func TestLoadDir_Empty(t *testing.T) {
	scenarios, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, scenarios)
}
