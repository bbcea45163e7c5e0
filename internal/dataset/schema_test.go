package dataset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridkit/internal/dataset"
	"github.com/rshade/gridkit/internal/grid"
	"github.com/rshade/gridkit/internal/grid/layout"
)

const yamlSchema = `id_field: key
expandable_field: details
columns:
  - id: sel
    kind: selection
    width: 4
    pin: left
  - id: name
    title: Name
    weight: 2
    min_width: 10
  - id: ops
    kind: actions
    width: 12
    actions: [copy, open]
`

const tomlSchema = `id_field = "key"

[[columns]]
id = "name"
title = "Name"
max_width = 30

[[columns]]
id = "exp"
kind = "expander"
width = 3
pin = "right"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSchema_YAML(t *testing.T) {
	s, err := dataset.LoadSchema(writeFile(t, "schema.yaml", yamlSchema))
	require.NoError(t, err)

	assert.Equal(t, "key", s.IDField)
	assert.Equal(t, "details", s.ExpandableField)

	cols := s.GridColumns()
	require.Len(t, cols, 3)
	assert.Equal(t, grid.KindSelection, cols[0].Kind)
	assert.Equal(t, layout.PinLeft, cols[0].Pin)
	assert.Equal(t, layout.Fixed(4), cols[0].Sizing)
	assert.Equal(t, layout.Flexible(2, 10, 0), cols[1].Sizing)
	assert.Equal(t, "Name", cols[1].Title)
	assert.Equal(t, grid.KindActions, cols[2].Kind)
	assert.Equal(t, []string{"copy", "open"}, cols[2].Actions)
}

func TestLoadSchema_TOML(t *testing.T) {
	s, err := dataset.LoadSchema(writeFile(t, "schema.toml", tomlSchema))
	require.NoError(t, err)

	cols := s.GridColumns()
	require.Len(t, cols, 2)
	assert.Equal(t, layout.Flexible(1, 0, 30), cols[0].Sizing)
	assert.Equal(t, grid.KindExpander, cols[1].Kind)
	assert.Equal(t, layout.PinRight, cols[1].Pin)
}

func TestLoadSchema_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"missing id", "s.yaml", "columns:\n  - title: x\n", dataset.ErrMissingColumnID},
		{"duplicate", "s.yaml", "columns:\n  - id: a\n  - id: a\n", dataset.ErrDuplicateColumn},
		{"actions without labels", "s.yaml", "columns:\n  - id: a\n    kind: actions\n", dataset.ErrActionsWithoutLabel},
		{"unsupported", "s.json", "{}", dataset.ErrUnsupportedSchema},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dataset.LoadSchema(writeFile(t, tt.file, tt.content))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadSchema_Malformed(t *testing.T) {
	_, err := dataset.LoadSchema(writeFile(t, "s.yaml", "columns: [\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing schema")
}

func TestSchemaRowBehaviour(t *testing.T) {
	s := dataset.Schema{IDField: "key", ExpandableField: "details"}
	r := dataset.Record{"key": "k1", "details": map[string]any{"a": 1}}

	assert.Equal(t, "k1", s.RowID(r))
	assert.True(t, s.CanExpand(r))
	assert.False(t, s.CanExpand(dataset.Record{"key": "k2"}))
	assert.True(t, dataset.Schema{}.CanExpand(dataset.Record{}))
	assert.Equal(t, "x", dataset.Schema{}.RowID(dataset.Record{"id": "x"}))
}

func TestDeriveSchema(t *testing.T) {
	rows := []dataset.Record{
		{"id": "a", "zeta": 1, "alpha": 2},
		{"id": "b", "beta": 3},
	}

	s := dataset.DeriveSchema(rows, "", 8)

	require.NoError(t, s.Validate())
	ids := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		ids[i] = c.ID
	}
	assert.Equal(t, []string{"_select", "id", "alpha", "beta", "zeta", "_expand"}, ids)

	cols := s.GridColumns()
	assert.Equal(t, grid.KindSelection, cols[0].Kind)
	assert.Equal(t, layout.PinLeft, cols[0].Pin)
	assert.Equal(t, layout.Flexible(1, 8, 0), cols[1].Sizing)
	assert.Equal(t, grid.KindExpander, cols[5].Kind)
	assert.Equal(t, layout.PinRight, cols[5].Pin)
}
