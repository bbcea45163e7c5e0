package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridkit/internal/grid"
	"github.com/rshade/gridkit/internal/grid/layout"
)

// DefaultIDField names the record field used as row identity when the schema
// does not say otherwise.
const DefaultIDField = "id"

// Widths of the generated control columns, in cells.
const (
	selectionWidth = 4
	expanderWidth  = 3
)

// Schema errors.
var (
	ErrMissingColumnID     = errors.New("column without id")
	ErrDuplicateColumn     = errors.New("duplicate column id")
	ErrActionsWithoutLabel = errors.New("actions column without actions")
	ErrUnsupportedSchema   = errors.New("unsupported schema file type")
)

// Schema describes how records map to grid columns.
type Schema struct {
	// IDField is the record field holding the row id.
	IDField string `yaml:"id_field" toml:"id_field"`

	// ExpandableField makes a row expandable when the field is truthy. When
	// empty every row can expand.
	ExpandableField string `yaml:"expandable_field" toml:"expandable_field"`

	Columns []ColumnSpec `yaml:"columns" toml:"columns"`
}

// ColumnSpec is one column as written in a schema file.
type ColumnSpec struct {
	ID    string `yaml:"id"    toml:"id"`
	Title string `yaml:"title" toml:"title"`
	Kind  string `yaml:"kind"  toml:"kind"`

	// Width makes the column fixed. Otherwise it is flexible with Weight
	// (default 1) between MinWidth and MaxWidth (0 means unbounded).
	Width    float64 `yaml:"width"     toml:"width"`
	Weight   float64 `yaml:"weight"    toml:"weight"`
	MinWidth float64 `yaml:"min_width" toml:"min_width"`
	MaxWidth float64 `yaml:"max_width" toml:"max_width"`

	Pin     string   `yaml:"pin"     toml:"pin"`
	Actions []string `yaml:"actions" toml:"actions"`
}

// Column converts the spec into a grid column.
func (s ColumnSpec) Column() grid.Column {
	sizing := layout.Fixed(s.Width)
	if s.Width <= 0 {
		weight := s.Weight
		if weight <= 0 {
			weight = 1
		}
		sizing = layout.Flexible(weight, s.MinWidth, s.MaxWidth)
	}
	return grid.Column{
		Column: layout.Column{
			ID:     s.ID,
			Sizing: sizing,
			Pin:    layout.ParsePin(s.Pin),
		},
		Title:   s.Title,
		Kind:    grid.ParseColumnKind(s.Kind),
		Actions: append([]string(nil), s.Actions...),
	}
}

// Validate checks column ids and action labels.
func (s Schema) Validate() error {
	seen := make(map[string]bool, len(s.Columns))
	for i, c := range s.Columns {
		if c.ID == "" {
			return fmt.Errorf("%w: column %d", ErrMissingColumnID, i)
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.ID)
		}
		seen[c.ID] = true
		if grid.ParseColumnKind(c.Kind) == grid.KindActions && len(c.Actions) == 0 {
			return fmt.Errorf("%w: %q", ErrActionsWithoutLabel, c.ID)
		}
	}
	return nil
}

// GridColumns converts every column spec.
func (s Schema) GridColumns() []grid.Column {
	out := make([]grid.Column, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Column()
	}
	return out
}

// RowID returns the identity of a record under this schema.
func (s Schema) RowID(r Record) string {
	return r.Text(s.idField())
}

// CanExpand reports whether a record exposes an expander under this schema.
func (s Schema) CanExpand(r Record) bool {
	if s.ExpandableField == "" {
		return true
	}
	return r.Truthy(s.ExpandableField)
}

func (s Schema) idField() string {
	if s.IDField == "" {
		return DefaultIDField
	}
	return s.IDField
}

// LoadSchema reads a YAML or TOML schema file.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("reading schema %s: %w", path, err)
	}

	var s Schema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		_, err = toml.Decode(string(data), &s)
	default:
		return Schema{}, fmt.Errorf("%w: %s", ErrUnsupportedSchema, path)
	}
	if err != nil {
		return Schema{}, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	if err = s.Validate(); err != nil {
		return Schema{}, fmt.Errorf("invalid schema %s: %w", path, err)
	}
	return s, nil
}

// DeriveSchema builds a schema from the fields present in records: a pinned
// selection column, the id field, the remaining fields alphabetically and a
// right-pinned expander.
func DeriveSchema(records []Record, idField string, minWidth float64) Schema {
	if idField == "" {
		idField = DefaultIDField
	}

	fields := make(map[string]bool)
	for _, r := range records {
		for k := range r {
			fields[k] = true
		}
	}
	delete(fields, idField)
	names := make([]string, 0, len(fields))
	for k := range fields {
		names = append(names, k)
	}
	slices.Sort(names)
	names = append([]string{idField}, names...)

	cols := make([]ColumnSpec, 0, len(names)+2)
	cols = append(cols, ColumnSpec{ID: "_select", Kind: "selection", Width: selectionWidth, Pin: "left"})
	for _, n := range names {
		cols = append(cols, ColumnSpec{ID: n, Title: n, MinWidth: minWidth})
	}
	cols = append(cols, ColumnSpec{ID: "_expand", Kind: "expander", Width: expanderWidth, Pin: "right"})

	return Schema{IDField: idField, Columns: cols}
}
