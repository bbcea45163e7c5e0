// Package dataset loads the records and column schema a grid displays.
//
// Records come from a JSON array or newline-delimited JSON. The schema is a
// YAML or TOML file describing columns, their sizing and pins, and which
// field identifies a row. Without a schema one is derived from the records.
package dataset
