package dataset

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/gridkit/internal/logging"
)

// Dataset is a set of rows together with the schema that displays them.
type Dataset struct {
	Rows   []Record
	Schema Schema
}

// LoadOptions selects the inputs of Load.
type LoadOptions struct {
	RowsPath   string
	SchemaPath string

	// IDField overrides the schema's id field. With no schema file it names
	// the id field of the derived schema.
	IDField string

	// ColumnWidth is the minimum width of derived columns.
	ColumnWidth float64
}

// Load reads rows and schema concurrently. Without a schema file the schema
// is derived from the rows. Rows lacking an id get a positional one.
func Load(ctx context.Context, opts LoadOptions) (*Dataset, error) {
	log := logging.FromContext(ctx)

	var (
		rows   []Record
		schema Schema
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = LoadRows(gctx, opts.RowsPath)
		return err
	})
	if opts.SchemaPath != "" {
		g.Go(func() error {
			var err error
			schema, err = LoadSchema(opts.SchemaPath)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.SchemaPath == "" {
		schema = DeriveSchema(rows, opts.IDField, opts.ColumnWidth)
	} else if opts.IDField != "" {
		schema.IDField = opts.IDField
	}
	logAssigned(log, AssignIDs(rows, schema.idField()))

	log.Debug().
		Str("component", "dataset").
		Int("rows", len(rows)).
		Int("columns", len(schema.Columns)).
		Bool("derived", opts.SchemaPath == "").
		Msg("dataset ready")
	return &Dataset{Rows: rows, Schema: schema}, nil
}
