package grid

import (
	"github.com/rs/zerolog"

	"github.com/rshade/gridkit/internal/grid/selection"
)

// Options configures a Grid.
type Options[T any] struct {
	// GetRowID returns the stable identity of a record. Required.
	GetRowID func(T) string

	// CanExpand reports whether a record exposes an expander. Nil means no
	// row can expand.
	CanExpand func(T) bool

	// InitialSelection and InitialExpansion seed the row sets.
	InitialSelection selection.Set
	InitialExpansion selection.Set

	// OnSelectionChange and OnExpansionChange receive the complete proposed
	// set after every mutation. Supplying one makes that set controlled: the
	// grid only shows what the owner passes back through SyncSelection or
	// SyncExpansion.
	OnSelectionChange selection.ChangeFunc
	OnExpansionChange selection.ChangeFunc

	// EstimatedRowHeight is used for rows that have not been measured yet.
	EstimatedRowHeight float64

	// Overscan is the number of extra rows mounted beyond each viewport
	// edge. Zero selects window.DefaultOverscan; negative disables overscan.
	Overscan int

	// IntegralWidths rounds flexible column widths to whole units.
	IntegralWidths bool

	// RequestFrame is called whenever the grid needs Settle to run. Hosts
	// coalesce these calls to one per frame.
	RequestFrame func()

	// Logger receives diagnostics. Nil disables logging.
	Logger *zerolog.Logger
}
