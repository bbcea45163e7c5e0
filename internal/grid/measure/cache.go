package measure

import (
	"math"

	"github.com/rs/zerolog"
)

// DefaultEstimate is the fallback row height when none is configured.
const DefaultEstimate = 32.0

// Entry is a single measured row height.
type Entry struct {
	RowID          string
	Height         float64
	LastMeasuredAt uint64
}

// ChangeFunc is invoked after an accepted write changed a stored height.
type ChangeFunc func(rowID string, height float64)

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used to report discarded measurements.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// WithChangeHook registers fn to be called whenever a stored height changes.
func WithChangeHook(fn ChangeFunc) Option {
	return func(c *Cache) { c.onChange = fn }
}

// Cache stores measured row heights. It is not safe for concurrent use; it is
// driven from a single UI event loop.
type Cache struct {
	entries         map[string]Entry
	defaultEstimate float64
	clock           uint64
	onChange        ChangeFunc
	logger          zerolog.Logger
}

// NewCache returns a cache that answers defaultEstimate for unmeasured rows.
// A non-positive or non-finite default is replaced by DefaultEstimate.
func NewCache(defaultEstimate float64, opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]Entry),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if !validHeight(defaultEstimate) {
		c.logger.Warn().
			Float64("estimate", defaultEstimate).
			Float64("fallback", DefaultEstimate).
			Msg("invalid default row height estimate")
		defaultEstimate = DefaultEstimate
	}
	c.defaultEstimate = defaultEstimate
	return c
}

// Record stores height for rowID. Writes are last-write-wins and idempotent:
// recording the stored value again changes nothing. It reports whether the
// stored height changed.
func (c *Cache) Record(rowID string, height float64) bool {
	if !validHeight(height) {
		c.logger.Debug().
			Str("row_id", rowID).
			Float64("height", height).
			Msg("discarding invalid row measurement")
		return false
	}

	prev, ok := c.entries[rowID]
	if ok && prev.Height == height {
		return false
	}

	c.clock++
	c.entries[rowID] = Entry{RowID: rowID, Height: height, LastMeasuredAt: c.clock}
	if c.onChange != nil {
		c.onChange(rowID, height)
	}
	return true
}

// Estimate returns the last recorded height for rowID, or the default.
func (c *Cache) Estimate(rowID string) float64 {
	if e, ok := c.entries[rowID]; ok {
		return e.Height
	}
	return c.defaultEstimate
}

// Measured reports whether rowID has a trusted measurement.
func (c *Cache) Measured(rowID string) bool {
	_, ok := c.entries[rowID]
	return ok
}

// Lookup returns the stored entry for rowID.
func (c *Cache) Lookup(rowID string) (Entry, bool) {
	e, ok := c.entries[rowID]
	return e, ok
}

// Evict forgets rowID. Subsequent estimates fall back to the default.
func (c *Cache) Evict(rowID string) {
	delete(c.entries, rowID)
}

// Retain drops every entry whose row is no longer present and returns how
// many were evicted.
func (c *Cache) Retain(present func(rowID string) bool) int {
	evicted := 0
	for id := range c.entries {
		if !present(id) {
			delete(c.entries, id)
			evicted++
		}
	}
	return evicted
}

// DefaultEstimate returns the height used for unmeasured rows.
func (c *Cache) DefaultEstimate() float64 {
	return c.defaultEstimate
}

// Len returns the number of measured rows.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Clock returns the logical time of the last accepted write.
func (c *Cache) Clock() uint64 {
	return c.clock
}

func validHeight(h float64) bool {
	return h > 0 && !math.IsNaN(h) && !math.IsInf(h, 0)
}
