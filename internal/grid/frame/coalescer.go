// Package frame coalesces recompute requests to at most one per frame.
//
// High-frequency inputs (scroll, resize, re-measured rows) each ask for a
// recompute. Only the first request of a frame schedules a timer; later ones
// ride along. When the timer fires, only the newest ticket is honoured, so a
// stale or cancelled request is dropped instead of retried.
package frame

import "time"

// DefaultInterval is one frame at 60Hz.
const DefaultInterval = 16 * time.Millisecond

// Ticket identifies a scheduled frame.
type Ticket uint64

// Coalescer tracks whether a frame is pending.
type Coalescer struct {
	pending bool
	current Ticket
	fired   uint64
	dropped uint64
}

// Request asks for a frame. It returns the ticket the caller must deliver
// back to Fire, and whether the caller must schedule a timer for it. When a
// frame is already pending, the existing ticket is returned and no timer is
// needed.
func (c *Coalescer) Request() (Ticket, bool) {
	if c.pending {
		return c.current, false
	}
	c.current++
	c.pending = true
	return c.current, true
}

// Pending reports whether a frame is scheduled and not yet fired.
func (c *Coalescer) Pending() bool {
	return c.pending
}

// Fire reports whether t is the pending frame and consumes it.
func (c *Coalescer) Fire(t Ticket) bool {
	if !c.pending || t != c.current {
		c.dropped++
		return false
	}
	c.pending = false
	c.fired++
	return true
}

// Cancel drops the pending frame; its ticket will be rejected by Fire.
func (c *Coalescer) Cancel() {
	if c.pending {
		c.pending = false
		c.current++
	}
}

// Stats returns how many frames fired and how many stale tickets were dropped.
func (c *Coalescer) Stats() (fired, dropped uint64) {
	return c.fired, c.dropped
}
