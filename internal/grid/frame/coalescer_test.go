package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoalescer_CoalescesRequests(t *testing.T) {
	var c Coalescer

	t1, schedule := c.Request()
	assert.True(t, schedule)

	for i := 0; i < 10; i++ {
		t2, again := c.Request()
		assert.False(t, again)
		assert.Equal(t, t1, t2)
	}

	assert.True(t, c.Fire(t1))
	assert.False(t, c.Pending())

	_, schedule = c.Request()
	assert.True(t, schedule, "a new frame may be scheduled after firing")
}

func TestCoalescer_DropsStaleTickets(t *testing.T) {
	var c Coalescer

	t1, _ := c.Request()
	assert.True(t, c.Fire(t1))
	assert.False(t, c.Fire(t1), "a ticket fires once")

	t2, _ := c.Request()
	c.Cancel()
	assert.False(t, c.Fire(t2), "cancelled frames are dropped, not retried")

	t3, schedule := c.Request()
	assert.True(t, schedule)
	assert.NotEqual(t, t2, t3)
	assert.True(t, c.Fire(t3))

	fired, dropped := c.Stats()
	assert.Equal(t, uint64(2), fired)
	assert.Equal(t, uint64(2), dropped)
}

func TestCoalescer_CancelWithoutPendingIsNoOp(t *testing.T) {
	var c Coalescer
	c.Cancel()

	t1, schedule := c.Request()
	assert.True(t, schedule)
	assert.Equal(t, Ticket(1), t1)
}
