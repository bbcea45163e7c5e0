package dataset_test

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridkit/internal/dataset"
)

func TestSynthetic_Deterministic(t *testing.T) {
	a := dataset.Synthetic(50, 7)
	b := dataset.Synthetic(50, 7)

	require.Len(t, a, 50)
	assert.Equal(t, a, b)
}

func TestSynthetic_IDsAreSortedULIDs(t *testing.T) {
	rows := dataset.Synthetic(20, 1)

	prev := ""
	seen := make(map[string]bool)
	for _, r := range rows {
		id := r.Text("id")
		_, err := ulid.Parse(id)
		require.NoError(t, err)
		assert.Greater(t, id, prev)
		assert.False(t, seen[id])
		seen[id] = true
		prev = id
	}
}

func TestSynthetic_Expandability(t *testing.T) {
	rows := dataset.Synthetic(6, 3)
	s := dataset.DemoSchema()

	require.NoError(t, s.Validate())
	assert.False(t, s.CanExpand(rows[0]))
	assert.True(t, s.CanExpand(rows[1]))
	assert.True(t, s.CanExpand(rows[2]))
	assert.False(t, s.CanExpand(rows[3]))
}
