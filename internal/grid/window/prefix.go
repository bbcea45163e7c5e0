package window

import "math/bits"

// prefixTree is a Fenwick tree over non-negative row heights.
type prefixTree struct {
	tree []float64 // 1-based
	top  int       // highest power of two <= n
}

func newPrefixTree(values []float64) prefixTree {
	n := len(values)
	t := prefixTree{tree: make([]float64, n+1)}
	for i, v := range values {
		t.tree[i+1] += v
		if j := (i + 1) + ((i + 1) & -(i + 1)); j <= n {
			t.tree[j] += t.tree[i+1]
		}
	}
	if n > 0 {
		t.top = 1 << (bits.Len(uint(n)) - 1)
	}
	return t
}

func (t *prefixTree) len() int {
	return len(t.tree) - 1
}

// add adds delta to the value at 0-based index i.
func (t *prefixTree) add(i int, delta float64) {
	for j := i + 1; j < len(t.tree); j += j & -j {
		t.tree[j] += delta
	}
}

// prefix returns the sum of values [0, i).
func (t *prefixTree) prefix(i int) float64 {
	sum := 0.0
	for j := i; j > 0; j -= j & -j {
		sum += t.tree[j]
	}
	return sum
}

// search returns the largest pos such that prefix(pos) < x, or <= x when
// inclusive is set.
func (t *prefixTree) search(x float64, inclusive bool) int {
	pos := 0
	rem := x
	n := t.len()
	for step := t.top; step > 0; step >>= 1 {
		next := pos + step
		if next > n {
			continue
		}
		v := t.tree[next]
		if v < rem || (inclusive && v == rem) {
			pos = next
			rem -= v
		}
	}
	return pos
}
