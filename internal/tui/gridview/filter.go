package gridview

import (
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"
)

// filterItems returns the items whose text fuzzy-matches pattern, keeping
// their original order. An empty pattern matches everything.
func filterItems[T any](items []T, text func(T) string, pattern string) []T {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return items
	}
	src := make([]string, len(items))
	for i, it := range items {
		src[i] = text(it)
	}

	matches := fuzzy.Find(pattern, src)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	slices.Sort(idx)

	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}
