// Package maputil provides helpers for maps keyed by document member names.
package maputil

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order.
// The result is never nil, so it encodes as an empty JSON array.
func SortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return []string{}
	}
	return slices.Sorted(maps.Keys(m))
}
