package mcpserver

import (
	"cmp"
	"fmt"
	"path"
	"slices"
	"strings"
)

// globMatcher compiles a glob over '/'-separated names. An empty pattern
// matches everything and a pattern without metacharacters must match exactly.
// The pattern is checked once here so the returned matcher never fails.
func globMatcher(pattern string) (func(string) bool, error) {
	switch {
	case pattern == "":
		return func(string) bool { return true }, nil
	case !strings.ContainsAny(pattern, "*?["):
		return func(name string) bool { return name == pattern }, nil
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return func(name string) bool {
		ok, _ := path.Match(pattern, name)
		return ok
	}, nil
}

// filter returns the items for which keep reports true, in order.
func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// paginate returns items[offset:offset+limit], clipped to the slice. A
// non-positive limit selects cfg.PathsLimit and no page exceeds cfg.MaxLimit.
// An offset outside the slice yields nil.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.PathsLimit
	}
	limit = min(limit, cfg.MaxLimit)
	if offset < 0 || offset >= len(items) {
		return nil
	}
	return items[offset : offset+min(limit, len(items)-offset)]
}

// groupCount is one distinct key and how often it occurred.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// countBy tallies items by key, most frequent first and ties in key order.
func countBy[T any](items []T, key func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[key(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for k, n := range counts {
		groups = append(groups, groupCount{Key: k, Count: n})
	}
	slices.SortFunc(groups, func(a, b groupCount) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.Key, b.Key))
	})
	return groups
}
