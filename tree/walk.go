// Package tree rewrites and combines value trees.
package tree

import (
	"slices"

	"shapeshift/value"
)

// Apply is called for every value visited by Walk. The returned value
// replaces val in its parent. The root is visited with an empty key, a nil
// parent and an empty path.
type Apply func(key string, val any, parent any, path []string) any

// Walk visits val depth first and calls apply on every node and leaf, after
// the children of a node have been visited and written back.
func Walk(val any, apply Apply) any {
	return walk(val, apply, "", nil, []string{})
}

func walk(val any, apply Apply, key string, parent any, path []string) any {
	if value.IsNode(val) {
		for _, item := range value.Items(val) {
			childPath := append(slices.Clip(path), item.Key)
			value.SetProp(val, item.Key, walk(item.Val, apply, item.Key, val, childPath))
		}
	}

	return apply(key, val, parent, path)
}

// Lookup descends node along path and returns the value found, or nil when a
// segment is missing. An empty path returns node itself.
func Lookup(node any, path []string) any {
	out := node
	for _, key := range path {
		out = value.GetProp(out, key)
		if out == nil {
			return nil
		}
	}

	return out
}
