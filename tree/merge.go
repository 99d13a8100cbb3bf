package tree

import (
	"shapeshift/value"
)

// Merge combines a list of values into one. Later values override earlier
// ones key by key, nested nodes of the same kind merge recursively, and a
// scalar or a node of another kind replaces what it overrides. The first
// element is modified in place and returned. An empty list merges to an
// undefined value and a value that is not a list is returned as is.
func Merge(values any) any {
	var list []any
	switch v := values.(type) {
	case *value.List:
		list = v.Items
	case []any:
		list = v
	default:
		return values
	}

	switch len(list) {
	case 0:
		return nil
	case 1:
		return list[0]
	}

	out := list[0]
	if out == nil {
		out = value.Map{}
	}

	for _, obj := range list[1:] {
		switch {
		case obj == nil:
			continue
		case !value.IsNode(obj), value.KindOf(obj) != value.KindOf(out):
			out = obj
		default:
			overlay(out, obj)
		}
	}

	return out
}

// overlay walks obj and writes every leaf into the matching place of out.
// Because Walk is post order, the merged form of a node child is already
// sitting one level deeper on the cur stack when its parent is visited.
func overlay(out, obj any) {
	cur := []any{out}

	Walk(obj, func(key string, val any, parent any, path []string) any {
		if len(path) == 0 {
			return val
		}

		ci := len(path) - 1
		for len(cur) < ci+2 {
			cur = append(cur, nil)
		}

		if cur[ci] == nil {
			cur[ci] = Lookup(out, path[:ci])

			if value.KindOf(cur[ci]) != value.KindOf(parent) {
				cur[ci] = emptyLike(parent)
			}
		}

		switch {
		case value.IsNode(val) && !value.IsEmpty(val):
			value.SetProp(cur[ci], key, cur[ci+1])
			cur[ci+1] = nil

		case value.IsNode(val):
			// an empty node never replaces a node of its own kind
			if value.KindOf(value.GetProp(cur[ci], key)) != value.KindOf(val) {
				value.SetProp(cur[ci], key, val)
			}

		default:
			value.SetProp(cur[ci], key, val)
		}

		return val
	})
}

func emptyLike(node any) any {
	if value.IsList(node) {
		return value.NewList()
	}

	return value.Map{}
}
