package value

import (
	"slices"
	"strconv"
)

// Item is a single (key, value) pair of a node.
type Item struct {
	Key string
	Val any
}

// GetProp returns property key of node val. The optional alt is returned when
// val is not a node, key is not a valid key, or the property is absent.
func GetProp(val any, key any, alt ...any) any {
	var fallback any
	if len(alt) > 0 {
		fallback = alt[0]
	}

	if val == nil || !IsKey(key) {
		return fallback
	}

	var out any
	switch node := val.(type) {
	case map[string]any:
		out = node[StrKey(key)]
	case *List:
		i, ok := index(key)
		if !ok || node == nil || i < 0 || i >= len(node.Items) {
			return fallback
		}
		out = node.Items[i]
	}

	if out == nil {
		return fallback
	}

	return out
}

// SetProp writes val into parent under key and returns parent. Writing an
// undefined value deletes a map key, or removes a list element and shifts the
// rest down. On lists a negative index prepends and an index past the end
// appends. Invalid parents and keys are ignored.
func SetProp(parent any, key any, val any) any {
	if !IsKey(key) {
		return parent
	}

	switch node := parent.(type) {
	case map[string]any:
		k := StrKey(key)
		if val == nil {
			delete(node, k)
		} else {
			node[k] = val
		}

	case *List:
		if node == nil {
			return parent
		}

		i, ok := index(key)
		if !ok {
			return parent
		}

		switch {
		case val == nil:
			if i >= 0 && i < len(node.Items) {
				node.Items = slices.Delete(node.Items, i, i+1)
			}
		case i < 0:
			node.Items = slices.Insert(node.Items, 0, val)
		case i >= len(node.Items):
			node.Items = append(node.Items, val)
		default:
			node.Items[i] = val
		}
	}

	return parent
}

// HasKey reports whether node val has a defined property key.
func HasKey(val any, key any) bool {
	return GetProp(val, key) != nil
}

// KeysOf returns the keys of a node: ascending for maps, index order for
// lists. Non-nodes have no keys.
func KeysOf(val any) []string {
	switch node := val.(type) {
	case map[string]any:
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		slices.Sort(keys)

		return keys

	case *List:
		keys := make([]string, node.Len())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}

		return keys
	}

	return []string{}
}

// Items returns the (key, value) pairs of a node in KeysOf order.
func Items(val any) []Item {
	switch node := val.(type) {
	case map[string]any:
		keys := KeysOf(node)
		out := make([]Item, len(keys))
		for i, k := range keys {
			out[i] = Item{Key: k, Val: node[k]}
		}

		return out

	case *List:
		out := make([]Item, node.Len())
		for i := range out {
			out[i] = Item{Key: strconv.Itoa(i), Val: node.Items[i]}
		}

		return out
	}

	return []Item{}
}

func index(key any) (int, bool) {
	if s, ok := key.(string); ok {
		i, err := strconv.Atoi(s)
		return i, err == nil
	}

	i, err := strconv.Atoi(StrKey(key))

	return i, err == nil
}
