package inject

import (
	"strings"

	"shapeshift/value"
)

// GetPath resolves path against store. See GetPathState.
func GetPath(path any, store any) any {
	return GetPathState(path, store, nil, nil)
}

// GetPathState resolves path, a dotted string or a list of keys, against
// store. An empty path resolves to the data under the state's base key, or to
// store itself without a state. A leading empty segment makes the rest of
// the path relative to current. An absolute path whose first key is missing
// on store is looked up in the data under the base key instead. The state's
// handler, if any, gets the final say on the result.
func GetPathState(path any, store any, current any, inj *Injection) any {
	parts, ok := splitPath(path)
	if !ok {
		return nil
	}

	var base string
	if inj != nil {
		base = inj.Base
	}

	var val any
	if store == nil || len(parts) == 0 || (len(parts) == 1 && parts[0] == "") {
		val = value.GetProp(store, base, store)
	} else {
		root, pi := store, 0
		if parts[0] == "" {
			root, pi = current, 1
		}

		val = value.GetProp(root, parts[pi])
		if val == nil && pi == 0 {
			val = value.GetProp(value.GetProp(root, base), parts[pi])
		}

		for pi++; pi < len(parts) && val != nil; pi++ {
			val = value.GetProp(val, parts[pi])
		}
	}

	if inj != nil && inj.Handler != nil {
		val = inj.Handler(inj, val, current, value.Pathify(path), store)
	}

	return val
}

func splitPath(path any) ([]string, bool) {
	switch p := path.(type) {
	case string:
		return strings.Split(p, "."), true
	case []string:
		return p, true
	case *value.List:
		return keys(p.Items), true
	case []any:
		return keys(p), true
	}

	return nil, false
}

func keys(items []any) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = value.StrKey(item)
	}

	return out
}
