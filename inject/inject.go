package inject

import (
	"slices"
	"strings"

	"shapeshift/value"
)

// Inject resolves every reference in val against store, rewriting val in
// place, and returns the result.
func Inject(val any, store any) any {
	return InjectWith(val, store, nil, nil, nil)
}

// InjectWith is Inject with an optional modify hook, current data node and
// traversal state. Without a state val is the root and current defaults to
// {$TOP: store}. With a state, current is the data node of the state's
// grandparent and is descended by one key to match val.
func InjectWith(val any, store any, modify Modify, current any, inj *Injection) any {
	if inj == nil {
		inj = Root(val, store, modify)
	}

	if current == nil {
		current = value.Map{TopKey: store}
	} else if n := len(inj.Path); n >= 2 {
		current = value.GetProp(current, inj.Path[n-2])
	}

	switch v := val.(type) {
	case map[string]any, *value.List:
		injectNode(v, store, modify, current, inj)

	case string:
		inj.Mode = ModeVal
		out := InjectStr(v, store, current, inj)
		value.SetProp(inj.Parent, inj.Key, out)
	}

	if modify != nil && inj.Attached() {
		modify(value.GetProp(inj.Parent, inj.Key), inj.Key, inj.Parent, inj, current, store)
	}

	return value.GetProp(inj.Parent, TopKey)
}

func injectNode(node any, store any, modify Modify, current any, inj *Injection) {
	keys := nodeKeys(node)

	for ki := 0; ki < len(keys); ki++ {
		key := keys[ki]
		child := inj.child(node, keys, ki)

		prekey := InjectStr(key, store, current, child)
		ki, keys = child.KeyI, child.Keys

		if prekey == nil {
			if value.IsMap(node) {
				value.SetProp(node, key, nil)
			}

			continue
		}

		child.Mode = ModeVal
		InjectWith(value.GetProp(node, prekey), store, modify, current, child)
		ki, keys = child.KeyI, child.Keys

		child.Mode = ModeKeyPost
		InjectStr(key, store, current, child)
		ki, keys = child.KeyI, child.Keys
	}
}

// nodeKeys orders the keys of a node for injection: list indexes in order,
// map keys without "$" ascending, then map keys with "$" ascending.
func nodeKeys(node any) []string {
	keys := value.KeysOf(node)
	if !value.IsMap(node) {
		return keys
	}

	slices.SortStableFunc(keys, func(a, b string) int {
		ac, bc := strings.Contains(a, "$"), strings.Contains(b, "$")
		switch {
		case ac == bc:
			return strings.Compare(a, b)
		case ac:
			return 1
		default:
			return -1
		}
	})

	return keys
}
