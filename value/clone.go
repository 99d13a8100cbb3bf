package value

import "github.com/mitchellh/copystructure"

// Clone returns a deep copy of val. Function values are carried over by
// reference: they are never invoked or duplicated.
func Clone(val any) any {
	if val == nil {
		return nil
	}

	switch val.(type) {
	case map[string]any, *List:
	default:
		// scalars, null and functions are immutable
		return val
	}

	out, err := copystructure.Copy(val)
	if err != nil {
		return val
	}

	return out
}
