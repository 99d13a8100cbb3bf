package value

import (
	"strings"
)

// Pathify renders a key path as a dotted string for messages. Segments
// before from are skipped, an empty path renders as "<root>", and a value
// that is not a path renders as "<unknown-path...>".
func Pathify(val any, from ...int) string {
	var path []any
	switch v := val.(type) {
	case []string:
		path = make([]any, len(v))
		for i, s := range v {
			path[i] = s
		}
	case []any:
		path = v
	case *List:
		path = v.Items
	case string:
		path = []any{v}
	default:
		if KindOf(val) != KindNumber {
			return unknownPath(val)
		}
		path = []any{val}
	}

	start := 0
	if len(from) > 0 && from[0] > 0 {
		start = from[0]
	}
	if start > len(path) {
		start = len(path)
	}

	path = path[start:]
	if len(path) == 0 {
		return "<root>"
	}

	parts := make([]string, 0, len(path))
	for _, p := range path {
		if IsKey(p) {
			parts = append(parts, StrKey(p))
		}
	}

	return strings.Join(parts, ".")
}

func unknownPath(val any) string {
	if val == nil {
		return "<unknown-path>"
	}

	return "<unknown-path:" + Stringify(val, 47) + ">"
}
