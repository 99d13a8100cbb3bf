package value

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Stringify renders val for humans as compact JSON with quotes removed and
// map keys sorted. When maxlen is given the result is truncated to that many
// characters, ending in "..." if there is room for it. Undefined renders as
// an empty string.
func Stringify(val any, maxlen ...int) string {
	if val == nil {
		return ""
	}

	out := strings.ReplaceAll(encode(val, ""), `"`, "")

	if len(maxlen) > 0 && maxlen[0] >= 0 {
		n := maxlen[0]
		if runes := []rune(out); len(runes) > n {
			if n > 3 {
				out = string(runes[:n-3]) + "..."
			} else {
				out = string(runes[:n])
			}
		}
	}

	return out
}

// Jsonify renders val as indented JSON.
func Jsonify(val any) string {
	if val == nil {
		return "null"
	}

	return encode(val, "  ")
}

// Compact renders val as compact JSON, keeping quotes.
func Compact(val any) string {
	return encode(val, "")
}

func encode(val any, indent string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}

	if err := enc.Encode(printable(val)); err != nil {
		return "S" + fmt.Sprint(val)
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// printable replaces values that encoding/json rejects.
func printable(val any) any {
	switch v := val.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = printable(item)
		}

		return out
	case *List:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = printable(v.Items[i])
		}

		return out
	case nullType:
		return nil
	}

	if IsFunc(val) {
		return "<function>"
	}

	return val
}
