package value

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// Map is a map node.
type Map = map[string]any

// List is a list node. The engine edits lists in place, so a list is always
// shared by pointer.
type List struct {
	Items []any
}

// NewList wraps items into a list node.
func NewList(items ...any) *List {
	if items == nil {
		items = []any{}
	}

	return &List{Items: items}
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}

	return len(l.Items)
}

func (l *List) MarshalJSON() ([]byte, error) {
	if l == nil || l.Items == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(l.Items)
}

func (l *List) MarshalYAML() (any, error) {
	if l == nil || l.Items == nil {
		return []any{}, nil
	}

	return l.Items, nil
}

type nullType struct{}

// Null is the explicit null value. It is distinct from an undefined (nil)
// value, which means absence.
var Null = nullType{}

func (nullType) String() string {
	return "null"
}

func (nullType) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

func (nullType) MarshalYAML() (any, error) {
	return nil, nil
}

func IsNode(val any) bool {
	return KindOf(val).IsNode()
}

func IsMap(val any) bool {
	_, ok := val.(map[string]any)
	return ok
}

func IsList(val any) bool {
	l, ok := val.(*List)
	return ok && l != nil
}

func IsFunc(val any) bool {
	return val != nil && reflect.ValueOf(val).Kind() == reflect.Func
}

// IsKey reports whether key can address a node property: a non-empty string
// or an integer.
func IsKey(key any) bool {
	switch k := key.(type) {
	case string:
		return k != ""
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return k == float64(int64(k))
	}

	return false
}

// IsEmpty reports an undefined or null value, an empty string, or an empty
// node.
func IsEmpty(val any) bool {
	switch v := val.(type) {
	case nil, nullType:
		return true
	case string:
		return v == ""
	case map[string]any:
		return len(v) == 0
	case *List:
		return v.Len() == 0
	}

	return false
}

// StrKey renders a key as the string used for map properties and paths.
// Keys that cannot be rendered produce an empty string.
func StrKey(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case int:
		return strconv.Itoa(k)
	case int64:
		return strconv.FormatInt(k, 10)
	case float64:
		return strconv.FormatInt(int64(k), 10)
	case int8, int16, int32, uint, uint8, uint16, uint32, uint64, float32:
		return strconv.FormatInt(reflect.ValueOf(k).Convert(reflect.TypeOf(int64(0))).Int(), 10)
	}

	return ""
}

// Same reports whether a and b are the same node instance.
func Same(a, b any) bool {
	switch x := a.(type) {
	case map[string]any:
		y, ok := b.(map[string]any)
		return ok && reflect.ValueOf(x).UnsafePointer() == reflect.ValueOf(y).UnsafePointer()
	case *List:
		y, ok := b.(*List)
		return ok && x == y
	}

	return false
}

// Number returns val as a float64 when it is numeric.
func Number(val any) (float64, bool) {
	if KindOf(val) != KindNumber {
		return 0, false
	}

	rv := reflect.ValueOf(val)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	default:
		return rv.Float(), true
	}
}
