package value

import (
	"fmt"
	"reflect"
)

// FromNative converts the output of a generic decoder (encoding/json,
// yaml.v3), or plain Go data, into the value model: slices and arrays become
// lists, nil becomes Null, and maps with non-string keys are rekeyed by
// their printed form. Other values, such as structs, are kept as they are.
func FromNative(val any) any {
	switch v := val.(type) {
	case nil:
		return Null
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			items[i] = FromNative(item)
		}

		return &List{Items: items}
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = FromNative(item)
		}

		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = FromNative(item)
		}

		return out
	case *List:
		items := make([]any, v.Len())
		for i := range items {
			items[i] = FromNative(v.Items[i])
		}

		return &List{Items: items}
	}

	switch rv := reflect.ValueOf(val); rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = FromNative(rv.Index(i).Interface())
		}

		return &List{Items: items}

	case reflect.Map:
		out := make(map[string]any, rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			out[fmt.Sprint(iter.Key().Interface())] = FromNative(iter.Value().Interface())
		}

		return out
	}

	return val
}

// ToNative converts a value into plain Go maps and slices that any encoder
// accepts. Undefined and Null both become nil.
func ToNative(val any) any {
	switch v := val.(type) {
	case nullType:
		return nil
	case *List:
		out := make([]any, v.Len())
		for i := range out {
			out[i] = ToNative(v.Items[i])
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = ToNative(item)
		}

		return out
	}

	return val
}
