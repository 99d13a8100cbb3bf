package value

import "reflect"

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, it is the kind of an undefined value

	KindNull
	KindString
	KindNumber
	KindBoolean
	KindFunction
	KindList
	KindMap
	// KindOpaque is any other Go value. It is carried as a leaf and never
	// traversed.
	KindOpaque

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// TypeName returns the portable type name used in validation messages.
func (k KindEnum) TypeName() string {
	switch k {
	default:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindFunction:
		return "function"
	case KindList:
		return "array"
	case KindMap, KindOpaque:
		return "object"
	}
}

func (k KindEnum) IsNode() bool {
	return k == KindList || k == KindMap
}

func (k KindEnum) IsScalar() bool {
	switch k {
	default:
		return false
	case KindString, KindNumber, KindBoolean:
		return true
	}
}

// KindOf classifies val. Undefined values report the zero kind, and Go
// values outside the value model, such as structs or native slices, are
// KindOpaque. FromNative converts the latter where it can.
func KindOf(val any) KindEnum {
	switch val.(type) {
	case nil:
		return 0
	case nullType:
		return KindNull
	case string:
		return KindString
	case bool:
		return KindBoolean
	case map[string]any:
		return KindMap
	case *List:
		if val.(*List) == nil {
			return 0
		}

		return KindList
	}

	switch reflect.ValueOf(val).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Func:
		return KindFunction
	case reflect.Bool:
		return KindBoolean
	case reflect.String:
		return KindString
	default:
		return KindOpaque
	}
}

// Typify names the kind of val: null, string, number, boolean, function,
// array or object.
func Typify(val any) string {
	return KindOf(val).TypeName()
}
