package value

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var equalOpts = cmp.Options{
	cmp.FilterValues(func(x, y any) bool {
		return KindOf(x) == KindNumber && KindOf(y) == KindNumber
	}, cmp.Comparer(func(x, y any) bool {
		a, _ := Number(x)
		b, _ := Number(y)
		return a == b
	})),
	cmpopts.EquateEmpty(),
}

// Equal reports deep equality of two values. Numbers compare by value
// regardless of their Go type, so 1 equals 1.0.
func Equal(a, b any) bool {
	return cmp.Equal(a, b, equalOpts)
}

// Diff reports the differences between two values, empty when they are
// Equal.
func Diff(a, b any) string {
	return cmp.Diff(a, b, equalOpts)
}
