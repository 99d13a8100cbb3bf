// Package validate checks data against a shape given by example.
//
// A shape is a spec in which plain values are typed defaults: {a: 1}
// accepts {a: 2}, rejects {a: "x"} and fills {} in as {a: 1}. Commands name
// required kinds (`$STRING`, `$NUMBER`, `$BOOLEAN`, `$OBJECT`, `$ARRAY`,
// `$FUNCTION`, `$ANY`) or structure (`$CHILD`, `$ONE`, `$EXACT`). Maps in a
// shape are closed unless empty or marked with a `$OPEN` key.
package validate
