// Package inject resolves references and commands embedded in a spec tree.
//
// A spec is walked depth first. For every key of every node three phases
// run in order: key:pre injects the key string itself, val injects the child
// value, and key:post injects the key again once the child is final. Plain
// keys are visited before keys containing "$", both in ascending order, so
// data is resolved before commands act on it.
//
// Strings are injected with the backtick syntax: "`a.b`" is replaced by the
// value at path a.b (of any type), while "x`a`y" splices the value into the
// surrounding text. Paths starting with "." are relative to the current data
// node. A reference such as "`$NAME`" or "`$NAME1`" resolves to the command
// stored under $NAME, which the default handler then invokes.
package inject
