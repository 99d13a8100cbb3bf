// Package value defines the in-memory tree model the engine operates on,
// and the primitives every other package builds on.
//
// A value is one of:
//
//   - map[string]any (a map node)
//   - *List (a list node)
//   - string, bool, or any Go numeric type (scalars)
//   - Null, the explicit JSON null
//   - a Go func value (opaque, identity-preserved, never traversed)
//   - untyped nil, meaning undefined (absent)
//
// Lists are pointer-wrapped so that removing, appending, and prepending
// elements is visible through every reference to the list. Writing an
// undefined value with SetProp is the only way keys and elements are
// removed.
//
// # Key ordering
//
// Items and KeysOf enumerate maps in ascending key order and lists in index
// order. Every traversal in the module relies on this ordering.
package value
