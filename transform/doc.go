// Package transform builds a value from a spec that looks like the output.
//
// The spec is copied and injected against a store holding the data under
// $TOP and the transform commands:
//
//	$DELETE  remove the key
//	$COPY    copy the data value under the same key
//	$KEY     the enclosing key, a `$KEY` override, or a `$META` KEY annotation
//	$META    drop the `$META` annotation
//	$MERGE   merge data into the enclosing map (runs in key:post)
//	$EACH    ["`$EACH`", path, template]: one template per source entry
//	$PACK    {"`$PACK`": [path, template]}: a map of templates keyed by entry
//	$BT $DS  a literal backtick or dollar sign
//	$WHEN    the current time in RFC 3339 form
//
// Extra commands are supplied in the extra data under "$NAME" keys.
package transform
