// Package match ranks shape keys by similarity, so that unexpected data keys
// can be reported together with the keys the shape probably meant.
package match
