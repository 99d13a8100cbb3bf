// Package document reads and writes value trees as YAML or JSON documents,
// and loads the table-driven test cases kept under testdata.
package document
