package main

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/xlab/treeprint"

	"shapeshift/internal/document"
	"shapeshift/value"
)

// InspectCommand is a Command implementation that prints a document as a
// tree of values.
type InspectCommand struct {
	Meta
}

func (c *InspectCommand) Run(args []string) int {
	var path string
	var raw bool

	fs := c.flagSet("inspect")
	fs.StringVar(&path, "file", "", "")
	fs.BoolVar(&raw, "raw", false, "")
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		c.Ui.Error(c.Help())
		return 1
	}

	if path == "" && fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		c.Ui.Error("a document is required, use -file")
		return 1
	}

	val, err := document.LoadFile(path)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	if raw {
		c.Ui.Output(strings.TrimRight(spew.Sdump(val), "\n"))
		return 0
	}

	c.Ui.Output(strings.TrimRight(render(path, val).String(), "\n"))

	return 0
}

// render builds the tree of val: one branch per node, one leaf per scalar,
// labelled with the key and the kind or value.
func render(name string, val any) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%s (%s)", name, value.Typify(val)))
	addChildren(tree, val)

	return tree
}

func addChildren(tree treeprint.Tree, node any) {
	for _, item := range value.Items(node) {
		if value.IsNode(item.Val) {
			addChildren(tree.AddBranch(fmt.Sprintf("%s (%s)", item.Key, value.Typify(item.Val))), item.Val)
			continue
		}

		tree.AddNode(fmt.Sprintf("%s: %s", item.Key, value.Compact(item.Val)))
	}
}

func (c *InspectCommand) Help() string {
	helpText := `
Usage: shapeshift inspect [options] [FILE]

  Prints a YAML or JSON document as a tree, with the kind of every node and
  the value of every leaf.

Options:

  -file=path        Document to print. May also be given as FILE.

  -raw              Print the Go values the document was read into.
`

	return strings.TrimSpace(helpText)
}

func (c *InspectCommand) Synopsis() string {
	return "Print a document as a tree"
}
