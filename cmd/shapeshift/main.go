// Package main provides the CLI entrypoint for shapeshift.
//
// shapeshift applies a transform spec or a validation shape, written by
// example, to a YAML or JSON document:
//   - transform rewrites data into the shape of a spec
//   - validate checks data against a shape and fills in its defaults
//   - inspect prints a document as a tree
package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/cli"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Reader:      os.Stdin,
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}

	c := &cli.CLI{
		Name:     "shapeshift",
		Version:  version,
		Args:     args,
		Commands: commands(&Meta{Ui: ui}),
		HelpFunc: cli.BasicHelpFunc("shapeshift"),
	}

	code, err := c.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error executing CLI: %s\n", err)
		return 1
	}

	return code
}

func commands(meta *Meta) map[string]cli.CommandFactory {
	return map[string]cli.CommandFactory{
		"transform": func() (cli.Command, error) {
			return &TransformCommand{Meta: *meta}, nil
		},
		"validate": func() (cli.Command, error) {
			return &ValidateCommand{Meta: *meta}, nil
		},
		"inspect": func() (cli.Command, error) {
			return &InspectCommand{Meta: *meta}, nil
		},
	}
}
