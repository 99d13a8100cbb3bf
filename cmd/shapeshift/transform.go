package main

import (
	"strings"

	"shapeshift/diagnostic"
	"shapeshift/transform"
)

// TransformCommand is a Command implementation that transforms a data
// document with a spec.
type TransformCommand struct {
	Meta
}

func (c *TransformCommand) Run(args []string) int {
	var flags Config

	fs := c.flagSet("transform")
	configPath := c.docFlags(fs, &flags)
	if err := fs.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		c.Ui.Error(c.Help())
		return 1
	}

	cfg, err := c.config(fs, *configPath, &flags)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	data, spec, extra, err := c.documents(cfg)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	diags := diagnostic.New()
	out := transform.Transform(data, spec,
		transform.WithExtra(extra),
		transform.WithLogger(c.logger(cfg.LogLevel)),
		transform.WithDiagnostics(diags),
	)

	c.warnings(diags)

	if err := c.output(out, cfg); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	return 0
}

func (c *TransformCommand) Help() string {
	helpText := `
Usage: shapeshift transform [options]

  Transforms the data document by injecting it into a copy of the spec
  document. The result has the shape of the spec.

Options:
` + docOptions

	return strings.TrimSpace(helpText)
}

func (c *TransformCommand) Synopsis() string {
	return "Transform data with a spec"
}
