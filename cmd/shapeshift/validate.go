package main

import (
	"strings"

	"shapeshift/diagnostic"
	"shapeshift/validate"
)

// ValidateCommand is a Command implementation that validates a data
// document against a shape.
type ValidateCommand struct {
	Meta
}

func (c *ValidateCommand) Run(args []string) int {
	var flags Config

	fs := c.flagSet("validate")
	configPath := c.docFlags(fs, &flags)
	fs.BoolVar(&flags.Strict, "strict", false, "")
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

	opts := []validate.Option{
		validate.WithExtra(extra),
		validate.WithLogger(c.logger(cfg.LogLevel)),
	}

	if cfg.Strict {
		out, err := validate.Validate(data, spec, opts...)
		if err != nil {
			c.Ui.Error(err.Error())
			return 1
		}

		return c.print(out, cfg)
	}

	errs := diagnostic.New()
	out, _ := validate.Validate(data, spec, append(opts, validate.WithErrors(errs))...)

	if code := c.print(out, cfg); code != 0 {
		return code
	}

	c.warnings(errs)
	for _, e := range errs.Errors {
		c.Ui.Error("Error: " + e.String())
	}

	if errs.HasErrors() {
		return 1
	}

	return 0
}

func (c *ValidateCommand) print(out any, cfg *Config) int {
	if err := c.output(out, cfg); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	return 0
}

func (c *ValidateCommand) Help() string {
	helpText := `
Usage: shapeshift validate [options]

  Validates the data document against the shape in the spec document and
  prints the data with the shape's defaults filled in, followed by every
  error found. Exits with status 1 if there is any error.

Options:
` + docOptions + `
  -strict           Print only a single error, and no output, if the data
                    is invalid.
`

	return strings.TrimSpace(helpText)
}

func (c *ValidateCommand) Synopsis() string {
	return "Validate data against a shape"
}
