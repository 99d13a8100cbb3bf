package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"shapeshift/diagnostic"
	"shapeshift/internal/document"
)

// Meta holds what every command shares.
type Meta struct {
	Ui cli.Ui

	// LogOutput receives log lines. Stderr if nil.
	LogOutput io.Writer
}

// docFlags registers the flags shared by commands that read a data, spec
// and extra document. Values land in cfg; the returned pointer receives the
// -config path.
func (m *Meta) docFlags(fs *flag.FlagSet, cfg *Config) *string {
	path := fs.String("config", "", "")
	fs.StringVar(&cfg.Data, "data", "", "")
	fs.StringVar(&cfg.Spec, "spec", "", "")
	fs.StringVar(&cfg.Extra, "extra", "", "")
	fs.StringVar(&cfg.Out, "out", "", "")
	fs.StringVar(&cfg.Format, "format", "", "")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "")

	return path
}

func (m *Meta) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	return fs
}

// config merges the config file at path, if any, with the flags set on fs,
// whose values are in flags.
func (m *Meta) config(fs *flag.FlagSet, path string, flags *Config) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = flags.Data
		case "spec":
			cfg.Spec = flags.Spec
		case "extra":
			cfg.Extra = flags.Extra
		case "out":
			cfg.Out = flags.Out
		case "format":
			cfg.Format = flags.Format
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "strict":
			cfg.Strict = flags.Strict
		}
	})

	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (m *Meta) logger(level string) hclog.Logger {
	out := m.LogOutput
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "shapeshift",
		Level:  hclog.LevelFromString(level),
		Output: out,
	})
}

// documents loads the data, spec and extra documents named by cfg. Data
// and extra are optional.
func (m *Meta) documents(cfg *Config) (data, spec, extra any, err error) {
	if cfg.Spec == "" {
		return nil, nil, nil, fmt.Errorf("a spec document is required, use -spec")
	}

	if spec, err = document.LoadFile(cfg.Spec); err != nil {
		return nil, nil, nil, err
	}

	if cfg.Data != "" {
		if data, err = document.LoadFile(cfg.Data); err != nil {
			return nil, nil, nil, err
		}
	}

	if cfg.Extra != "" {
		if extra, err = document.LoadFile(cfg.Extra); err != nil {
			return nil, nil, nil, err
		}
	}

	return data, spec, extra, nil
}

// output prints val, or writes it to the -out file if one is set.
func (m *Meta) output(val any, cfg *Config) error {
	if cfg.Out != "" {
		return document.WriteFile(val, document.Format(cfg.Format), cfg.Out)
	}

	out, err := document.Marshal(val, document.Format(cfg.Format))
	if err != nil {
		return err
	}

	m.Ui.Output(strings.TrimRight(string(out), "\n"))

	return nil
}

func (m *Meta) warnings(diags *diagnostic.Diagnostics) {
	for _, w := range diags.Warnings {
		m.Ui.Warn("Warning: " + w.String())
	}
}

const docOptions = `
  -data=path        Data document, YAML or JSON.

  -spec=path        Spec document, YAML or JSON. Required.

  -extra=path       Extra data merged under the data.

  -out=path         Write the output to a file instead of stdout.

  -format=json      Output format: json or yaml.

  -config=path      YAML file with default settings for the options above,
                    under the keys data, spec, extra, out, format, log_level
                    and strict.

  -log-level=warn   Log level: trace, debug, info, warn, error or off.
                    Defaults to the ` + LogEnv + ` environment variable.
`
