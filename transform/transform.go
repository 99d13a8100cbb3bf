package transform

import (
	"strings"

	"github.com/hashicorp/go-hclog"

	"shapeshift/diagnostic"
	"shapeshift/inject"
	"shapeshift/tree"
	"shapeshift/value"
)

type config struct {
	extra  any
	modify inject.Modify
	logger hclog.Logger
	diags  *diagnostic.Diagnostics
}

// Option configures a Transform call.
type Option func(*config)

// WithExtra supplies extra data and commands. Keys starting with "$" are
// added to the store as commands, replacing built-ins of the same name; a
// nil value removes the command. Other keys are data, overridden by the
// transformed data.
func WithExtra(extra any) Option {
	return func(c *config) {
		c.extra = extra
	}
}

// WithModify installs a hook called after every value has been injected.
func WithModify(modify inject.Modify) Option {
	return func(c *config) {
		c.modify = modify
	}
}

// WithLogger traces command dispatch to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDiagnostics collects warnings, such as an $EACH over a scalar, into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(c *config) {
		c.diags = d
	}
}

// Transform injects a copy of spec against data and returns the result.
// Data and extra data are converted with value.FromNative first, so plain Go
// slices and maps are accepted. Neither is modified.
func Transform(data any, spec any, opts ...Option) any {
	cfg := config{
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cmds, extraData := splitExtra(cfg.extra)

	store := value.Map{
		inject.TopKey: tree.Merge([]any{extraData, native(data)}),
	}
	for name, cmd := range Builtins() {
		store[name] = cmd
	}
	if cfg.diags != nil {
		store[inject.ErrsKey] = cfg.diags
	}
	for name, cmd := range cmds {
		if cmd == nil {
			delete(store, name)
		} else {
			store[name] = cmd
		}
	}

	spec = value.Clone(spec)

	root := inject.Root(spec, store, cfg.modify)
	root.Logger = cfg.logger

	cfg.logger.Debug("transform", "spec", value.Typify(spec), "data", value.Typify(data))

	return inject.InjectWith(spec, store, cfg.modify, store, root)
}

// native brings data into the value model as a copy. Undefined stays
// undefined.
func native(data any) any {
	if data == nil {
		return nil
	}

	return value.FromNative(data)
}

// splitExtra separates commands from data. Command values are kept as
// given, so that nil still removes a command.
func splitExtra(extra any) (map[string]any, value.Map) {
	cmds := map[string]any{}
	data := value.Map{}

	if !value.IsMap(extra) {
		extra = native(extra)
	}
	if !value.IsMap(extra) {
		return cmds, data
	}

	for k, v := range extra.(map[string]any) {
		if strings.HasPrefix(k, "$") {
			cmds[k] = v
		} else {
			data[k] = native(v)
		}
	}

	return cmds, data
}
