package validate

import (
	"github.com/hashicorp/go-hclog"

	"shapeshift/diagnostic"
	"shapeshift/transform"
	"shapeshift/value"
)

type config struct {
	extra  any
	errs   *diagnostic.Diagnostics
	logger hclog.Logger
}

// Option configures a Validate call.
type Option func(*config)

// WithExtra supplies extra data and commands, as for transform.WithExtra.
// Commands replace validators of the same name.
func WithExtra(extra any) Option {
	return func(c *config) {
		c.extra = extra
	}
}

// WithErrors collects validation errors into d instead of failing.
func WithErrors(d *diagnostic.Diagnostics) Option {
	return func(c *config) {
		c.errs = d
	}
}

// WithLogger traces command dispatch to logger.
func WithLogger(logger hclog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Validate checks data against the shape spec, returning data with the
// shape's defaults filled in. Without WithErrors it fails with a single error
// listing every problem found.
func Validate(data any, spec any, opts ...Option) (any, error) {
	cfg := config{
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	errs := cfg.errs
	if errs == nil {
		errs = diagnostic.New()
	}

	extra := value.Map{}
	for name := range transform.Builtins() {
		if !escapes[name] {
			extra[name] = nil
		}
	}
	for name, cmd := range Validators() {
		extra[name] = cmd
	}
	if value.IsMap(cfg.extra) {
		for k, v := range cfg.extra.(map[string]any) {
			extra[k] = v
		}
	}

	out := transform.Transform(data, spec,
		transform.WithExtra(extra),
		transform.WithModify(shape),
		transform.WithDiagnostics(errs),
		transform.WithLogger(cfg.logger),
	)

	if cfg.errs == nil && errs.HasErrors() {
		return out, errs.Err()
	}

	return out, nil
}

// escapes are the transform commands kept while validating.
var escapes = map[string]bool{
	"$BT": true,
	"$DS": true,
}
