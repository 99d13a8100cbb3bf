package diagnostic

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Diagnostic codes.
const (
	CodeInvalidType      = "invalid_type"
	CodeEmptyString      = "empty_string"
	CodeUnexpectedKeys   = "unexpected_keys"
	CodeNoMatch          = "no_match"
	CodeNotExact         = "not_exact"
	CodeMisplacedCommand = "misplaced_command"
	CodeCustom           = "custom"
	CodeBadSource        = "bad_source"
)

// Diagnostics holds the diagnostics of one transform or validate call.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of problem.
	Code string
	// Message is the human-readable description.
	Message string
	// Path is the dotted data path this relates to, if any.
	Path string
	// Suggestions are likely intended alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// New returns an empty collector.
func New() *Diagnostics {
	return &Diagnostics{}
}

// AddError adds an error diagnostic. A nil collector drops it.
func (d *Diagnostics) AddError(code, message, path string, suggestions ...string) {
	if d == nil {
		return
	}

	d.Errors = append(d.Errors, Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Path:        path,
		Suggestions: suggestions,
	})
}

// AddWarning adds a warning diagnostic. A nil collector drops it.
func (d *Diagnostics) AddWarning(code, message, path string) {
	if d == nil {
		return
	}

	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Path:     path,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return d != nil && len(d.Errors) > 0
}

// Messages returns the error messages in the order they were added.
func (d *Diagnostics) Messages() []string {
	if d == nil {
		return nil
	}

	out := make([]string, len(d.Errors))
	for i, e := range d.Errors {
		out[i] = e.Message
	}

	return out
}

// Err returns the errors combined into a single error, or nil if there are
// none. Its text is "Invalid data: " followed by every message, joined by
// " | ".
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}

	var merr *multierror.Error
	for _, e := range d.Errors {
		merr = multierror.Append(merr, e)
	}

	merr.ErrorFormat = invalidDataFormat

	return merr
}

func invalidDataFormat(errs []error) string {
	parts := make([]string, len(errs))
	for i, err := range errs {
		parts[i] = err.Error()
	}

	return "Invalid data: " + strings.Join(parts, " | ")
}

// Error makes a Diagnostic usable as an error. It returns the bare message.
func (d Diagnostic) Error() string {
	return d.Message
}

// String returns the message with its code and suggestions.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	return msg
}
