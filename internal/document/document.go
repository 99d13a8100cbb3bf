package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"shapeshift/value"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown format %q", s)
}

// LoadFile loads and parses a YAML or JSON document from the given path.
func LoadFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	val, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return val, nil
}

// Parse parses a YAML or JSON document into a value. An empty document is
// undefined.
func Parse(data []byte) (any, error) {
	var raw any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	if raw == nil && len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	return value.FromNative(raw), nil
}

// Marshal serializes a value. JSON output is indented by two spaces.
func Marshal(val any, format Format) ([]byte, error) {
	native := value.ToNative(val)

	switch format {
	case FormatJSON, "":
		var buf bytes.Buffer

		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		if err := enc.Encode(native); err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}

		return buf.Bytes(), nil

	case FormatYAML:
		out, err := yaml.Marshal(native)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}

		return out, nil
	}

	return nil, fmt.Errorf("unknown format %q", format)
}

// WriteFile writes a value to the given path.
func WriteFile(val any, format Format, path string) error {
	data, err := Marshal(val, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}
