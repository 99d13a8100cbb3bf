package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"shapeshift/value"
)

// Case is one table-driven test case. Fields missing from the file are
// undefined, which is not the same as an explicit null.
type Case struct {
	Name  string
	Data  any
	Spec  any
	Extra any
	Out   any
	// Errs are the expected error messages, for validation cases.
	Errs []string
}

// LoadCases reads a YAML list of cases with the fields name, data, spec,
// extra, out and errs.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cases %s: %w", path, err)
	}

	var raw []map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse cases %s: %w", path, err)
	}

	cases := make([]Case, 0, len(raw))
	for i, r := range raw {
		c := Case{
			Name:  fmt.Sprint(r["name"]),
			Data:  field(r, "data"),
			Spec:  field(r, "spec"),
			Extra: field(r, "extra"),
			Out:   field(r, "out"),
		}

		if _, ok := r["name"]; !ok {
			c.Name = fmt.Sprintf("case-%d", i)
		}

		if errs, ok := r["errs"].([]any); ok {
			for _, e := range errs {
				c.Errs = append(c.Errs, fmt.Sprint(e))
			}
		}

		cases = append(cases, c)
	}

	return cases, nil
}

func field(r map[string]any, key string) any {
	v, ok := r[key]
	if !ok {
		return nil
	}

	return value.FromNative(v)
}
