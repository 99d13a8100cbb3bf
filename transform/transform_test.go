package transform_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeshift/diagnostic"
	"shapeshift/inject"
	"shapeshift/internal/document"
	"shapeshift/transform"
	"shapeshift/value"
)

func Example() {
	data := value.Map{
		"user":  value.Map{"first": "Ada", "last": "Lovelace"},
		"langs": value.NewList(value.Map{"name": "go"}, value.Map{"name": "c"}),
	}

	spec := value.Map{
		"name":  "`user.first` `user.last`",
		"langs": value.NewList("`$EACH`", "langs", value.Map{"lang": "`.name`"}),
		"first": "`user.first`",
	}

	fmt.Println(value.Stringify(transform.Transform(data, spec)))
	// Output:
	// {first:Ada,langs:[{lang:go},{lang:c}],name:Ada Lovelace}
}

func TestTransformCases(t *testing.T) {
	t.Parallel()

	cases, err := document.LoadCases("testdata/transform.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()

			got := transform.Transform(c.Data, c.Spec, transform.WithExtra(c.Extra))
			assert.True(t, value.Equal(c.Out, got), "diff:\n%s\ngot:\n%s", value.Diff(c.Out, got), spew.Sdump(got))
		})
	}
}

func TestTransformDoesNotMutate(t *testing.T) {
	t.Parallel()

	data := value.Map{"a": value.Map{"x": 1}, "l": value.NewList(value.Map{"n": 1})}
	extra := value.Map{"e": value.Map{"y": 2}}
	spec := value.Map{
		"`$MERGE`": "`a`",
		"e":        "`e`",
		"out":      value.NewList("`$EACH`", "l", value.Map{"n": "`.n`", "k": "`$KEY`"}),
	}

	dataCopy := value.Clone(data)
	extraCopy := value.Clone(extra)
	specCopy := value.Clone(spec)

	out := transform.Transform(data, spec, transform.WithExtra(extra))
	require.NotNil(t, out)

	assert.True(t, value.Equal(dataCopy, data), value.Diff(dataCopy, data))
	assert.True(t, value.Equal(extraCopy, extra), value.Diff(extraCopy, extra))
	assert.True(t, value.Equal(specCopy, spec), value.Diff(specCopy, spec))
}

func TestTransformPlainData(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data := map[string]any{"t": ts, "k": 1, "l": []any{1, 2}, "s": []string{"a", "b"}}
	extra := map[string]any{"x": []any{"y"}}
	spec := value.Map{"a": "`t`", "b": "`k`", "c": "`l.1`", "n": "`s.0`", "x": "`x.0`"}

	out := transform.Transform(data, spec, transform.WithExtra(extra))

	assert.Equal(t, value.Map{"a": ts, "b": 1, "c": 2, "n": "a", "x": "y"}, out)
	assert.Equal(t, []any{1, 2}, data["l"])
}

func TestTransformIdempotent(t *testing.T) {
	t.Parallel()

	spec := value.Map{"a": "`$COPY`", "b": 2, "c": value.Map{"d": "`$COPY`"}}
	data := value.Map{"a": 1, "c": value.Map{"d": "x"}}

	once := transform.Transform(data, spec)
	twice := transform.Transform(once, spec)

	assert.True(t, value.Equal(once, twice), value.Diff(once, twice))
	assert.True(t, value.Equal(value.Map{"a": 1, "b": 2, "c": value.Map{"d": "x"}}, once))
}

func TestCustomCommands(t *testing.T) {
	t.Parallel()

	upper := inject.Injector(func(inj *inject.Injection, _ any, current any, _ string, _ any) any {
		s, _ := value.GetProp(current, inj.Key).(string)
		return strings.ToUpper(s)
	})

	t.Run("added", func(t *testing.T) {
		t.Parallel()

		out := transform.Transform(value.Map{"a": "x"}, value.Map{"a": "`$UPPER`"},
			transform.WithExtra(value.Map{"$UPPER": upper}))
		assert.Equal(t, value.Map{"a": "X"}, out)
	})

	t.Run("zero argument", func(t *testing.T) {
		t.Parallel()

		out := transform.Transform(value.Map{}, value.Map{"a": "`$FIVE`"},
			transform.WithExtra(value.Map{"$FIVE": func() any { return 5 }}))
		assert.Equal(t, value.Map{"a": 5}, out)
	})

	t.Run("built-in replaced", func(t *testing.T) {
		t.Parallel()

		out := transform.Transform(value.Map{"a": "x"}, value.Map{"a": "`$COPY`"},
			transform.WithExtra(value.Map{"$COPY": upper}))
		assert.Equal(t, value.Map{"a": "X"}, out)
	})

	t.Run("built-in removed", func(t *testing.T) {
		t.Parallel()

		out := transform.Transform(value.Map{"a": "x"}, value.Map{"a": "`$COPY`", "b": 1},
			transform.WithExtra(value.Map{"$COPY": nil}))
		assert.Equal(t, value.Map{"b": 1}, out)
	})
}

func TestTransformModify(t *testing.T) {
	t.Parallel()

	modify := func(val any, key string, parent any, _ *inject.Injection, _ any, _ any) {
		if n, ok := val.(int); ok {
			value.SetProp(parent, key, n*10)
		}
	}

	out := transform.Transform(value.Map{"a": 1}, value.Map{"x": "`a`", "y": 2, "l": value.NewList(3)},
		transform.WithModify(modify))
	want := value.Map{"x": 10, "y": 20, "l": value.NewList(30)}
	assert.True(t, value.Equal(want, out), value.Diff(want, out))
}

func TestTransformWarnings(t *testing.T) {
	t.Parallel()

	diags := diagnostic.New()
	out := transform.Transform(value.Map{"s": "scalar"},
		value.Map{
			"e": value.NewList("`$EACH`", "s", value.Map{}),
			"p": value.Map{"`$PACK`": value.NewList("s", value.Map{})},
		},
		transform.WithDiagnostics(diags))

	want := value.Map{"e": value.NewList(), "p": value.Map{}}
	assert.True(t, value.Equal(want, out), value.Diff(want, out))
	require.Len(t, diags.Warnings, 2)
	assert.False(t, diags.HasErrors())
	assert.Equal(t, diagnostic.CodeBadSource, diags.Warnings[0].Code)
	assert.Equal(t, "$EACH source s is string, not a list or map", diags.Warnings[0].Message)
	assert.Equal(t, "e.0", diags.Warnings[0].Path)
}

func TestSourcePaths(t *testing.T) {
	t.Parallel()

	called := false
	items := func() any {
		called = true
		return value.NewList(1)
	}

	spec := value.Map{
		"e": value.NewList("`$EACH`", "$ITEMS", value.Map{"a": 1}),
		"p": value.Map{"`$PACK`": value.NewList("$ITEMS", value.Map{"a": 1})},
		"d": value.NewList("`$EACH`", "", value.Map{"a": 1}),
	}

	out := transform.Transform(value.Map{"x": 1, "y": 2}, spec,
		transform.WithExtra(value.Map{"$ITEMS": items}))

	assert.False(t, called, "a source path is data, never a command")
	assert.True(t, value.Equal(value.Map{
		"e": value.NewList(),
		"p": value.Map{},
		"d": value.NewList(value.Map{"a": 1}, value.Map{"a": 1}),
	}, out), spew.Sdump(out))
}

func TestTransformLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Trace,
		Output: &buf,
	})

	transform.Transform(value.Map{"a": 1}, value.Map{"a": "`$COPY`"}, transform.WithLogger(logger))

	assert.Contains(t, buf.String(), "command=$COPY")
	assert.Contains(t, buf.String(), "path=a")
}

func TestWhen(t *testing.T) {
	t.Parallel()

	out := transform.Transform(value.Map{}, value.Map{"t": "`$WHEN`"})
	ts, ok := value.GetProp(out, "t").(string)
	require.True(t, ok)

	_, err := time.Parse(time.RFC3339, ts)
	require.NoError(t, err)
}

func TestBuiltins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"$BT", "$COPY", "$DELETE", "$DS", "$EACH", "$KEY", "$MERGE", "$META", "$PACK", "$WHEN",
	}, transform.Builtins().Names())
}
