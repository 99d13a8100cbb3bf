package validate_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeshift/diagnostic"
	"shapeshift/inject"
	"shapeshift/internal/document"
	"shapeshift/validate"
	"shapeshift/value"
)

func Example() {
	shape := value.Map{
		"name": "`$STRING`",
		"port": 8080,
		"tags": value.NewList("`$CHILD`", "`$STRING`"),
	}

	out, err := validate.Validate(value.Map{"name": "api", "tags": value.NewList("a", "b")}, shape)
	fmt.Println(value.Stringify(out), err)

	_, err = validate.Validate(value.Map{"name": "", "port": "80"}, shape)
	fmt.Println(err)
	// Output:
	// {name:api,port:8080,tags:[a,b]} <nil>
	// Invalid data: Empty string at name | Expected number at port, found string: 80
}

func TestValidateCases(t *testing.T) {
	t.Parallel()

	cases, err := document.LoadCases("testdata/validate.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, cases)

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			t.Parallel()

			errs := diagnostic.New()
			got, err := validate.Validate(c.Data, c.Spec, validate.WithExtra(c.Extra), validate.WithErrors(errs))
			require.NoError(t, err)

			assert.True(t, value.Equal(c.Out, got), "diff:\n%s\ngot:\n%s", value.Diff(c.Out, got), spew.Sdump(got))

			if len(c.Errs) == 0 {
				assert.Empty(t, errs.Messages())
			} else {
				assert.Equal(t, c.Errs, errs.Messages())
			}
		})
	}
}

func TestStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		out, err := validate.Validate(value.Map{"a": 1}, value.Map{"a": 0, "b": "x"})
		require.NoError(t, err)
		assert.Equal(t, value.Map{"a": 1, "b": "x"}, out)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()

		out, err := validate.Validate(value.Map{"a": "x", "b": 1}, value.Map{"a": 0, "b": "`$STRING`"})
		require.Error(t, err)
		assert.Equal(t, "Invalid data: Expected number at a, found string: x | Expected string at b, found number: 1", err.Error())
		assert.Equal(t, value.Map{"a": 0, "b": 1}, out)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		require.Len(t, merr.Errors, 2)

		var d diagnostic.Diagnostic
		require.ErrorAs(t, merr.Errors[1], &d)
		assert.Equal(t, diagnostic.CodeInvalidType, d.Code)
		assert.Equal(t, "b", d.Path)
	})
}

func TestCollectedErrors(t *testing.T) {
	t.Parallel()

	errs := diagnostic.New()
	_, err := validate.Validate(
		value.Map{"a": "", "b": value.Map{"x": 1, "y": 2}, "c": 3},
		value.Map{
			"a": "`$STRING`",
			"b": value.Map{"x": 0},
			"c": value.NewList("`$EXACT`", 1, 2),
			"d": value.NewList("`$ONE`", "`$STRING`"),
		},
		validate.WithErrors(errs),
	)
	require.NoError(t, err)

	codes := make([]string, len(errs.Errors))
	for i, e := range errs.Errors {
		codes[i] = e.Code
	}

	assert.Equal(t, []string{
		diagnostic.CodeEmptyString,
		diagnostic.CodeUnexpectedKeys,
		diagnostic.CodeNotExact,
		diagnostic.CodeNoMatch,
	}, codes)
	assert.Equal(t, []string{"a", "b", "c", "d"}, []string{
		errs.Errors[0].Path, errs.Errors[1].Path, errs.Errors[2].Path, errs.Errors[3].Path,
	})
	assert.Equal(t, "Expected one of string at d, found no value", errs.Errors[3].Message)
}

func TestUnexpectedKeySuggestions(t *testing.T) {
	t.Parallel()

	errs := diagnostic.New()
	_, err := validate.Validate(value.Map{"user_name": "ada"}, value.Map{"userName": "`$STRING`"}, validate.WithErrors(errs))
	require.NoError(t, err)
	require.Len(t, errs.Errors, 2)

	e := errs.Errors[1]
	assert.Equal(t, "Unexpected keys at <root>: user_name", e.Message)
	assert.Equal(t, []string{"userName"}, e.Suggestions)
	assert.Equal(t, "[unexpected_keys] Unexpected keys at <root>: user_name (did you mean userName?)", e.String())
}

func TestCustomValidator(t *testing.T) {
	t.Parallel()

	integer := inject.Injector(func(inj *inject.Injection, _ any, current any, _ string, _ any) any {
		out := value.GetProp(current, inj.Key)
		if _, ok := out.(int); !ok {
			inj.Errs.AddError(diagnostic.CodeCustom, fmt.Sprintf("Not an integer at %s: %v", inj.Where(), out), inj.Where())
		}

		return out
	})
	extra := value.Map{"$INTEGER": integer}
	shape := value.Map{"a": "`$INTEGER`"}

	errs := diagnostic.New()
	out, err := validate.Validate(value.Map{"a": 1}, shape, validate.WithExtra(extra), validate.WithErrors(errs))
	require.NoError(t, err)
	assert.Equal(t, value.Map{"a": 1}, out)
	assert.Empty(t, errs.Errors)

	out, err = validate.Validate(value.Map{"a": "A"}, shape, validate.WithExtra(extra))
	require.EqualError(t, err, "Invalid data: Not an integer at a: A")
	assert.Equal(t, value.Map{"a": "A"}, out)

	t.Run("inside one", func(t *testing.T) {
		t.Parallel()

		out, err := validate.Validate(value.Map{"a": 2},
			value.Map{"a": value.NewList("`$ONE`", "`$STRING`", "`$INTEGER`")},
			validate.WithExtra(extra))
		require.NoError(t, err)
		assert.Equal(t, value.Map{"a": 2}, out)
	})
}

func TestFunction(t *testing.T) {
	t.Parallel()

	fn := func() {}
	out, err := validate.Validate(value.Map{"f": fn}, value.Map{"f": "`$FUNCTION`"})
	require.NoError(t, err)
	assert.True(t, value.IsFunc(value.GetProp(out, "f")))

	_, err = validate.Validate(value.Map{"f": 1}, value.Map{"f": "`$FUNCTION`"})
	require.EqualError(t, err, "Invalid data: Expected function at f, found number: 1")
}

func TestValidateDoesNotMutate(t *testing.T) {
	t.Parallel()

	data := value.Map{"a": value.Map{"x": 1}, "l": value.NewList(value.Map{"n": 1})}
	shape := value.Map{
		"a": value.Map{"`$OPEN`": true, "y": 2},
		"l": value.NewList("`$CHILD`", value.Map{"n": 0, "m": "d"}),
	}

	dataCopy := value.Clone(data)
	shapeCopy := value.Clone(shape)

	out, err := validate.Validate(data, shape)
	require.NoError(t, err)

	want := value.Map{
		"a": value.Map{"x": 1, "y": 2},
		"l": value.NewList(value.Map{"n": 1, "m": "d"}),
	}
	assert.True(t, value.Equal(want, out), value.Diff(want, out))
	assert.True(t, value.Equal(dataCopy, data), value.Diff(dataCopy, data))
	assert.True(t, value.Equal(shapeCopy, shape), value.Diff(shapeCopy, shape))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	names := validate.Validators().Names()
	assert.Equal(t, []string{
		"$ANY", "$ARRAY", "$BOOLEAN", "$CHILD", "$EXACT", "$FUNCTION", "$NUMBER", "$OBJECT", "$ONE", "$OPEN", "$STRING",
	}, names)
}

func TestTransformCommandsAreOff(t *testing.T) {
	t.Parallel()

	out, err := validate.Validate(value.Map{"a": 1}, value.Map{"a": "`$COPY`", "b": "`$BT`"})
	require.NoError(t, err)
	assert.Equal(t, value.Map{"a": 1, "b": "`"}, out)
}

func TestPlainData(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	errs := diagnostic.New()
	out, err := validate.Validate(map[string]any{"s": []any{1, 2}, "t": ts},
		value.Map{"s": "`$OBJECT`", "t": "`$ANY`"}, validate.WithErrors(errs))
	require.NoError(t, err)

	assert.True(t, value.Equal(value.Map{"s": value.NewList(1, 2), "t": ts}, out), value.Diff(value.Map{"s": value.NewList(1, 2), "t": ts}, out))
	assert.Equal(t, []string{"Expected object at s, found array: [1,2]"}, errs.Messages())

	t.Run("opaque is not a map", func(t *testing.T) {
		t.Parallel()

		_, err := validate.Validate(value.Map{"t": ts}, value.Map{"t": value.Map{"x": 1}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Expected object at t, found object: 2024-05-01T12:00:00Z")
	})
}

func TestStateWithoutCollector(t *testing.T) {
	t.Parallel()

	spec := value.Map{"a": "`$STRING`"}
	store := value.Map{"$STRING": validate.String, inject.TopKey: value.Map{"a": 1}}

	inj := inject.Root(spec, store, nil)
	inj.Errs = nil

	var out any
	require.NotPanics(t, func() {
		out = inject.InjectWith(spec, store, nil, nil, inj)
	})
	assert.Equal(t, value.Map{}, out)
}
