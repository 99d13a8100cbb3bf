package validate

import (
	"fmt"
	"regexp"
	"strings"

	"shapeshift/diagnostic"
	"shapeshift/inject"
	"shapeshift/transform"
	"shapeshift/value"
)

// Validators returns a new table of the validation commands.
func Validators() transform.Commands {
	return transform.Commands{
		"$STRING":   String,
		"$NUMBER":   kind(value.KindNumber),
		"$BOOLEAN":  kind(value.KindBoolean),
		"$OBJECT":   kind(value.KindMap),
		"$ARRAY":    kind(value.KindList),
		"$FUNCTION": kind(value.KindFunction),
		"$ANY":      Any,
		"$CHILD":    Child,
		"$ONE":      One,
		"$EXACT":    Exact,
		"$OPEN":     Open,
	}
}

// String requires a non-empty string.
func String(inj *inject.Injection, _ any, current any, _ string, _ any) any {
	out := value.GetProp(current, inj.Key)

	s, ok := out.(string)
	switch {
	case !ok:
		invalidType(inj, inj.Path, value.KindString.TypeName(), out)
		return rejected(inj, out)
	case s == "":
		inj.Errs.AddError(diagnostic.CodeEmptyString, "Empty string at "+inj.Where(), inj.Where())
		return rejected(inj, out)
	}

	return out
}

// kind returns a command requiring a value of kind k.
func kind(k value.KindEnum) inject.Injector {
	return func(inj *inject.Injection, _ any, current any, _ string, _ any) any {
		out := value.GetProp(current, inj.Key)
		if value.KindOf(out) != k {
			invalidType(inj, inj.Path, k.TypeName(), out)
			return rejected(inj, out)
		}

		return out
	}
}

// Any accepts any value, including none.
func Any(inj *inject.Injection, _ any, current any, _ string, _ any) any {
	return value.GetProp(current, inj.Key)
}

// Open keeps the `$OPEN` flag of a shape map through key processing.
func Open(inj *inject.Injection, _ any, _ any, _ string, _ any) any {
	if inj.Mode.IsKey() {
		return inj.Key
	}

	return nil
}

// Child validates every child of the data against one template.
//
// As a key, {"`$CHILD`": template}, a copy of the template joins the shape
// map for each key of the data map that it lacks; keys the shape names keep
// their own shape. As the first element of a
// list, ["`$CHILD`", template], the list is replaced by one copy of the
// template per element of the data list.
func Child(inj *inject.Injection, _ any, current any, _ string, store any) any {
	switch inj.Mode {
	case inject.ModeKeyPre:
		tmpl := value.GetProp(inj.Parent, inj.Key)

		var pkey string
		if n := len(inj.Path); n >= 2 {
			pkey = inj.Path[n-2]
		}

		// data that is not a map is reported by the shape check of the parent
		if tval := value.GetProp(current, pkey); value.IsMap(tval) {
			for _, ckey := range value.KeysOf(tval) {
				if value.HasKey(inj.Parent, ckey) {
					continue
				}

				value.SetProp(inj.Parent, ckey, value.Clone(tmpl))
				inj.Keys = append(inj.Keys, ckey)
			}
		}

		value.SetProp(inj.Parent, inj.Key, nil)

		return nil

	case inject.ModeVal:
		if !first(inj, "$CHILD") {
			return rejected(inj, value.GetProp(inj.Parent, inj.Key))
		}

		inj.KeyI = len(inj.Keys)
		tmpl := value.GetProp(inj.Parent, 1)

		switch cur := current.(type) {
		case nil:
			inj.Replace(value.NewList())

		case *value.List:
			items := make([]any, cur.Len())
			for i := range items {
				items[i] = value.Clone(tmpl)
			}

			inj.Log().Debug("child", "path", inj.Where(), "count", len(items))
			inj.Reinject(value.NewList(items...), store, cur)

		default:
			invalidType(inj, inj.Path[:len(inj.Path)-1], value.KindList.TypeName(), cur)
			inj.Replace(cur)
		}
	}

	return nil
}

// One accepts the data if it validates against at least one of the shapes
// following it in ["`$ONE`", shape, ...]. The first shape that matches
// supplies the result.
func One(inj *inject.Injection, _ any, current any, _ string, store any) any {
	if inj.Mode != inject.ModeVal {
		return nil
	}

	if !first(inj, "$ONE") {
		return rejected(inj, value.GetProp(inj.Parent, inj.Key))
	}

	inj.KeyI = len(inj.Keys)
	inj.Replace(current)

	alts := alternatives(inj, "$ONE")
	if alts == nil {
		return nil
	}

	cmds := commands(store)
	for _, alt := range alts {
		errs := diagnostic.New()
		out, _ := Validate(current, alt,
			WithExtra(cmds),
			WithErrors(errs),
			WithLogger(inj.Log()),
		)

		if !errs.HasErrors() {
			inj.Replace(out)
			return nil
		}
	}

	where := inj.Path[:len(inj.Path)-1]
	inj.Errs.AddError(diagnostic.CodeNoMatch,
		invalidTypeMsg(where, "one of "+describe(alts), current),
		value.Pathify(where, 1))

	return nil
}

// Exact accepts the data if it equals one of the values following it in
// ["`$EXACT`", value, ...]. Nodes also match by their rendered form.
func Exact(inj *inject.Injection, _ any, current any, _ string, _ any) any {
	if inj.Mode != inject.ModeVal {
		return nil
	}

	if !first(inj, "$EXACT") {
		return rejected(inj, value.GetProp(inj.Parent, inj.Key))
	}

	inj.KeyI = len(inj.Keys)
	inj.Replace(current)

	alts := alternatives(inj, "$EXACT")
	if alts == nil {
		return nil
	}

	var rendered *string
	for _, alt := range alts {
		if value.Equal(alt, current) {
			return nil
		}

		if value.IsNode(alt) {
			if rendered == nil {
				s := value.Stringify(current)
				rendered = &s
			}

			if value.Stringify(alt) == *rendered {
				return nil
			}
		}
	}

	where := inj.Path[:len(inj.Path)-1]

	expected := "exactly equal to "
	if len(where) <= 1 {
		expected = "value " + expected
	}
	if len(alts) > 1 {
		expected += "one of "
	}

	inj.Errs.AddError(diagnostic.CodeNotExact,
		invalidTypeMsg(where, expected+describe(alts), current),
		value.Pathify(where, 1))

	return nil
}

// rejected is the result of a failed check: none, except in lists, where
// the data is kept so that later elements do not shift.
func rejected(inj *inject.Injection, out any) any {
	if value.IsList(inj.Parent) {
		return out
	}

	return nil
}

// first reports whether the command is the first element of a list,
// recording an error if not.
func first(inj *inject.Injection, name string) bool {
	if !value.IsList(inj.Parent) {
		misplaced(inj, name, inj.Path)
		return false
	}

	if inj.KeyI != 0 {
		misplaced(inj, name, inj.Path[:len(inj.Path)-1])
		return false
	}

	return true
}

func misplaced(inj *inject.Injection, name string, where []string) {
	inj.Errs.AddError(diagnostic.CodeMisplacedCommand,
		fmt.Sprintf("The %s validator at field %s must be the first element of an array.", name, value.Pathify(where, 1)),
		value.Pathify(where, 1))
}

func alternatives(inj *inject.Injection, name string) []any {
	items := value.Items(inj.Parent)
	if len(items) < 2 {
		where := inj.Path[:len(inj.Path)-1]
		inj.Errs.AddError(diagnostic.CodeMisplacedCommand,
			fmt.Sprintf("The %s validator at field %s must have at least one argument.", name, value.Pathify(where, 1)),
			value.Pathify(where, 1))

		return nil
	}

	alts := make([]any, 0, len(items)-1)
	for _, item := range items[1:] {
		alts = append(alts, item.Val)
	}

	return alts
}

// commands returns the commands of store, for a nested validation.
func commands(store any) value.Map {
	out := value.Map{}
	for _, item := range value.Items(store) {
		if strings.HasPrefix(item.Key, "$") && item.Key != inject.TopKey && item.Key != inject.ErrsKey {
			out[item.Key] = item.Val
		}
	}

	return out
}

var commandRe = regexp.MustCompile("`\\$([A-Z]+)`")

// describe renders shapes for messages, with commands as lowercase names.
func describe(alts []any) string {
	parts := make([]string, len(alts))
	for i, alt := range alts {
		parts[i] = value.Stringify(alt)
	}

	return commandRe.ReplaceAllStringFunc(strings.Join(parts, ", "), func(m string) string {
		return strings.ToLower(m[2 : len(m)-1])
	})
}

func invalidType(inj *inject.Injection, path []string, expected string, val any) {
	inj.Errs.AddError(diagnostic.CodeInvalidType, invalidTypeMsg(path, expected, val), value.Pathify(path, 1))
}

func invalidTypeMsg(path []string, expected string, val any) string {
	found := "no value"
	if val != nil {
		found = value.Typify(val) + ": " + value.Stringify(val)
	}

	return fmt.Sprintf("Expected %s at %s, found %s", expected, value.Pathify(path, 1), found)
}
