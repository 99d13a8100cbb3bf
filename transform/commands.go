package transform

import (
	"fmt"
	"maps"
	"slices"
	"time"

	"shapeshift/diagnostic"
	"shapeshift/inject"
	"shapeshift/tree"
	"shapeshift/value"
)

// Commands maps "$NAME" keys to commands.
type Commands map[string]inject.Injector

// Builtins returns a new table of the transform commands.
func Builtins() Commands {
	return Commands{
		"$DELETE": Delete,
		"$COPY":   Copy,
		"$KEY":    Key,
		"$META":   Meta,
		"$MERGE":  Merge,
		"$EACH":   Each,
		"$PACK":   Pack,
		"$BT":     Backtick,
		"$DS":     Dollar,
		"$WHEN":   When,
	}
}

// Names lists the command names of the table in ascending order.
func (c Commands) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// Delete removes the key it is found at.
func Delete(inj *inject.Injection, _ any, _ any, _ string, _ any) any {
	value.SetProp(inj.Parent, inj.Key, nil)
	return nil
}

// Copy copies the data value under the same key. Keys pass through.
func Copy(inj *inject.Injection, _ any, current any, _ string, _ any) any {
	if inj.Mode.IsKey() {
		return inj.Key
	}

	out := value.GetProp(current, inj.Key)
	value.SetProp(inj.Parent, inj.Key, out)

	return out
}

// Key injects a key. A `$KEY` entry in the parent names the data property
// holding it; otherwise it is the KEY of a `$META` annotation, or else the
// key of the parent itself.
func Key(inj *inject.Injection, _ any, current any, _ string, _ any) any {
	if inj.Mode != inject.ModeVal {
		return nil
	}

	if keyspec := value.GetProp(inj.Parent, inject.KeyKey); keyspec != nil {
		value.SetProp(inj.Parent, inject.KeyKey, nil)
		return value.GetProp(current, keyspec)
	}

	var enclosing any
	if n := len(inj.Path); n >= 2 {
		enclosing = inj.Path[n-2]
	}

	meta := value.GetProp(inj.Parent, inject.MetaKey)

	return value.GetProp(meta, inject.MetaKeyName, enclosing)
}

// Meta removes the `$META` annotation.
func Meta(inj *inject.Injection, _ any, _ any, _ string, _ any) any {
	value.SetProp(inj.Parent, inject.MetaKey, nil)
	return nil
}

// Merge merges its argument into the parent map once the argument has been
// injected. The argument is one value or a list of values; an empty string
// stands for all of the data. Literal keys of the parent win over merged
// data.
func Merge(inj *inject.Injection, _ any, _ any, _ string, store any) any {
	switch inj.Mode {
	case inject.ModeKeyPre:
		return inj.Key

	case inject.ModeKeyPost:
		var args []any
		switch a := value.GetProp(inj.Parent, inj.Key).(type) {
		case *value.List:
			args = a.Items
		case string:
			if a == "" {
				args = []any{value.GetProp(store, inject.TopKey)}
			} else {
				args = []any{a}
			}
		case nil:
		default:
			args = []any{a}
		}

		value.SetProp(inj.Parent, inj.Key, nil)

		list := make([]any, 0, len(args)+2)
		list = append(list, inj.Parent)
		list = append(list, args...)
		list = append(list, value.Clone(inj.Parent))

		inj.Log().Debug("merge", "path", inj.Where(), "sources", len(args))
		tree.Merge(list)

		return inj.Key
	}

	return nil
}

// Each replaces the list ["`$EACH`", path, template] with one copy of
// template per entry of the source at path, each injected against its
// entry. Map entries are visited in key order and annotated with their key.
func Each(inj *inject.Injection, _ any, current any, _ string, store any) any {
	// nothing after the command is injected
	if len(inj.Keys) > 1 {
		inj.Keys = inj.Keys[:1]
	}

	if inj.Mode != inject.ModeVal {
		return nil
	}

	srcpath := value.GetProp(inj.Parent, 1)
	tmpl := value.Clone(value.GetProp(inj.Parent, 2))

	src := source(srcpath, store, current, inj)

	var items, entries []any
	switch s := src.(type) {
	case *value.List:
		for _, entry := range s.Items {
			items = append(items, value.Clone(tmpl))
			entries = append(entries, entry)
		}

	case map[string]any:
		for _, item := range value.Items(s) {
			child := value.Clone(tmpl)
			value.SetProp(child, inject.MetaKey, value.Map{inject.MetaKeyName: item.Key})
			items = append(items, child)
			entries = append(entries, item.Val)
		}

	case nil:

	default:
		badSource(inj, "$EACH", srcpath, src)
	}

	inj.Log().Debug("each", "path", inj.Where(), "source", value.Pathify(srcpath), "count", len(items))

	out := inj.Sub(value.NewList(items...), store, value.Map{inject.TopKey: value.NewList(entries...)})
	inj.Replace(out)

	return value.GetProp(out, 0)
}

// Pack replaces the map holding {"`$PACK`": [path, template]} with a map of
// template copies, one per entry of the source at path. Entries are keyed
// by the property the template's `$KEY` names, else by their KEY property
// or annotation. Entries without a key are skipped.
func Pack(inj *inject.Injection, _ any, current any, _ string, store any) any {
	if inj.Mode != inject.ModeKeyPre {
		return nil
	}

	args, ok := value.GetProp(inj.Parent, inj.Key).(*value.List)
	if !ok || args.Len() == 0 {
		return nil
	}

	srcpath := value.GetProp(args, 0)
	tmpl := value.Clone(value.GetProp(args, 1))

	var entries []any
	switch s := source(srcpath, store, current, inj).(type) {
	case *value.List:
		entries = s.Items

	case map[string]any:
		for _, item := range value.Items(s) {
			if value.IsMap(item.Val) {
				entry := value.Clone(item.Val)
				value.SetProp(entry, inject.MetaKey, value.Map{inject.MetaKeyName: item.Key})
				entries = append(entries, entry)
			}
		}

	case nil:
		return nil

	default:
		badSource(inj, "$PACK", srcpath, s)
		return nil
	}

	childkey := value.GetProp(tmpl, inject.KeyKey)
	value.SetProp(tmpl, inject.KeyKey, nil)

	packed := value.Map{}
	sources := value.Map{}

	for _, entry := range entries {
		var kn any
		if childkey != nil {
			kn = value.GetProp(entry, childkey)
		} else {
			kn = value.GetProp(entry, inject.MetaKeyName)
		}

		if kn == nil {
			kn = value.GetProp(value.GetProp(entry, inject.MetaKey), inject.MetaKeyName)
		}

		if kn == nil {
			continue
		}

		k := value.Stringify(kn)
		child := value.Clone(tmpl)
		if meta := value.GetProp(entry, inject.MetaKey); meta != nil {
			value.SetProp(child, inject.MetaKey, meta)
		}

		packed[k] = child
		sources[k] = entry
	}

	inj.Log().Debug("pack", "path", inj.Where(), "source", value.Pathify(srcpath), "count", len(packed))

	out := inj.Sub(packed, store, value.Map{inject.TopKey: sources})
	inj.Replace(out)

	return nil
}

func Backtick(*inject.Injection, any, any, string, any) any { return "`" }

func Dollar(*inject.Injection, any, any, string, any) any { return "$" }

// When returns the current UTC time.
func When(*inject.Injection, any, any, string, any) any {
	return time.Now().UTC().Format(time.RFC3339)
}

// source resolves the source path of $EACH and $PACK against the data.
// No state is passed, so the handler neither writes the source into the
// command's slot nor dispatches a command named by the path.
func source(srcpath any, store any, current any, inj *inject.Injection) any {
	return inject.GetPathState(srcpath, value.GetProp(store, inj.Base, store), current, nil)
}

func badSource(inj *inject.Injection, cmd string, srcpath any, src any) {
	if inj.Errs == nil {
		return
	}

	inj.Errs.AddWarning(diagnostic.CodeBadSource,
		fmt.Sprintf("%s source %s is %s, not a list or map", cmd, value.Pathify(srcpath), value.Typify(src)),
		inj.Where())
}
