package inject

import (
	"strings"

	"shapeshift/value"
)

// AsInjector returns val as a command, if it is one. Zero argument
// functions returning a value are commands too.
func AsInjector(val any) (Injector, bool) {
	switch fn := val.(type) {
	case Injector:
		return fn, fn != nil
	case func(*Injection, any, any, string, any) any:
		return fn, fn != nil
	case func() any:
		if fn == nil {
			return nil, false
		}

		return func(*Injection, any, any, string, any) any { return fn() }, true
	}

	return nil, false
}

// DefaultHandler invokes commands and persists full references. A resolved
// command is invoked when the reference is empty or names a command ($NAME).
// Any other value of a full reference seen in val mode is written into the
// parent, so that the injected value stays in the tree.
func DefaultHandler(inj *Injection, val any, current any, ref string, store any) any {
	if fn, ok := AsInjector(val); ok && (ref == "" || strings.HasPrefix(ref, "$")) {
		inj.Log().Trace("command", "command", ref, "mode", inj.Mode, "path", inj.Where())

		return fn(inj, val, current, ref, store)
	}

	if inj.Mode == ModeVal && inj.Full {
		value.SetProp(inj.Parent, inj.Key, val)
	}

	return val
}
