package inject

import (
	"regexp"
	"strings"

	"shapeshift/value"
)

var (
	// A whole string reference. Trailing digits order repeated commands, so
	// `$MERGE1` refers to $MERGE.
	fullRefRe = regexp.MustCompile("^`(\\$[A-Z]+|[^`]+)[0-9]*`$")
	partRefRe = regexp.MustCompile("`([^`]+)`")
)

// InjectStr resolves the backtick references in val. A string that is a
// single reference resolves to the referenced value itself, of any type.
// Otherwise each reference is resolved and spliced into the text: strings as
// is, undefined values as nothing, other values as compact JSON.
func InjectStr(val string, store any, current any, inj *Injection) any {
	if val == "" {
		return ""
	}

	if m := fullRefRe.FindStringSubmatch(val); m != nil {
		if inj != nil {
			inj.Full = true
		}

		return GetPathState(unescape(m[1]), store, current, inj)
	}

	out := partRefRe.ReplaceAllStringFunc(val, func(ref string) string {
		if inj != nil {
			inj.Full = false
		}

		found := GetPathState(unescape(ref[1:len(ref)-1]), store, current, inj)

		switch f := found.(type) {
		case nil:
			return ""
		case string:
			return f
		default:
			return value.Compact(found)
		}
	})

	if inj != nil && inj.Handler != nil {
		inj.Full = true

		return inj.Handler(inj, out, current, val, store)
	}

	return out
}

var escapes = strings.NewReplacer("$BT", "`", "$DS", "$")

// unescape expands $BT and $DS inside references longer than a bare
// command name.
func unescape(ref string) string {
	if len(ref) > 3 {
		return escapes.Replace(ref)
	}

	return ref
}
