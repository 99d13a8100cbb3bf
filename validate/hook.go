package validate

import (
	"strings"

	"shapeshift/diagnostic"
	"shapeshift/inject"
	"shapeshift/internal/match"
	"shapeshift/tree"
	"shapeshift/value"
)

// shape checks the data at key against the injected shape value pval, once
// pval has been injected.
func shape(pval any, key string, parent any, inj *inject.Injection, current any, _ any) {
	cval := value.GetProp(current, key)
	if cval == nil {
		value.SetProp(pval, inject.OpenKey, nil)
		return
	}

	// unresolved commands and escaped text
	if s, ok := pval.(string); ok && strings.Contains(s, "$") {
		return
	}

	// a command removed the shape, keep the data as found
	if pval == nil {
		value.SetProp(parent, key, cval)
		return
	}

	if value.KindOf(pval) != value.KindOf(cval) {
		invalidType(inj, inj.Path, value.Typify(pval), cval)
		return
	}

	switch {
	case value.IsMap(cval):
		pkeys := value.KeysOf(pval)
		if len(pkeys) == 0 || value.GetProp(pval, inject.OpenKey) == true {
			tree.Merge([]any{pval, cval})
			value.SetProp(pval, inject.OpenKey, nil)

			return
		}

		var bad, suggestions []string
		for _, ckey := range value.KeysOf(cval) {
			if value.HasKey(pval, ckey) {
				continue
			}

			bad = append(bad, ckey)
			suggestions = append(suggestions, match.Suggest(ckey, pkeys, 1)...)
		}

		if len(bad) > 0 {
			inj.Errs.AddError(diagnostic.CodeUnexpectedKeys,
				"Unexpected keys at "+inj.Where()+": "+strings.Join(bad, ", "),
				inj.Where(), suggestions...)
		}

	case value.IsList(cval):
		// an empty shape list is open
		if value.IsEmpty(pval) {
			tree.Merge([]any{pval, cval})
		}

	default:
		value.SetProp(parent, key, cval)
	}
}
