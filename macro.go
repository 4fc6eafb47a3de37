package confmacro

import (
	"fmt"
	"strings"
)

// Reserved field names for the raw mapping form of a macro. A mapping node
// carrying KeyField is classified as a macro when the tree is walked;
// everything else is plain data.
const (
	// KeyField holds the lookup key, optionally slash-separated and
	// optionally prefixed with ParentMarker.
	KeyField = "$key"

	// DefaultField holds the value (or nested macro) used when lookup
	// finds nothing.
	DefaultField = "$default"

	// MandatoryField holds a bool demanding a non-absent final result.
	MandatoryField = "$mandatory"

	// CallbackField holds a Callback to post-process the resolved value.
	// Only attachable in code; serialized trees cannot carry one.
	CallbackField = "$callback"

	// FallbackKey is the reserved sibling key whose mapping value is
	// inherited by sibling branches during UpdateConfig.
	FallbackKey = "$defaults"

	// ParentMarker, as a key prefix, is replaced at resolution time with
	// the nearest named ancestor key of the macro's tree position.
	ParentMarker = "?"
)

// Callback post-processes a resolved value. It receives the lookup result
// (found=false means the chain and defaults produced nothing), the macro
// being resolved, and the tree path. Its return values replace the result;
// it runs even on an absent result so it can synthesize one.
type Callback func(value any, found bool, m Macro, path Path) (any, bool)

// Macro is one substitution request: a lookup key plus optional default,
// mandatory flag, and callback. The zero value is not a valid macro; use
// NewMacro. Macro is an immutable value — the With* methods return
// modified copies, so a macro template can be reused across tree positions
// without shared-mutation surprises.
type Macro struct {
	key        string
	def        any
	hasDefault bool
	mandatory  bool
	callback   Callback
}

// NewMacro returns a macro that looks up key. The key may be
// slash-separated for nested lookup and may start with ParentMarker.
func NewMacro(key string) Macro {
	return Macro{key: key}
}

// Key returns the lookup key as declared (marker not yet expanded).
func (m Macro) Key() string { return m.key }

// Default returns the declared default and whether one was declared.
// A declared nil default is distinct from no default.
func (m Macro) Default() (any, bool) { return m.def, m.hasDefault }

// Mandatory reports whether resolution must produce a value.
func (m Macro) Mandatory() bool { return m.mandatory }

// HasCallback reports whether a callback is attached.
func (m Macro) HasCallback() bool { return m.callback != nil }

// ParentDependent reports whether the key carries the parent marker.
func (m Macro) ParentDependent() bool {
	return strings.HasPrefix(m.key, ParentMarker)
}

// WithDefault returns a copy declaring def as the fallback value. def may
// itself be a Macro, forming a default chain.
func (m Macro) WithDefault(def any) Macro {
	m.def = def
	m.hasDefault = true
	return m
}

// WithMandatory returns a copy with the mandatory flag set to v.
func (m Macro) WithMandatory(v bool) Macro {
	m.mandatory = v
	return m
}

// WithCallback returns a copy with cb attached.
func (m Macro) WithCallback(cb Callback) Macro {
	m.callback = cb
	return m
}

// WithParentDependent returns a copy whose key carries (v=true) or drops
// (v=false) the parent marker prefix.
func (m Macro) WithParentDependent(v bool) Macro {
	has := strings.HasPrefix(m.key, ParentMarker)
	switch {
	case v && !has:
		m.key = ParentMarker + m.key
	case !v && has:
		m.key = strings.TrimPrefix(m.key, ParentMarker)
	}
	return m
}

// IsMacroNode reports whether v would be classified as a macro by the
// engine: either a Macro value or a mapping carrying KeyField.
func IsMacroNode(v any) bool {
	switch n := v.(type) {
	case Macro:
		return true
	case *Macro:
		return n != nil
	case map[string]any:
		_, ok := n[KeyField]
		return ok
	}
	return false
}

// asMacro classifies a tree value at the macro boundary. The bool reports
// whether v is macro-shaped at all; the error reports a macro-shaped node
// with malformed reserved fields.
func asMacro(v any, path Path) (Macro, bool, error) {
	switch n := v.(type) {
	case Macro:
		return n, true, nil
	case *Macro:
		if n == nil {
			return Macro{}, false, nil
		}
		return *n, true, nil
	case map[string]any:
		rawKey, ok := n[KeyField]
		if !ok {
			return Macro{}, false, nil
		}
		key, ok := rawKey.(string)
		if !ok || key == "" {
			return Macro{}, true, configErr(path, ErrInvalidMacroKey)
		}
		m := NewMacro(key)
		if def, ok := n[DefaultField]; ok {
			m = m.WithDefault(def)
		}
		if raw, ok := n[MandatoryField]; ok {
			b, ok := raw.(bool)
			if !ok {
				return Macro{}, true, configErr(path,
					fmt.Errorf("%w: %s is not a bool", ErrInvalidMacroKey, MandatoryField))
			}
			m = m.WithMandatory(b)
		}
		if raw, ok := n[CallbackField]; ok {
			cb, ok := raw.(Callback)
			if !ok {
				return Macro{}, true, configErr(path, ErrInvalidCallback)
			}
			m = m.WithCallback(cb)
		}
		return m, true, nil
	}
	return Macro{}, false, nil
}
