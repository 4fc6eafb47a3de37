package source

import (
	"fmt"

	"github.com/randalmurphal/confmacro"
)

// Decode walks a loaded tree and converts every mapping carrying the
// reserved $key field into a confmacro.Macro value. Fallback templates
// (under $defaults) are decoded too, so macros inside them resolve once
// copied onto sibling branches. The tree is rewritten in place and the
// same reference returned.
func Decode(tree any) (any, error) {
	return decodeNode(tree)
}

func decodeNode(node any) (any, error) {
	switch n := node.(type) {
	case map[string]any:
		if _, ok := n[confmacro.KeyField]; ok {
			return decodeMacro(n)
		}
		for key, value := range n {
			decoded, err := decodeNode(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			n[key] = decoded
		}
		return n, nil
	case []any:
		for i, value := range n {
			decoded, err := decodeNode(value)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			n[i] = decoded
		}
		return n, nil
	}
	return node, nil
}

func decodeMacro(raw map[string]any) (confmacro.Macro, error) {
	key, ok := raw[confmacro.KeyField].(string)
	if !ok || key == "" {
		return confmacro.Macro{}, fmt.Errorf("%s must be a non-empty string", confmacro.KeyField)
	}

	m := confmacro.NewMacro(key)

	if def, ok := raw[confmacro.DefaultField]; ok {
		decoded, err := decodeNode(def)
		if err != nil {
			return confmacro.Macro{}, fmt.Errorf("%s: %w", confmacro.DefaultField, err)
		}
		m = m.WithDefault(decoded)
	}

	if rawMandatory, ok := raw[confmacro.MandatoryField]; ok {
		mandatory, ok := rawMandatory.(bool)
		if !ok {
			return confmacro.Macro{}, fmt.Errorf("%s must be a bool", confmacro.MandatoryField)
		}
		m = m.WithMandatory(mandatory)
	}

	if _, ok := raw[confmacro.CallbackField]; ok {
		return confmacro.Macro{}, fmt.Errorf("%s cannot be declared in serialized form", confmacro.CallbackField)
	}

	return m, nil
}

// Encode is the inverse of Decode: Macro values become mappings with the
// reserved fields, suitable for marshaling. Macros carrying callbacks are
// rejected, since a callback has no serialized form. The input tree is not
// modified; Encode returns a structural copy wherever rewriting was
// needed.
func Encode(tree any) (any, error) {
	switch n := tree.(type) {
	case confmacro.Macro:
		return encodeMacro(n)
	case *confmacro.Macro:
		if n == nil {
			return nil, nil
		}
		return encodeMacro(*n)
	case map[string]any:
		out := make(map[string]any, len(n))
		for key, value := range n {
			encoded, err := Encode(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = encoded
		}
		return out, nil
	case []any:
		out := make([]any, len(n))
		for i, value := range n {
			encoded, err := Encode(value)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = encoded
		}
		return out, nil
	}
	return tree, nil
}

func encodeMacro(m confmacro.Macro) (map[string]any, error) {
	if m.HasCallback() {
		return nil, fmt.Errorf("macro %q: %s cannot be serialized", m.Key(), confmacro.CallbackField)
	}

	out := map[string]any{confmacro.KeyField: m.Key()}
	if def, ok := m.Default(); ok {
		encoded, err := Encode(def)
		if err != nil {
			return nil, fmt.Errorf("macro %q: %s: %w", m.Key(), confmacro.DefaultField, err)
		}
		out[confmacro.DefaultField] = encoded
	}
	if m.Mandatory() {
		out[confmacro.MandatoryField] = true
	}
	return out, nil
}
