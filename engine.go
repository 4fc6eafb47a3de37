package confmacro

import (
	"strings"
)

// Engine resolves macros against a repository chain.
type Engine struct {
	chain *Chain
}

// NewEngine returns an engine over the given chain.
func NewEngine(chain *Chain) *Engine {
	return &Engine{chain: chain}
}

// Chain exposes the engine's repository chain for registration calls.
func (e *Engine) Chain() *Chain {
	return e.chain
}

// Resolve determines the effective value of node at the given tree path.
//
// Non-macro nodes pass through untouched: the returned value is node
// itself with found=true. For macros, the repository chain is queried in
// priority order; on a miss the macro's default is resolved recursively
// (defaults may themselves be macros); a declared callback then
// post-processes the result, running even when nothing was found so it
// can synthesize a value. found=false is a legal outcome for non-mandatory
// macros and is never conflated with a found nil, zero, false, or empty
// string.
func (e *Engine) Resolve(node any, path Path) (value any, found bool, err error) {
	m, isMacro, err := asMacro(node, path)
	if err != nil {
		return nil, false, err
	}
	if !isMacro {
		return node, true, nil
	}
	return e.resolveMacro(m, path)
}

func (e *Engine) resolveMacro(m Macro, path Path) (any, bool, error) {
	key := m.Key()
	if key == "" {
		return nil, false, configErr(path, ErrInvalidMacroKey)
	}

	if strings.HasPrefix(key, ParentMarker) {
		parent := path.ParentName()
		key = parent + strings.TrimPrefix(key, ParentMarker)
		if key == "" {
			return nil, false, configErr(path, ErrInvalidMacroKey)
		}
	}

	segments := strings.Split(key, "/")
	value, found := e.chain.Lookup(segments, m, path)

	if !found {
		if def, ok := m.Default(); ok {
			var err error
			value, found, err = e.Resolve(def, path.Child(defaultTraceSegment))
			if err != nil {
				return nil, false, err
			}
		}
	}

	if m.callback != nil {
		value, found = m.callback(value, found, m, path)
	}

	if !found && m.Mandatory() {
		return nil, false, configErr(path, ErrMandatoryValueMissing)
	}
	return value, found, nil
}
