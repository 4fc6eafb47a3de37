package source

import (
	"strings"

	"github.com/ohler55/ojg/jp"

	"github.com/randalmurphal/confmacro"
)

// JSONPath returns a resolver that evaluates the macro's key as a JSONPath
// expression against the registered source instead of the default
// segment-by-segment descent. The first match wins; no match is absent.
//
// Register it alongside a source:
//
//	chain.Register("queries", data, confmacro.WithResolver(source.JSONPath()))
//
// The slash-split segments are rejoined with '.' before parsing, so plain
// keys like "db/host" behave as "db.host" while full expressions such as
// "$.servers[0].host" pass through untouched.
func JSONPath() confmacro.Resolver {
	return func(src any, segments []string, _ confmacro.Macro, _ confmacro.Path) (any, bool) {
		expr, err := jp.ParseString(strings.Join(segments, "."))
		if err != nil {
			return nil, false
		}

		results := expr.Get(src)
		if len(results) == 0 {
			return nil, false
		}
		return results[0], true
	}
}
