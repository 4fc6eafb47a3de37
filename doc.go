// Package confmacro resolves macro placeholders embedded in nested
// configuration trees against a prioritized chain of named value sources.
//
// A macro is a structured node requesting substitution: a lookup key plus
// an optional default, a mandatory flag, and a callback. Macros appear in
// a tree either as Macro values built in code or as mappings carrying the
// reserved $key field (the form produced by the source loaders).
//
// The subpackages:
//
//   - source: YAML/JSON/JSONC tree loading, env snapshot sources, and a
//     JSONPath resolver
//   - testutil: fixture helpers for tree-shaped test data
//
// # Quick Start
//
//	engine := confmacro.NewEngine(confmacro.NewChain())
//	engine.Chain().Register("settings", map[string]any{
//	    "db": map[string]any{"host": "localhost"},
//	})
//
//	tree := map[string]any{
//	    "host": confmacro.NewMacro("db/host"),
//	    "port": confmacro.NewMacro("db/port").WithDefault(5432),
//	}
//	if _, err := engine.UpdateConfig(tree); err != nil {
//	    // handle resolution failure
//	}
//
// UpdateConfig mutates the tree in place and returns the same reference.
// Repositories are queried in registration order, index 0 first; the
// environment is registered under the name "env" at index 0 on
// construction and reset.
//
// The engine and chain are not synchronized: do not register sources or
// mutate a tree concurrently with a resolution pass.
package confmacro
