// Package source loads configuration trees from YAML, JSON, and JSONC,
// provides environment snapshot sources, and supplies a JSONPath resolver
// for registered repositories.
//
// Loaded trees are plain map[string]any / []any nesting; mappings carrying
// the reserved $key field are decoded into confmacro.Macro values so the
// engine sees typed macros rather than raw maps. Encode reverses the
// decoding for saving (macros with callbacks cannot be serialized).
package source
