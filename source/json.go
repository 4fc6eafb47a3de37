package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/jsonc"
)

// LoadJSON parses JSON into a configuration tree and decodes macro
// mappings into Macro values. The document root must be an object.
func LoadJSON(data []byte) (map[string]any, error) {
	parsed, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	tree, ok := parsed.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("json root is %T, want object", parsed)
	}
	if _, err := Decode(tree); err != nil {
		return nil, fmt.Errorf("decode macros: %w", err)
	}
	return tree, nil
}

// LoadJSONC parses JSONC (JSON extended with // and /* */ comments and
// trailing commas) by stripping the extensions first, then loading the
// result as JSON.
func LoadJSONC(data []byte) (map[string]any, error) {
	return LoadJSON(jsonc.ToJSON(data))
}

// LoadJSONFile reads and parses a JSON or JSONC configuration file.
// Files with the .jsonc extension get comment stripping.
func LoadJSONFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	load := LoadJSON
	if filepath.Ext(path) == ".jsonc" {
		load = LoadJSONC
	}

	tree, err := load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// DumpJSON encodes macros back to their mapping form and renders the tree
// as indented JSON.
func DumpJSON(tree map[string]any) ([]byte, error) {
	encoded, err := Encode(tree)
	if err != nil {
		return nil, fmt.Errorf("encode macros: %w", err)
	}
	return []byte(oj.JSON(encoded, 2)), nil
}
