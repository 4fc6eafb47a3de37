package source

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML parses YAML into a configuration tree and decodes macro
// mappings into Macro values. The document root must be a mapping.
func LoadYAML(data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if tree == nil {
		return map[string]any{}, nil
	}
	if _, err := Decode(tree); err != nil {
		return nil, fmt.Errorf("decode macros: %w", err)
	}
	return tree, nil
}

// LoadYAMLFile reads and parses a YAML configuration file.
func LoadYAMLFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tree, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// SaveYAMLFile encodes macros back to their mapping form and writes the
// tree as YAML. Trees containing callback-bearing macros cannot be saved.
func SaveYAMLFile(path string, tree map[string]any) error {
	encoded, err := Encode(tree)
	if err != nil {
		return fmt.Errorf("encode macros: %w", err)
	}

	data, err := yaml.Marshal(encoded)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
