// Package testutil provides utilities for testing with tree-shaped data.
package testutil

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/randalmurphal/confmacro/source"
)

// LoadFixture loads a fixture file from the testdata directory.
// The path is relative to the testdata directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	fullPath := filepath.Join("testdata", path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return data
}

// LoadTreeFixture loads a fixture file and parses it into a configuration
// tree. The format is chosen by extension: .yaml/.yml, .json, or .jsonc.
func LoadTreeFixture(t *testing.T, path string) map[string]any {
	t.Helper()

	data := LoadFixture(t, path)

	var (
		tree map[string]any
		err  error
	)
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		tree, err = source.LoadYAML(data)
	case ".jsonc":
		tree, err = source.LoadJSONC(data)
	default:
		tree, err = source.LoadJSON(data)
	}
	if err != nil {
		t.Fatalf("failed to parse fixture %s: %v", path, err)
	}

	return tree
}

// MustTree parses YAML into a tree, panicking on error. Use this for test
// setup outside of test functions.
func MustTree(data string) map[string]any {
	tree, err := source.LoadYAML([]byte(data))
	if err != nil {
		panic("testutil: bad tree literal: " + err.Error())
	}
	return tree
}

// AssertTreeEqual fails the test when two trees differ structurally.
func AssertTreeEqual(t *testing.T, got, want any) {
	t.Helper()

	if !reflect.DeepEqual(got, want) {
		t.Errorf("tree mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}
