package source

import (
	"testing"

	"github.com/randalmurphal/confmacro"
)

func TestDecode_NestedDefaultsBecomeMacros(t *testing.T) {
	tree := map[string]any{
		"url": map[string]any{
			"$key": "URL",
			"$default": map[string]any{
				"$key":     "FALLBACK_URL",
				"$default": "http://localhost",
			},
		},
	}

	if _, err := Decode(tree); err != nil {
		t.Fatal(err)
	}

	outer, ok := tree["url"].(confmacro.Macro)
	if !ok {
		t.Fatalf("url = %T, want Macro", tree["url"])
	}

	def, ok := outer.Default()
	if !ok {
		t.Fatal("outer macro has no default")
	}
	inner, ok := def.(confmacro.Macro)
	if !ok {
		t.Fatalf("default = %T, want Macro", def)
	}
	if inner.Key() != "FALLBACK_URL" {
		t.Errorf("inner key = %q, want FALLBACK_URL", inner.Key())
	}
}

func TestDecode_FallbackTemplateContentsDecoded(t *testing.T) {
	tree := map[string]any{
		confmacro.FallbackKey: map[string]any{
			"url": map[string]any{"$key": "?_URL"},
		},
	}

	if _, err := Decode(tree); err != nil {
		t.Fatal(err)
	}

	template := tree[confmacro.FallbackKey].(map[string]any)
	m, ok := template["url"].(confmacro.Macro)
	if !ok {
		t.Fatalf("template url = %T, want Macro", template["url"])
	}
	if !m.ParentDependent() {
		t.Error("decoded macro lost its parent marker")
	}
}

func TestDecode_RejectsSerializedCallback(t *testing.T) {
	tree := map[string]any{
		"k": map[string]any{"$key": "K", "$callback": "not invocable"},
	}

	if _, err := Decode(tree); err == nil {
		t.Error("serialized $callback did not error")
	}
}

func TestEncode_DoesNotMutateInput(t *testing.T) {
	tree := map[string]any{"m": confmacro.NewMacro("K")}

	encoded, err := Encode(tree)
	if err != nil {
		t.Fatal(err)
	}

	if _, stillMacro := tree["m"].(confmacro.Macro); !stillMacro {
		t.Error("Encode mutated the input tree")
	}

	out := encoded.(map[string]any)["m"].(map[string]any)
	if out[confmacro.KeyField] != "K" {
		t.Errorf("encoded $key = %v, want K", out[confmacro.KeyField])
	}
	if _, ok := out[confmacro.MandatoryField]; ok {
		t.Error("non-mandatory macro emitted $mandatory")
	}
}
