package confmacro

import (
	"reflect"
	"testing"
)

func newTestChain() *Chain {
	return NewChainWithEnv(map[string]string{"URL": "from-env"})
}

func TestChain_StartsWithEnv(t *testing.T) {
	chain := newTestChain()

	if got := chain.Names(); !reflect.DeepEqual(got, []string{EnvName}) {
		t.Errorf("names = %v, want [env]", got)
	}

	value, ok := chain.Lookup([]string{"URL"}, Macro{}, nil)
	if !ok || value != "from-env" {
		t.Errorf("lookup URL = %v, %v, want from-env, true", value, ok)
	}
}

func TestChain_RegisterAtIndexOrdering(t *testing.T) {
	chain := newTestChain()
	chain.Register("x", map[string]any{}, AtIndex(0))
	chain.Register("y", map[string]any{}, AtIndex(0))

	want := []string{"y", "x", EnvName}
	if got := chain.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestChain_RegisterAppendsByDefault(t *testing.T) {
	chain := newTestChain()
	chain.Register("low", map[string]any{})

	want := []string{EnvName, "low"}
	if got := chain.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestChain_RegisterClampsIndex(t *testing.T) {
	chain := newTestChain()
	chain.Register("far", map[string]any{}, AtIndex(99))
	chain.Register("neg", map[string]any{}, AtIndex(-5))

	want := []string{"neg", EnvName, "far"}
	if got := chain.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}
}

func TestChain_RegisterReplacesExistingName(t *testing.T) {
	chain := newTestChain()
	chain.Register("src", map[string]any{"k": "old"})
	chain.Register("src", map[string]any{"k": "new"}, AtIndex(0))

	want := []string{"src", EnvName}
	if got := chain.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("names = %v, want %v", got, want)
	}

	value, ok := chain.Lookup([]string{"k"}, Macro{}, nil)
	if !ok || value != "new" {
		t.Errorf("lookup k = %v, %v, want new, true", value, ok)
	}
}

func TestChain_Unregister(t *testing.T) {
	chain := newTestChain()
	chain.Register("src", map[string]any{})

	if !chain.Unregister("src") {
		t.Error("Unregister(src) = false, want true")
	}
	if chain.Unregister("src") {
		t.Error("second Unregister(src) = true, want false")
	}
	if chain.Unregister("never-registered") {
		t.Error("Unregister on absent name = true, want false")
	}
}

func TestChain_NamesIsSnapshot(t *testing.T) {
	chain := newTestChain()
	names := chain.Names()
	names[0] = "mutated"

	if got := chain.Names()[0]; got != EnvName {
		t.Errorf("names[0] = %q after caller mutation, want %q", got, EnvName)
	}
}

func TestChain_Reset(t *testing.T) {
	chain := newTestChain()
	chain.Register("a", map[string]any{}).Register("b", map[string]any{})

	chain.Reset()

	if got := chain.Names(); !reflect.DeepEqual(got, []string{EnvName}) {
		t.Errorf("names after reset = %v, want [env]", got)
	}

	// The injected environment survives reset.
	value, ok := chain.Lookup([]string{"URL"}, Macro{}, nil)
	if !ok || value != "from-env" {
		t.Errorf("lookup URL after reset = %v, %v, want from-env, true", value, ok)
	}
}

func TestChain_LookupPriorityOrder(t *testing.T) {
	chain := newTestChain()
	chain.Register("first", map[string]any{"k": "a"}, AtIndex(0))
	chain.Register("second", map[string]any{"k": "b"}, AtIndex(1))

	value, ok := chain.Lookup([]string{"k"}, Macro{}, nil)
	if !ok || value != "a" {
		t.Errorf("lookup k = %v, %v, want a, true", value, ok)
	}
}

func TestChain_LookupFalsyValuesTerminateSearch(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"zero", 0},
		{"false", false},
		{"empty string", ""},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := newTestChain()
			chain.Register("falsy", map[string]any{"k": tt.value}, AtIndex(0))
			chain.Register("other", map[string]any{"k": "should not win"}, AtIndex(1))

			value, ok := chain.Lookup([]string{"k"}, Macro{}, nil)
			if !ok {
				t.Fatal("falsy present value reported as absent")
			}
			if value != tt.value {
				t.Errorf("value = %v, want %v", value, tt.value)
			}
		})
	}
}

func TestChain_CustomResolver(t *testing.T) {
	fixed := func(_ any, _ []string, _ Macro, _ Path) (any, bool) {
		return "always", true
	}

	chain := newTestChain()
	chain.Register("fixed", nil, AtIndex(0), WithResolver(fixed))

	value, ok := chain.Lookup([]string{"anything"}, Macro{}, nil)
	if !ok || value != "always" {
		t.Errorf("lookup = %v, %v, want always, true", value, ok)
	}
}

func TestDefault_SingleInstance(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned distinct engines")
	}
	if Default().Chain() == nil {
		t.Error("default engine has no chain")
	}
}
