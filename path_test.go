package confmacro

import "testing"

func TestPath_String(t *testing.T) {
	if got := (Path{}).String(); got != "<root>" {
		t.Errorf("empty path = %q, want %q", got, "<root>")
	}
	if got := (Path{"a", "0", "b"}).String(); got != "a/0/b" {
		t.Errorf("path = %q, want %q", got, "a/0/b")
	}
}

func TestPath_ChildDoesNotAliasSiblings(t *testing.T) {
	parent := Path{"root"}
	first := parent.Child("a")
	second := parent.Child("b")

	if got := first.String(); got != "root/a" {
		t.Errorf("first = %q, want %q", got, "root/a")
	}
	if got := second.String(); got != "root/b" {
		t.Errorf("second = %q, want %q", got, "root/b")
	}
}

func TestPath_ParentName(t *testing.T) {
	tests := []struct {
		name string
		path Path
		want string
	}{
		{"named parent", Path{"branchA", "field"}, "branchA"},
		{"no parent", Path{"field"}, ""},
		{"empty", Path{}, ""},
		{"skips sequence index", Path{"servers", "0", "field"}, "servers"},
		{"skips default trace", Path{"branchA", "field", defaultTraceSegment}, "branchA"},
		{"nested indices", Path{"grid", "1", "2", "cell"}, "grid"},
		{"all indices", Path{"0", "1"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.ParentName(); got != tt.want {
				t.Errorf("ParentName(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
