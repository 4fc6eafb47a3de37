package confmacro

import "strings"

// Path is the ordered sequence of keys and sequence indices from the tree
// root to a node. Indices appear as their decimal string form. Synthetic
// segments (such as the default-lookup trace marker) start with '$'.
type Path []string

// defaultTraceSegment marks a default-chain lookup in error paths.
const defaultTraceSegment = "$default"

// String renders the path slash-separated, "<root>" when empty.
func (p Path) String() string {
	if len(p) == 0 {
		return "<root>"
	}
	return strings.Join(p, "/")
}

// Child returns a new path extended by one segment. The receiver is not
// modified; the copy keeps sibling branches from sharing backing arrays
// during traversal.
func (p Path) Child(segment string) Path {
	child := make(Path, len(p)+1)
	copy(child, p)
	child[len(p)] = segment
	return child
}

// ParentName returns the nearest named ancestor of the node this path
// points at: scanning backward from the element before the last, it skips
// sequence indices and synthetic '$' segments. Returns "" when no named
// ancestor exists.
func (p Path) ParentName() string {
	// Skip trailing synthetic segments so a default-chain lookup sees the
	// same parent as the macro that declared the default.
	end := len(p)
	for end > 0 && isSyntheticSegment(p[end-1]) {
		end--
	}
	for i := end - 2; i >= 0; i-- {
		seg := p[i]
		if isIndexSegment(seg) || isSyntheticSegment(seg) {
			continue
		}
		return seg
	}
	return ""
}

func isSyntheticSegment(seg string) bool {
	return strings.HasPrefix(seg, "$")
}

// isIndexSegment reports whether seg is a non-negative decimal integer,
// i.e. a sequence index rather than a mapping key.
func isIndexSegment(seg string) bool {
	if seg == "" {
		return false
	}
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return false
		}
	}
	return true
}
