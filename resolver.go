package confmacro

import "strconv"

// Resolver looks up a slash-split key path inside one registered source.
// The second return distinguishes "found" from "absent": false means keep
// searching later repositories; true terminates the search even when the
// value is nil, zero, false, or empty.
//
// The macro and full tree path are passed for resolvers that need more
// context than the segments (see source.JSONPath).
type Resolver func(source any, segments []string, m Macro, path Path) (any, bool)

// ResolvePath is the default resolver: it descends into source one level
// per segment and returns whatever the final descent produced. Mappings
// are indexed by key; sequences by decimal index. Any failed step is
// absent.
func ResolvePath(source any, segments []string, _ Macro, _ Path) (any, bool) {
	current := source
	for _, seg := range segments {
		next, ok := descend(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

func descend(v any, seg string) (any, bool) {
	switch node := v.(type) {
	case map[string]any:
		out, ok := node[seg]
		return out, ok
	case map[string]string:
		out, ok := node[seg]
		return out, ok
	case map[any]any:
		out, ok := node[seg]
		return out, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(node) {
			return nil, false
		}
		return node[i], true
	}
	return nil, false
}
