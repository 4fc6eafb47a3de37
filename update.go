package confmacro

import "strconv"

// UpdateOptions adjusts an UpdateConfigWith pass.
type UpdateOptions struct {
	// Exclude lists mapping keys whose subtrees are skipped entirely.
	Exclude []string

	// ParentKey seeds the traversal path, supporting resumption mid-tree:
	// parent-dependent macros directly under the root expand against it.
	ParentKey string
}

// UpdateConfig resolves every macro in the tree rooted at root, writing
// results back in place, and returns the same root reference. See
// UpdateConfigWith.
func (e *Engine) UpdateConfig(root any) (any, error) {
	return e.UpdateConfigWith(root, UpdateOptions{})
}

// UpdateConfigWith is UpdateConfig with traversal options. The walk is
// depth-first and pre-order: each macro property is resolved, its result
// written back, fallback-template entries from the enclosing mapping's
// FallbackKey are copied onto mapping results that lack them, and only
// then does the walk descend — so copied fallback entries containing
// macros are resolved per sibling branch, with that branch's path context.
//
// A macro that resolves to absent (and is not mandatory) has its property
// overwritten with nil. On error the traversal aborts immediately; the
// tree must be treated as partially mutated. Non-object roots are a no-op.
func (e *Engine) UpdateConfigWith(root any, opts UpdateOptions) (any, error) {
	if IsMacroNode(root) {
		return root, nil
	}

	var path Path
	if opts.ParentKey != "" {
		path = Path{opts.ParentKey}
	}

	excluded := make(map[string]struct{}, len(opts.Exclude))
	for _, key := range opts.Exclude {
		excluded[key] = struct{}{}
	}

	if err := e.updateNode(root, path, excluded); err != nil {
		return root, err
	}
	return root, nil
}

func (e *Engine) updateNode(node any, path Path, excluded map[string]struct{}) error {
	switch n := node.(type) {
	case map[string]any:
		fallback, _ := n[FallbackKey].(map[string]any)
		for key, value := range n {
			if key == FallbackKey {
				continue
			}
			if _, skip := excluded[key]; skip {
				continue
			}
			if !isObjectNode(value) {
				continue
			}

			childPath := path.Child(key)
			result, found, err := e.Resolve(value, childPath)
			if err != nil {
				return err
			}
			if !found {
				result = nil
			}
			if IsMacroNode(value) {
				n[key] = result
			}

			if err := e.updateChild(result, fallback, childPath, excluded); err != nil {
				return err
			}
		}
	case []any:
		for i, value := range n {
			if !isObjectNode(value) {
				continue
			}

			childPath := path.Child(strconv.Itoa(i))
			result, found, err := e.Resolve(value, childPath)
			if err != nil {
				return err
			}
			if !found {
				result = nil
			}
			if IsMacroNode(value) {
				n[i] = result
			}

			if err := e.updateChild(result, nil, childPath, excluded); err != nil {
				return err
			}
		}
	}
	return nil
}

// updateChild applies fallback inheritance to a resolved mapping result,
// then recurses into it. Entries are copied as-is; macros among them are
// picked up by the recursive descent that follows.
func (e *Engine) updateChild(result any, fallback map[string]any, path Path, excluded map[string]struct{}) error {
	mapping, isMapping := result.(map[string]any)
	if isMapping && !IsMacroNode(result) {
		for key, value := range fallback {
			if _, exists := mapping[key]; !exists {
				mapping[key] = value
			}
		}
	}

	switch result.(type) {
	case map[string]any, []any:
		if IsMacroNode(result) {
			return nil
		}
		return e.updateNode(result, path, excluded)
	}
	return nil
}

// isObjectNode reports whether v participates in traversal: mappings,
// sequences, and macro values. Scalars are left untouched.
func isObjectNode(v any) bool {
	switch v.(type) {
	case map[string]any, []any, Macro, *Macro:
		return true
	}
	return false
}
