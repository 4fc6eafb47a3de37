package confmacro

import (
	"os"
	"strings"
	"sync"
)

// EnvName is the reserved repository name for the built-in environment
// source registered at index 0 on construction and reset.
const EnvName = "env"

// EnvFunc supplies the environment snapshot used for the built-in source.
// The default implementation snapshots the process environment; tests
// inject a fixed map via NewChainWithEnv.
type EnvFunc func() map[string]string

// ProcessEnv snapshots the process environment as a flat string map.
func ProcessEnv() map[string]string {
	environ := os.Environ()
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

type repository struct {
	name     string
	source   any
	resolver Resolver
}

// Chain is a priority-ordered list of named value sources. Index 0 is the
// highest priority. Register and Unregister are not safe for use during an
// in-flight resolution pass; single-writer discipline is the caller's
// responsibility.
type Chain struct {
	envFn   EnvFunc
	entries []repository
}

// NewChain returns a chain holding one repository: the process environment
// under the name "env".
func NewChain() *Chain {
	return NewChainWithEnv(nil)
}

// NewChainWithEnv is NewChain with an injected environment map instead of
// the process snapshot. Reset restores the same injected map.
func NewChainWithEnv(env map[string]string) *Chain {
	fn := ProcessEnv
	if env != nil {
		fn = func() map[string]string { return env }
	}
	c := &Chain{envFn: fn}
	return c.Reset()
}

// RegisterOption adjusts a Register call.
type RegisterOption func(*registerConfig)

type registerConfig struct {
	index    int
	hasIndex bool
	resolver Resolver
}

// AtIndex inserts the repository at position i instead of appending.
// Out-of-range indices are clamped to the ends.
func AtIndex(i int) RegisterOption {
	return func(rc *registerConfig) {
		rc.index = i
		rc.hasIndex = true
	}
}

// WithResolver uses r instead of ResolvePath for the repository.
func WithResolver(r Resolver) RegisterOption {
	return func(rc *registerConfig) {
		rc.resolver = r
	}
}

// Register inserts a named source into the chain and returns the chain for
// chaining. Without options the source is appended with the default
// resolver. Re-registering an existing name removes the prior entry first,
// then inserts at the requested position.
func (c *Chain) Register(name string, source any, opts ...RegisterOption) *Chain {
	rc := registerConfig{resolver: ResolvePath}
	for _, opt := range opts {
		opt(&rc)
	}

	c.Unregister(name)

	index := len(c.entries)
	if rc.hasIndex {
		index = rc.index
		if index < 0 {
			index = 0
		}
		if index > len(c.entries) {
			index = len(c.entries)
		}
	}

	entry := repository{name: name, source: source, resolver: rc.resolver}
	c.entries = append(c.entries, repository{})
	copy(c.entries[index+1:], c.entries[index:])
	c.entries[index] = entry
	return c
}

// Unregister removes the repository with the given name. It reports
// whether a removal occurred; a missing name is not an error.
func (c *Chain) Unregister(name string) bool {
	for i, entry := range c.entries {
		if entry.name == name {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns a snapshot of the registered repository names in priority
// order.
func (c *Chain) Names() []string {
	names := make([]string, len(c.entries))
	for i, entry := range c.entries {
		names[i] = entry.name
	}
	return names
}

// Reset clears the chain and re-registers the environment source at index
// 0, re-reading the snapshot through the chain's environment function.
func (c *Chain) Reset() *Chain {
	c.entries = c.entries[:0]
	return c.Register(EnvName, c.envFn())
}

// Lookup queries the repositories in priority order and returns the first
// found value. The bool is false only when every repository reported
// absent.
func (c *Chain) Lookup(segments []string, m Macro, path Path) (any, bool) {
	for _, entry := range c.entries {
		if value, ok := entry.resolver(entry.source, segments, m, path); ok {
			return value, true
		}
	}
	return nil, false
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine, constructing it on first use
// over a NewChain. Libraries should prefer an explicit NewEngine; Default
// exists for the single-instance usage pattern.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine(NewChain())
	})
	return defaultEngine
}
