package source

import (
	"strings"

	"github.com/randalmurphal/confmacro"
)

// Environ snapshots the process environment as a flat string map, the
// shape the built-in "env" repository uses.
func Environ() map[string]string {
	return confmacro.ProcessEnv()
}

// EnvironPrefix snapshots only the environment variables starting with
// prefix, with the prefix stripped from the keys. With prefix "MYAPP_",
// MYAPP_API_URL becomes API_URL. Useful as a namespaced repository
// alongside the built-in one:
//
//	chain.Register("app", source.EnvironPrefix("MYAPP_"), confmacro.AtIndex(0))
func EnvironPrefix(prefix string) map[string]string {
	env := confmacro.ProcessEnv()
	out := make(map[string]string)
	for key, value := range env {
		if strings.HasPrefix(key, prefix) {
			out[strings.TrimPrefix(key, prefix)] = value
		}
	}
	return out
}
