package confmacro

import (
	"errors"
	"fmt"
)

// Macro resolution errors
var (
	// ErrInvalidMacroKey indicates a macro's key is missing, empty, or not a string.
	ErrInvalidMacroKey = errors.New("invalid macro key")

	// ErrMandatoryValueMissing indicates a mandatory macro resolved to no value.
	ErrMandatoryValueMissing = errors.New("mandatory value missing")

	// ErrInvalidCallback indicates a macro declares a callback that is not invocable.
	ErrInvalidCallback = errors.New("macro callback is not invocable")
)

// ConfigError is the error category for all macro resolution failures.
// It carries the full path from the tree root to the offending node.
type ConfigError struct {
	// Path locates the node that failed to resolve.
	Path Path

	// Err is the underlying sentinel (ErrInvalidMacroKey,
	// ErrMandatoryValueMissing, or ErrInvalidCallback), possibly annotated.
	Err error
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// configErr wraps a sentinel with the offending path.
func configErr(path Path, err error) error {
	return &ConfigError{Path: path, Err: err}
}

// IsConfigError reports whether err is a macro resolution failure.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// ErrorPath extracts the offending node path from a resolution failure.
// The second return is false if err is not a ConfigError.
func ErrorPath(err error) (Path, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce.Path, true
	}
	return nil, false
}
