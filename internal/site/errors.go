package site

import (
	"errors"
	"fmt"
)

// Error kinds, matched with errors.Is against a *ConfigError.
var (
	ErrMalformedRoute  = errors.New("malformed route")
	ErrEmptyGroupTitle = errors.New("empty group title")
	ErrDuplicateRoute  = errors.New("duplicate route")
	ErrInvalidBasePath = errors.New("invalid base path")
	ErrInvalidPlugin   = errors.New("invalid plugin setting")
	ErrInvalidEntry    = errors.New("invalid sidebar entry")
	ErrNoConfiguration = errors.New("no configuration declared")
)

// ConfigError reports an invalid site configuration. Path holds the offending
// route or base path when one applies; Location points into the sidebar tree.
type ConfigError struct {
	Reason   string
	Path     string
	Location string
	kind     error
}

func newConfigError(kind error, reason, path, location string) *ConfigError {
	return &ConfigError{Reason: reason, Path: path, Location: location, kind: kind}
}

func (e *ConfigError) Error() string {
	msg := "invalid site config: " + e.Reason
	if e.Path != "" {
		msg += fmt.Sprintf(" (path %q)", e.Path)
	}
	if e.Location != "" {
		msg += " at " + e.Location
	}
	return msg
}

// Unwrap exposes the error kind.
func (e *ConfigError) Unwrap() error { return e.kind }

// Kind returns the sentinel describing the failure.
func (e *ConfigError) Kind() error { return e.kind }
