package core

import "fmt"

// ConfigurationError reports a malformed or physically impossible value
// in user-supplied configuration or level data. It is fatal for the load
// or generation attempt that produced it, never for the process; callers
// surface the message and fall back or abort the attempt.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "config: " + e.Reason
	}
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// ConfigErrorf builds a ConfigurationError with a formatted reason.
func ConfigErrorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
