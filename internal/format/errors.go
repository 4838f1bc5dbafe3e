package format

import "fmt"

// ConfigError reports an option value the formatter cannot work with.
// It is returned before any input is processed.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("format: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}
