package config

import "strings"

// ConfigError collects every problem found while loading a config file
// so they can be reported together.
type ConfigError struct {
	Path    string   // file being loaded, if known
	Missing []string // unresolved ${VAR} references
	Errors  []string // validation failures, one per field
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		b.WriteString("config " + e.Path + ":\n")
	}
	if len(e.Missing) > 0 {
		b.WriteString("missing environment variables: " + strings.Join(e.Missing, ", "))
		if len(e.Errors) > 0 {
			b.WriteByte('\n')
		}
	}
	if len(e.Errors) > 0 {
		b.WriteString("validation failed:")
		for _, msg := range e.Errors {
			b.WriteString("\n  - " + msg)
		}
	}
	return b.String()
}

// HasErrors reports whether anything was collected.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing)+len(e.Errors) > 0
}
