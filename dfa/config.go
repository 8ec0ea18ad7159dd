package dfa

import "fmt"

// Config controls subset construction (SPEC_FULL §4.6).
//
// Example:
//
//	config := dfa.DefaultConfig()
//	config.MaxStates = 50000
//	d, err := dfa.CompileOrdered(n, start, config)
type Config struct {
	// MaxStates bounds the number of DFA states subset construction may
	// produce before giving up with ErrTooManyStates. Pattern alternatives
	// and repetitions can blow up the reachable subset count; this is a
	// compile-time resource limit, not a runtime error (SPEC_FULL §7).
	// Default: 100000
	MaxStates int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxStates: 100_000,
	}
}

// Validate reports whether c is usable, returning a *ConfigError otherwise.
func (c Config) Validate() error {
	if c.MaxStates < 1 {
		return &ConfigError{Field: "MaxStates", Message: "must be at least 1"}
	}
	return nil
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("dfa: invalid config field %s: %s", e.Field, e.Message)
}
