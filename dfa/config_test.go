package dfa

import "testing"

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestConfigValidateRejectsNonPositiveMaxStates(t *testing.T) {
	c := Config{MaxStates: 0}
	err := c.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error for MaxStates 0")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("Validate() error type = %T, want *ConfigError", err)
	}
}
