package core

import (
	"errors"
	"testing"
)

func TestConfigurationErrorMessage(t *testing.T) {
	err := ConfigErrorf("physics.gravity", "must be positive, got %g", -3.0)
	want := "config: physics.gravity: must be positive, got -3"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, expected %q", got, want)
	}

	bare := &ConfigurationError{Reason: "no config file found"}
	if got := bare.Error(); got != "config: no config file found" {
		t.Errorf("Error() without field = %q", got)
	}
}

func TestConfigurationErrorAs(t *testing.T) {
	var err error = ConfigErrorf("camera.smoothing", "must be positive")

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatal("errors.As should match ConfigurationError")
	}
	if cfgErr.Field != "camera.smoothing" {
		t.Errorf("Field = %q, expected camera.smoothing", cfgErr.Field)
	}
}
