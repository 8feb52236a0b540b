// Package env provides environment-variable lookup with required/optional
// semantics. All configuration for the pipeline is injected by the
// orchestrator as environment variables.
package env

import (
	"fmt"
	"os"
)

// Require returns the value of the named variable, or an error if it is
// unset or empty.
func Require(name string) (string, error) {
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("required environment variable %q is not set", name)
	}
	return v, nil
}

// GetDefault returns the value of the named variable, or def if it is
// unset or empty.
func GetDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
