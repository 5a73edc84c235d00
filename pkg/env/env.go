// Package env holds small helpers for reading raw environment variables
// outside of the envconfig-managed config struct.
package env

import "os"

// Get reads an environment variable, falling back when it is unset or empty.
func Get(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}
