package util

import "os"

// Getenv returns the environment variable's value, or defaultValue when the
// variable is unset or empty
func Getenv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}

	return defaultValue
}
