// Package config reads configuration from the environment with fallbacks.
package config

import (
	"log"
	"os"
	"strconv"
)

// Get returns the value of the environment variable, or fallback when unset
// or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetFloat is Get for numeric settings. Unparseable values are logged and
// replaced with the fallback rather than aborting startup.
func GetFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %g", key, raw, fallback)
		return fallback
	}
	return v
}
