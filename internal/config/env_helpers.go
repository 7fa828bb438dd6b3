package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// envReader reads typed variables and remembers every value it could not parse,
// so a typo in the environment fails startup instead of silently using a default.
type envReader struct {
	errs []error
}

func (r *envReader) invalid(key, value, kind string) {
	r.errs = append(r.errs, fmt.Errorf("%s=%q is not a valid %s", key, value, kind))
}

func (r *envReader) Err() error {
	return errors.Join(r.errs...)
}

func (r *envReader) Int(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		r.invalid(key, value, "integer")
		return defaultValue
	}
	return intValue
}

func (r *envReader) Duration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		r.invalid(key, value, "duration")
		return defaultValue
	}
	return duration
}

func (r *envReader) Bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		r.invalid(key, value, "boolean")
		return defaultValue
	}
	return boolValue
}

func (r *envReader) String(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Slice splits a comma separated variable, dropping empty items.
func (r *envReader) Slice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
