package config

import (
	"fmt"
	"strings"
)

// ValidationError reports invalid configuration values.
type ValidationError struct {
	Issues []string
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	return "invalid config: " + strings.Join(err.Issues, "; ")
}

// Validate checks a loaded config.
func Validate(cfg Config) error {
	var issues []string
	if strings.TrimSpace(cfg.DataDir) == "" {
		issues = append(issues, "data_dir is required")
	}
	switch strings.ToLower(strings.TrimSpace(cfg.LogLevel)) {
	case "debug", "info", "warn", "error":
	default:
		issues = append(issues, fmt.Sprintf("log_level %q (expected debug|info|warn|error)", cfg.LogLevel))
	}
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}
