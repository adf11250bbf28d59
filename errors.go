// Package queryparser carries the shared configuration for the doc-search
// query parser toolchain. The parsing itself lives in the parser and
// tokenizer subpackages.
package queryparser

import "errors"

// Common errors used throughout the queryparser package
var (
	// ErrConfigValidation is returned when configuration validation fails.
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrInvalidOutputFormat is returned for an unknown output format name.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
