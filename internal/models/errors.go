package models

import (
	"errors"
	"fmt"
)

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrInvalidArch ErrorType = iota
	ErrInvalidConfig
	ErrDownload
	ErrDecompress
	ErrVerify
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrInvalidArch:
		return "InvalidArch"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrDownload:
		return "Download"
	case ErrDecompress:
		return "Decompress"
	case ErrVerify:
		return "Verify"
	default:
		return "Unknown"
	}
}

// StatsError represents an error raised while producing package statistics
type StatsError struct {
	Type ErrorType
	URL  string
	Err  error
}

// Error implements the error interface
func (e *StatsError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.URL, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *StatsError) Unwrap() error {
	return e.Err
}

// IsKind reports whether err wraps a StatsError of the given type
func IsKind(err error, kind ErrorType) bool {
	var se *StatsError
	if errors.As(err, &se) {
		return se.Type == kind
	}
	return false
}
