package models

import "fmt"

// ErrorType represents different categories of errors
type ErrorType int

const (
	ErrDownload ErrorType = iota
	ErrCache
	ErrManifestParse
	ErrReportWrite
	ErrInvalidConfig
)

// String returns the string representation of ErrorType
func (e ErrorType) String() string {
	switch e {
	case ErrDownload:
		return "Download"
	case ErrCache:
		return "Cache"
	case ErrManifestParse:
		return "ManifestParse"
	case ErrReportWrite:
		return "ReportWrite"
	case ErrInvalidConfig:
		return "InvalidConfig"
	default:
		return "Unknown"
	}
}

// OpError represents an error while acquiring or comparing branch data
type OpError struct {
	Type   ErrorType
	Branch string
	Err    error
}

// Error implements the error interface
func (e *OpError) Error() string {
	if e.Branch != "" {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Branch, e.Err)
	}
	return fmt.Sprintf("[%s] %v", e.Type, e.Err)
}

// Unwrap returns the wrapped error
func (e *OpError) Unwrap() error {
	return e.Err
}
