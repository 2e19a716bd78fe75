package errors

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrTypeExtraction - a comparison document could not be parsed into
	// text. Non-fatal: other documents keep processing.
	ErrTypeExtraction ErrorType = "EXTRACTION"
	// ErrTypeSchema - none of the semantic columns could be resolved from
	// the master table. Fatal for the run.
	ErrTypeSchema ErrorType = "SCHEMA"
	// ErrTypeMaster - the master table resolved columns but yielded zero
	// usable product rows. Fatal for the run.
	ErrTypeMaster ErrorType = "MASTER"
	// ErrTypeValidation - invalid run parameters or input files.
	ErrTypeValidation ErrorType = "VALIDATION"
	// ErrTypeExport - a report file could not be written.
	ErrTypeExport ErrorType = "EXPORT"
	// ErrTypeConfig - configuration could not be loaded or resolved.
	ErrTypeConfig ErrorType = "CONFIG"
)

// AppError represents an application-specific error
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// IsType reports whether err (or anything it wraps) is an AppError of the
// given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// NewExtractionError creates a per-document extraction error
func NewExtractionError(document string, cause error) *AppError {
	return NewAppError(ErrTypeExtraction, fmt.Sprintf("failed to extract text from %s", document), cause).
		WithContext("document", document)
}

// NewSchemaResolutionError creates the fatal error raised when the master
// table's product/HS/quantity columns cannot be located. The message names
// the header keywords the operator can use to fix the sheet.
func NewSchemaResolutionError() *AppError {
	return NewAppError(ErrTypeSchema,
		`could not resolve master columns: expected headers containing "product" or "item", "hs", and "qty"`, nil)
}

// NewEmptyMasterError creates the fatal error raised when the master table
// resolved its columns but contained no non-empty product rows.
func NewEmptyMasterError() *AppError {
	return NewAppError(ErrTypeMaster, "master table contains no product rows to compare", nil)
}

// NewValidationError creates a validation error
func NewValidationError(message string, cause error) *AppError {
	return NewAppError(ErrTypeValidation, message, cause)
}

// NewExportError creates a report export error
func NewExportError(message string, cause error) *AppError {
	return NewAppError(ErrTypeExport, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) *AppError {
	return NewAppError(ErrTypeConfig, message, cause)
}

// IsFatal reports whether the error should stop the whole run. Extraction
// errors are per-document and never fatal; everything else is.
func IsFatal(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type != ErrTypeExtraction
	}
	return err != nil
}
