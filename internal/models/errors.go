package models

import "fmt"

// GeneratorError represents an error surfaced to the CLI, carrying
// suggestions and context for the user alongside the underlying cause.
type GeneratorError struct {
	Type        ErrorType              // type of error
	Message     string                 // error message
	Suggestions []string               // hints for fixing the problem
	Context     map[string]interface{} // additional context information
	Cause       error                  // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}
