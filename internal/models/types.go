package models

// ErrorType represents different classes of generator errors
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypeAssembly
)
