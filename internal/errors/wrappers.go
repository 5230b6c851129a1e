package errors

import (
	"fmt"
	"strings"
)

// Common error wrapping patterns used throughout the codebase

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapDescriptorError wraps failures while loading the API descriptor document
func WrapDescriptorError(path string, cause error) *BaseError {
	return Wrap(DescriptorErrorCode, fmt.Sprintf("failed to load API descriptor '%s'", path), cause).
		WithContext("path", path).
		WithSuggestion("Check that the descriptor is a valid api.xml or YAML document")
}

// DescriptorError creates a descriptor validation error without wrapping
func DescriptorError(loc SourceLocation, format string, args ...interface{}) *BaseError {
	return Newf(DescriptorErrorCode, format, args...).WithLocation(loc)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}

// ConfigurationError creates a configuration error
func ConfigurationError(configType, message string) *BaseError {
	fullMessage := fmt.Sprintf("configuration error in '%s': %s", configType, message)
	return New(ConfigurationErrorCode, fullMessage).
		WithContext("config_type", configType)
}

// ValidationError creates a parameter validation error
func ValidationError(field, expected, actual string) *BaseError {
	message := fmt.Sprintf("validation failed for '%s': expected %s, got %s", field, expected, actual)
	return New(ValidationErrorCode, message).
		WithContext("field", field).
		WithContext("expected", expected).
		WithContext("actual", actual)
}

// TemplateMissingError reports an unknown template or sample id
func TemplateMissingError(kind, id string, available []string) *BaseError {
	err := Newf(TemplateMissingErrorCode, "%s '%s' not found", kind, id).
		WithContext("kind", kind).
		WithContext("id", id)
	if len(available) > 0 {
		err.WithSuggestion(fmt.Sprintf("Available %ss: %s", kind, strings.Join(available, ", ")))
	}
	return err
}
