// Package errors provides the classified error primitives used across uwiki.
//
// Every failure in a conversion run is fatal; classification exists so the CLI can
// pick an exit code and print a message that names the failing path.
//
// Key features:
//   - ErrorCategory: Broad error classification (usage, filesystem, encoding, template, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLIErrorAdapter: exit code mapping and user-facing formatting
//
// Example usage:
//
//	err := errors.EncodingError("source is not valid UTF-8").
//		WithContext("path", path).
//		WithCause(decodeErr).
//		Build()
package errors
