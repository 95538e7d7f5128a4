// Package errors provides the classified error primitives used across giza.
//
// Every failure in a generate run is fatal. Classification only decides how the
// failure is reported: which exit code the CLI returns and which context is logged.
//
// Key features:
//   - ErrorCategory: broad classification (config, validation, not_found, filesystem, internal)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and stderr presentation
//
// Example usage:
//
//	err := errors.NotFoundError("application not found").
//		WithContext("app", name).
//		WithCause(derrors.ErrAppNotFound).
//		Build()
package errors
