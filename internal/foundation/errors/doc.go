// Package errors provides the classified error primitives used by navbuilder.
//
// Key features:
//   - ErrorCategory: broad classification (config, validation, filesystem, runtime, internal)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - RetryStrategy: whether repeating the operation can help
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and stderr presentation
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryConfig, "site configuration is invalid").
//		WithContext("path", "/guide/").
//		Fatal().
//		Build()
package errors
