// Package errors provides the classified error primitives used across reindex.
//
// Errors carry a category, a severity and structured context so that the CLI
// can decide how to log them and which exit code to use, while per-file
// failures can still be collected into a run result and inspected by tests.
//
// Example usage:
//
//	err := errors.WrapError(ioErr, errors.CategoryFileSystem, "failed to write file").
//		WithContext("path", path).
//		Build()
package errors
