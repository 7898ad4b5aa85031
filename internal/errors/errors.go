// Package errors provides the application's error types: a pair of simple
// wrapped errors for corpus loading and query failures, plus a richer
// AppError (messages.go) that carries a user-facing message and remediation
// suggestions for CLI-surfaced failures.
package errors

import "fmt"

// CorpusError represents corpus-loading errors.
type CorpusError struct {
	Path  string
	Op    string
	Cause error
}

func (e *CorpusError) Error() string {
	return fmt.Sprintf("corpus %s failed for '%s': %v", e.Op, e.Path, e.Cause)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *CorpusError) Unwrap() error {
	return e.Cause
}

// NewCorpusError creates a new corpus error.
func NewCorpusError(op, path string, cause error) *CorpusError {
	return &CorpusError{
		Op:    op,
		Path:  path,
		Cause: cause,
	}
}

// QueryError represents query-related errors.
type QueryError struct {
	Query string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed for '%s': %v", e.Query, e.Cause)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *QueryError) Unwrap() error {
	return e.Cause
}

// NewQueryError creates a new query error.
func NewQueryError(query string, cause error) *QueryError {
	return &QueryError{
		Query: query,
		Cause: cause,
	}
}
