package errors

import (
	"fmt"
	"os"
	"strings"
)

// ErrorType classifies an AppError for callers that need to branch on
// failure category (e.g. recovery's retry-or-not decision).
type ErrorType string

const (
	ErrorTypeCorpus     ErrorType = "corpus"
	ErrorTypeQuery      ErrorType = "query"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeFileSystem ErrorType = "filesystem"
)

// AppError is a user-facing error: it carries both a developer-oriented
// message and, optionally, a friendlier UserMessage plus remediation
// Suggestions for CLI output.
type AppError struct {
	Type        ErrorType
	Message     string
	UserMessage string
	Suggestions []string
	Context     map[string]interface{}
	Cause       error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError constructs a bare AppError; use the With* builders to attach
// a user message, context, or suggestions.
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithUserMessage sets the friendly message shown to end users.
func (e *AppError) WithUserMessage(msg string) *AppError {
	e.UserMessage = msg
	return e
}

// WithSuggestions sets the remediation steps shown alongside UserMessage.
func (e *AppError) WithSuggestions(suggestions ...string) *AppError {
	e.Suggestions = suggestions
	return e
}

// WithContext attaches a key/value pair of diagnostic context.
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// errorTemplates holds the canned user-facing message for each well-known
// failure. Keys match the errType argument used by each constructor below.
var errorTemplates = map[string]string{
	"corpus_not_found": "The corpus file could not be found at '%s'.",
	"corpus_parse":     "The corpus file at '%s' contains invalid data and could not be parsed.",
	"query_too_long":   "Your search query is too long (%d characters, maximum is %d).",
	"query_empty":      "Please provide a search query.",
	"limit_invalid":    "The result limit must be between 1 and %d, got %d.",
	"no_results":       "No results found matching '%s'.",
}

// NewCorpusNotFoundError builds the user-facing error for a missing corpus
// file.
func NewCorpusNotFoundError(path string, cause error) *AppError {
	return NewAppError(ErrorTypeCorpus, fmt.Sprintf("corpus file not found: %s", path), cause).
		WithUserMessage(fmt.Sprintf(errorTemplates["corpus_not_found"], path)).
		WithContext("file_path", path).
		WithSuggestions(
			"Check that the corpus path is correct",
			"Run the build command to check that a corpus file loads",
			"Verify file permissions on the corpus directory",
		)
}

// NewCorpusParseError builds the user-facing error for a corpus file that
// failed to parse.
func NewCorpusParseError(path string, cause error) *AppError {
	return NewAppError(ErrorTypeCorpus, fmt.Sprintf("corpus file parse error: %s", path), cause).
		WithUserMessage(fmt.Sprintf(errorTemplates["corpus_parse"], path)).
		WithContext("file_path", path).
		WithSuggestions(
			"Check the corpus file's YAML syntax",
			"Validate indentation and field names against the schema",
			"Restore from a known-good backup if available",
		)
}

// NewQueryTooLongError builds the user-facing error for an over-length
// query.
func NewQueryTooLongError(actual, max int) *AppError {
	return NewAppError(ErrorTypeValidation, fmt.Sprintf("query too long: %d > %d", actual, max), nil).
		WithUserMessage(fmt.Sprintf(errorTemplates["query_too_long"], actual, max)).
		WithContext("actual_length", actual).
		WithContext("max_length", max).
		WithSuggestions(
			"Shorten your query",
			"Remove unnecessary words or punctuation",
			"Search for a more specific term instead",
		)
}

// NewQueryEmptyError builds the user-facing error for an empty query.
func NewQueryEmptyError() *AppError {
	return NewAppError(ErrorTypeValidation, "query is empty", nil).
		WithUserMessage(errorTemplates["query_empty"]).
		WithSuggestions(
			"Type a search term",
			"Use '*' to list every entry by weight",
			"Check the command's usage with --help",
		)
}

// NewLimitInvalidError builds the user-facing error for an out-of-range
// result limit.
func NewLimitInvalidError(actual, max int) *AppError {
	return NewAppError(ErrorTypeValidation, fmt.Sprintf("invalid limit: %d", actual), nil).
		WithUserMessage(fmt.Sprintf(errorTemplates["limit_invalid"], max, actual)).
		WithContext("actual_limit", actual).
		WithContext("max_limit", max).
		WithSuggestions(
			fmt.Sprintf("Use a limit between 1 and %d", max),
			"Omit --limit to use the default",
			"Check the command's usage with --help",
		)
}

// NewNoResultsError builds the user-facing error for a query that matched
// nothing, carrying alternative terms as its suggestions.
func NewNoResultsError(query string, alternatives []string) *AppError {
	return NewAppError(ErrorTypeQuery, fmt.Sprintf("no results for query: %s", query), nil).
		WithUserMessage(fmt.Sprintf(errorTemplates["no_results"], query)).
		WithContext("query", query).
		WithSuggestions(alternatives...)
}

// NewQueryFailedError wraps an underlying failure encountered while
// querying the index.
func NewQueryFailedError(query string, cause error) *AppError {
	return NewAppError(ErrorTypeQuery, fmt.Sprintf("query failed: %s", query), cause).
		WithUserMessage(fmt.Sprintf("Something went wrong searching for '%s'.", query)).
		WithContext("query", query)
}

// IsUserFriendlyError reports whether err carries a UserMessage.
func IsUserFriendlyError(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.UserMessage != ""
}

// GetUserFriendlyMessage returns the best user-facing message for err,
// falling back to a generic message for errors that don't carry one.
func GetUserFriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	if appErr, ok := err.(*AppError); ok && appErr.UserMessage != "" {
		return appErr.UserMessage
	}

	switch {
	case os.IsPermission(err):
		return "Permission denied. Check your file and directory permissions."
	case os.IsNotExist(err):
		return "The requested file could not be found."
	default:
		return "An error occurred: " + err.Error()
	}
}

// GetErrorSuggestions returns the remediation suggestions attached to err,
// or nil if it carries none.
func GetErrorSuggestions(err error) []string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Suggestions
	}
	return nil
}

// joinSuggestions renders suggestions as a bullet list for CLI output.
func joinSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	lines := make([]string, len(suggestions))
	for i, s := range suggestions {
		lines[i] = "  - " + s
	}
	return strings.Join(lines, "\n")
}
