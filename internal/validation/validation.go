// Package validation provides input validation and sanitization utilities.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mira-tools/hybridrank/internal/constants"
)

const maxPathLength = 4096

// ValidateQuery validates and sanitizes a user-supplied search query.
func ValidateQuery(query string) (string, error) {
	// Check length
	if len(query) == 0 {
		return "", fmt.Errorf("Please provide a search query")
	}

	if len(query) > constants.MaxQueryLength {
		return "", fmt.Errorf("search query is too long (max %d characters)", constants.MaxQueryLength)
	}

	// Basic sanitization - remove control characters but keep printable chars
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return -1 // Remove control characters except newlines and tabs
		}
		return r
	}, query)

	// Trim excessive whitespace
	cleaned = strings.TrimSpace(cleaned)

	// Replace multiple spaces with single spaces
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	if len(cleaned) == 0 {
		return "", fmt.Errorf("Please provide a search query: the query contains no valid characters")
	}

	return cleaned, nil
}

// ValidateLimit validates a requested result limit, substituting the
// package default for a zero value.
func ValidateLimit(limit int) (int, error) {
	if limit < 0 {
		return 0, fmt.Errorf("result limit must be between 0 and 100 (0 selects the default), got %d", limit)
	}

	if limit == 0 {
		return constants.DefaultLimit, nil
	}

	if limit > 100 {
		return 100, fmt.Errorf("result limit must be between 0 and 100 (0 selects the default), got %d", limit)
	}

	return limit, nil
}

// SanitizeFilename sanitizes filenames for safe filesystem operations
func SanitizeFilename(filename string) string {
	// Replace unsafe characters
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	cleaned := filename

	for _, char := range unsafe {
		cleaned = strings.ReplaceAll(cleaned, char, "_")
	}

	// Trim spaces and dots from start/end
	cleaned = strings.Trim(cleaned, " .")

	// Limit length
	if len(cleaned) > 255 {
		cleaned = cleaned[:255]
	}

	return cleaned
}

// ValidatePath rejects paths that are empty, contain a null byte, attempt
// directory traversal, or exceed the maximum path length.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("path contains a null byte")
	}
	if strings.Contains(path, "..") {
		return fmt.Errorf("path contains directory traversal")
	}
	if len(path) > maxPathLength {
		return fmt.Errorf("path too long (max %d characters)", maxPathLength)
	}
	return nil
}

// ValidateCorpusPath validates a path pointing at a YAML corpus file.
func ValidateCorpusPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".yml") && !strings.HasSuffix(lower, ".yaml") {
		return fmt.Errorf("corpus path must have a .yml or .yaml extension")
	}
	return nil
}

// SanitizePath strips null bytes and directory-traversal segments from a
// path and truncates it to the maximum path length.
func SanitizePath(path string) string {
	cleaned := strings.ReplaceAll(path, "\x00", "")
	cleaned = strings.ReplaceAll(cleaned, "..", "_")

	if len(cleaned) > maxPathLength {
		cleaned = cleaned[:maxPathLength]
	}

	return cleaned
}

// Config is the subset of application configuration ValidateConfig checks.
type Config interface {
	Validate() error
	GetCorpusPath() string
	GetPersonalCorpusPath() string
}

// ValidateConfig runs cfg's own validation, then checks its corpus paths
// for directory traversal and other unsafe path constructs.
func ValidateConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := ValidatePath(cfg.GetCorpusPath()); err != nil {
		return fmt.Errorf("invalid corpus path: %w", err)
	}
	if personal := cfg.GetPersonalCorpusPath(); personal != "" {
		if err := ValidatePath(personal); err != nil {
			return fmt.Errorf("invalid personal corpus path: %w", err)
		}
	}
	return nil
}

// dangerousPatterns matches substrings commonly used in XSS and SQL
// injection attempts. Each match is stripped outright rather than escaped,
// since SanitizeInput's output is meant for display/logging, not storage.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script>`),
	regexp.MustCompile(`(?i)</script>`),
	regexp.MustCompile(`(?i)alert\(`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)\bdrop\s+`),
	regexp.MustCompile(`(?i)\bselect\s+`),
	regexp.MustCompile(`(?i)\bdelete\s+`),
	regexp.MustCompile(`(?i)\binsert\s+`),
	regexp.MustCompile(`(?i)\bunion\s+`),
	regexp.MustCompile(`--`),
	regexp.MustCompile(`;`),
	regexp.MustCompile(`'`),
	regexp.MustCompile(`"`),
}

// SanitizeInput strips known XSS/SQL-injection substrings and control
// characters, then collapses whitespace.
func SanitizeInput(input string) string {
	cleaned := input
	for _, pattern := range dangerousPatterns {
		cleaned = pattern.ReplaceAllString(cleaned, "")
	}

	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	return cleaned
}

var (
	passwordPattern = regexp.MustCompile(`(?i)password=\S+`)
	apiKeyPattern   = regexp.MustCompile(`(?i)api_key=\S+`)
	emailPattern    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	cardPattern     = regexp.MustCompile(`\d{4}-\d{4}-\d{4}-\d{4}`)
	ssnPattern      = regexp.MustCompile(`\d{3}-\d{2}-\d{4}`)
	authPattern     = regexp.MustCompile(`(?i)Authorization:\s*Bearer`)
)

// SanitizeLogData redacts credentials and personally identifying data from
// a string before it is written to a log.
func SanitizeLogData(input string) string {
	cleaned := passwordPattern.ReplaceAllString(input, "password=***")
	cleaned = apiKeyPattern.ReplaceAllString(cleaned, "api_key=***")
	cleaned = emailPattern.ReplaceAllString(cleaned, "***@***.***")
	cleaned = cardPattern.ReplaceAllString(cleaned, "****-****-****-****")
	cleaned = ssnPattern.ReplaceAllString(cleaned, "***-**-****")
	cleaned = authPattern.ReplaceAllString(cleaned, "Authorization=***")
	return cleaned
}

// ValidateAndSanitizeUserInput validates and sanitizes input according to
// its declared type: "query", "filename", "path", or anything else
// (treated as generic free text).
func ValidateAndSanitizeUserInput(input, inputType string) (string, error) {
	switch inputType {
	case "query":
		if len(input) > constants.MaxQueryLength {
			return "", fmt.Errorf("query too long (max %d characters)", constants.MaxQueryLength)
		}
		sanitized := SanitizeInput(input)
		if sanitized == "" {
			return "", fmt.Errorf("query contains no valid characters")
		}
		return sanitized, nil
	case "filename":
		return SanitizeFilename(input), nil
	case "path":
		if err := ValidatePath(input); err != nil {
			return "", err
		}
		return SanitizePath(input), nil
	default:
		sanitized := SanitizeInput(input)
		if sanitized == "" {
			return "", fmt.Errorf("input contains no valid characters")
		}
		return sanitized, nil
	}
}
