// Package validation holds the request validation pipeline shared by all
// resource endpoints: field trimming, required-field checks, and the email
// and password rules. Pure functions, no I/O.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Result reports the outcome of a single-value validation.
type Result struct {
	Valid   bool
	Message string
}

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email reports whether the value has the shape local@domain.tld with no
// embedded whitespace and no extra @ inside either part.
func Email(value string) bool {
	return emailRE.MatchString(value)
}

// Password validates the password policy. The first failing check decides
// the message.
func Password(value string) Result {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		return Result{Message: "Password cannot be empty or contain only spaces"}
	}
	if utf8.RuneCountInString(trimmed) < 8 {
		return Result{Message: "Password must be at least 8 characters long"}
	}
	if trimmed != value {
		return Result{Message: "Password cannot start or end with spaces"}
	}

	return Result{Valid: true, Message: "Password is valid"}
}

// TrimFields returns a copy of the field map with every string value trimmed
// of surrounding whitespace, plus one error per required field that is
// missing or empty after trimming. Non-string values pass through untouched.
func TrimFields(fields map[string]any, required ...string) (map[string]any, []string) {
	trimmed := make(map[string]any, len(fields))
	for key, value := range fields {
		if s, ok := value.(string); ok {
			trimmed[key] = strings.TrimSpace(s)
		} else {
			trimmed[key] = value
		}
	}

	var errs []string
	for _, field := range required {
		if isBlank(trimmed[field]) {
			errs = append(errs, fmt.Sprintf("%s is required and cannot be empty", field))
		}
	}

	return trimmed, errs
}

// isBlank applies loose falsiness to required fields: absent, null, empty
// string, false, and numeric zero all count as missing.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	}
	return false
}

// String extracts a trimmed string field, treating absent and non-string
// values as empty.
func String(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
