package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ErrorBody is the JSON error envelope: {"error": "...", "details": [...]}
type ErrorBody struct {
	Error   string        `json:"error"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// DeleteResult acknowledges a successful delete
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Error creates an error response with a single message
func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// NewValidationError builds the 400 response body from field-level details
func NewValidationError(details []ErrorDetail) ErrorBody {
	msgs := make([]string, len(details))
	for i, d := range details {
		msgs[i] = d.Message
	}
	return ErrorBody{
		Error:   "Validation error: " + strings.Join(msgs, "; "),
		Details: details,
	}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func minLen(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

func tooSmall(field, message string) ErrorDetail {
	return ErrorDetail{Code: "too_small", Field: field, Message: message}
}

func invalid(field, message string) ErrorDetail {
	return ErrorDetail{Code: "invalid", Field: field, Message: message}
}

func required(field, message string) ErrorDetail {
	return ErrorDetail{Code: "required", Field: field, Message: message}
}
