package utils

import (
	"regexp"
	"strings"
)

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	// Local part must not start or end with a dot; domain labels must not
	// start or end with a dash.
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	// Convert string to runes to handle Unicode characters properly
	runes := []rune(s)

	if len(runes) <= maxLength {
		return s
	}

	// Handle edge cases where maxLength is too small to fit the ellipsis
	if maxLength <= 3 {
		return "..."
	}

	return string(runes[:maxLength-3]) + "..."
}

// StripCodeFence removes a Markdown code-fence wrapper (```json ... ``` or
// ``` ... ```) from a model reply, returning the inner text. Text without a
// fence is returned trimmed and otherwise untouched.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}

	s = strings.TrimSpace(s)

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}

	return strings.TrimSpace(s)
}
