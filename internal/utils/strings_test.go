package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		email string
		want  bool
	}{
		{"alice@example.com", true},
		{"alice.smith+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"alice@", false},
		{"", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsValidEmail(tc.email), tc.email)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly ten", Truncate("exactly ten", 11))
	assert.Equal(t, "a longe...", Truncate("a longer description here", 10))
	assert.Equal(t, "...", Truncate("anything", 2))
}

func TestStripCodeFence(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "JSON Fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: `{"a": 1}`,
		},
		{
			name: "Bare Fence",
			in:   "```\n[1, 2]\n```",
			want: "[1, 2]",
		},
		{
			name: "No Fence",
			in:   `{"a": 1}`,
			want: `{"a": 1}`,
		},
		{
			name: "Surrounding Whitespace",
			in:   "  ```json\n{}\n```  ",
			want: "{}",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripCodeFence(tc.in))
		})
	}
}
