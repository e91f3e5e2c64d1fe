package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmail(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"jane@example.com", true},
		{"jane.doe+tag@sub.example.co", true},
		{"  jane@example.com  ", true},
		{"", false},
		{"   ", false},
		{"jane", false},
		{"jane@", false},
		{"@example.com", false},
		{"jane example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEmail(tt.value))
		})
	}
}

func TestMinLength(t *testing.T) {
	tests := []struct {
		name  string
		value string
		min   int
		want  bool
	}{
		{"long enough", "hello", 5, true},
		{"longer than minimum", "hello world", 5, true},
		{"exact boundary", "12345", 5, true},
		{"too short", "hi", 5, false},
		{"empty", "", 5, false},
		{"whitespace only", "     ", 5, false},
		{"padding does not count", "  ab  ", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinLength(tt.value, tt.min))
		})
	}
}
