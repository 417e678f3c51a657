package analysis

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "simple words",
			input:    "Managed a team",
			expected: []string{"managed", "team"},
		},
		{
			name:     "single letters dropped",
			input:    "a b c word",
			expected: []string{"word"},
		},
		{
			name:     "punctuated tokens fragment",
			input:    "C++ and Node.js",
			expected: []string{"and", "node", "js"},
		},
		{
			name:     "digits are separators",
			input:    "web2print 3rd",
			expected: []string{"web", "print", "rd"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: nil,
		},
		{
			name:     "duplicates preserved",
			input:    "led led led",
			expected: []string{"led", "led", "led"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func BenchmarkTokenize(b *testing.B) {
	text := "Developed and maintained distributed services in Go, improved latency by 40%. "
	for i := 0; i < 4; i++ {
		text += text
	}

	for b.Loop() {
		Tokenize(text)
	}
}
