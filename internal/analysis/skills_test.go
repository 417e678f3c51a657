package analysis

import (
	"reflect"
	"testing"
)

func TestMatchSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		category string
		expected []string
	}{
		{
			name:     "programming languages",
			input:    "python and rust services",
			category: "programming",
			expected: []string{"python", "rust"},
		},
		{
			name:     "substring recall includes java in javascript",
			input:    "javascript frontend",
			category: "programming",
			expected: []string{"java", "javascript"},
		},
		{
			name:     "sql matches inside mysql",
			input:    "mysql administration",
			category: "database",
			expected: []string{"sql", "mysql"},
		},
		{
			name:     "soft skills",
			input:    "leadership and teamwork in agile settings",
			category: "soft",
			expected: []string{"leadership", "teamwork", "agile"},
		},
		{
			name:     "no matches yields empty not nil",
			input:    "completely unrelated prose",
			category: "cloud",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := MatchSkills(tt.input)

			if len(matches) != len(skillTaxonomy) {
				t.Fatalf("expected %d categories, got %d", len(skillTaxonomy), len(matches))
			}

			got, ok := matches[tt.category]
			if !ok || got == nil {
				t.Fatalf("category %q missing or nil", tt.category)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("matches[%q] = %v, want %v", tt.category, got, tt.expected)
			}
		})
	}
}

func TestCountSkills(t *testing.T) {
	matches := MatchSkills("python, react, docker, leadership")
	if got := CountSkills(matches); got != 4 {
		t.Errorf("CountSkills = %d, want 4", got)
	}

	if got := CountSkills(MatchSkills("")); got != 0 {
		t.Errorf("CountSkills on empty input = %d, want 0", got)
	}
}

func BenchmarkMatchSkills(b *testing.B) {
	text := "python javascript react node aws docker kubernetes sql postgres leadership communication"

	for b.Loop() {
		MatchSkills(text)
	}
}
