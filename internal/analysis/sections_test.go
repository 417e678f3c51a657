package analysis

import (
	"strings"
	"testing"
)

func TestDetectSections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		present []string
	}{
		{
			name:    "contact via at sign",
			input:   "jane.doe@example.com",
			present: []string{"contact"},
		},
		{
			name:    "contact via tel word boundary",
			input:   "tel 555-0101",
			present: []string{"contact"},
		},
		{
			name:    "hotel does not trip tel",
			input:   "worked at a hotel",
			present: nil,
		},
		{
			name:    "multiple sections",
			input:   "Professional Summary\nWork Experience\nEducation\nSkills",
			present: []string{"summary", "experience", "education", "skills"},
		},
		{
			name:    "projects and certifications",
			input:   "Personal Projects\nAWS Certified Solutions Architect",
			present: []string{"projects", "certifications"},
		},
		{
			name:    "empty input",
			input:   "",
			present: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectSections(strings.ToLower(tt.input), fullSections)

			if len(got) != len(fullSections) {
				t.Fatalf("expected %d section flags, got %d", len(fullSections), len(got))
			}

			want := make(map[string]bool, len(tt.present))
			for _, name := range tt.present {
				want[name] = true
			}

			for _, section := range fullSections {
				if got[section.Name] != want[section.Name] {
					t.Errorf("section %q = %v, want %v", section.Name, got[section.Name], want[section.Name])
				}
			}
		})
	}
}

func TestDetectSectionsAdditive(t *testing.T) {
	base := "work experience\neducation\nskills"
	before := DetectSections(base, fullSections)

	if before["contact"] {
		t.Fatal("base text should not register a contact section")
	}

	after := DetectSections(base+"\njane.doe@example.com", fullSections)

	if !after["contact"] {
		t.Error("appending an email should flip contact on")
	}
	for name, present := range before {
		if present && !after[name] {
			t.Errorf("section %q was lost after appending text", name)
		}
	}
}

func TestLiveSectionsSubset(t *testing.T) {
	if len(liveSections) != 5 {
		t.Fatalf("expected 5 live sections, got %d", len(liveSections))
	}

	for i, section := range liveSections {
		if section.Name != fullSections[i].Name {
			t.Errorf("live section %d = %q, want %q", i, section.Name, fullSections[i].Name)
		}
	}
}
