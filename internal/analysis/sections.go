package analysis

import (
	"regexp"
	"strings"
)

// SectionPattern describes how a named resume section is recognized.
// Keywords are literal substrings checked against the lowercased text;
// Patterns hold the few cases where a bare substring is too loose.
type SectionPattern struct {
	Name     string
	Keywords []string
	Patterns []*regexp.Regexp
}

// fullSections covers the seven sections of the full profile. The live
// profile uses the first five. Order is the presentation order of the
// section flags.
var fullSections = []SectionPattern{
	{
		Name:     "contact",
		Keywords: []string{"email", "@", "phone", "contact", "linkedin"},
		Patterns: []*regexp.Regexp{regexp.MustCompile(`\btel\b`)},
	},
	{
		Name:     "summary",
		Keywords: []string{"summary", "objective", "profile"},
	},
	{
		Name:     "skills",
		Keywords: []string{"skill"},
	},
	{
		Name:     "experience",
		Keywords: []string{"experience", "employment", "work history"},
	},
	{
		Name:     "education",
		Keywords: []string{"education", "degree", "bachelor", "master", "university"},
	},
	{
		Name:     "projects",
		Keywords: []string{"project", "portfolio"},
	},
	{
		Name:     "certifications",
		Keywords: []string{"certification", "certificate", "certified"},
	},
}

// liveSections is the reduced set checked while the user is typing.
var liveSections = fullSections[:5]

// DetectSections checks each pattern against the lowercased text and returns
// a map holding every section name, present or not.
func DetectSections(lowered string, sections []SectionPattern) map[string]bool {
	found := make(map[string]bool, len(sections))
	for _, section := range sections {
		found[section.Name] = sectionPresent(lowered, section)
	}
	return found
}

func sectionPresent(lowered string, section SectionPattern) bool {
	for _, keyword := range section.Keywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	for _, pattern := range section.Patterns {
		if pattern.MatchString(lowered) {
			return true
		}
	}
	return false
}
