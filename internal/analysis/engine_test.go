package analysis

import (
	"reflect"
	"strings"
	"testing"
)

const sampleResume = `John Doe
Email: john@example.com | Phone: 555-0101
Summary
Backend engineer with eight years of experience building services.
Skills
Python, Golang, Docker, Kubernetes, AWS, PostgreSQL, React, Leadership
Experience
Developed and led a platform team. Managed releases. Improved latency.
Built internal tooling. Automated deployments.
Education
Bachelor of Science in Computer Science, State University
`

func containsSuggestion(suggestions []string, msg string) bool {
	for _, s := range suggestions {
		if s == msg {
			return true
		}
	}
	return false
}

func TestAnalyzeEmptyInput(t *testing.T) {
	engine := NewEngine(nil)
	result := engine.Analyze("", "")

	if result.TokenCount != 0 {
		t.Errorf("TokenCount = %d, want 0", result.TokenCount)
	}
	if result.ReadabilityScore != 50 {
		t.Errorf("ReadabilityScore = %d, want neutral 50", result.ReadabilityScore)
	}
	if result.Score != 13 {
		t.Errorf("Score = %d, want 13 (neutral readability share only)", result.Score)
	}

	if len(result.Sections) != len(fullSections) {
		t.Errorf("expected %d section flags, got %d", len(fullSections), len(result.Sections))
	}
	for name, present := range result.Sections {
		if present {
			t.Errorf("section %q present on empty input", name)
		}
	}
	if len(result.SkillMatches) != len(skillTaxonomy) {
		t.Errorf("expected %d skill categories, got %d", len(skillTaxonomy), len(result.SkillMatches))
	}

	for _, msg := range []string{msgAddContact, msgAddSkills, msgAddExperience, msgAddEducation, msgMoreVerbs, msgMoreSkills} {
		if !containsSuggestion(result.Suggestions, msg) {
			t.Errorf("missing suggestion %q", msg)
		}
	}
	if containsSuggestion(result.Suggestions, msgReadability) {
		t.Error("neutral readability should not trigger the readability suggestion")
	}
}

func TestAnalyzeSampleResume(t *testing.T) {
	engine := NewEngine(nil)
	result := engine.Analyze(sampleResume, sampleResume)

	for _, msg := range []string{msgAddContact, msgAddSkills, msgAddExperience, msgAddEducation, msgMoreVerbs} {
		if containsSuggestion(result.Suggestions, msg) {
			t.Errorf("unexpected suggestion %q for complete resume", msg)
		}
	}

	if result.Score <= 0 || result.Score > 100 {
		t.Errorf("Score = %d, out of (0, 100]", result.Score)
	}
	if result.ActionVerbCount < 5 {
		t.Errorf("ActionVerbCount = %d, want at least 5", result.ActionVerbCount)
	}
	if len(result.SkillMatches["programming"]) == 0 {
		t.Error("expected programming skill matches")
	}
	if !result.Sections["education"] {
		t.Error("education section not detected")
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	engine := NewEngine(nil)
	first := engine.Analyze(sampleResume, sampleResume)
	second := engine.Analyze(sampleResume, sampleResume)

	if !reflect.DeepEqual(first, second) {
		t.Error("same input produced different results")
	}
}

func TestAnalyzeLiveEmptyInput(t *testing.T) {
	engine := NewEngine(nil)

	for _, input := range []string{"", "   ", "\n\t "} {
		result := engine.AnalyzeLive(input)

		if result.LiveScore != 0 {
			t.Errorf("LiveScore = %d, want 0", result.LiveScore)
		}
		if result.WordCount != 0 {
			t.Errorf("WordCount = %d, want 0", result.WordCount)
		}
		if len(result.Suggestions) != 1 || result.Suggestions[0] != MsgLivePrompt {
			t.Errorf("Suggestions = %v, want exactly the onboarding prompt", result.Suggestions)
		}
		if len(result.Sections) != len(liveSections) {
			t.Errorf("expected %d section flags, got %d", len(liveSections), len(result.Sections))
		}
		if len(result.SkillMatches) != len(skillTaxonomy) {
			t.Errorf("expected %d skill categories, got %d", len(skillTaxonomy), len(result.SkillMatches))
		}
	}
}

func TestAnalyzeLiveLengthBoundaries(t *testing.T) {
	engine := NewEngine(nil)
	word := "alpha "

	tests := []struct {
		name     string
		words    int
		tooShort bool
		tooLong  bool
	}{
		{name: "199 words fires too-short", words: 199, tooShort: true},
		{name: "200 words does not", words: 200},
		{name: "800 words does not fire too-long", words: 800},
		{name: "801 words fires too-long", words: 801, tooLong: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.AnalyzeLive(strings.Repeat(word, tt.words))

			if result.WordCount != tt.words {
				t.Fatalf("WordCount = %d, want %d", result.WordCount, tt.words)
			}
			if got := containsSuggestion(result.Suggestions, msgLiveTooShort); got != tt.tooShort {
				t.Errorf("too-short suggestion present = %v, want %v", got, tt.tooShort)
			}
			if got := containsSuggestion(result.Suggestions, msgLiveTooLong); got != tt.tooLong {
				t.Errorf("too-long suggestion present = %v, want %v", got, tt.tooLong)
			}
		})
	}
}

func TestAnalyzeLiveRules(t *testing.T) {
	engine := NewEngine(nil)

	t.Run("missing sections reported in one combined message", func(t *testing.T) {
		result := engine.AnalyzeLive("just some plain text about nothing in particular")

		found := false
		for _, s := range result.Suggestions {
			if strings.HasPrefix(s, "Add these missing sections: ") {
				found = true
				if !strings.Contains(s, "contact") || !strings.Contains(s, "education") {
					t.Errorf("combined message %q missing section names", s)
				}
			}
		}
		if !found {
			t.Error("no combined missing-sections suggestion")
		}
	})

	t.Run("graduated verb advice", func(t *testing.T) {
		zero := engine.AnalyzeLive("plain description of duties and roles")
		if !containsSuggestion(zero.Suggestions, msgLiveNoVerbs) {
			t.Error("expected the zero-verb suggestion")
		}

		few := engine.AnalyzeLive("led one project and managed one rollout")
		if !containsSuggestion(few.Suggestions, msgLiveFewVerbs) {
			t.Error("expected the few-verbs suggestion")
		}
		if containsSuggestion(few.Suggestions, msgLiveNoVerbs) {
			t.Error("zero-verb suggestion should not fire alongside few-verbs")
		}
	})

	t.Run("developer without languages gets the language nudge", func(t *testing.T) {
		result := engine.AnalyzeLive("software developer seeking new opportunities")
		if !containsSuggestion(result.Suggestions, msgLiveLanguages) {
			t.Error("expected the programming-language suggestion")
		}

		withLang := engine.AnalyzeLive("software developer fluent in python")
		if containsSuggestion(withLang.Suggestions, msgLiveLanguages) {
			t.Error("language suggestion should not fire when a language is present")
		}
	})

	t.Run("engineer without projects gets the projects nudge", func(t *testing.T) {
		result := engine.AnalyzeLive("systems engineer at a large company")
		if !containsSuggestion(result.Suggestions, msgLiveProjects) {
			t.Error("expected the projects suggestion")
		}

		withProjects := engine.AnalyzeLive("systems engineer, see my projects below")
		if containsSuggestion(withProjects.Suggestions, msgLiveProjects) {
			t.Error("projects suggestion should not fire when projects are mentioned")
		}
	})

	t.Run("sparse newlines suggest bullet points", func(t *testing.T) {
		result := engine.AnalyzeLive("one long paragraph with no structure at all")
		if !containsSuggestion(result.Suggestions, msgLiveBullets) {
			t.Error("expected the bullet-point suggestion")
		}

		structured := engine.AnalyzeLive(strings.Repeat("item line\n", 12))
		if containsSuggestion(structured.Suggestions, msgLiveBullets) {
			t.Error("bullet-point suggestion should not fire on structured text")
		}
	})
}

func TestLiveFailure(t *testing.T) {
	engine := NewEngine(nil)
	result := engine.LiveFailure("analysis unavailable")

	if result.LiveScore != 0 {
		t.Errorf("LiveScore = %d, want 0", result.LiveScore)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0] != "analysis unavailable" {
		t.Errorf("Suggestions = %v, want the failure message alone", result.Suggestions)
	}
	if len(result.Sections) != len(liveSections) {
		t.Errorf("expected %d section flags, got %d", len(liveSections), len(result.Sections))
	}
}

func BenchmarkAnalyze(b *testing.B) {
	engine := NewEngine(nil)

	for b.Loop() {
		engine.Analyze(sampleResume, sampleResume)
	}
}

func BenchmarkAnalyzeLive(b *testing.B) {
	engine := NewEngine(nil)

	for b.Loop() {
		engine.AnalyzeLive(sampleResume)
	}
}
