package analysis

import "strings"

// Signals holds everything the detectors computed for one piece of text.
// Scoring formulas and suggestion rules read from here and nowhere else.
type Signals struct {
	Text            string
	Lowered         string
	Raw             string
	Tokens          []string
	WordCount       int
	ActionVerbCount int
	Sections        map[string]bool
	SectionsPresent int
	SectionsTotal   int
	SkillMatches    map[string][]string
	TotalSkills     int
	Readability     int
	Warnings        []string
	NewlineCount    int
}

// Rule inspects the signals and either produces one suggestion or passes.
type Rule func(Signals) (string, bool)

// Profile parameterizes the shared analysis pipeline: which sections to
// look for, which verbs to count, how to weigh the signals into a score,
// and which suggestion rules apply.
type Profile struct {
	Name            string
	Sections        []SectionPattern
	ActionVerbs     map[string]bool
	UseReadability  bool
	IncludeWarnings bool
	Score           func(Signals) int
	Rules           []Rule
}

// Evaluate runs every detector the profile needs over the text and returns
// the collected signals. It never fails; empty input yields zeroed signals
// with all section and skill keys present.
func (p *Profile) Evaluate(text, raw string) Signals {
	s := Signals{
		Text:    text,
		Lowered: strings.ToLower(text),
		Raw:     raw,
	}

	s.Tokens = Tokenize(text)
	s.WordCount = len(s.Tokens)
	s.ActionVerbCount = CountActionVerbs(s.Tokens, p.ActionVerbs)

	s.Sections = DetectSections(s.Lowered, p.Sections)
	s.SectionsTotal = len(p.Sections)
	for _, present := range s.Sections {
		if present {
			s.SectionsPresent++
		}
	}

	s.SkillMatches = MatchSkills(s.Lowered)
	s.TotalSkills = CountSkills(s.SkillMatches)

	if p.UseReadability {
		s.Readability = ReadabilityScore(text)
	}
	if p.IncludeWarnings {
		s.Warnings = FormattingWarnings(s.Lowered, raw)
	}
	s.NewlineCount = strings.Count(text, "\n")

	return s
}

// Suggestions applies the profile's rules in order, appends any formatting
// warnings last, and deduplicates while preserving first-occurrence order.
func (p *Profile) Suggestions(s Signals) []string {
	out := make([]string, 0, len(p.Rules)+len(s.Warnings))
	seen := make(map[string]bool, len(p.Rules))

	add := func(msg string) {
		if !seen[msg] {
			seen[msg] = true
			out = append(out, msg)
		}
	}

	for _, rule := range p.Rules {
		if msg, ok := rule(s); ok {
			add(msg)
		}
	}
	for _, warning := range s.Warnings {
		add(warning)
	}

	return out
}
