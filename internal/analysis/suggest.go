package analysis

import (
	"fmt"
	"strings"
)

// Suggestion texts for the full profile.
const (
	msgAddContact    = "Add contact details (email and phone) in the header."
	msgAddSkills     = "Add a Skills section with bullet points listing technical skills."
	msgAddExperience = "Include a clear Experience/Work Experience section with company names and dates."
	msgAddEducation  = "Add an Education section with degree and institution."
	msgMoreVerbs     = "Use more action verbs (managed, led, developed) to describe achievements."
	msgReadability   = "Make sentences shorter and simpler to improve readability."
	msgMoreSkills    = "List more concrete technical skills so keyword scans pick them up."
)

// Suggestion texts for the live profile.
const (
	msgLiveTooShort   = "Your resume looks too short - aim for 200-600 words of substance."
	msgLiveTooLong    = "Your resume is getting long - tighten it to under 800 words."
	msgLiveNoVerbs    = "Start bullet points with action verbs like led, built, or managed."
	msgLiveFewVerbs   = "Add more action verbs to strengthen your achievements."
	msgLiveFewSkills  = "List more specific skills and tools you have used."
	msgLiveLanguages  = "Mention the programming languages you work with."
	msgLiveSoftSkills = "Sprinkle in soft skills like leadership or collaboration where they fit."
	msgLiveSummary    = "Open with a short summary or objective statement."
	msgLiveProjects   = "Add a Projects section to showcase hands-on work."
	msgLiveBullets    = "Break your content into bullet points for easier scanning."

	// MsgLivePrompt greets an empty live-analysis request.
	MsgLivePrompt = "Start typing your resume content to get real-time feedback!"
)

func missingSection(name, msg string) Rule {
	return func(s Signals) (string, bool) {
		return msg, !s.Sections[name]
	}
}

// fullRules fire in order; formatting warnings are appended after them by
// Profile.Suggestions.
var fullRules = []Rule{
	missingSection("contact", msgAddContact),
	missingSection("skills", msgAddSkills),
	missingSection("experience", msgAddExperience),
	missingSection("education", msgAddEducation),
	func(s Signals) (string, bool) {
		return msgMoreVerbs, s.ActionVerbCount < 3
	},
	func(s Signals) (string, bool) {
		return msgReadability, s.Readability < 40
	},
	func(s Signals) (string, bool) {
		return msgMoreSkills, s.TotalSkills < 8
	},
}

// liveEssentialSections are reported in one combined suggestion when absent.
// Summary has its own softer rule further down the list.
var liveEssentialSections = []string{"contact", "skills", "experience", "education"}

var liveRules = []Rule{
	func(s Signals) (string, bool) {
		return msgLiveTooShort, s.WordCount < 200
	},
	func(s Signals) (string, bool) {
		return msgLiveTooLong, s.WordCount > 800
	},
	func(s Signals) (string, bool) {
		missing := make([]string, 0, len(liveEssentialSections))
		for _, name := range liveEssentialSections {
			if !s.Sections[name] {
				missing = append(missing, name)
			}
		}
		if len(missing) == 0 {
			return "", false
		}
		return fmt.Sprintf("Add these missing sections: %s.", strings.Join(missing, ", ")), true
	},
	func(s Signals) (string, bool) {
		if s.ActionVerbCount == 0 {
			return msgLiveNoVerbs, true
		}
		return msgLiveFewVerbs, s.ActionVerbCount < 5
	},
	func(s Signals) (string, bool) {
		return msgLiveFewSkills, s.TotalSkills < 5
	},
	func(s Signals) (string, bool) {
		// Role-aware nudge: a developer resume naming no programming
		// language at all is missing its most scannable keywords.
		return msgLiveLanguages,
			strings.Contains(s.Lowered, "developer") && len(s.SkillMatches["programming"]) == 0
	},
	func(s Signals) (string, bool) {
		return msgLiveSoftSkills, len(s.SkillMatches["soft"]) == 0
	},
	func(s Signals) (string, bool) {
		return msgLiveSummary, !s.Sections["summary"]
	},
	func(s Signals) (string, bool) {
		isTechnical := strings.Contains(s.Lowered, "developer") ||
			strings.Contains(s.Lowered, "engineer")
		return msgLiveProjects, isTechnical && !strings.Contains(s.Lowered, "project")
	},
	func(s Signals) (string, bool) {
		return msgLiveBullets, s.NewlineCount < 10
	},
}
