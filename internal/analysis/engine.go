package analysis

import (
	"strings"

	"resumelens/internal/errors"
	"resumelens/internal/types"
)

// Engine runs resume analysis under two profiles: the full pass for
// uploaded documents and the lightweight live pass for in-progress text.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	full   *Profile
	live   *Profile
	logger *errors.Logger
}

// NewEngine creates an analysis engine. The logger may be nil.
func NewEngine(logger *errors.Logger) *Engine {
	return &Engine{
		full: &Profile{
			Name:            "full",
			Sections:        fullSections,
			ActionVerbs:     fullActionVerbs,
			UseReadability:  true,
			IncludeWarnings: true,
			Score:           fullScore,
			Rules:           fullRules,
		},
		live: &Profile{
			Name:        "live",
			Sections:    liveSections,
			ActionVerbs: liveActionVerbs,
			Score:       liveScore,
			Rules:       liveRules,
		},
		logger: logger,
	}
}

// Analyze runs the full profile over extracted text. The raw document
// payload is only consulted for formatting warnings.
func (e *Engine) Analyze(text, raw string) types.AnalysisResult {
	s := e.full.Evaluate(text, raw)

	result := types.AnalysisResult{
		Score:            e.full.Score(s),
		Sections:         s.Sections,
		ActionVerbCount:  s.ActionVerbCount,
		TokenCount:       s.WordCount,
		ReadabilityScore: s.Readability,
		SkillMatches:     s.SkillMatches,
		Suggestions:      e.full.Suggestions(s),
	}

	if e.logger != nil {
		e.logger.Debug("Resume analyzed",
			"profile", e.full.Name,
			"score", result.Score,
			"tokens", result.TokenCount,
			"suggestions", len(result.Suggestions))
	}

	return result
}

// AnalyzeLive runs the live profile over in-progress text. Blank input is
// not an error: it yields a zero score and a single onboarding prompt, with
// every section and skill key still present.
func (e *Engine) AnalyzeLive(text string) types.LiveAnalysisResult {
	if strings.TrimSpace(text) == "" {
		s := e.live.Evaluate("", "")
		return types.LiveAnalysisResult{
			LiveScore:    e.live.Score(s),
			Sections:     s.Sections,
			SkillMatches: s.SkillMatches,
			Suggestions:  []string{MsgLivePrompt},
		}
	}

	s := e.live.Evaluate(text, text)

	return types.LiveAnalysisResult{
		LiveScore:       e.live.Score(s),
		Sections:        s.Sections,
		ActionVerbCount: s.ActionVerbCount,
		WordCount:       s.WordCount,
		SkillMatches:    s.SkillMatches,
		Suggestions:     e.live.Suggestions(s),
	}
}

// LiveFailure builds the zero-score result returned when a live analysis
// cannot complete. The failure message rides along as a suggestion so the
// client keeps rendering instead of erroring.
func (e *Engine) LiveFailure(message string) types.LiveAnalysisResult {
	s := e.live.Evaluate("", "")
	return types.LiveAnalysisResult{
		Sections:     s.Sections,
		SkillMatches: s.SkillMatches,
		Suggestions:  []string{message},
	}
}
