package types

// AnalysisResult represents the full analysis of an uploaded resume.
// Sections and SkillMatches always carry every key of their respective
// tables, even when the input is empty.
type AnalysisResult struct {
	Score            int                 `json:"score"`
	Sections         map[string]bool     `json:"sections"`
	ActionVerbCount  int                 `json:"actionVerbCount"`
	TokenCount       int                 `json:"tokenCount"`
	ReadabilityScore int                 `json:"readabilityScore"`
	SkillMatches     map[string][]string `json:"skillMatches"`
	Suggestions      []string            `json:"suggestions"`
}

// LiveAnalysisResult represents the cheaper incremental analysis returned
// while a user is still typing. It reuses the word count instead of a
// separate token count and skips the reading-ease metric.
type LiveAnalysisResult struct {
	LiveScore       int                 `json:"liveScore"`
	Sections        map[string]bool     `json:"sections"`
	ActionVerbCount int                 `json:"actionVerbCount"`
	WordCount       int                 `json:"wordCount"`
	SkillMatches    map[string][]string `json:"skillMatches"`
	Suggestions     []string            `json:"suggestions"`
}

// LiveAnalysisInput represents the request body for live analysis
type LiveAnalysisInput struct {
	Text string `json:"text"`
}
