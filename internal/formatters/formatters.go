package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "AnalysisResult", &AnalysisTextFormatter{})
	registry.RegisterFormatter("markdown", "AnalysisResult", &AnalysisMarkdownFormatter{})
	registry.RegisterFormatter("text", "LiveAnalysisResult", &LiveTextFormatter{})
	registry.RegisterFormatter("markdown", "LiveAnalysisResult", &LiveMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.AnalysisResult:
		return "AnalysisResult"
	case types.LiveAnalysisResult:
		return "LiveAnalysisResult"
	default:
		return "any"
	}
}

// Presentation order for map-valued result fields.
var (
	sectionOrder = []string{
		"contact", "summary", "skills", "experience",
		"education", "projects", "certifications",
	}
	skillCategoryOrder = []string{
		"programming", "web", "database", "cloud", "data", "soft",
	}
)

func writeSections(output *strings.Builder, sections map[string]bool, bullet string) {
	for _, name := range sectionOrder {
		present, ok := sections[name]
		if !ok {
			continue
		}
		mark := "missing"
		if present {
			mark = "found"
		}
		output.WriteString(fmt.Sprintf("%s%s: %s\n", bullet, name, mark))
	}
}

func writeSkills(output *strings.Builder, matches map[string][]string, bullet string) {
	for _, category := range skillCategoryOrder {
		found, ok := matches[category]
		if !ok || len(found) == 0 {
			continue
		}
		output.WriteString(fmt.Sprintf("%s%s: %s\n", bullet, category, strings.Join(found, ", ")))
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// AnalysisTextFormatter handles text formatting for full analysis results
type AnalysisTextFormatter struct{}

func (atf *AnalysisTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.Score))
	output.WriteString(fmt.Sprintf("Readability: %d/100\n", result.ReadabilityScore))
	output.WriteString(fmt.Sprintf("Tokens: %d\n", result.TokenCount))
	output.WriteString(fmt.Sprintf("Action verbs: %d\n\n", result.ActionVerbCount))

	output.WriteString("=== SECTIONS ===\n")
	writeSections(&output, result.Sections, "")
	output.WriteString("\n")

	output.WriteString("=== SKILLS ===\n")
	writeSkills(&output, result.SkillMatches, "")
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	} else {
		output.WriteString("No suggestions. Nice resume.\n")
	}

	return output.String(), nil
}

func (atf *AnalysisTextFormatter) SupportedType() string {
	return "AnalysisResult"
}

// AnalysisMarkdownFormatter handles markdown formatting for full analysis results
type AnalysisMarkdownFormatter struct{}

func (amf *AnalysisMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.AnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected AnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Resume Analysis\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.Score))
	output.WriteString(fmt.Sprintf("**Readability:** %d/100\n\n", result.ReadabilityScore))
	output.WriteString(fmt.Sprintf("**Tokens:** %d | **Action verbs:** %d\n\n",
		result.TokenCount, result.ActionVerbCount))

	output.WriteString("## Sections\n\n")
	writeSections(&output, result.Sections, "- ")
	output.WriteString("\n")

	output.WriteString("## Skills\n\n")
	writeSkills(&output, result.SkillMatches, "- ")
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (amf *AnalysisMarkdownFormatter) SupportedType() string {
	return "AnalysisResult"
}

// LiveTextFormatter handles text formatting for live analysis results
type LiveTextFormatter struct{}

func (ltf *LiveTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.LiveAnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected LiveAnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== LIVE FEEDBACK ===\n\n")
	output.WriteString(fmt.Sprintf("Score: %d/100\n", result.LiveScore))
	output.WriteString(fmt.Sprintf("Words: %d\n", result.WordCount))
	output.WriteString(fmt.Sprintf("Action verbs: %d\n\n", result.ActionVerbCount))

	output.WriteString("=== SECTIONS ===\n")
	writeSections(&output, result.Sections, "")
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("=== SUGGESTIONS ===\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (ltf *LiveTextFormatter) SupportedType() string {
	return "LiveAnalysisResult"
}

// LiveMarkdownFormatter handles markdown formatting for live analysis results
type LiveMarkdownFormatter struct{}

func (lmf *LiveMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.LiveAnalysisResult)
	if !ok {
		return "", fmt.Errorf("expected LiveAnalysisResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Live Feedback\n\n")
	output.WriteString(fmt.Sprintf("**Score:** %d/100\n\n", result.LiveScore))
	output.WriteString(fmt.Sprintf("**Words:** %d | **Action verbs:** %d\n\n",
		result.WordCount, result.ActionVerbCount))

	output.WriteString("## Sections\n\n")
	writeSections(&output, result.Sections, "- ")
	output.WriteString("\n")

	if len(result.Suggestions) > 0 {
		output.WriteString("## Suggestions\n\n")
		for i, suggestion := range result.Suggestions {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, suggestion))
		}
	}

	return output.String(), nil
}

func (lmf *LiveMarkdownFormatter) SupportedType() string {
	return "LiveAnalysisResult"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
