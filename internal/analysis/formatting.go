package analysis

import "strings"

// ATS-compatibility warnings surfaced to the user verbatim.
const (
	warnTables  = "Detected table-like text - tables may break ATS parsing."
	warnImages  = "Contains images/photos - ATS may skip them."
	warnObjects = "PDF appears to contain embedded objects (images)."
)

// FormattingWarnings inspects the extracted text and the raw document
// payload for constructs that commonly break applicant tracking systems.
// Each warning appears at most once, in a fixed order.
func FormattingWarnings(lowered, raw string) []string {
	warnings := make([]string, 0, 3)

	if strings.Contains(lowered, "table") || strings.Contains(raw, "\t") {
		warnings = append(warnings, warnTables)
	}
	if strings.Contains(lowered, "image") || strings.Contains(lowered, "photo") ||
		strings.Contains(lowered, "picture") {
		warnings = append(warnings, warnImages)
	}
	if strings.Contains(raw, "/XObject") || strings.Contains(raw, "/Image") {
		warnings = append(warnings, warnObjects)
	}

	return warnings
}
