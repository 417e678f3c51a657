package analysis

import "strings"

// SkillCategory groups related skill keywords under a category name.
type SkillCategory struct {
	Name     string
	Keywords []string
}

// skillTaxonomy is the fixed category table. Category order here is the
// order categories appear in results.
var skillTaxonomy = []SkillCategory{
	{
		Name: "programming",
		Keywords: []string{
			"python", "java", "javascript", "typescript", "c++", "c#",
			"golang", "ruby", "php", "swift", "kotlin", "rust", "scala",
		},
	},
	{
		Name: "web",
		Keywords: []string{
			"react", "angular", "vue", "node", "django", "flask",
			"spring", "rails", "express", "html", "css",
		},
	},
	{
		Name: "database",
		Keywords: []string{
			"sql", "mysql", "postgres", "mongodb", "redis", "sqlite",
			"oracle", "elasticsearch",
		},
	},
	{
		Name: "cloud",
		Keywords: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
			"lambda", "serverless",
		},
	},
	{
		Name: "data",
		Keywords: []string{
			"pandas", "numpy", "tensorflow", "pytorch", "spark",
			"hadoop", "tableau", "machine learning", "data analysis",
		},
	},
	{
		Name: "soft",
		Keywords: []string{
			"leadership", "communication", "teamwork", "problem solving",
			"collaboration", "mentoring", "agile", "scrum",
		},
	},
}

// MatchSkills scans the lowercased text for every taxonomy keyword using
// plain substring containment. That trades precision for recall: "java"
// matches inside "javascript" and "sql" inside "mysql". Every category key
// is present in the result, with a non-nil (possibly empty) slice.
func MatchSkills(lowered string) map[string][]string {
	matches := make(map[string][]string, len(skillTaxonomy))
	for _, category := range skillTaxonomy {
		found := make([]string, 0, 4)
		for _, keyword := range category.Keywords {
			if strings.Contains(lowered, keyword) {
				found = append(found, keyword)
			}
		}
		matches[category.Name] = found
	}
	return matches
}

// CountSkills sums the matched keywords across all categories.
func CountSkills(matches map[string][]string) int {
	total := 0
	for _, found := range matches {
		total += len(found)
	}
	return total
}
