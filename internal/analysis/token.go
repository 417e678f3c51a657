package analysis

import (
	"regexp"
	"strings"
)

// tokenPattern matches runs of at least two ASCII letters. Mixed tokens like
// "C++" or "Node.js" fragment into their letter runs, so keyword counts are
// based on the letter runs alone.
var tokenPattern = regexp.MustCompile(`[a-z]{2,}`)

// Tokenize lowercases the text and returns every run of two or more ASCII
// letters, in order of appearance, duplicates included. The token count
// doubles as the word count for scoring.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}
