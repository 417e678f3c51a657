package analysis

import (
	"math"
	"regexp"

	"github.com/mtso/syllables"
)

var sentencePattern = regexp.MustCompile(`[.!?]+`)

// ReadabilityScore computes the Flesch reading ease of the text and
// normalizes it onto a 0-100 scale where higher is easier to read.
// Degenerate input (no words or no sentence terminators) scores a neutral
// 50 rather than an extreme.
func ReadabilityScore(text string) int {
	words := Tokenize(text)
	if len(words) == 0 {
		return 50
	}

	sentenceCount := len(sentencePattern.FindAllString(text, -1))
	if sentenceCount == 0 {
		return 50
	}

	syllableCount := 0
	for _, word := range words {
		syllableCount += syllables.In(word)
	}

	wordCount := float64(len(words))
	flesch := 206.835 -
		1.015*(wordCount/float64(sentenceCount)) -
		84.6*(float64(syllableCount)/wordCount)

	// Raw Flesch is theoretically bounded by roughly [-100, 121] for real
	// prose; clamp before normalizing so outliers map to the scale ends.
	if flesch > 121 {
		flesch = 121
	}
	if flesch < -100 {
		flesch = -100
	}

	return int(math.Round((flesch + 100) / 221 * 100))
}
