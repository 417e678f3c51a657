package analysis

import "math"

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// fullScore is the weighted composite for uploaded documents:
// 40% keyword density, 25% readability, 25% section coverage, 10% skill
// breadth. The keyword component is a density scaled by 1000 and is
// deliberately not clamped on its own; only the composite is bounded.
func fullScore(s Signals) int {
	denominator := s.WordCount
	if denominator < 1 {
		denominator = 1
	}
	keywordScore := math.Round(float64(s.ActionVerbCount) / float64(denominator) * 1000)

	sectionScore := float64(s.SectionsPresent) / float64(s.SectionsTotal) * 100
	skillScore := math.Min(float64(s.TotalSkills*2), 100)

	total := 0.40*keywordScore +
		0.25*float64(s.Readability) +
		0.25*sectionScore +
		0.10*skillScore

	return clampScore(int(math.Round(total)))
}

// liveScore is the cheap additive formula for in-progress text: up to 40
// points for section coverage, 30 for action verbs, 20 for length, 10 for
// skills. The sum is truncated, not rounded.
func liveScore(s Signals) int {
	sectionScore := float64(s.SectionsPresent) / float64(s.SectionsTotal) * 40
	actionScore := math.Min(float64(s.ActionVerbCount*5), 30)
	skillScore := math.Min(float64(s.TotalSkills*2), 10)

	var lengthScore float64
	words := float64(s.WordCount)
	if s.WordCount <= 600 {
		lengthScore = math.Min(words/10, 20)
	} else {
		lengthScore = math.Max(20-(words-600)/50, 5)
	}

	return clampScore(int(sectionScore + actionScore + lengthScore + skillScore))
}
