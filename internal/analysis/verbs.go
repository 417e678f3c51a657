package analysis

// liveActionVerbs is the reduced verb set checked while the user is typing.
var liveActionVerbs = makeVerbSet(
	"managed", "led", "developed", "designed", "implemented", "created",
	"improved", "built", "analyzed", "optimized", "collaborated",
	"maintained", "deployed", "engineered", "researched", "coordinated",
	"supervised", "trained", "automated", "streamlined",
)

// fullActionVerbs is a strict superset of the live set, so a full analysis
// never reports fewer verbs than a live pass over the same text.
var fullActionVerbs = makeVerbSet(append(verbList(liveActionVerbs),
	"launched", "delivered", "achieved", "initiated", "spearheaded",
	"reduced", "increased", "migrated", "architected", "mentored",
)...)

func makeVerbSet(verbs ...string) map[string]bool {
	set := make(map[string]bool, len(verbs))
	for _, verb := range verbs {
		set[verb] = true
	}
	return set
}

func verbList(set map[string]bool) []string {
	verbs := make([]string, 0, len(set))
	for verb := range set {
		verbs = append(verbs, verb)
	}
	return verbs
}

// CountActionVerbs counts token occurrences found in the verb set.
// Repeated verbs count every time they appear.
func CountActionVerbs(tokens []string, verbs map[string]bool) int {
	count := 0
	for _, token := range tokens {
		if verbs[token] {
			count++
		}
	}
	return count
}
