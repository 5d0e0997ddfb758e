package decay

// adjacentSkills maps a skill name to skills commonly picked up alongside it.
var adjacentSkills = map[string][]string{
	"Python":           {"Automation", "Data Analysis", "Machine Learning"},
	"Machine Learning": {"Deep Learning", "MLOps"},
	"Web Development":  {"React", "APIs"},
}

// defaultAdjacent is suggested for skills without a curated entry.
var defaultAdjacent = []string{"Problem Solving", "System Design"}

// SuggestAdjacent returns skills worth picking up next to the named one.
// The lookup is exact; unknown skills get a generic suggestion. The returned
// slice is a copy, safe for the caller to modify.
func SuggestAdjacent(name string) []string {
	suggestions, ok := adjacentSkills[name]
	if !ok {
		suggestions = defaultAdjacent
	}

	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
