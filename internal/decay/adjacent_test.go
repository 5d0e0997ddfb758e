package decay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestAdjacent_KnownSkills(t *testing.T) {
	assert.Equal(t, []string{"Automation", "Data Analysis", "Machine Learning"}, SuggestAdjacent("Python"))
	assert.Equal(t, []string{"Deep Learning", "MLOps"}, SuggestAdjacent("Machine Learning"))
	assert.Equal(t, []string{"React", "APIs"}, SuggestAdjacent("Web Development"))
}

func TestSuggestAdjacent_UnknownSkillGetsDefault(t *testing.T) {
	assert.Equal(t, []string{"Problem Solving", "System Design"}, SuggestAdjacent("Juggling"))
}

func TestSuggestAdjacent_LookupIsExact(t *testing.T) {
	// no case folding: "python" is not "Python"
	assert.Equal(t, []string{"Problem Solving", "System Design"}, SuggestAdjacent("python"))
}

func TestSuggestAdjacent_ReturnsCopy(t *testing.T) {
	first := SuggestAdjacent("Python")
	first[0] = "mutated"

	second := SuggestAdjacent("Python")
	assert.Equal(t, "Automation", second[0])
}
