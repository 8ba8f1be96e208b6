package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
)

func TestExtractMistakesPatterns(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		incorrect string
		correct   string
	}{
		{"dont say", `Don't say "goed", say "went".`, "goed", "went"},
		{"instead of", `Instead of "buyed", say "bought".`, "buyed", "bought"},
		{"instead of use", `Instead of "childs", use "children".`, "childs", "children"},
		{"should be", `"He go" should be "He goes" in the present tense.`, "he go", "he goes"},
		{"not but", `Not "on Monday", but "last Monday" works here.`, "on monday", "last monday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize("Teacher: " + tt.text)
			mistakes := extractMistakes(n)
			require.Len(t, mistakes, 1)
			assert.Equal(t, tt.incorrect, mistakes[0].Incorrect)
			assert.Equal(t, tt.correct, mistakes[0].Correct)
		})
	}
}

func TestExtractMistakesCorrectFormPairsWithStudentLine(t *testing.T) {
	n := Normalize("Teacher: Let's begin with your homework.\n" +
		"Student: I have went to the cinema.\n" +
		"Teacher: The correct form is \"gone\".")

	mistakes := extractMistakes(n)
	require.Len(t, mistakes, 1)
	assert.Equal(t, "i have went to the cinema.", mistakes[0].Incorrect)
	assert.Equal(t, "gone", mistakes[0].Correct)
}

func TestExtractMistakesIgnoresStudentLines(t *testing.T) {
	n := Normalize("Teacher: Good morning.\n" +
		`Student: My friend said don't say "cool", say "awesome".`)

	assert.Empty(t, extractMistakes(n))
}

func TestExtractMistakesDeduplicates(t *testing.T) {
	n := Normalize(`Teacher: Don't say "goed", say "went". Again, don't say "goed", say "went".`)

	assert.Len(t, extractMistakes(n), 1)
}

func TestCategorizeMistake(t *testing.T) {
	tests := []struct {
		name      string
		incorrect string
		correct   string
		wantType  string
	}{
		{"article", "a", "the", models.MistakeGrammar},
		{"preposition", "in", "on", models.MistakeGrammar},
		{"plural", "apple", "apples", models.MistakeGrammar},
		{"verb form", "walked", "walking", models.MistakeGrammar},
		{"spelling", "recieve", "receive", models.MistakeSpelling},
		{"word choice", "big", "large", models.MistakeVocabulary},
		{"dropped article", "i went to store", "i went to the store", models.MistakeGrammar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mtype, rule := categorizeMistake(tt.incorrect, tt.correct)
			assert.Equal(t, tt.wantType, mtype)
			assert.NotEmpty(t, rule)
		})
	}
}
