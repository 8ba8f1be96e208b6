package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
)

func TestExtractVocabularyPrioritizesCorrections(t *testing.T) {
	n := Normalize("Anna: The weather forecast promised sunshine for the weekend.\n" +
		"Anna: The weather forecast was wrong about the weekend sunshine.")
	mistakes := []models.Mistake{
		{Incorrect: "goed", Correct: "went", Type: models.MistakeVocabulary},
	}

	items := extractVocabulary(n, mistakes, 10)
	require.NotEmpty(t, items)
	assert.Equal(t, "went", items[0].Word)
	assert.Equal(t, models.SourceHeuristic, items[0].Source)
}

func TestExtractVocabularyExplicitMentions(t *testing.T) {
	n := Normalize("Anna: Important words: forecast, sunshine, umbrella\n" +
		"Anna: Let us continue with the exercise now.")

	items := extractVocabulary(n, nil, 10)

	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.Word)
	}
	assert.Contains(t, got, "forecast")
	assert.Contains(t, got, "sunshine")
	assert.Contains(t, got, "umbrella")
}

func TestExtractVocabularyExcludesStopwordsAndNames(t *testing.T) {
	n := Normalize("Anna: Boris, the forecast mentioned heavy rain again.\n" +
		"Boris: Anna, the forecast really did mention heavy rain.")

	items := extractVocabulary(n, nil, 10)
	for _, it := range items {
		assert.NotEqual(t, "anna", it.Word)
		assert.NotEqual(t, "boris", it.Word)
		assert.NotEqual(t, "the", it.Word)
	}
}

func TestExtractVocabularyRespectsMax(t *testing.T) {
	n := Normalize("Anna: Elephants giraffes zebras lions tigers leopards crocodiles hippos rhinos buffaloes together.")

	items := extractVocabulary(n, nil, 3)
	assert.Len(t, items, 3)
}

func TestExtractVocabularyDeterministicOrder(t *testing.T) {
	n := Normalize("Anna: The forecast mentioned rain, wind, thunder and sunshine yesterday.\n" +
		"Anna: The forecast mentioned rain, wind, thunder and sunshine today as well.")

	first := extractVocabulary(n, nil, 10)
	second := extractVocabulary(n, nil, 10)
	assert.Equal(t, first, second)
}

func TestDifficultyForWord(t *testing.T) {
	assert.Equal(t, models.DifficultyBeginner, difficultyForWord("rain"))
	assert.Equal(t, models.DifficultyIntermediate, difficultyForWord("thunder"))
	assert.Equal(t, models.DifficultyAdvanced, difficultyForWord("forecasting"))
}
