package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
)

func TestBlankOneToken(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		word     string
		want     string
		ok       bool
	}{
		{"simple", "The forecast promised sunshine today.", "forecast", "The ____ promised sunshine today.", true},
		{"keeps punctuation", "I love sunshine, honestly.", "sunshine", "I love ____, honestly.", true},
		{"case folded", "Sunshine makes everyone happier.", "sunshine", "____ makes everyone happier.", true},
		{"absent word", "The forecast promised rain.", "sunshine", "", false},
		{"ambiguous word", "Rain, rain, go away.", "rain", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := blankOneToken(tt.sentence, tt.word)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPickDistractorsPrefersStudentForms(t *testing.T) {
	mistakes := []models.Mistake{
		{Incorrect: "goed", Correct: "went", Type: models.MistakeVocabulary},
	}
	vocab := []models.VocabularyItem{
		{Word: "market"},
		{Word: "dinner"},
	}

	out := pickDistractors("went", vocab, mistakes, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "goed", out[0])

	seen := map[string]bool{"went": true}
	for _, d := range out {
		assert.False(t, seen[d], "distractor %q duplicated", d)
		seen[d] = true
		assert.LessOrEqual(t, lengthDelta(d, "went"), 4)
	}
}

func TestBuildClozeStructure(t *testing.T) {
	rng := newRNG(1)
	candidates := []models.SentenceCandidate{
		{Text: "The forecast promised sunshine for the weekend.", VocabWord: "forecast"},
		{Text: "We visited the market on Saturday morning.", VocabWord: "market"},
		{Text: "No vocabulary word here at all.", VocabWord: ""},
	}
	vocab := []models.VocabularyItem{
		{Word: "forecast"}, {Word: "market"}, {Word: "weekend"}, {Word: "morning"},
	}

	items := buildCloze(rng, candidates, vocab, nil, 10)
	require.Len(t, items, 2)

	for _, item := range items {
		assert.Equal(t, 1, strings.Count(item.Sentence, blankMarker))
		assert.Len(t, item.Options, 4)
		assert.Contains(t, item.Options, item.Answer)
		assert.NotEmpty(t, item.Explanation)
		assert.NotEmpty(t, item.ID)
	}
	assert.Equal(t, "forecast", items[0].Answer)
}

func TestBuildClozeDeterministic(t *testing.T) {
	candidates := []models.SentenceCandidate{
		{Text: "The forecast promised sunshine for the weekend.", VocabWord: "forecast"},
	}
	vocab := []models.VocabularyItem{{Word: "forecast"}, {Word: "weekend"}, {Word: "sunshine"}}

	first := buildCloze(newRNG(5), candidates, vocab, nil, 10)
	second := buildCloze(newRNG(5), candidates, vocab, nil, 10)
	assert.Equal(t, first, second)
}

func TestInflections(t *testing.T) {
	assert.Contains(t, inflections("walking"), "walked")
	assert.Contains(t, inflections("walked"), "walking")
	assert.Contains(t, inflections("apples"), "apple")
	assert.Contains(t, inflections("walk"), "walks")
}
