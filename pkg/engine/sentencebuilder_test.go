package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
)

func TestTokenizeForBuilder(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"We visited the market.", []string{"We", "visited", "the", "market", "."}},
		{"Did you enjoy it?", []string{"Did", "you", "enjoy", "it", "?"}},
		{"no terminal punctuation here", []string{"no", "terminal", "punctuation", "here"}},
	}

	for _, tt := range tests {
		got := tokenizeForBuilder(tt.in)
		assert.Equal(t, tt.want, got)
		assert.True(t, tokensMatchSentence(got, tt.in))
	}
}

func TestBuildSentenceItems(t *testing.T) {
	rng := newRNG(1)
	candidates := []models.SentenceCandidate{
		{Text: "We visited the busy market on Saturday.", VocabWord: "market"},
		{Text: "Hi there.", VocabWord: ""},
		{Text: "We visited the busy market on Saturday.", VocabWord: "market"},
	}
	translations := map[string]string{"market": "mercado"}

	items := buildSentenceItems(rng, candidates, translations, 10)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "We visited the busy market on Saturday.", item.Sentence)
	assert.Equal(t, []string{"We", "visited", "the", "busy", "market", "on", "Saturday", "."}, item.Tokens)
	assert.Equal(t, "mercado", item.Translation)
	assert.Equal(t, models.DifficultyIntermediate, item.Difficulty)

	present := make(map[string]bool)
	for _, tok := range item.Tokens {
		present[tok] = true
	}
	for _, d := range item.Distractors {
		assert.False(t, present[d], "distractor %q already in sentence", d)
	}
	assert.Len(t, item.Distractors, 2)
}

func TestBuildSentenceItemsTokenBounds(t *testing.T) {
	rng := newRNG(2)
	long := models.SentenceCandidate{
		Text: "This sentence keeps going and going with far too many words to be a reasonable ordering exercise for anyone.",
	}

	items := buildSentenceItems(rng, []models.SentenceCandidate{long}, nil, 10)
	assert.Empty(t, items)
}
