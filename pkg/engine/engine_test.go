package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/llm"
	"github.com/tulkka/lessonflow/pkg/models"
)

const sampleTranscript = `WEBVTT

1
00:00:01.000 --> 00:00:04.000
Teacher Anna: Good morning everyone, today we will practice describing your weekend.
Student Boris: I goed to the market with my brother on Saturday morning.
Teacher Anna: Don't say "goed", say "went". You went to the market with your brother.
Student Boris: We buyed fresh vegetables and some bread for dinner.
Teacher Anna: Instead of "buyed", say "bought". You bought fresh vegetables at the market.
Teacher Anna: Important words: vegetables, market, weekend, brother
Student Boris: My brother cooked the vegetables for our family dinner.
Teacher Anna: Your brother cooked the vegetables, that is a great sentence.
Student Boris: After dinner we watched a film about the ocean.
Teacher Anna: The film about the ocean sounds interesting, describe your favorite scene.
Student Boris: The divers swam near the colorful fish in deep water.
Teacher Anna: The divers swam near the colorful fish, excellent description.
`

type fakeProvider struct {
	vocab        []models.VocabularyItem
	sentences    []string
	translations map[string]string

	vocabErr     error
	sentencesErr error
	translateErr error

	translateCalls int
}

func (f *fakeProvider) SuggestVocabulary(_ context.Context, _ string, _ int) ([]models.VocabularyItem, error) {
	return f.vocab, f.vocabErr
}

func (f *fakeProvider) SuggestSentences(_ context.Context, _ string, _ int) ([]string, error) {
	return f.sentences, f.sentencesErr
}

func (f *fakeProvider) Translate(_ context.Context, _ []string, _ string) (map[string]string, error) {
	f.translateCalls++
	return f.translations, f.translateErr
}

func testConfig() Config {
	return Config{
		QualityMin:         60,
		MinTranscriptChars: 100,
		TargetLanguage:     "spanish",
	}
}

func testInput(summaryID int64) Input {
	return Input{
		SummaryID:  summaryID,
		Transcript: sampleTranscript,
		UserID:     "s-1",
		TeacherID:  "t-1",
		ClassID:    "c-1",
	}
}

func TestGenerateTranscriptTooShort(t *testing.T) {
	eng := New(testConfig(), nil)

	for _, transcript := range []string{"", "   ", "Too short to use."} {
		doc, err := eng.Generate(context.Background(), Input{SummaryID: 1, Transcript: transcript})
		require.ErrorIs(t, err, ErrTranscriptTooShort)
		assert.Nil(t, doc)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	eng := New(testConfig(), nil)

	first, err := eng.Generate(context.Background(), testInput(42))
	require.NoError(t, err)
	second, err := eng.Generate(context.Background(), testInput(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// A different summary id reseeds the source, so item ids diverge.
	other, err := eng.Generate(context.Background(), testInput(43))
	require.NoError(t, err)
	require.NotEmpty(t, first.Flashcards)
	require.NotEmpty(t, other.Flashcards)
	assert.NotEqual(t, first.Flashcards[0].ID, other.Flashcards[0].ID)
}

func TestGenerateHeuristicOnly(t *testing.T) {
	eng := New(testConfig(), nil)

	doc, err := eng.Generate(context.Background(), testInput(7))
	require.NoError(t, err)

	assert.Equal(t, models.SourceHeuristic, doc.Metadata.Sources.Flashcards)
	assert.Equal(t, models.SourceHeuristic, doc.Metadata.Sources.Sentence)
	assert.NotEmpty(t, doc.Flashcards)
	assert.Equal(t, len(doc.Flashcards), doc.Counts.Flashcards)
	assert.Equal(t, len(doc.Cloze), doc.Counts.Cloze)
	assert.Equal(t, len(doc.Grammar), doc.Counts.Grammar)
	assert.Equal(t, len(doc.Sentence), doc.Counts.Sentence)
	assert.Equal(t, 2, doc.Metadata.MistakesCount)
	assert.False(t, doc.Metadata.TranslationPresent)

	// Corrected forms surface as flashcards.
	cardWords := make([]string, 0, len(doc.Flashcards))
	for _, f := range doc.Flashcards {
		cardWords = append(cardWords, f.Word)
	}
	assert.Contains(t, cardWords, "went")
	assert.Contains(t, cardWords, "bought")
}

func TestGenerateProviderFallback(t *testing.T) {
	provider := &fakeProvider{
		vocabErr:     llm.ErrUnavailable,
		sentencesErr: llm.ErrRateLimited,
		translateErr: llm.ErrUnavailable,
	}
	eng := New(testConfig(), provider)

	doc, err := eng.Generate(context.Background(), testInput(7))
	require.NoError(t, err)

	assert.Equal(t, models.SourceHeuristic, doc.Metadata.Sources.Flashcards)
	assert.Equal(t, models.SourceHeuristic, doc.Metadata.Sources.Sentence)
	assert.NotEmpty(t, doc.Flashcards)
	assert.False(t, doc.Metadata.TranslationPresent)

	// A failed provider must produce the same document as no provider.
	heuristic, err := New(testConfig(), nil).Generate(context.Background(), testInput(7))
	require.NoError(t, err)
	assert.Equal(t, heuristic, doc)
}

func TestGenerateWithProvider(t *testing.T) {
	provider := &fakeProvider{
		vocab: []models.VocabularyItem{
			{Word: "vegetables", Definition: "plants grown for food", Source: models.SourceLLM},
			{Word: "market", Definition: "a place to buy goods", Source: models.SourceLLM},
			{Word: "brother", Definition: "a male sibling", Source: models.SourceLLM},
			{Word: "ocean", Definition: "a very large sea", Source: models.SourceLLM},
		},
		sentences: []string{
			"You went to the market with your brother.",
			"You bought fresh vegetables at the market.",
			"My brother cooked the vegetables for our family dinner.",
			"After dinner we watched a film about the ocean.",
			"The divers swam near the colorful fish in deep water.",
		},
		translations: map[string]string{
			"vegetables": "verduras",
			"market":     "mercado",
			"brother":    "hermano",
			"ocean":      "océano",
		},
	}
	eng := New(testConfig(), provider)

	doc, err := eng.Generate(context.Background(), testInput(9))
	require.NoError(t, err)

	assert.Equal(t, models.SourceLLM, doc.Metadata.Sources.Flashcards)
	assert.Equal(t, models.SourceLLM, doc.Metadata.Sources.Sentence)
	assert.Equal(t, models.SourceHeuristic, doc.Metadata.Sources.Grammar)
	assert.True(t, doc.Metadata.TranslationPresent)
	assert.Equal(t, 1, provider.translateCalls)

	for _, f := range doc.Flashcards {
		if f.Word == "market" {
			assert.Equal(t, "mercado", f.Translation)
		}
		assert.NotEmpty(t, f.Difficulty)
	}
}

func TestGenerateTranslatesCapitalizedVocabulary(t *testing.T) {
	// The provider may return title-cased words while the translation map is
	// keyed lowercase; the flashcard lookup must still connect the two.
	provider := &fakeProvider{
		vocab: []models.VocabularyItem{
			{Word: "Market", Definition: "a place to buy goods", Source: models.SourceLLM},
			{Word: "Vegetables", Definition: "plants grown for food", Source: models.SourceLLM},
		},
		translations: map[string]string{
			"market":     "mercado",
			"vegetables": "verduras",
		},
	}
	eng := New(testConfig(), provider)

	doc, err := eng.Generate(context.Background(), testInput(13))
	require.NoError(t, err)

	want := map[string]string{"Market": "mercado", "Vegetables": "verduras"}
	seen := 0
	for _, f := range doc.Flashcards {
		if translation, ok := want[f.Word]; ok {
			assert.Equal(t, translation, f.Translation, "word %q", f.Word)
			seen++
		}
	}
	assert.Equal(t, len(want), seen)
	assert.True(t, doc.Metadata.TranslationPresent)
}

func TestGenerateLowQualityStillReturnsDocument(t *testing.T) {
	// A transcript with no corrections and few usable sentences scores low
	// but generation still succeeds.
	transcript := strings.Repeat("Yes. Okay. Mhm. Right. Sure thing everyone. ", 5)
	eng := New(testConfig(), nil)

	doc, err := eng.Generate(context.Background(), Input{SummaryID: 3, Transcript: transcript})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.False(t, doc.Metadata.QualityPassed)
	assert.Less(t, doc.Metadata.QualityScore, 60)
}

func TestGenerateDocumentIsStructurallyValid(t *testing.T) {
	eng := New(testConfig(), nil)

	doc, err := eng.Generate(context.Background(), testInput(11))
	require.NoError(t, err)

	for _, c := range doc.Cloze {
		assert.Equal(t, 1, strings.Count(c.Sentence, blankMarker))
		assert.Len(t, c.Options, 4)
		assert.Contains(t, c.Options, c.Answer)
	}
	for _, g := range doc.Grammar {
		assert.Len(t, g.Options, 4)
		assert.GreaterOrEqual(t, g.CorrectIndex, 0)
		assert.Less(t, g.CorrectIndex, 4)
	}
	for _, s := range doc.Sentence {
		assert.True(t, tokensMatchSentence(s.Tokens, s.Sentence))
	}
}
