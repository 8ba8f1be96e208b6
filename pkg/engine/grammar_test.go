package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tulkka/lessonflow/pkg/models"
)

func TestBuildGrammarMistakeSeeded(t *testing.T) {
	rng := newRNG(1)
	mistakes := []models.Mistake{
		{Incorrect: "goed", Correct: "went", Type: models.MistakeGrammar, Rule: "verb form: use 'went', not 'goed'"},
	}
	candidates := []models.SentenceCandidate{
		{Text: "He went to the market yesterday morning.", VocabWord: "market"},
	}

	questions := buildGrammar(rng, mistakes, candidates, nil, 10)
	require.NotEmpty(t, questions)

	q := questions[0]
	assert.Contains(t, q.Prompt, blankMarker)
	assert.Len(t, q.Options, 4)
	assert.Contains(t, q.Options, "went")
	assert.Contains(t, q.Options, "goed")
	assert.Equal(t, "went", q.Options[q.CorrectIndex])
	assert.Equal(t, "verb form: use 'went', not 'goed'", q.Explanation)
}

func TestBuildGrammarPhraseQuestion(t *testing.T) {
	m := models.Mistake{Incorrect: "i am agree", Correct: "i agree with you", Type: models.MistakeGrammar}

	// A scramble can reproduce the original word order, in which case the
	// deduplicated option list is short and no question is emitted. Scan a
	// few seeds and verify the contract whenever one is produced.
	produced := false
	for seed := int64(0); seed < 10; seed++ {
		q := buildPhraseQuestion(newRNG(seed), m)
		if q == nil {
			continue
		}
		produced = true
		assert.Equal(t, "Which phrase is correct?", q.Prompt)
		assert.Len(t, q.Options, 4)
		assert.Equal(t, "i agree with you", q.Options[q.CorrectIndex])
		assert.Contains(t, q.Options, "i am agree")
	}
	require.True(t, produced)
}

func TestBuildGrammarFunctionWordQuestions(t *testing.T) {
	rng := newRNG(3)
	candidates := []models.SentenceCandidate{
		{Text: "She is reading a long novel tonight."},
		{Text: "They walked home after dinner yesterday."},
	}

	questions := buildGrammar(rng, nil, candidates, nil, 10)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.True(t, strings.Contains(q.Prompt, blankMarker))
	assert.Len(t, q.Options, 4)
	assert.Equal(t, "is", q.Options[q.CorrectIndex])
}

func TestBuildGrammarRespectsMax(t *testing.T) {
	rng := newRNG(4)
	candidates := []models.SentenceCandidate{
		{Text: "She is reading in the kitchen now."},
		{Text: "He was sleeping when the phone rang."},
		{Text: "We are planning a short trip abroad."},
	}

	questions := buildGrammar(rng, nil, candidates, nil, 2)
	assert.Len(t, questions, 2)
}

func TestScrambleWords(t *testing.T) {
	rng := newRNG(6)
	assert.Len(t, strings.Fields(scrambleWords(rng, "one two three")), 3)
	assert.Equal(t, "word word", scrambleWords(rng, "word"))
}
