package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tulkka/lessonflow/pkg/models"
)

func validDocument() *models.ExerciseDocument {
	return &models.ExerciseDocument{
		Flashcards: []models.Flashcard{
			{ID: "f1", Word: "market", Example: "We visited the market.", Difficulty: models.DifficultyBeginner},
		},
		Cloze: []models.ClozeItem{
			{
				ID:          "c1",
				Sentence:    "We visited the ____ on Saturday.",
				Answer:      "market",
				Options:     []string{"market", "members", "mark", "harvest"},
				Explanation: "Choose the word that best completes the sentence.",
			},
		},
		Grammar: []models.GrammarQuestion{
			{
				ID:           "g1",
				Prompt:       "She ____ reading a book.",
				Options:      []string{"is", "are", "was", "were"},
				CorrectIndex: 0,
				Explanation:  "Pick the form that agrees with the rest of the sentence.",
			},
		},
		Sentence: []models.SentenceItem{
			{
				ID:       "s1",
				Sentence: "We visited the market.",
				Tokens:   []string{"We", "visited", "the", "market", "."},
			},
		},
	}
}

func TestSanitizeCleanDocument(t *testing.T) {
	doc := validDocument()
	findings := sanitizeDocument(doc)

	assert.Empty(t, findings)
	assert.Len(t, doc.Flashcards, 1)
	assert.Len(t, doc.Cloze, 1)
	assert.Len(t, doc.Grammar, 1)
	assert.Len(t, doc.Sentence, 1)
}

func TestSanitizeDropsBrokenItems(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*models.ExerciseDocument)
		wantKind string
	}{
		{
			"flashcard missing example",
			func(d *models.ExerciseDocument) { d.Flashcards[0].Example = "" },
			"flashcard",
		},
		{
			"flashcard doubled punctuation",
			func(d *models.ExerciseDocument) { d.Flashcards[0].Example = "We visited the market..." },
			"flashcard",
		},
		{
			"cloze without blank",
			func(d *models.ExerciseDocument) { d.Cloze[0].Sentence = "We visited the market on Saturday." },
			"cloze",
		},
		{
			"cloze with two blanks",
			func(d *models.ExerciseDocument) { d.Cloze[0].Sentence = "We ____ the ____ on Saturday." },
			"cloze",
		},
		{
			"cloze wrong option count",
			func(d *models.ExerciseDocument) { d.Cloze[0].Options = []string{"market", "mark"} },
			"cloze",
		},
		{
			"cloze duplicate options",
			func(d *models.ExerciseDocument) {
				d.Cloze[0].Options = []string{"market", "market", "mark", "harvest"}
			},
			"cloze",
		},
		{
			"cloze answer not an option",
			func(d *models.ExerciseDocument) {
				d.Cloze[0].Options = []string{"members", "marked", "mark", "harvest"}
			},
			"cloze",
		},
		{
			"grammar index out of range",
			func(d *models.ExerciseDocument) { d.Grammar[0].CorrectIndex = 4 },
			"grammar",
		},
		{
			"grammar empty option",
			func(d *models.ExerciseDocument) {
				d.Grammar[0].Options = []string{"is", "", "was", "were"}
			},
			"grammar",
		},
		{
			"sentence tokens mismatch",
			func(d *models.ExerciseDocument) {
				d.Sentence[0].Tokens = []string{"We", "visited", "a", "market", "."}
			},
			"sentence",
		},
		{
			"sentence trailing whitespace",
			func(d *models.ExerciseDocument) { d.Sentence[0].Sentence = "We visited the market. " },
			"sentence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			findings := sanitizeDocument(doc)
			if assert.Len(t, findings, 1) {
				assert.Equal(t, tt.wantKind, findings[0].Kind)
			}

			doc.RecountItems()
			total := doc.Counts.Flashcards + doc.Counts.Cloze + doc.Counts.Grammar + doc.Counts.Sentence
			assert.Equal(t, 3, total)
		})
	}
}
