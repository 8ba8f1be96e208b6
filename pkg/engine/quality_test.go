package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tulkka/lessonflow/pkg/models"
)

func scoringDocument(flashcards, cloze, grammar, sentence int, translated int, mistakes int) *models.ExerciseDocument {
	doc := &models.ExerciseDocument{}
	for i := 0; i < flashcards; i++ {
		f := models.Flashcard{Word: "w", Example: "e"}
		if i < translated {
			f.Translation = "t"
		}
		doc.Flashcards = append(doc.Flashcards, f)
	}
	for i := 0; i < cloze; i++ {
		doc.Cloze = append(doc.Cloze, models.ClozeItem{})
	}
	for i := 0; i < grammar; i++ {
		doc.Grammar = append(doc.Grammar, models.GrammarQuestion{})
	}
	for i := 0; i < sentence; i++ {
		doc.Sentence = append(doc.Sentence, models.SentenceItem{})
	}
	doc.Metadata.MistakesCount = mistakes
	doc.RecountItems()
	return doc
}

func TestScoreDocument(t *testing.T) {
	tests := []struct {
		name string
		doc  *models.ExerciseDocument
		// one finding per entry; empty means a clean sanitize pass
		findings []Finding
		want     int
	}{
		{
			"perfect document",
			scoringDocument(10, 8, 8, 8, 10, 2),
			nil,
			100,
		},
		{
			"no translations",
			scoringDocument(10, 8, 8, 8, 0, 2),
			nil,
			75,
		},
		{
			"half translated",
			scoringDocument(10, 8, 8, 8, 5, 2),
			nil,
			87, // 40 + 12 + 20 + 15, integer division
		},
		{
			"counts out of window",
			scoringDocument(2, 1, 1, 1, 0, 0),
			nil,
			15,
		},
		{
			"sanitizer findings forfeit the clean bonus",
			scoringDocument(10, 8, 8, 8, 10, 2),
			[]Finding{{Kind: "cloze", Detail: "x"}},
			85,
		},
		{
			"mistake bonus needs grammar or cloze items",
			scoringDocument(10, 0, 0, 8, 10, 2),
			nil,
			60,
		},
		{
			"empty document",
			scoringDocument(0, 0, 0, 0, 0, 0),
			nil,
			15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scoreDocument(tt.doc, tt.findings))
		})
	}
}
