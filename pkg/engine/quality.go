package engine

import "github.com/tulkka/lessonflow/pkg/models"

// Per-type target count windows.
const (
	flashcardsMin, flashcardsMax = 8, 15
	clozeMin, clozeMax           = 6, 10
	grammarMin, grammarMax       = 6, 10
	sentenceMin, sentenceMax     = 6, 10

	// hardFloor triggers the relaxed second generation pass.
	hardFloor = 3
)

// scoreDocument computes the quality score in [0,100]:
// 10 per type whose count is within its window (40), up to 25 for
// flashcard translation coverage, 20 when at least one item derives from a
// student mistake, 15 when sanitization found nothing.
func scoreDocument(doc *models.ExerciseDocument, findings []Finding) int {
	score := 0

	if within(doc.Counts.Flashcards, flashcardsMin, flashcardsMax) {
		score += 10
	}
	if within(doc.Counts.Cloze, clozeMin, clozeMax) {
		score += 10
	}
	if within(doc.Counts.Grammar, grammarMin, grammarMax) {
		score += 10
	}
	if within(doc.Counts.Sentence, sentenceMin, sentenceMax) {
		score += 10
	}

	if n := len(doc.Flashcards); n > 0 {
		translated := 0
		for _, f := range doc.Flashcards {
			if f.Translation != "" {
				translated++
			}
		}
		score += 25 * translated / n
	}

	if doc.Metadata.MistakesCount > 0 && (doc.Counts.Grammar > 0 || doc.Counts.Cloze > 0) {
		score += 20
	}

	if len(findings) == 0 {
		score += 15
	}

	return score
}

func within(n, lo, hi int) bool {
	return n >= lo && n <= hi
}
