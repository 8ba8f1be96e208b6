package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

// buildFlashcards turns vocabulary items into flashcards. The example
// sentence comes from the extracted candidates when one contains the word,
// else from the first transcript sentence with a case-folded match.
func buildFlashcards(
	rng *rand.Rand,
	vocab []models.VocabularyItem,
	candidates []models.SentenceCandidate,
	allSentences []string,
	translations map[string]string,
	max int,
) []models.Flashcard {
	var cards []models.Flashcard
	for _, v := range vocab {
		if len(cards) >= max {
			break
		}

		example := ""
		for _, c := range candidates {
			if containsWord(c.Text, v.Word) {
				example = c.Text
				break
			}
		}
		if example == "" {
			for _, s := range allSentences {
				if containsWord(s, v.Word) {
					example = normalizeSentence(s)
					break
				}
			}
		}
		if example == "" {
			// Word never appears in a usable sentence (corrected forms
			// often don't); synthesize a neutral prompt.
			example = fmt.Sprintf("Practice using the word %q in a sentence.", v.Word)
		}

		category := ""
		if v.Definition != "" {
			category = v.Definition
		}

		// Translation maps are keyed lowercase regardless of how the
		// vocabulary stage cased the word.
		cards = append(cards, models.Flashcard{
			ID:          newItemID(rng),
			Word:        v.Word,
			Translation: translations[strings.ToLower(v.Word)],
			Example:     example,
			Category:    category,
			Difficulty:  v.Difficulty,
		})
	}
	return cards
}
