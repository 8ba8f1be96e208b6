package engine

import (
	"sort"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

// Sentence word-count bounds for teachability.
const (
	minSentenceWords = 5
	maxSentenceWords = 20
)

// Leading imperatives that mark classroom commands rather than example
// language ("repeat after me", "open your book").
var commandVerbs = map[string]bool{
	"repeat": true, "open": true, "close": true, "listen": true,
	"look": true, "turn": true, "read": true, "write": true,
	"stop": true, "start": true, "try": true, "remember": true,
}

// extractSentences is the heuristic sentence stage: prefer sentences that
// contain an extracted vocabulary item, are within word bounds, and are not
// classroom commands.
func extractSentences(n Normalized, vocab []models.VocabularyItem, max int) []models.SentenceCandidate {
	return selectSentences(n.Sentences, vocab, max, false)
}

// selectSentences scores and picks candidates. relaxed widens the bounds
// and drops the vocabulary requirement for the second pass.
func selectSentences(sentences []string, vocab []models.VocabularyItem, max int, relaxed bool) []models.SentenceCandidate {
	minWords, maxWords := minSentenceWords, maxSentenceWords
	if relaxed {
		minWords, maxWords = 3, 30
	}

	var candidates []models.SentenceCandidate
	for _, sentence := range sentences {
		tokens := words(sentence)
		if len(tokens) < minWords || len(tokens) > maxWords {
			continue
		}
		if commandVerbs[tokens[0]] {
			continue
		}

		vocabWord := ""
		for _, v := range vocab {
			if containsWord(sentence, v.Word) {
				vocabWord = v.Word
				break
			}
		}
		if vocabWord == "" && !relaxed {
			continue
		}

		confidence := 0.5
		if vocabWord != "" {
			confidence += 0.3
		}
		if len(tokens) >= 6 && len(tokens) <= 12 {
			confidence += 0.2
		}

		candidates = append(candidates, models.SentenceCandidate{
			Text:       normalizeSentence(sentence),
			VocabWord:  vocabWord,
			Confidence: confidence,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Confidence > candidates[j].Confidence
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	return candidates
}

// candidatesFromLLM turns LLM-selected sentences into candidates, keeping
// only those within the structural bounds and tagging the vocabulary word
// they contain, if any.
func candidatesFromLLM(sentences []string, vocab []models.VocabularyItem) []models.SentenceCandidate {
	var candidates []models.SentenceCandidate
	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) < MinSentenceChars || len(sentence) > MaxSentenceChars {
			continue
		}
		vocabWord := ""
		for _, v := range vocab {
			if containsWord(sentence, v.Word) {
				vocabWord = v.Word
				break
			}
		}
		candidates = append(candidates, models.SentenceCandidate{
			Text:       normalizeSentence(sentence),
			VocabWord:  vocabWord,
			Confidence: 0.9,
		})
	}
	return candidates
}
