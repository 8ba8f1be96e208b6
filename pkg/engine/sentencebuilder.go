package engine

import (
	"math/rand/v2"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

// Token count bounds for usable builder exercises.
const (
	minBuilderTokens = 4
	maxBuilderTokens = 12
)

// builderDistractorBank supplies extra tokens the learner must reject.
var builderDistractorBank = []string{"the", "a", "is", "are", "was", "were", "to", "of"}

// buildSentenceItems produces sentence-builder exercises: the normalized
// sentence, its ordered tokens (terminal punctuation as its own token),
// and a couple of distractor tokens not present in the sentence.
func buildSentenceItems(
	rng *rand.Rand,
	candidates []models.SentenceCandidate,
	translations map[string]string,
	max int,
) []models.SentenceItem {
	var items []models.SentenceItem
	used := make(map[string]bool)

	for _, c := range candidates {
		if len(items) >= max {
			break
		}

		sentence := normalizeSentence(c.Text)
		if sentence == "" || used[sentence] {
			continue
		}

		tokens := tokenizeForBuilder(sentence)
		if len(tokens) < minBuilderTokens || len(tokens) > maxBuilderTokens {
			continue
		}
		used[sentence] = true

		items = append(items, models.SentenceItem{
			ID:          newItemID(rng),
			Sentence:    sentence,
			Tokens:      tokens,
			Distractors: builderDistractors(rng, tokens, 2),
			Translation: translations[strings.ToLower(c.VocabWord)],
			Difficulty:  difficultyForTokenCount(len(tokens)),
		})
	}

	return items
}

// tokenizeForBuilder splits on whitespace and detaches terminal
// punctuation into its own token.
func tokenizeForBuilder(sentence string) []string {
	fields := strings.Fields(sentence)
	var tokens []string
	for i, f := range fields {
		if i == len(fields)-1 {
			trimmed := strings.TrimRight(f, ".!?")
			if trimmed != f && trimmed != "" {
				tokens = append(tokens, trimmed, f[len(trimmed):])
				continue
			}
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// builderDistractors picks n bank words absent from the sentence tokens.
func builderDistractors(rng *rand.Rand, tokens []string, n int) []string {
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[strings.ToLower(strings.Trim(t, edgePunctTrim))] = true
	}

	var available []string
	for _, w := range builderDistractorBank {
		if !present[w] {
			available = append(available, w)
		}
	}
	shuffle(rng, available)

	if len(available) > n {
		available = available[:n]
	}
	return available
}

func difficultyForTokenCount(n int) string {
	switch {
	case n <= 6:
		return models.DifficultyBeginner
	case n <= 9:
		return models.DifficultyIntermediate
	default:
		return models.DifficultyAdvanced
	}
}
