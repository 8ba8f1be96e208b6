package engine

import (
	"math/rand/v2"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

// blankMarker is the gap placeholder in cloze and grammar prompts.
const blankMarker = "____"

// fallbackDistractors pads option lists when the transcript yields too few
// plausible wrong answers, bucketed by word length.
var fallbackDistractors = []string{
	"use", "put", "run", "ask",
	"place", "bring", "carry", "speak",
	"arrange", "consider", "describe", "practice",
}

// buildCloze produces fill-in-the-blank items from sentence candidates that
// carry a vocabulary word. The blank always replaces exactly one token.
func buildCloze(
	rng *rand.Rand,
	candidates []models.SentenceCandidate,
	vocab []models.VocabularyItem,
	mistakes []models.Mistake,
	max int,
) []models.ClozeItem {
	var items []models.ClozeItem
	usedSentences := make(map[string]bool)

	for _, c := range candidates {
		if len(items) >= max {
			break
		}
		if c.VocabWord == "" || usedSentences[c.Text] {
			continue
		}

		blanked, ok := blankOneToken(c.Text, c.VocabWord)
		if !ok {
			continue
		}
		usedSentences[c.Text] = true

		answer := strings.ToLower(c.VocabWord)
		distractors := pickDistractors(answer, vocab, mistakes, 3)
		if len(distractors) < 3 {
			continue
		}

		options := append([]string{answer}, distractors...)
		shuffle(rng, options)

		items = append(items, models.ClozeItem{
			ID:          newItemID(rng),
			Sentence:    blanked,
			Answer:      answer,
			Options:     options,
			Explanation: explanationFor(answer, mistakes),
		})
	}

	return items
}

// blankOneToken replaces the single token matching word with the blank
// marker, preserving attached punctuation. Fails when the word appears
// zero or multiple times, since the blank must be unambiguous.
func blankOneToken(sentence, word string) (string, bool) {
	word = strings.ToLower(word)
	tokens := strings.Fields(sentence)

	matchIdx := -1
	for i, tok := range tokens {
		if strings.ToLower(strings.Trim(tok, edgePunctTrim)) == word {
			if matchIdx != -1 {
				return "", false
			}
			matchIdx = i
		}
	}
	if matchIdx == -1 {
		return "", false
	}

	tok := tokens[matchIdx]
	core := strings.Trim(tok, edgePunctTrim)
	tokens[matchIdx] = strings.Replace(tok, core, blankMarker, 1)
	return strings.Join(tokens, " "), true
}

// pickDistractors assembles wrong answers for a cloze or grammar option
// list: the student's incorrect form first, then inflections of the
// answer, then lexical neighbors from the vocabulary, then the fallback
// bank. All results are distinct, alphabetic, and length-similar.
func pickDistractors(answer string, vocab []models.VocabularyItem, mistakes []models.Mistake, n int) []string {
	var pool []string

	for _, m := range mistakes {
		if m.Correct == answer {
			pool = append(pool, m.Incorrect)
		}
	}
	pool = append(pool, inflections(answer)...)
	for _, v := range vocab {
		pool = append(pool, strings.ToLower(v.Word))
	}
	pool = append(pool, fallbackDistractors...)

	var out []string
	seen := map[string]bool{answer: true}
	for _, cand := range pool {
		cand = strings.ToLower(strings.TrimSpace(cand))
		if cand == "" || seen[cand] || !isAlphaToken(cand) {
			continue
		}
		if lengthDelta(cand, answer) > 4 {
			continue
		}
		seen[cand] = true
		out = append(out, cand)
		if len(out) == n {
			break
		}
	}
	return out
}

// inflections derives surface variants of a word for distractor use.
func inflections(word string) []string {
	var out []string
	switch {
	case strings.HasSuffix(word, "ing"):
		out = append(out, strings.TrimSuffix(word, "ing"), strings.TrimSuffix(word, "ing")+"ed")
	case strings.HasSuffix(word, "ed"):
		out = append(out, strings.TrimSuffix(word, "ed"), strings.TrimSuffix(word, "ed")+"ing")
	case strings.HasSuffix(word, "s"):
		out = append(out, strings.TrimSuffix(word, "s"))
	default:
		out = append(out, word+"s", word+"ed", word+"ing")
	}
	return out
}

func explanationFor(answer string, mistakes []models.Mistake) string {
	for _, m := range mistakes {
		if m.Correct == answer && m.Rule != "" {
			return m.Rule
		}
	}
	return "Choose the word that best completes the sentence."
}

func isAlphaToken(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && r != '-' && r != '\'' {
			return false
		}
	}
	return s != ""
}

func lengthDelta(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		d = -d
	}
	return d
}
