package engine

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

// Function-word classes used when a grammar prompt is not mistake-seeded.
var grammarWordClasses = [][]string{
	{"a", "an", "the"},
	{"is", "are", "was", "were"},
	{"in", "on", "at", "for"},
	{"have", "has", "had"},
	{"do", "does", "did"},
}

// buildGrammar produces multiple-choice grammar questions. Mistake-seeded
// prompts come first: the correct form fills the blank and the student's
// incorrect form is always among the options. Remaining slots are filled
// from sentences containing a function word with natural alternatives.
func buildGrammar(
	rng *rand.Rand,
	mistakes []models.Mistake,
	candidates []models.SentenceCandidate,
	allSentences []string,
	max int,
) []models.GrammarQuestion {
	var questions []models.GrammarQuestion
	usedSentences := make(map[string]bool)

	// Pass 1: mistake-seeded questions.
	for _, m := range mistakes {
		if len(questions) >= max {
			break
		}
		corWords := strings.Fields(m.Correct)
		incWords := strings.Fields(m.Incorrect)
		if len(corWords) != 1 || len(incWords) != 1 {
			// Multi-word corrections become prompts of their own.
			q := buildPhraseQuestion(rng, m)
			if q != nil {
				questions = append(questions, *q)
			}
			continue
		}

		sentence := sentenceContaining(candidates, allSentences, corWords[0])
		prompt := ""
		if sentence != "" && !usedSentences[sentence] {
			if blanked, ok := blankOneToken(sentence, corWords[0]); ok {
				usedSentences[sentence] = true
				prompt = blanked
			}
		}
		if prompt == "" {
			prompt = fmt.Sprintf("Complete the phrase: %s", strings.Replace(m.Correct, corWords[0], blankMarker, 1))
		}

		distractors := pickDistractors(corWords[0], nil, mistakes, 2)
		options := append([]string{corWords[0], incWords[0]}, distractors...)
		options = dedupeOptions(options)
		if len(options) < 4 {
			options = padOptions(options, corWords[0])
		}
		options = options[:4]
		shuffle(rng, options)

		questions = append(questions, models.GrammarQuestion{
			ID:           newItemID(rng),
			Prompt:       prompt,
			Options:      options,
			CorrectIndex: indexOf(options, corWords[0]),
			Explanation:  explanationOrDefault(m.Rule),
		})
	}

	// Pass 2: function-word questions from remaining sentences.
	for _, c := range candidates {
		if len(questions) >= max {
			break
		}
		if usedSentences[c.Text] {
			continue
		}

		answer, class := findFunctionWord(c.Text)
		if answer == "" {
			continue
		}
		blanked, ok := blankOneToken(c.Text, answer)
		if !ok {
			continue
		}
		usedSentences[c.Text] = true

		options := make([]string, 0, 4)
		options = append(options, class...)
		options = padOptions(options, answer)
		options = options[:4]
		shuffle(rng, options)

		questions = append(questions, models.GrammarQuestion{
			ID:           newItemID(rng),
			Prompt:       blanked,
			Options:      options,
			CorrectIndex: indexOf(options, answer),
			Explanation:  "Pick the form that agrees with the rest of the sentence.",
		})
	}

	return questions
}

// buildPhraseQuestion asks the learner to pick the correct multi-word
// phrase between the corrected and original forms.
func buildPhraseQuestion(rng *rand.Rand, m models.Mistake) *models.GrammarQuestion {
	if m.Correct == m.Incorrect {
		return nil
	}
	options := []string{m.Correct, m.Incorrect,
		scrambleWords(rng, m.Correct), scrambleWords(rng, m.Incorrect)}
	options = dedupeOptions(options)
	if len(options) < 4 {
		return nil
	}
	shuffle(rng, options)

	return &models.GrammarQuestion{
		ID:           newItemID(rng),
		Prompt:       "Which phrase is correct?",
		Options:      options,
		CorrectIndex: indexOf(options, m.Correct),
		Explanation:  explanationOrDefault(m.Rule),
	}
}

// findFunctionWord locates the first word in the sentence that belongs to
// a grammar word class, returning the word and its class.
func findFunctionWord(sentence string) (string, []string) {
	for _, w := range words(sentence) {
		for _, class := range grammarWordClasses {
			for _, member := range class {
				if w == member {
					// Only usable when the word appears once.
					if strings.Count(" "+strings.Join(words(sentence), " ")+" ", " "+w+" ") == 1 {
						return w, class
					}
				}
			}
		}
	}
	return "", nil
}

func sentenceContaining(candidates []models.SentenceCandidate, allSentences []string, word string) string {
	for _, c := range candidates {
		if containsWord(c.Text, word) {
			return c.Text
		}
	}
	for _, s := range allSentences {
		if containsWord(s, word) {
			return normalizeSentence(s)
		}
	}
	return ""
}

func scrambleWords(rng *rand.Rand, phrase string) string {
	fields := strings.Fields(phrase)
	if len(fields) < 2 {
		return phrase + " " + phrase
	}
	shuffled := append([]string(nil), fields...)
	shuffle(rng, shuffled)
	return strings.Join(shuffled, " ")
}

func dedupeOptions(options []string) []string {
	seen := make(map[string]bool, len(options))
	var out []string
	for _, o := range options {
		o = strings.TrimSpace(o)
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

// padOptions extends an option list to four entries with fallback words
// not already present.
func padOptions(options []string, answer string) []string {
	if indexOf(options, answer) == -1 {
		options = append([]string{answer}, options...)
	}
	for _, f := range fallbackDistractors {
		if len(options) >= 4 {
			break
		}
		if indexOf(options, f) == -1 && f != answer {
			options = append(options, f)
		}
	}
	return options
}

func indexOf(options []string, target string) int {
	for i, o := range options {
		if o == target {
			return i
		}
	}
	return -1
}

func explanationOrDefault(rule string) string {
	if rule != "" {
		return rule
	}
	return "Pick the grammatically correct form."
}
