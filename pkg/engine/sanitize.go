package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

// Finding records one structural defect found during sanitization.
type Finding struct {
	Kind   string
	Detail string
}

var doublePunctRe = regexp.MustCompile(`[.,!?;]{2,}`)

// sanitizeDocument validates every generated item and removes those that
// fail. Dropped items are reported as findings; the quality gate treats a
// clean pass as a scoring signal.
func sanitizeDocument(doc *models.ExerciseDocument) []Finding {
	var findings []Finding
	report := func(kind, format string, args ...any) {
		findings = append(findings, Finding{Kind: kind, Detail: fmt.Sprintf(format, args...)})
	}

	var cards []models.Flashcard
	for _, f := range doc.Flashcards {
		switch {
		case f.Word == "" || f.Example == "":
			report("flashcard", "empty required field on %q", f.Word)
		case badSurface(f.Example):
			report("flashcard", "malformed example for %q", f.Word)
		default:
			cards = append(cards, f)
		}
	}
	doc.Flashcards = cards

	var cloze []models.ClozeItem
	for _, c := range doc.Cloze {
		switch {
		case c.Sentence == "" || c.Answer == "" || c.Explanation == "":
			report("cloze", "empty required field in %q", c.Sentence)
		case strings.Count(c.Sentence, blankMarker) != 1:
			report("cloze", "blank count != 1 in %q", c.Sentence)
		case len(c.Options) != 4:
			report("cloze", "option count %d != 4 in %q", len(c.Options), c.Sentence)
		case hasDuplicateOrEmpty(c.Options):
			report("cloze", "duplicate or empty option in %q", c.Sentence)
		case indexOf(c.Options, c.Answer) == -1:
			report("cloze", "answer missing from options in %q", c.Sentence)
		case badSurface(strings.Replace(c.Sentence, blankMarker, c.Answer, 1)):
			report("cloze", "restored sentence malformed: %q", c.Sentence)
		default:
			cloze = append(cloze, c)
		}
	}
	doc.Cloze = cloze

	var grammar []models.GrammarQuestion
	for _, g := range doc.Grammar {
		switch {
		case g.Prompt == "" || g.Explanation == "":
			report("grammar", "empty required field in %q", g.Prompt)
		case len(g.Options) != 4:
			report("grammar", "option count %d != 4 in %q", len(g.Options), g.Prompt)
		case hasDuplicateOrEmpty(g.Options):
			report("grammar", "duplicate or empty option in %q", g.Prompt)
		case g.CorrectIndex < 0 || g.CorrectIndex >= len(g.Options):
			report("grammar", "correct_index %d out of range in %q", g.CorrectIndex, g.Prompt)
		default:
			grammar = append(grammar, g)
		}
	}
	doc.Grammar = grammar

	var sentence []models.SentenceItem
	for _, s := range doc.Sentence {
		switch {
		case s.Sentence == "" || len(s.Tokens) == 0:
			report("sentence", "empty required field in %q", s.Sentence)
		case badSurface(s.Sentence):
			report("sentence", "malformed sentence %q", s.Sentence)
		case hasDuplicateOrEmpty(s.Distractors) && len(s.Distractors) > 0:
			report("sentence", "duplicate or empty distractor in %q", s.Sentence)
		case !tokensMatchSentence(s.Tokens, s.Sentence):
			report("sentence", "tokens do not reassemble %q", s.Sentence)
		default:
			sentence = append(sentence, s)
		}
	}
	doc.Sentence = sentence

	return findings
}

// badSurface flags human-facing strings with doubled punctuation or
// trailing whitespace.
func badSurface(s string) bool {
	return doublePunctRe.MatchString(s) || s != strings.TrimSpace(s)
}

func hasDuplicateOrEmpty(options []string) bool {
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o == "" || seen[o] {
			return true
		}
		seen[o] = true
	}
	return false
}

// tokensMatchSentence verifies the ordered tokens reassemble the sentence,
// modulo spacing around the detached terminal punctuation.
func tokensMatchSentence(tokens []string, sentence string) bool {
	joined := strings.Join(tokens, " ")
	joined = spacePunctRe.ReplaceAllString(joined, "$1")
	return joined == sentence
}
