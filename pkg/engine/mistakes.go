package engine

import (
	"regexp"
	"strings"

	"github.com/agext/levenshtein"

	"github.com/tulkka/lessonflow/pkg/models"
)

// Correction patterns a teacher uses in speech. Capture groups are
// (incorrect, correct) unless noted.
var (
	dontSayRe   = regexp.MustCompile(`(?i)don'?t say ['"]?([a-zA-Z' -]+?)['"]?[,;]?\s+say ['"]?([a-zA-Z' -]+?)['"]?(?:[.,!?]|$)`)
	insteadOfRe = regexp.MustCompile(`(?i)instead of ['"]?([a-zA-Z' -]+?)['"]?[,;]?\s+(?:say|use) ['"]?([a-zA-Z' -]+?)['"]?(?:[.,!?]|$)`)
	shouldBeRe  = regexp.MustCompile(`['"]([^'"]+)['"] should be ['"]([^'"]+)['"]`)
	correctIsRe = regexp.MustCompile(`(?i)(?:the )?correct (?:form|way|phrase|word) is ['"]?([a-zA-Z' -]+?)['"]?(?:[.,!?]|$)`) // correct only
	notXButYRe  = regexp.MustCompile(`(?i)not ['"]([^'"]+)['"][,;]?\s+(?:but|it'?s) ['"]([^'"]+)['"]`)
)

// extractMistakes parses teacher corrections from attributed lines.
//
// Role inference follows speaking order: the first distinct speaker is the
// teacher, the second the student. Unattributed transcripts are scanned as
// if every line were the teacher's.
func extractMistakes(n Normalized) []models.Mistake {
	teacher := ""
	if len(n.Speakers) > 0 {
		teacher = n.Speakers[0]
	}

	var mistakes []models.Mistake
	seen := make(map[string]bool)
	lastStudentLine := ""

	add := func(incorrect, correct string) {
		incorrect = strings.ToLower(strings.TrimSpace(incorrect))
		correct = strings.ToLower(strings.TrimSpace(correct))
		if incorrect == "" || correct == "" || incorrect == correct {
			return
		}
		key := incorrect + "\x00" + correct
		if seen[key] {
			return
		}
		seen[key] = true

		mtype, rule := categorizeMistake(incorrect, correct)
		mistakes = append(mistakes, models.Mistake{
			Incorrect: incorrect,
			Correct:   correct,
			Type:      mtype,
			Rule:      rule,
		})
	}

	for _, line := range n.Lines {
		if line.Speaker != "" && line.Speaker != teacher {
			lastStudentLine = line.Text
			continue
		}

		for _, m := range dontSayRe.FindAllStringSubmatch(line.Text, -1) {
			add(m[1], m[2])
		}
		for _, m := range insteadOfRe.FindAllStringSubmatch(line.Text, -1) {
			add(m[1], m[2])
		}
		for _, m := range shouldBeRe.FindAllStringSubmatch(line.Text, -1) {
			add(m[1], m[2])
		}
		for _, m := range notXButYRe.FindAllStringSubmatch(line.Text, -1) {
			add(m[1], m[2])
		}
		// "the correct form is X" names only the correct side; pair it
		// with the student's previous utterance when one exists.
		for _, m := range correctIsRe.FindAllStringSubmatch(line.Text, -1) {
			if lastStudentLine != "" {
				add(lastStudentLine, m[1])
			}
		}
	}

	return mistakes
}

var prepositions = map[string]bool{
	"in": true, "on": true, "at": true, "to": true, "for": true,
	"of": true, "with": true, "by": true, "from": true, "about": true,
}

// categorizeMistake infers the mistake type and, where possible, a short
// rule string usable as an exercise explanation.
func categorizeMistake(incorrect, correct string) (string, string) {
	incWords := strings.Fields(incorrect)
	corWords := strings.Fields(correct)

	// Single-token pairs first: the diff is the whole story.
	if len(incWords) == 1 && len(corWords) == 1 {
		return categorizeWordPair(incWords[0], corWords[0])
	}

	// Multi-word: locate the first differing word pair.
	if len(incWords) == len(corWords) {
		for i := range incWords {
			if incWords[i] != corWords[i] {
				return categorizeWordPair(incWords[i], corWords[i])
			}
		}
	}

	// Length changed: check for dropped or added articles.
	if diff := wordSetDiff(corWords, incWords); len(diff) == 1 {
		switch diff[0] {
		case "a", "an", "the":
			return models.MistakeGrammar, "article usage: don't forget '" + diff[0] + "'"
		}
	}

	return models.MistakeGrammar, ""
}

func categorizeWordPair(inc, cor string) (string, string) {
	switch {
	case isArticle(inc) || isArticle(cor):
		return models.MistakeGrammar, "article usage: use '" + cor + "', not '" + inc + "'"
	case prepositions[inc] && prepositions[cor]:
		return models.MistakeGrammar, "preposition choice: use '" + cor + "', not '" + inc + "'"
	case sharesStem(inc, cor):
		if strings.HasSuffix(cor, "s") && !strings.HasSuffix(inc, "s") ||
			strings.HasSuffix(inc, "s") && !strings.HasSuffix(cor, "s") {
			return models.MistakeGrammar, "singular/plural agreement: '" + cor + "'"
		}
		return models.MistakeGrammar, "verb form: use '" + cor + "', not '" + inc + "'"
	case levenshtein.Distance(inc, cor, nil) <= 2:
		return models.MistakeSpelling, "spelling: '" + cor + "'"
	default:
		return models.MistakeVocabulary, "word choice: use '" + cor + "', not '" + inc + "'"
	}
}

func isArticle(w string) bool {
	return w == "a" || w == "an" || w == "the"
}

// sharesStem reports whether two words agree on a prefix long enough to be
// inflections of the same stem.
func sharesStem(a, b string) bool {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	if minLen < 3 {
		return false
	}
	stem := minLen - 1
	if stem > 4 {
		stem = 4
	}
	return a[:stem] == b[:stem]
}

// wordSetDiff returns words in a that are missing from b, in order.
func wordSetDiff(a, b []string) []string {
	present := make(map[string]bool, len(b))
	for _, w := range b {
		present[w] = true
	}
	var diff []string
	for _, w := range a {
		if !present[w] {
			diff = append(diff, w)
		}
	}
	return diff
}
