package engine

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

var explicitMentionRe = regexp.MustCompile(`(?i)(?:important|new|key) words?\s*:?\s*(.+)|vocabulary\s*:?\s*(.+)`)

// extractVocabulary is the heuristic vocabulary stage.
//
// Priority: teacher-corrected forms, then words the teacher explicitly
// called out ("important words: ..."), then frequency-filtered content
// words. Speaker names and stopwords never qualify.
func extractVocabulary(n Normalized, mistakes []models.Mistake, max int) []models.VocabularyItem {
	var items []models.VocabularyItem
	chosen := make(map[string]bool)

	names := make(map[string]bool, len(n.Speakers))
	for _, s := range n.Speakers {
		for _, part := range strings.Fields(strings.ToLower(s)) {
			names[part] = true
		}
	}

	add := func(word string) {
		word = strings.ToLower(strings.Trim(word, edgePunctTrim+" "))
		if len(word) < 3 || chosen[word] || stopwords[word] || names[word] {
			return
		}
		chosen[word] = true
		items = append(items, models.VocabularyItem{
			Word:       word,
			Difficulty: difficultyForWord(word),
			Source:     models.SourceHeuristic,
		})
	}

	// 1. Corrected forms are the highest-value vocabulary.
	for _, m := range mistakes {
		if fields := strings.Fields(m.Correct); len(fields) == 1 {
			add(fields[0])
		}
	}

	// 2. Explicit teacher mentions.
	for _, line := range n.Lines {
		if m := explicitMentionRe.FindStringSubmatch(line.Text); m != nil {
			mention := m[1]
			if mention == "" {
				mention = m[2]
			}
			for _, word := range strings.FieldsFunc(mention, func(r rune) bool {
				return r == ',' || r == ';' || r == '/'
			}) {
				add(word)
				if len(items) >= max {
					return items
				}
			}
		}
	}

	// 3. Content words by frequency. Mid-frequency words carry the most
	// teaching value; one-off words are often noise, very frequent ones
	// are already known.
	freq := make(map[string]int)
	for _, sentence := range n.Sentences {
		for _, w := range words(sentence) {
			if len(w) >= 3 && !stopwords[w] && !names[w] {
				freq[w]++
			}
		}
	}

	candidates := make([]string, 0, len(freq))
	for w := range freq {
		candidates = append(candidates, w)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		ra, rb := frequencyRank(freq[a]), frequencyRank(freq[b])
		if ra != rb {
			return ra < rb
		}
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return a < b
	})

	for _, w := range candidates {
		if len(items) >= max {
			break
		}
		add(w)
	}

	return items
}

// frequencyRank orders candidate buckets: mid-frequency first, then
// frequent, then singletons.
func frequencyRank(count int) int {
	switch {
	case count >= 2 && count <= 5:
		return 0
	case count > 5:
		return 1
	default:
		return 2
	}
}

func difficultyForWord(word string) string {
	switch {
	case len(word) <= 4:
		return models.DifficultyBeginner
	case len(word) <= 7:
		return models.DifficultyIntermediate
	default:
		return models.DifficultyAdvanced
	}
}
