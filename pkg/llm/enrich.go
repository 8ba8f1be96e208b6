package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tulkka/lessonflow/pkg/models"
)

const vocabularySystemPrompt = `You are an assistant for an English teaching platform.
Given a lesson transcript, select pedagogically valuable words or short phrases
for the student to study. Respond with a JSON array only, no prose:
[{"word": "...", "definition": "..."}]`

const sentencesSystemPrompt = `You are an assistant for an English teaching platform.
Given a lesson transcript, select complete, natural, teachable sentences spoken
during the lesson. Respond with a JSON array of strings only, no prose.`

const translateSystemPrompt = `You are a translator for an English teaching platform.
Translate each given English word or phrase. Respond with a JSON object only,
mapping each input to its translation.`

// SuggestVocabulary asks the model for up to max study words with short
// definitions. A malformed response is an ErrUnavailable so the caller can
// fall back to heuristics.
func (c *Client) SuggestVocabulary(ctx context.Context, transcript string, max int) ([]models.VocabularyItem, error) {
	prompt := fmt.Sprintf("Select up to %d words or phrases from this transcript:\n\n%s", max, transcript)

	text, err := c.Complete(ctx, vocabularySystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var raw []struct {
		Word       string `json:"word"`
		Definition string `json:"definition"`
	}
	if err := json.Unmarshal(extractJSON(text, '[', ']'), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed vocabulary response: %v", ErrUnavailable, err)
	}

	items := make([]models.VocabularyItem, 0, len(raw))
	for _, r := range raw {
		word := strings.TrimSpace(r.Word)
		if word == "" {
			continue
		}
		items = append(items, models.VocabularyItem{
			Word:       word,
			Definition: strings.TrimSpace(r.Definition),
			Source:     models.SourceLLM,
		})
		if len(items) == max {
			break
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: vocabulary response held no usable words", ErrUnavailable)
	}
	return items, nil
}

// SuggestSentences asks the model for up to max teachable sentences.
func (c *Client) SuggestSentences(ctx context.Context, transcript string, max int) ([]string, error) {
	prompt := fmt.Sprintf("Select up to %d teachable sentences from this transcript:\n\n%s", max, transcript)

	text, err := c.Complete(ctx, sentencesSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var raw []string
	if err := json.Unmarshal(extractJSON(text, '[', ']'), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed sentences response: %v", ErrUnavailable, err)
	}

	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == max {
			break
		}
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("%w: sentences response held no usable sentences", ErrUnavailable)
	}
	return sentences, nil
}

// Translate returns a word-to-translation map for the given terms.
// Missing entries in the response are simply absent from the map.
func (c *Client) Translate(ctx context.Context, words []string, targetLanguage string) (map[string]string, error) {
	if len(words) == 0 {
		return map[string]string{}, nil
	}

	prompt := fmt.Sprintf("Translate these English terms to %s:\n%s",
		targetLanguage, strings.Join(words, "\n"))

	text, err := c.Complete(ctx, translateSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var raw map[string]string
	if err := json.Unmarshal(extractJSON(text, '{', '}'), &raw); err != nil {
		return nil, fmt.Errorf("%w: malformed translation response: %v", ErrUnavailable, err)
	}

	translations := make(map[string]string, len(raw))
	for word, tr := range raw {
		if tr = strings.TrimSpace(tr); tr != "" {
			translations[strings.ToLower(strings.TrimSpace(word))] = tr
		}
	}
	return translations, nil
}

// extractJSON trims everything outside the outermost open..close pair.
// Models occasionally wrap JSON in markdown fences or a sentence of prose.
func extractJSON(text string, open, close byte) []byte {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end == -1 || end < start {
		return []byte(text)
	}
	return []byte(text[start : end+1])
}
