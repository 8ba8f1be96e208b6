// Package engine converts lesson transcripts into structured exercise sets.
//
// The pipeline is deterministic under a seed derived from the artifact's
// summary id: normalization, extraction (LLM preferred, heuristic fallback),
// translation, construction of the four exercise types, sanitization, and a
// quality gate that scores but never blocks persistence.
package engine

import (
	"regexp"
	"strings"
)

// Sentence length bounds for candidate selection.
const (
	MinSentenceChars = 12
	MaxSentenceChars = 280
)

// Line is one attributed utterance from the transcript.
type Line struct {
	Speaker string
	Text    string
}

// Normalized is the cleaned transcript view the extraction stages work on.
type Normalized struct {
	Lines     []Line
	Sentences []string
	Speakers  []string // order of first appearance
}

var (
	speakerRe   = regexp.MustCompile(`^\s*([A-Za-z][A-Za-z .'-]{0,40}?)\s*:\s+`)
	timestampRe = regexp.MustCompile(`^\s*(?:\d+\s*$|\d{2}:\d{2}(?::\d{2})?[.,]?\d*\s*-->)`)
	wsRe        = regexp.MustCompile(`\s+`)
	sentenceRe  = regexp.MustCompile(`[^.!?]+[.!?]+|[^.!?]+$`)
)

// Normalize strips speaker prefixes and caption noise, collapses whitespace,
// and splits the text into bounded sentence candidates.
func Normalize(transcript string) Normalized {
	var n Normalized
	seenSpeakers := make(map[string]bool)
	seenSentences := make(map[string]bool)

	for _, rawLine := range strings.Split(transcript, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" || line == "WEBVTT" || timestampRe.MatchString(line) {
			continue
		}

		speaker := ""
		if m := speakerRe.FindStringSubmatch(line); m != nil {
			speaker = strings.TrimSpace(m[1])
			line = strings.TrimSpace(line[len(m[0]):])
			if line == "" {
				continue
			}
			if !seenSpeakers[speaker] {
				seenSpeakers[speaker] = true
				n.Speakers = append(n.Speakers, speaker)
			}
		}

		text := wsRe.ReplaceAllString(line, " ")
		n.Lines = append(n.Lines, Line{Speaker: speaker, Text: text})

		for _, raw := range sentenceRe.FindAllString(text, -1) {
			sentence := strings.TrimSpace(raw)
			if len(sentence) < MinSentenceChars || len(sentence) > MaxSentenceChars {
				continue
			}
			key := strings.ToLower(sentence)
			if seenSentences[key] {
				continue
			}
			seenSentences[key] = true
			n.Sentences = append(n.Sentences, sentence)
		}
	}

	return n
}

var (
	multiPunctRe  = regexp.MustCompile(`([.,!?;])[.,!?;]+`)
	spacePunctRe  = regexp.MustCompile(`\s+([.,!?;])`)
	multiSpaceRe  = regexp.MustCompile(`  +`)
	terminalAlpha = regexp.MustCompile(`[A-Za-z0-9)'"]$`)
	edgePunctTrim = "\"'.,!?;:()"
	wordTokenRe   = regexp.MustCompile(`[a-zA-Z][a-zA-Z'-]*`)
)

// normalizeSentence repairs doubled punctuation, stray spaces before
// punctuation, and missing terminal punctuation.
func normalizeSentence(s string) string {
	s = strings.TrimSpace(s)
	s = multiPunctRe.ReplaceAllString(s, "$1")
	s = spacePunctRe.ReplaceAllString(s, "$1")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	if s != "" && terminalAlpha.MatchString(s) {
		s += "."
	}
	return s
}

// words returns the lowercase alphabetic tokens of a sentence.
func words(s string) []string {
	return wordTokenRe.FindAllString(strings.ToLower(s), -1)
}

// containsWord reports whether the sentence contains the word as a whole
// token, case-folded.
func containsWord(sentence, word string) bool {
	word = strings.ToLower(word)
	for _, w := range words(sentence) {
		if w == word {
			return true
		}
	}
	return false
}
