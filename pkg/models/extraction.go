package models

// Mistake types recognized by the extractor.
const (
	MistakeGrammar    = "grammar"
	MistakeVocabulary = "vocabulary"
	MistakeSpelling   = "spelling"
	MistakeUnknown    = "unknown"
)

// VocabularyItem is a word or short phrase selected for teaching, before
// exercise construction.
type VocabularyItem struct {
	Word        string `json:"word"`
	Definition  string `json:"definition,omitempty"`
	Translation string `json:"translation,omitempty"`
	Difficulty  string `json:"difficulty"`
	Source      string `json:"source"`
}

// Mistake is one teacher correction parsed from the transcript.
// Rule may be empty when no grammar rule could be inferred.
type Mistake struct {
	Incorrect string `json:"incorrect"`
	Correct   string `json:"correct"`
	Type      string `json:"type"`
	Rule      string `json:"rule,omitempty"`
}

// SentenceCandidate is a transcript sentence considered teachable.
type SentenceCandidate struct {
	Text       string  `json:"text"`
	VocabWord  string  `json:"vocab_word,omitempty"`
	Confidence float64 `json:"confidence"`
}
