// Package models contains the exercise document types shared by the
// generation engine, the persistence layer, and the HTTP surface.
package models

// Source values for per-type generation provenance.
const (
	SourceLLM       = "llm"
	SourceHeuristic = "heuristic"
)

// Difficulty labels assigned to flashcards and sentence items.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Flashcard is a single vocabulary card.
// Translation may be empty when the translator is unavailable.
type Flashcard struct {
	ID          string `json:"id"`
	Word        string `json:"word"`
	Translation string `json:"translation,omitempty"`
	Example     string `json:"example_sentence"`
	Category    string `json:"category,omitempty"`
	Difficulty  string `json:"difficulty"`
}

// ClozeItem is a fill-in-the-blank sentence with four options.
// Sentence contains exactly one blank marker ("____").
type ClozeItem struct {
	ID          string   `json:"id"`
	Sentence    string   `json:"sentence"`
	Answer      string   `json:"answer"`
	Options     []string `json:"options"`
	Explanation string   `json:"explanation"`
}

// GrammarQuestion is a multiple-choice question targeting one grammar point.
type GrammarQuestion struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// SentenceItem is a sentence-builder exercise: the learner reassembles
// Tokens (plus Distractors) into Sentence.
type SentenceItem struct {
	ID          string   `json:"id"`
	Sentence    string   `json:"english_sentence"`
	Tokens      []string `json:"sentence_tokens"`
	Distractors []string `json:"distractors,omitempty"`
	Translation string   `json:"translation,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
}

// Counts reports the number of items emitted per exercise type.
type Counts struct {
	Flashcards int `json:"flashcards"`
	Cloze      int `json:"cloze"`
	Grammar    int `json:"grammar"`
	Sentence   int `json:"sentence"`
}

// Sources records whether each exercise type was produced by the LLM path
// or the heuristic fallback.
type Sources struct {
	Flashcards string `json:"flashcards"`
	Cloze      string `json:"cloze"`
	Grammar    string `json:"grammar"`
	Sentence   string `json:"sentence"`
}

// Metadata is the quality and provenance sub-document of an ExerciseSet.
type Metadata struct {
	QualityScore       int     `json:"quality_score"`
	QualityPassed      bool    `json:"quality_passed"`
	VocabularyCount    int     `json:"vocabulary_count"`
	SentencesCount     int     `json:"sentences_count"`
	MistakesCount      int     `json:"mistakes_count"`
	TranslationPresent bool    `json:"translation_present"`
	Sources            Sources `json:"sources"`
}

// ExerciseDocument is the full exercises JSON document persisted on an
// ExerciseSet row.
type ExerciseDocument struct {
	Flashcards []Flashcard       `json:"flashcards"`
	Cloze      []ClozeItem       `json:"cloze"`
	Grammar    []GrammarQuestion `json:"grammar"`
	Sentence   []SentenceItem    `json:"sentence"`
	Counts     Counts            `json:"counts"`
	Metadata   Metadata          `json:"metadata"`
}

// RecountItems refreshes Counts from the current item slices.
func (d *ExerciseDocument) RecountItems() {
	d.Counts = Counts{
		Flashcards: len(d.Flashcards),
		Cloze:      len(d.Cloze),
		Grammar:    len(d.Grammar),
		Sentence:   len(d.Sentence),
	}
}
