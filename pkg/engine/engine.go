package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/tulkka/lessonflow/pkg/llm"
	"github.com/tulkka/lessonflow/pkg/models"
)

// Default extraction budgets.
const (
	maxVocabulary = 15
	maxSentences  = 10
)

// ErrTranscriptTooShort is returned when the transcript cannot support
// exercise generation. The worker treats this as a data-validity fault.
var ErrTranscriptTooShort = errors.New("transcript missing or too short")

// Provider is the LLM capability the engine consumes. A nil Provider
// disables the LLM path entirely.
type Provider interface {
	SuggestVocabulary(ctx context.Context, transcript string, max int) ([]models.VocabularyItem, error)
	SuggestSentences(ctx context.Context, transcript string, max int) ([]string, error)
	Translate(ctx context.Context, words []string, targetLanguage string) (map[string]string, error)
}

// Config controls generation thresholds.
type Config struct {
	// QualityMin is the score below which quality_passed=false.
	QualityMin int

	// MinTranscriptChars rejects trivially short transcripts.
	MinTranscriptChars int

	// TargetLanguage for flashcard translations. Empty disables
	// translation.
	TargetLanguage string
}

// Input is one generation request.
type Input struct {
	SummaryID   int64
	Transcript  string
	UserID      string
	TeacherID   string
	ClassID     string
	MeetingDate string
}

// Engine converts transcripts into exercise documents.
type Engine struct {
	cfg      Config
	provider Provider
	log      *slog.Logger
}

// New creates an engine. provider may be nil (heuristic-only generation).
func New(cfg Config, provider Provider) *Engine {
	return &Engine{
		cfg:      cfg,
		provider: provider,
		log:      slog.With("component", "engine"),
	}
}

// Generate runs the full pipeline. The result is deterministic for a given
// input and a fixed provider behavior, including "provider unavailable".
// A quality score below QualityMin flags the document but never suppresses it.
func (e *Engine) Generate(ctx context.Context, input Input) (*models.ExerciseDocument, error) {
	transcript := strings.TrimSpace(input.Transcript)
	if len(transcript) < e.cfg.MinTranscriptChars {
		return nil, ErrTranscriptTooShort
	}

	rng := newRNG(input.SummaryID)
	n := Normalize(transcript)
	mistakes := extractMistakes(n)

	vocab, vocabSource := e.vocabularyStage(ctx, transcript, n, mistakes)
	candidates, sentenceSource := e.sentenceStage(ctx, transcript, n, vocab)
	translations := e.translationStage(ctx, vocab)

	doc := &models.ExerciseDocument{
		Flashcards: buildFlashcards(rng, vocab, candidates, n.Sentences, translations, flashcardsMax),
		Cloze:      buildCloze(rng, candidates, vocab, mistakes, clozeMax),
		Grammar:    buildGrammar(rng, mistakes, candidates, n.Sentences, grammarMax),
		Sentence:   buildSentenceItems(rng, candidates, translations, sentenceMax),
	}
	doc.RecountItems()

	// Relaxed second pass for types under the hard floor.
	if doc.Counts.Cloze < hardFloor || doc.Counts.Sentence < hardFloor || doc.Counts.Grammar < hardFloor {
		relaxed := selectSentences(n.Sentences, vocab, 2*maxSentences, true)
		if doc.Counts.Cloze < hardFloor {
			doc.Cloze = buildCloze(rng, relaxed, vocab, mistakes, clozeMax)
		}
		if doc.Counts.Grammar < hardFloor {
			doc.Grammar = buildGrammar(rng, mistakes, relaxed, n.Sentences, grammarMax)
		}
		if doc.Counts.Sentence < hardFloor {
			doc.Sentence = buildSentenceItems(rng, relaxed, translations, sentenceMax)
		}
		doc.RecountItems()
	}

	findings := sanitizeDocument(doc)
	for _, f := range findings {
		e.log.Warn("Sanitizer dropped item", "kind", f.Kind, "detail", f.Detail, "summary_id", input.SummaryID)
	}
	doc.RecountItems()

	translationPresent := false
	for _, f := range doc.Flashcards {
		if f.Translation != "" {
			translationPresent = true
			break
		}
	}

	doc.Metadata = models.Metadata{
		VocabularyCount:    len(vocab),
		SentencesCount:     len(candidates),
		MistakesCount:      len(mistakes),
		TranslationPresent: translationPresent,
		Sources: models.Sources{
			Flashcards: vocabSource,
			Cloze:      sentenceSource,
			Grammar:    models.SourceHeuristic,
			Sentence:   sentenceSource,
		},
	}
	doc.Metadata.QualityScore = scoreDocument(doc, findings)
	doc.Metadata.QualityPassed = doc.Metadata.QualityScore >= e.cfg.QualityMin

	return doc, nil
}

// vocabularyStage prefers the LLM and falls back to heuristics on any
// non-available outcome.
func (e *Engine) vocabularyStage(ctx context.Context, transcript string, n Normalized, mistakes []models.Mistake) ([]models.VocabularyItem, string) {
	if e.provider != nil {
		items, err := e.provider.SuggestVocabulary(ctx, transcript, maxVocabulary)
		if err == nil {
			for i := range items {
				if items[i].Difficulty == "" {
					items[i].Difficulty = difficultyForWord(items[i].Word)
				}
			}
			return items, models.SourceLLM
		}
		e.log.Warn("LLM vocabulary stage degraded, using heuristic",
			"availability", llm.Classify(err), "error", err)
	}
	return extractVocabulary(n, mistakes, maxVocabulary), models.SourceHeuristic
}

// sentenceStage prefers the LLM and falls back to heuristics.
func (e *Engine) sentenceStage(ctx context.Context, transcript string, n Normalized, vocab []models.VocabularyItem) ([]models.SentenceCandidate, string) {
	if e.provider != nil {
		sentences, err := e.provider.SuggestSentences(ctx, transcript, maxSentences)
		if err == nil {
			if candidates := candidatesFromLLM(sentences, vocab); len(candidates) > 0 {
				return candidates, models.SourceLLM
			}
		} else {
			e.log.Warn("LLM sentence stage degraded, using heuristic",
				"availability", llm.Classify(err), "error", err)
		}
	}
	return extractSentences(n, vocab, maxSentences), models.SourceHeuristic
}

// translationStage returns per-word translations; failures degrade to an
// empty map so flashcards are emitted untranslated.
func (e *Engine) translationStage(ctx context.Context, vocab []models.VocabularyItem) map[string]string {
	if e.provider == nil || e.cfg.TargetLanguage == "" || len(vocab) == 0 {
		return map[string]string{}
	}

	targetWords := make([]string, 0, len(vocab))
	for _, v := range vocab {
		targetWords = append(targetWords, v.Word)
	}

	translations, err := e.provider.Translate(ctx, targetWords, e.cfg.TargetLanguage)
	if err != nil {
		e.log.Warn("Translation stage degraded, emitting untranslated flashcards",
			"availability", llm.Classify(err), "error", err)
		return map[string]string{}
	}
	return translations
}
