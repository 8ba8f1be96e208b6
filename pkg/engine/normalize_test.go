package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStripsCaptionNoise(t *testing.T) {
	transcript := `WEBVTT

1
00:00:01.000 --> 00:00:04.000
Anna: Welcome back to our conversation class.
2
00:00:05.000 --> 00:00:09.000
Boris: Thank you, I am happy to be here today.
Anna: Welcome back to our conversation class.
`

	n := Normalize(transcript)

	require.Len(t, n.Lines, 3)
	assert.Equal(t, []string{"Anna", "Boris"}, n.Speakers)
	assert.Equal(t, "Anna", n.Lines[0].Speaker)
	assert.Equal(t, "Welcome back to our conversation class.", n.Lines[0].Text)

	// Sentences are deduplicated case-insensitively.
	assert.Equal(t, []string{
		"Welcome back to our conversation class.",
		"Thank you, I am happy to be here today.",
	}, n.Sentences)
}

func TestNormalizeUnattributedLines(t *testing.T) {
	n := Normalize("This transcript has no speaker labels at all.\nIt still yields sentences.")

	require.Len(t, n.Lines, 2)
	assert.Empty(t, n.Speakers)
	assert.Empty(t, n.Lines[0].Speaker)
	assert.Len(t, n.Sentences, 2)
}

func TestNormalizeSentenceBounds(t *testing.T) {
	n := Normalize("Ok.\nThis sentence is fine and long enough to keep around.")
	assert.Len(t, n.Sentences, 1)
}

func TestNormalizeSentenceRepairs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"doubled punctuation", "What do you mean??", "What do you mean?"},
		{"space before punctuation", "I went home , then slept .", "I went home, then slept."},
		{"missing terminal", "She likes green tea", "She likes green tea."},
		{"collapsed spaces", "too   many    spaces here.", "too many spaces here."},
		{"already clean", "Nothing to fix here.", "Nothing to fix here."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSentence(tt.in))
		})
	}
}

func TestWordsAndContainsWord(t *testing.T) {
	assert.Equal(t, []string{"don't", "over-think", "it"}, words("Don't over-think it!"))
	assert.True(t, containsWord("The market was busy.", "Market"))
	assert.False(t, containsWord("Supermarkets are busy.", "market"))
}
