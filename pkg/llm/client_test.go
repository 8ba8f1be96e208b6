package llm

import (
	"context"
	"errors"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMessages returns a canned text completion or a canned error.
type fakeMessages struct {
	response string
	err      error
	calls    int
}

func (f *fakeMessages) New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &anthropic.Message{
		Content: []anthropic.ContentBlockUnion{
			{Type: "text", Text: f.response},
		},
	}, nil
}

func TestCompleteReturnsText(t *testing.T) {
	fake := &fakeMessages{response: "  hello  "}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	text, err := client.Complete(context.Background(), "system", "prompt")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
	assert.Equal(t, 1, fake.calls)
}

func TestCompleteEmptyResponseIsUnavailable(t *testing.T) {
	fake := &fakeMessages{response: "   "}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	_, err := client.Complete(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCompleteClassifiesRateLimit(t *testing.T) {
	fake := &fakeMessages{err: &anthropic.Error{StatusCode: 429}}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	_, err := client.Complete(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, RateLimited, Classify(err))
}

func TestCompleteClassifiesServerError(t *testing.T) {
	fake := &fakeMessages{err: &anthropic.Error{StatusCode: 529}}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	_, err := client.Complete(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, Unavailable, Classify(err))
}

func TestCompleteClassifiesTransportError(t *testing.T) {
	fake := &fakeMessages{err: errors.New("connection reset")}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	_, err := client.Complete(context.Background(), "", "prompt")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSuggestVocabularyParsesFencedJSON(t *testing.T) {
	fake := &fakeMessages{response: "```json\n[{\"word\": \"borrow\", \"definition\": \"to take temporarily\"}, {\"word\": \"\", \"definition\": \"skipped\"}]\n```"}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	items, err := client.SuggestVocabulary(context.Background(), "transcript", 15)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "borrow", items[0].Word)
	assert.Equal(t, "llm", items[0].Source)
}

func TestSuggestVocabularyMalformedIsUnavailable(t *testing.T) {
	fake := &fakeMessages{response: "Sure! Here are some great words for your student."}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	_, err := client.SuggestVocabulary(context.Background(), "transcript", 15)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSuggestSentencesCapsAtMax(t *testing.T) {
	fake := &fakeMessages{response: `["I went to the store yesterday.", "She has been studying all week.", "We should practice more often."]`}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	sentences, err := client.SuggestSentences(context.Background(), "transcript", 2)
	require.NoError(t, err)
	assert.Len(t, sentences, 2)
}

func TestTranslate(t *testing.T) {
	fake := &fakeMessages{response: `{"Borrow": "pedir prestado", "lend": "prestar", "blank": " "}`}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	translations, err := client.Translate(context.Background(), []string{"borrow", "lend"}, "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "pedir prestado", translations["borrow"])
	assert.Equal(t, "prestar", translations["lend"])
	_, ok := translations["blank"]
	assert.False(t, ok)
}

func TestTranslateNoWordsSkipsCall(t *testing.T) {
	fake := &fakeMessages{response: "{}"}
	client := NewFromMessages(fake, "claude-sonnet-4-5", 1024)

	translations, err := client.Translate(context.Background(), nil, "Spanish")
	require.NoError(t, err)
	assert.Empty(t, translations)
	assert.Zero(t, fake.calls)
}
