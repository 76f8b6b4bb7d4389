package translator

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/subtrans/internal/logger"
)

// scriptedCompleter replays canned responses (or errors) attempt by attempt.
type scriptedCompleter struct {
	responses []string
	errs      []error
	calls     int
	lastUser  string
}

func (s *scriptedCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	i := s.calls
	s.calls++
	s.lastUser = user
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return "", fmt.Errorf("no scripted response for call %d", i)
}

func quietLogger() logger.Logger {
	return logger.NewWithWriter(io.Discard, "error")
}

func newTestBatch(c Completer) Translator {
	return NewBatch(c, "translate to french", time.Second, quietLogger())
}

func TestFormatBatchInput(t *testing.T) {
	got := formatBatchInput([]string{"Hello", "World"})
	assert.Equal(t, "1. Hello\n2. World", got)
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		expected     int
		want         []string
		wantComplete bool
	}{
		{
			name:         "clean numbered response",
			response:     "1. Bonjour\n2. Monde",
			expected:     2,
			want:         []string{"Bonjour", "Monde"},
			wantComplete: true,
		},
		{
			name:         "reasoning section stripped",
			response:     "I will translate.\n1. WRONG\n</think>\n1. Bonjour\n2. Monde",
			expected:     2,
			want:         []string{"Bonjour", "Monde"},
			wantComplete: true,
		},
		{
			name:         "only suffix after last think marker kept",
			response:     "</think>ignored 1. a</think>\n1. Bonjour\n2. Monde",
			expected:     2,
			want:         []string{"Bonjour", "Monde"},
			wantComplete: true,
		},
		{
			name:         "chatter between numbered lines ignored",
			response:     "Here you go:\n1. Bonjour\nnote: informal\n2. Monde\nDone!",
			expected:     2,
			want:         []string{"Bonjour", "Monde"},
			wantComplete: true,
		},
		{
			name:         "too few lines padded with sentinel",
			response:     "1. Bonjour",
			expected:     3,
			want:         []string{"Bonjour", ParseErrorSentinel, ParseErrorSentinel},
			wantComplete: false,
		},
		{
			name:         "extra lines truncated",
			response:     "1. Bonjour\n2. Monde\n3. Extra",
			expected:     2,
			want:         []string{"Bonjour", "Monde"},
			wantComplete: true,
		},
		{
			name:         "no numbered lines at all",
			response:     "Sorry, I cannot help with that.",
			expected:     2,
			want:         []string{ParseErrorSentinel, ParseErrorSentinel},
			wantComplete: false,
		},
		{
			name:         "whitespace after number trimmed",
			response:     "1.    Bonjour  \n2.\tMonde",
			expected:     2,
			want:         []string{"Bonjour", "Monde"},
			wantComplete: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, complete := parseResponse(tt.response, tt.expected)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantComplete, complete)
		})
	}
}

// Known edge case: parsed lines are assigned by order of appearance, not by
// their numeric label. A model answering "2." before "1." mismatches
// positions, and that behavior is deliberate.
func TestParseResponseIgnoresNumericLabels(t *testing.T) {
	got, complete := parseResponse("2. Monde\n1. Bonjour", 2)
	require.True(t, complete)
	assert.Equal(t, []string{"Monde", "Bonjour"}, got)
}

func TestTranslateBatchSuccess(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"1. Bonjour\n2. Monde"}}
	tr := newTestBatch(c)

	got := tr.TranslateBatch(context.Background(), []string{"Hello", "World"})

	assert.Equal(t, []string{"Bonjour", "Monde"}, got)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "1. Hello\n2. World", c.lastUser)
}

func TestTranslateBatchRetriesThenSucceeds(t *testing.T) {
	c := &scriptedCompleter{
		errs:      []error{fmt.Errorf("connection reset"), nil},
		responses: []string{"", "1. Bonjour\n2. Monde"},
	}
	tr := newTestBatch(c)

	got := tr.TranslateBatch(context.Background(), []string{"Hello", "World"})

	assert.Equal(t, []string{"Bonjour", "Monde"}, got)
	assert.Equal(t, 2, c.calls)
}

func TestTranslateBatchFailOpenAfterAllAttempts(t *testing.T) {
	c := &scriptedCompleter{
		errs: []error{
			fmt.Errorf("timeout"),
			fmt.Errorf("timeout"),
			fmt.Errorf("timeout"),
		},
	}
	tr := newTestBatch(c)

	input := []string{"Hello", "World"}
	got := tr.TranslateBatch(context.Background(), input)

	// Fail-open: the exact originals come back, never sentinels
	assert.Equal(t, input, got)
	assert.Equal(t, maxRetries, c.calls)
}

func TestTranslateBatchMalformedResponsesFailOpen(t *testing.T) {
	// Every attempt parses fewer lines than requested
	c := &scriptedCompleter{responses: []string{"1. seule", "1. seule", "1. seule"}}
	tr := newTestBatch(c)

	input := []string{"Hello", "World"}
	got := tr.TranslateBatch(context.Background(), input)

	assert.Equal(t, input, got)
	assert.Equal(t, maxRetries, c.calls)
	assert.NotContains(t, got, ParseErrorSentinel)
}

func TestTranslateBatchEmptyInput(t *testing.T) {
	c := &scriptedCompleter{}
	tr := newTestBatch(c)

	got := tr.TranslateBatch(context.Background(), nil)

	assert.Empty(t, got)
	assert.Zero(t, c.calls, "no remote call for an empty batch")
}
