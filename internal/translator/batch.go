package translator

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/nguyentantai21042004/subtrans/internal/logger"
)

const (
	maxRetries = 3

	// ParseErrorSentinel pads incomplete parses. It never escapes
	// TranslateBatch: an incomplete parse fails validation and the batch is
	// retried or falls back to the originals.
	ParseErrorSentinel = "[PARSE ERROR]"
)

var reNumbered = regexp.MustCompile(`^\d+\.\s*(.*)$`)

type implBatch struct {
	completer Completer
	prompt    string
	timeout   time.Duration
	logger    logger.Logger
}

// NewBatch creates a Translator that sends texts as one numbered batch per
// request and enforces the numbered-line response contract.
func NewBatch(completer Completer, prompt string, timeout time.Duration, log logger.Logger) Translator {
	return &implBatch{
		completer: completer,
		prompt:    prompt,
		timeout:   timeout,
		logger:    log,
	}
}

// TranslateBatch translates texts as one request, retrying the whole batch on
// transport or shape errors. After maxRetries failed attempts it returns the
// input unchanged: leaving text untranslated beats corrupting the output.
func (b *implBatch) TranslateBatch(ctx context.Context, texts []string) []string {
	if len(texts) == 0 {
		return texts
	}

	user := formatBatchInput(texts)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		b.logger.Info(ctx, "Attempt %d/%d: translating %d texts...", attempt, maxRetries, len(texts))

		raw, err := b.complete(ctx, user)
		if err != nil {
			b.logger.Warn(ctx, "Translation attempt %d failed: %v", attempt, err)
			continue
		}

		parsed, complete := parseResponse(raw, len(texts))
		if !complete {
			b.logger.Warn(ctx, "Parsing incomplete on attempt %d: expected %d numbered lines", attempt, len(texts))
			continue
		}
		if len(parsed) != len(texts) {
			b.logger.Warn(ctx, "Validation failed on attempt %d: expected %d translations, got %d", attempt, len(texts), len(parsed))
			continue
		}

		return parsed
	}

	b.logger.Warn(ctx, "All %d attempts failed, passing %d texts through untranslated", maxRetries, len(texts))
	return texts
}

func (b *implBatch) complete(ctx context.Context, user string) (string, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()
	return b.completer.Complete(attemptCtx, b.prompt, user)
}

// formatBatchInput renders texts as "1. first\n2. second\n..." so the model
// can answer in the same numbered shape.
func formatBatchInput(texts []string) string {
	var sb strings.Builder
	for i, text := range texts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d. %s", i+1, text)
	}
	return sb.String()
}

// parseResponse extracts numbered lines from a raw completion. Anything up to
// and including the last "</think>" marker is discarded first. Matched lines
// are taken in the order they appear; the numeric label is not used to
// reorder them. Returns the translations padded to expected with
// ParseErrorSentinel, and whether the parse was complete.
func parseResponse(response string, expected int) ([]string, bool) {
	if idx := strings.LastIndex(response, "</think>"); idx >= 0 {
		response = response[idx+len("</think>"):]
	}
	response = strings.TrimSpace(response)

	var parsed []string
	for _, line := range strings.Split(response, "\n") {
		if m := reNumbered.FindStringSubmatch(line); m != nil {
			parsed = append(parsed, strings.TrimSpace(m[1]))
		}
	}

	if len(parsed) < expected {
		for len(parsed) < expected {
			parsed = append(parsed, ParseErrorSentinel)
		}
		return parsed, false
	}
	return parsed[:expected], true
}
