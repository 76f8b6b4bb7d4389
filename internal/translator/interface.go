package translator

import "context"

// Translator translates an ordered batch of texts. The returned slice always
// has the same length and order as the input; on unrecoverable failure it is
// the input itself (fail-open).
type Translator interface {
	TranslateBatch(ctx context.Context, texts []string) []string
}

// Completer sends one system prompt plus one user message to a remote model
// and returns the raw completion text. Implementations hold credentials and
// are safe for concurrent use.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
