package llm

import "context"

// Caller abstracts the generative backend. The pipeline only ever hands it a
// finished prompt and receives raw, untrusted text back; retries, timeouts and
// authentication all live behind this interface.
type Caller interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
