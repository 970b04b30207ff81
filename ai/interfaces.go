package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity
// search. The two methods apply distinct textual prefixes per the embedding
// model's retrieval convention: short live queries versus longer indexed
// passages. Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedQueries embeds texts as retrieval queries.
	// Output is order-preserving and one-to-one with the input; the whole
	// batch fails as a unit on any transport error or non-success status.
	EmbedQueries(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedPassages embeds texts as indexed passages.
	// Same contract as EmbedQueries.
	EmbedPassages(ctx context.Context, texts []string) ([][]float32, error)
}

// Explainer produces a free-text rationale from a chat-completion style call.
// The response text is returned verbatim; callers render it as display text
// and never parse it as structured data.
type Explainer interface {
	Explain(ctx context.Context, system, prompt string) (string, error)
}

// Provider aggregates the AI services for convenient wiring and lifecycle
// management.
type Provider interface {
	// Embedder returns the text embedding service.
	Embedder() Embedder

	// Explainer returns the match explanation service.
	Explainer() Explainer

	// Close releases resources held by the provider and its services.
	Close() error
}
