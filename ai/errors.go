package ai

import "errors"

var (
	// ErrTimeout indicates an embedding or LLM request exceeded its deadline.
	// Distinct from generic transport failures so callers can report it as such.
	ErrTimeout = errors.New("request timed out")

	// ErrEmptyBatch indicates an embedding call with no input texts.
	ErrEmptyBatch = errors.New("no texts to embed")
)
