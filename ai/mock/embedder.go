package mock

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/poiesic/servicefinder/ai"
)

// MockEmbedder is a test double for ai.Embedder.
// It allows custom behavior injection via function fields.
type MockEmbedder struct {
	// EmbedQueriesFunc is called by EmbedQueries if set.
	// If nil, uses default deterministic behavior.
	EmbedQueriesFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedPassagesFunc is called by EmbedPassages if set.
	// If nil, uses default deterministic behavior.
	EmbedPassagesFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension of generated vectors. Defaults to 384.
	Dimension int

	queryCalls   int
	passageCalls int
}

var _ ai.Embedder = (*MockEmbedder)(nil)

// NewMockEmbedder creates a mock embedder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{Dimension: 384}
}

// EmbedQueries generates deterministic embeddings based on text hashes.
// The query/passage prefix is included in the hash so the two modes produce
// different vectors for the same text, as a real model would.
func (m *MockEmbedder) EmbedQueries(ctx context.Context, texts []string) ([][]float32, error) {
	m.queryCalls++
	if m.EmbedQueriesFunc != nil {
		return m.EmbedQueriesFunc(ctx, texts)
	}
	return m.batch(ai.QueryPrefix, texts), nil
}

// EmbedPassages generates deterministic embeddings based on text hashes.
func (m *MockEmbedder) EmbedPassages(ctx context.Context, texts []string) ([][]float32, error) {
	m.passageCalls++
	if m.EmbedPassagesFunc != nil {
		return m.EmbedPassagesFunc(ctx, texts)
	}
	return m.batch(ai.PassagePrefix, texts), nil
}

// QueryCalls returns the number of EmbedQueries invocations.
func (m *MockEmbedder) QueryCalls() int {
	return m.queryCalls
}

// PassageCalls returns the number of EmbedPassages invocations.
func (m *MockEmbedder) PassageCalls() int {
	return m.passageCalls
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.queryCalls + m.passageCalls
}

// Reset clears the call counts and injected behavior.
func (m *MockEmbedder) Reset() {
	m.queryCalls = 0
	m.passageCalls = 0
	m.EmbedQueriesFunc = nil
	m.EmbedPassagesFunc = nil
}

func (m *MockEmbedder) batch(prefix string, texts []string) [][]float32 {
	dim := m.Dimension
	if dim <= 0 {
		dim = 384
	}
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = generateDeterministicVector(prefix+strings.TrimSpace(text), dim)
	}
	return vectors
}

// generateDeterministicVector creates a deterministic embedding vector from
// text. It uses FNV hash to ensure the same text always produces the same
// vector.
func generateDeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	for i := 0; i < dim; i++ {
		// Simple pseudo-random generation based on seed and index
		seed = seed*1664525 + 1013904223 // LCG constants
		vector[i] = float32(seed%1000) / 1000.0
	}

	// Normalize to unit vector
	var sumSquares float32
	for _, v := range vector {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		norm := float32(1.0) / float32(math.Sqrt(float64(sumSquares)))
		for i := range vector {
			vector[i] *= norm
		}
	}

	return vector
}
