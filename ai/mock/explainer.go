package mock

import (
	"context"

	"github.com/poiesic/servicefinder/ai"
)

// MockExplainer is a test double for ai.Explainer.
type MockExplainer struct {
	// ExplainFunc is called by Explain if set.
	// If nil, returns a canned response embedding the prompt length.
	ExplainFunc func(ctx context.Context, system, prompt string) (string, error)

	// LastSystem and LastPrompt record the most recent call's inputs.
	LastSystem string
	LastPrompt string

	callCount int
}

var _ ai.Explainer = (*MockExplainer)(nil)

// NewMockExplainer creates a mock explainer with default canned behavior.
func NewMockExplainer() *MockExplainer {
	return &MockExplainer{}
}

// Explain records the inputs and returns either the injected behavior's
// result or a fixed canned response.
func (m *MockExplainer) Explain(ctx context.Context, system, prompt string) (string, error) {
	m.callCount++
	m.LastSystem = system
	m.LastPrompt = prompt
	if m.ExplainFunc != nil {
		return m.ExplainFunc(ctx, system, prompt)
	}
	return "This service matches your request.", nil
}

// CallCount returns the number of Explain invocations.
func (m *MockExplainer) CallCount() int {
	return m.callCount
}

// Reset clears recorded state and injected behavior.
func (m *MockExplainer) Reset() {
	m.callCount = 0
	m.LastSystem = ""
	m.LastPrompt = ""
	m.ExplainFunc = nil
}
