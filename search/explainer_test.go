package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai/mock"
	"github.com/poiesic/servicefinder/core"
)

func newExplainerFixture(t *testing.T) (*Explainer, *mock.MockExplainer) {
	t.Helper()

	dictionary, err := acronym.FromMap(map[string][]string{
		"CT":  {"Clinical trials"},
		"SBP": {"Swiss Biobanking Platform"},
	})
	require.NoError(t, err)

	llm := mock.NewMockExplainer()
	explainer, err := NewExplainer(llm, dictionary)
	require.NoError(t, err)
	return explainer, llm
}

func TestExplainValidatesInput(t *testing.T) {
	explainer, _ := newExplainerFixture(t)
	ctx := context.Background()

	_, err := explainer.Explain(ctx, "", &core.Service{Name: "X"})
	assert.ErrorIs(t, err, core.ErrValidation)

	_, err = explainer.Explain(ctx, "query", nil)
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestExplainPromptCarriesGlossaryAndMatch(t *testing.T) {
	explainer, llm := newExplainerFixture(t)

	match := &core.Service{
		Id:          "sbp-01",
		Name:        "Biobanking consult",
		Description: "Part of the SBP network.",
		Aliases:     []string{"SBP", "Swiss Biobanking Platform"},
	}

	text, err := explainer.Explain(context.Background(), "need CT support", match)
	require.NoError(t, err)
	assert.NotEmpty(t, text)

	// Glossary unions query acronyms and match acronyms.
	assert.Contains(t, llm.LastPrompt, "CT = Clinical trials")
	assert.Contains(t, llm.LastPrompt, "SBP = Swiss Biobanking Platform")

	// The prompt carries the expanded query and the match fields.
	assert.Contains(t, llm.LastPrompt, "need CT support")
	assert.Contains(t, llm.LastPrompt, "Biobanking consult")
	assert.Contains(t, llm.LastPrompt, "Part of the SBP network.")
	assert.NotEmpty(t, llm.LastSystem)
}

func TestExplainReturnsLLMTextVerbatim(t *testing.T) {
	explainer, llm := newExplainerFixture(t)
	llm.ExplainFunc = func(ctx context.Context, system, prompt string) (string, error) {
		return "It stores your samples.", nil
	}

	text, err := explainer.Explain(context.Background(), "storage", &core.Service{Name: "X"})
	require.NoError(t, err)
	assert.Equal(t, "It stores your samples.", text)
}

func TestExplainSurfacesLLMFailure(t *testing.T) {
	explainer, llm := newExplainerFixture(t)
	boom := errors.New("llm unreachable")
	llm.ExplainFunc = func(ctx context.Context, system, prompt string) (string, error) {
		return "", boom
	}

	_, err := explainer.Explain(context.Background(), "storage", &core.Service{Name: "X"})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, core.ErrDependency)
}
