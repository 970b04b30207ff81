package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/core"
)

// explainSystemPrompt frames the LLM's role for match explanations.
const explainSystemPrompt = `You help researchers understand search results from a catalog of research-support services. Given a query and one matching service, explain in two or three plain sentences why the service is relevant to the query. Write for the researcher, not the system. Do not mention similarity scores or embeddings.`

// Explainer produces a free-text rationale for why one ranked match
// fits a query. Each call is one LLM round trip; explanations are
// generated per displayed result, never for the whole list.
type Explainer struct {
	llm        ai.Explainer
	dictionary *acronym.Dictionary
}

// NewExplainer creates a match explainer.
func NewExplainer(llm ai.Explainer, dictionary *acronym.Dictionary) (*Explainer, error) {
	if llm == nil {
		return nil, ErrExplainerRequired
	}
	if dictionary == nil {
		return nil, ErrDictionaryRequired
	}
	return &Explainer{llm: llm, dictionary: dictionary}, nil
}

// Explain returns the LLM's rationale for the match, verbatim.
// A failure is the caller's to retry; it never affects the ranked list.
func (e *Explainer) Explain(ctx context.Context, query string, match *core.Service) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", fmt.Errorf("%w: query is required", core.ErrValidation)
	}
	if match == nil {
		return "", fmt.Errorf("%w: match is required", core.ErrValidation)
	}

	expanded, _ := e.dictionary.ExpandQuery(query)

	// One glossary covering acronyms from both the query and the
	// match's own text, so the model can bridge the terminology.
	glossary := e.dictionary.Glossary(
		query,
		match.Name,
		match.Hidden,
		match.Description,
		strings.Join(match.Aliases, " "),
	)

	prompt := buildExplainPrompt(expanded, match, glossary)

	text, err := e.llm.Explain(ctx, explainSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: match explanation: %w", core.ErrDependency, err)
	}
	return text, nil
}

func buildExplainPrompt(expandedQuery string, match *core.Service, glossary []acronym.GlossaryEntry) string {
	var b strings.Builder
	if len(glossary) > 0 {
		b.WriteString("Glossary:\n")
		b.WriteString(acronym.FormatGlossary(glossary))
		b.WriteString("\n\n")
	}
	b.WriteString("Query: ")
	b.WriteString(expandedQuery)
	b.WriteString("\n\nMatched service:\nName: ")
	b.WriteString(match.Name)
	if len(match.Aliases) > 0 {
		b.WriteString("\nAliases: ")
		b.WriteString(strings.Join(match.Aliases, ", "))
	}
	if match.Description != "" {
		b.WriteString("\nDescription: ")
		b.WriteString(match.Description)
	}
	b.WriteString("\n\nWhy does this service match the query?")
	return b.String()
}
