// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/core"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Explainer implements ai.Explainer using OpenAI-compatible chat APIs.
// One call per explanation request; the response is returned verbatim.
type Explainer struct {
	client llms.Model
	logger *slog.Logger
}

var _ ai.Explainer = (*Explainer)(nil)

// newExplainer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newExplainer(config *ai.Config) (*Explainer, error) {
	if err := config.ValidateExplainer(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't
	// require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ExplainerHost),
		openai.WithToken("none"),
		openai.WithModel(config.ExplainerModel),
	)
	if err != nil {
		return nil, err
	}

	return &Explainer{
		client: client,
		logger: slog.Default().With("component", "openai-explainer"),
	}, nil
}

// NewExplainer creates a new explainer using the provided configuration.
//
// Returns ai.Explainer interface to enforce abstraction.
func NewExplainer(config *ai.Config) (ai.Explainer, error) {
	return newExplainer(config)
}

// Explain sends one chat-completion call and returns the completion text
// verbatim. No retries and no parsing of the content.
func (e *Explainer) Explain(ctx context.Context, system, prompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(system),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	response, err := e.client.GenerateContent(ctx, content, llms.WithTemperature(0.2))
	if err != nil {
		e.logger.Error("failed to generate explanation", "err", err)
		return "", fmt.Errorf("%w: explanation: %v", core.ErrDependency, err)
	}

	if len(response.Choices) < 1 {
		e.logger.Warn("no choices returned from model")
		return "", fmt.Errorf("%w: explanation: empty response", core.ErrDependency)
	}

	return strings.TrimSpace(response.Choices[0].Content), nil
}
