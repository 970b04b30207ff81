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


package ai

import (
	"errors"
	"strings"
	"time"
)

// QueryPrefix and PassagePrefix are the E5-style retrieval prefixes prepended
// before embedding. Queries and indexed passages get distinct prefixes for
// better asymmetric-retrieval ranking.
const (
	QueryPrefix   = "query: "
	PassagePrefix = "passage: "
)

// Config holds configuration for AI service clients.
type Config struct {
	// EmbeddingHost is the base URL of the embedding service.
	// Example: "http://localhost:8080" for a local TEI server.
	EmbeddingHost string

	// EmbeddingModel identifies the embedding model/version in use.
	// Recorded with every stored embedding so the reconciler can detect
	// vectors produced by an outdated model.
	EmbeddingModel string

	// Dimension is the expected embedding vector length. Responses with a
	// different length are rejected before anything is persisted.
	Dimension int

	// Timeout bounds each embedding request. Exceeding it aborts the
	// in-flight request and surfaces ErrTimeout.
	Timeout time.Duration

	// ExplainerHost is the base URL of the chat-completion service used for
	// match explanations. Example: "http://localhost:11434/v1".
	ExplainerHost string

	// ExplainerModel is the chat model identifier for explanations.
	ExplainerModel string
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithEmbeddingHost sets the embedding service host URL.
func WithEmbeddingHost(host string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingHost = host
	}
}

// WithEmbeddingModel sets the embedding model identifier.
func WithEmbeddingModel(model string) ConfigOption {
	return func(c *Config) {
		c.EmbeddingModel = model
	}
}

// WithDimension sets the expected embedding vector length.
func WithDimension(dim int) ConfigOption {
	return func(c *Config) {
		c.Dimension = dim
	}
}

// WithTimeout sets the per-request embedding timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithExplainerHost sets the explanation LLM host URL.
func WithExplainerHost(host string) ConfigOption {
	return func(c *Config) {
		c.ExplainerHost = host
	}
}

// WithExplainerModel sets the explanation LLM model identifier.
func WithExplainerModel(model string) ConfigOption {
	return func(c *Config) {
		c.ExplainerModel = model
	}
}

// DefaultConfig returns a Config with sensible defaults for local services.
func DefaultConfig() *Config {
	return &Config{
		EmbeddingHost:  "http://localhost:8080",
		EmbeddingModel: "intfloat/multilingual-e5-small",
		Dimension:      384,
		Timeout:        60 * time.Second,
		ExplainerHost:  "http://localhost:11434/v1",
		ExplainerModel: "qwen2.5:3b",
	}
}

// NewConfig creates a Config with default values and applies the provided
// options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize puts the configuration in canonical form: hosts lose their
// trailing slash and the explainer host gains the /v1 suffix required by
// OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	c.EmbeddingHost = strings.TrimSuffix(strings.TrimSpace(c.EmbeddingHost), "/")
	c.ExplainerHost = strings.TrimSpace(c.ExplainerHost)
	if c.ExplainerHost != "" && !strings.HasSuffix(c.ExplainerHost, "/v1") {
		c.ExplainerHost = strings.TrimSuffix(c.ExplainerHost, "/")
		c.ExplainerHost = c.ExplainerHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if c.EmbeddingHost == "" {
		return errors.New("ai config: EmbeddingHost is required")
	}
	if c.EmbeddingModel == "" {
		return errors.New("ai config: EmbeddingModel is required")
	}
	if c.Dimension <= 0 {
		return errors.New("ai config: Dimension must be positive")
	}
	if c.Timeout <= 0 {
		return errors.New("ai config: Timeout must be positive")
	}
	return nil
}

// ValidateExplainer additionally checks the explanation LLM settings.
// Kept separate because the reindex CLI needs embeddings but no explainer.
func (c *Config) ValidateExplainer() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ExplainerHost == "" {
		return errors.New("ai config: ExplainerHost is required")
	}
	if c.ExplainerModel == "" {
		return errors.New("ai config: ExplainerModel is required")
	}
	return nil
}
