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


// Package tei implements ai.Embedder against a Hugging Face Text Embeddings
// Inference server: POST /embed {"inputs": [...]} returning one vector per
// input. E5-style query/passage prefixes are applied here so callers only
// choose the mode, never the prefix.
package tei

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/core"
)

// Embedder implements ai.Embedder over the TEI HTTP protocol.
type Embedder struct {
	client    *http.Client
	baseURL   string
	dimension int
	timeout   time.Duration
	logger    *slog.Logger
}

var _ ai.Embedder = (*Embedder)(nil)

// NewEmbedder creates a TEI embedder from the provided configuration.
//
// Returns ai.Embedder interface to enforce abstraction.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Embedder{
		client:    &http.Client{},
		baseURL:   config.EmbeddingHost,
		dimension: config.Dimension,
		timeout:   config.Timeout,
		logger:    slog.Default().With("component", "tei-embedder"),
	}, nil
}

// EmbedQueries embeds texts as retrieval queries.
func (e *Embedder) EmbedQueries(ctx context.Context, texts []string) ([][]float32, error) {
	return e.embed(ctx, ai.QueryPrefix, texts)
}

// EmbedPassages embeds texts as indexed passages.
func (e *Embedder) EmbedPassages(ctx context.Context, texts []string) ([][]float32, error) {
	return e.embed(ctx, ai.PassagePrefix, texts)
}

type embedRequest struct {
	Inputs []string `json:"inputs"`
}

// embed performs one POST /embed call for the whole batch. Any transport
// error, timeout, or non-success status fails the batch as a unit.
func (e *Embedder) embed(ctx context.Context, prefix string, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, ai.ErrEmptyBatch
	}

	inputs := make([]string, len(texts))
	for i, t := range texts {
		inputs[i] = prefix + strings.TrimSpace(t)
	}

	body, err := json.Marshal(embedRequest{Inputs: inputs})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			e.logger.Error("embedding request timed out", "timeout", e.timeout, "batch", len(texts))
			return nil, fmt.Errorf("%w: /embed exceeded %v", ai.ErrTimeout, e.timeout)
		}
		return nil, fmt.Errorf("%w: /embed: %v", core.ErrDependency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		e.logger.Error("embedding request failed", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: /embed status %d: %s", core.ErrDependency, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var vectors [][]float32
	if err := json.NewDecoder(resp.Body).Decode(&vectors); err != nil {
		return nil, fmt.Errorf("%w: /embed response: %v", core.ErrDependency, err)
	}

	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: /embed returned %d vectors for %d inputs", core.ErrDependency, len(vectors), len(texts))
	}
	for i, v := range vectors {
		if len(v) != e.dimension {
			return nil, fmt.Errorf("%w: vector %d has length %d, expected %d", core.ErrDimensionMismatch, i, len(v), e.dimension)
		}
	}

	return vectors, nil
}
