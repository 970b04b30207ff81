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


package servicefinder

import (
	"context"
	"log/slog"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/ai/openai"
	"github.com/poiesic/servicefinder/ai/tei"
	"github.com/poiesic/servicefinder/audit"
	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/catalog"
	"github.com/poiesic/servicefinder/reindex"
	"github.com/poiesic/servicefinder/search"
	"github.com/poiesic/servicefinder/storage/badger"
	"github.com/poiesic/servicefinder/vector"
	"github.com/poiesic/servicefinder/vector/memory"
	"github.com/poiesic/servicefinder/vector/qdrant"
)

// Finder wires the storage, vector, AI, and orchestration layers into one
// handle. Commands open a Finder, use the component accessors, and Close it.
type Finder struct {
	stores     *badger.Stores
	index      vector.Index
	embedder   ai.Embedder
	llm        ai.Explainer
	dictionary *acronym.Dictionary
	writer     *catalog.Writer
	searcher   *search.Searcher
	explainer  *search.Explainer
	sessions   *auth.SessionStore
	auditLog   audit.Log
	config     *ai.Config
	logger     *slog.Logger
}

// FinderOption configures a Finder.
type FinderOption func(*finderOptions)

type finderOptions struct {
	aiConfig *ai.Config

	// openAIEmbedding switches the embedder from the TEI client to the
	// OpenAI-compatible embeddings endpoint at EmbeddingHost.
	openAIEmbedding bool

	qdrantHost       string
	qdrantPort       int
	qdrantCollection string

	skipExplainer bool
}

// WithAIConfig sets the AI service configuration.
func WithAIConfig(config *ai.Config) FinderOption {
	return func(o *finderOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithOpenAIEmbedding embeds through the OpenAI-compatible API instead of
// the default TEI client.
func WithOpenAIEmbedding() FinderOption {
	return func(o *finderOptions) {
		o.openAIEmbedding = true
	}
}

// WithQdrant stores vectors in a Qdrant collection instead of the default
// in-process index.
func WithQdrant(host string, port int, collection string) FinderOption {
	return func(o *finderOptions) {
		o.qdrantHost = host
		o.qdrantPort = port
		o.qdrantCollection = collection
	}
}

// WithoutExplainer skips the explanation LLM client. The reindex command
// needs embeddings but never explains matches.
func WithoutExplainer() FinderOption {
	return func(o *finderOptions) {
		o.skipExplainer = true
	}
}

// NewFinder opens the database at filePath and wires every component.
// The in-process vector index is rebuilt from the stored embeddings unless
// a Qdrant backend is configured.
func NewFinder(ctx context.Context, filePath string, dictionary *acronym.Dictionary, opts ...FinderOption) (*Finder, error) {
	options := &finderOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	logger := slog.Default()

	stores, err := badger.OpenStores(filePath, false)
	if err != nil {
		return nil, err
	}

	index, err := openIndex(ctx, stores, options)
	if err != nil {
		stores.Close()
		return nil, err
	}

	embedder, llm, err := openAI(options)
	if err != nil {
		index.Close()
		stores.Close()
		return nil, err
	}

	auditLog := audit.NewLog(stores.Audit, logger)
	overlay := catalog.NewOverlay(0)

	writer, err := catalog.NewWriter(
		stores.Services, stores.Embeddings, stores.Organizations,
		index, embedder, dictionary, overlay,
		options.aiConfig.EmbeddingModel,
		catalog.WithLogger(logger),
		catalog.WithAuditLog(auditLog),
	)
	if err != nil {
		index.Close()
		stores.Close()
		return nil, err
	}

	searcher, err := search.NewSearcher(stores.Services, index, embedder, dictionary,
		search.WithOverlay(overlay),
		search.WithAuditLog(auditLog),
		search.WithLogger(logger),
	)
	if err != nil {
		index.Close()
		stores.Close()
		return nil, err
	}

	var explainer *search.Explainer
	if llm != nil {
		explainer, err = search.NewExplainer(llm, dictionary)
		if err != nil {
			index.Close()
			stores.Close()
			return nil, err
		}
	}

	return &Finder{
		stores:     stores,
		index:      index,
		embedder:   embedder,
		llm:        llm,
		dictionary: dictionary,
		writer:     writer,
		searcher:   searcher,
		explainer:  explainer,
		sessions:   auth.NewSessionStore(auth.DefaultSessionTTL),
		auditLog:   auditLog,
		config:     options.aiConfig,
		logger:     logger,
	}, nil
}

func openIndex(ctx context.Context, stores *badger.Stores, options *finderOptions) (vector.Index, error) {
	if options.qdrantHost != "" {
		return qdrant.NewIndex(ctx, options.qdrantHost, options.qdrantPort, options.qdrantCollection)
	}

	index := memory.NewIndex()
	n, err := memory.Rebuild(ctx, index, stores.Embeddings)
	if err != nil {
		return nil, err
	}
	slog.Default().Info("vector index rebuilt", "vectors", n)
	return index, nil
}

func openAI(options *finderOptions) (ai.Embedder, ai.Explainer, error) {
	config := options.aiConfig

	if options.skipExplainer {
		if err := config.Validate(); err != nil {
			return nil, nil, err
		}
	} else if err := config.ValidateExplainer(); err != nil {
		return nil, nil, err
	}

	var (
		embedder ai.Embedder
		err      error
	)
	if options.openAIEmbedding {
		embedder, err = openai.NewEmbedder(config)
	} else {
		embedder, err = tei.NewEmbedder(config)
	}
	if err != nil {
		return nil, nil, err
	}

	if options.skipExplainer {
		return embedder, nil, nil
	}

	llm, err := openai.NewExplainer(config)
	if err != nil {
		return nil, nil, err
	}
	return embedder, llm, nil
}

// Close releases the vector index and the storage backend.
func (f *Finder) Close() error {
	if err := f.index.Close(); err != nil {
		f.logger.Error("error closing vector index", "err", err)
	}
	if err := f.stores.Close(); err != nil {
		f.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// Stores exposes the storage layer.
func (f *Finder) Stores() *badger.Stores {
	return f.stores
}

// Writer exposes the catalog write path.
func (f *Finder) Writer() *catalog.Writer {
	return f.writer
}

// Searcher exposes the search pipeline.
func (f *Finder) Searcher() *search.Searcher {
	return f.searcher
}

// Explainer exposes the match explainer. Nil when the Finder was opened
// with WithoutExplainer.
func (f *Finder) Explainer() *search.Explainer {
	return f.explainer
}

// Sessions exposes the session store.
func (f *Finder) Sessions() *auth.SessionStore {
	return f.sessions
}

// AuditLog exposes the audit sink.
func (f *Finder) AuditLog() audit.Log {
	return f.auditLog
}

// NewReconciler creates an embedding reconciler over the Finder's components.
func (f *Finder) NewReconciler(config *reindex.Config) (*reindex.Reconciler, error) {
	return reindex.NewReconciler(
		f.stores.Services, f.stores.Embeddings, f.index,
		f.embedder, f.dictionary, f.config.EmbeddingModel, config,
	)
}
