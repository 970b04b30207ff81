package reindex

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/embedtext"
	"github.com/poiesic/servicefinder/storage"
	"github.com/poiesic/servicefinder/vector"
)

// Config holds configuration for a reconciliation run.
type Config struct {
	// BatchSize is the number of services to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of services)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed embeddings
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration

	// PoolSize is the worker count for concurrent batch processing.
	// Defaults to runtime.NumCPU() / 2, minimum 1.
	PoolSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	return &Config{
		BatchSize:      DefaultBatchSize,
		ReportInterval: 50,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
		PoolSize:       poolSize,
	}
}

// Stats summarizes a reconciliation run.
type Stats struct {
	Scanned   int
	Refreshed int
	Failed    int
}

// Reconciler re-embeds services whose stored embedding no longer
// matches what their current fields would produce.
type Reconciler struct {
	services   storage.ServiceStore
	embeddings storage.EmbeddingStore
	index      vector.Index
	embedder   ai.Embedder
	dictionary *acronym.Dictionary
	model      string
	config     *Config
	logger     *slog.Logger
}

// NewReconciler creates a reconciler. The model name is compared
// against each embedding row; a mismatch forces a refresh.
func NewReconciler(
	services storage.ServiceStore,
	embeddings storage.EmbeddingStore,
	index vector.Index,
	embedder ai.Embedder,
	dictionary *acronym.Dictionary,
	model string,
	config *Config,
) (*Reconciler, error) {
	if services == nil || embeddings == nil {
		return nil, errors.New("stores required")
	}
	if index == nil {
		return nil, errors.New("vector index required")
	}
	if embedder == nil {
		return nil, errors.New("embedder required")
	}
	if dictionary == nil {
		return nil, errors.New("acronym dictionary required")
	}
	if config == nil {
		config = DefaultConfig()
	}
	return &Reconciler{
		services:   services,
		embeddings: embeddings,
		index:      index,
		embedder:   embedder,
		dictionary: dictionary,
		model:      model,
		config:     config,
		logger:     slog.Default(),
	}, nil
}

// Run walks the catalog and refreshes every stale embedding.
// Progress is reported to the given writer.
func (r *Reconciler) Run(ctx context.Context, progress io.Writer) (*Stats, error) {
	all, err := r.services.ListServices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	total := len(all)
	if total == 0 {
		fmt.Fprintf(progress, "No services found (0 records)\n")
		return &Stats{}, nil
	}

	fmt.Fprintf(progress, "Reconciling %d services (batch size: %d, workers: %d)\n",
		total, r.config.BatchSize, r.config.PoolSize)

	pool, err := ants.NewPool(r.config.PoolSize)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	tracker := NewProgressTracker(progress, total, r.config.ReportInterval)
	tracker.Start()

	stats := &Stats{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	iterator := NewServiceIterator(all, r.config.BatchSize)
	err = iterator.ForEach(ctx, func(batch []*core.Service) error {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			scanned, refreshed, failed := r.processBatch(ctx, batch)
			mu.Lock()
			stats.Scanned += scanned
			stats.Refreshed += refreshed
			stats.Failed += failed
			mu.Unlock()
			tracker.Increment(scanned)
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
		return nil
	})
	wg.Wait()
	if err != nil {
		return stats, err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(progress, "Reconciliation complete. Scanned %d, refreshed %d, failed %d in %v\n",
		stats.Scanned, stats.Refreshed, stats.Failed, elapsed.Round(time.Second))

	if stats.Failed > 0 {
		return stats, fmt.Errorf("%d services failed to re-embed", stats.Failed)
	}
	return stats, nil
}

// processBatch refreshes the stale services of one batch.
func (r *Reconciler) processBatch(ctx context.Context, batch []*core.Service) (scanned, refreshed, failed int) {
	for _, service := range batch {
		scanned++

		stale, expanded, err := r.isStale(ctx, service)
		if err != nil {
			r.logger.Error("failed to check embedding freshness", "serviceId", service.Id, "err", err)
			failed++
			continue
		}
		if !stale {
			continue
		}

		err = RetryWithBackoff(ctx, func() error {
			return r.refresh(ctx, service, expanded)
		}, r.config.MaxRetries, r.config.RetryDelay)
		if err != nil {
			r.logger.Error("failed to refresh embedding", "serviceId", service.Id, "err", err)
			failed++
			continue
		}
		refreshed++
	}
	return scanned, refreshed, failed
}

// isStale reports whether the service needs re-embedding and returns
// the embedding text it should be embedded from.
func (r *Reconciler) isStale(ctx context.Context, service *core.Service) (bool, string, error) {
	text := embedtext.Build(service.EmbeddingFields())
	expanded := r.dictionary.ExpandInline(text)

	row, err := r.embeddings.GetEmbedding(ctx, service.Id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return true, expanded, nil
		}
		return false, "", err
	}
	if row.Model != r.model {
		return true, expanded, nil
	}
	if row.TextHash != core.HashText(expanded) {
		return true, expanded, nil
	}
	return false, "", nil
}

// refresh re-embeds one service and upserts store and index.
func (r *Reconciler) refresh(ctx context.Context, service *core.Service, expanded string) error {
	vectors, err := r.embedder.EmbedPassages(ctx, []string{expanded})
	if err != nil {
		return err
	}
	if len(vectors) != 1 {
		return fmt.Errorf("expected 1 vector, got %d", len(vectors))
	}
	vec := vector.Normalize(vectors[0])

	row := &core.ServiceEmbedding{
		ServiceId: service.Id,
		Vector:    vec,
		Model:     r.model,
		TextHash:  core.HashText(expanded),
	}
	if err := r.embeddings.PutEmbedding(ctx, row); err != nil {
		return err
	}
	metadata := map[string]string{"org": service.OrganizationCode}
	return r.index.Upsert(ctx, service.Id, vec, metadata)
}
