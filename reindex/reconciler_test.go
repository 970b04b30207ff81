package reindex

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai/mock"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage/badger"
	"github.com/poiesic/servicefinder/vector/memory"
)

const testModel = "intfloat/multilingual-e5-small"

type reconcilerFixture struct {
	reconciler *Reconciler
	stores     *badger.Stores
	index      *memory.Index
	embedder   *mock.MockEmbedder
	dictionary *acronym.Dictionary
}

func newReconcilerFixture(t *testing.T) *reconcilerFixture {
	t.Helper()

	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	dictionary, err := acronym.FromMap(map[string][]string{
		"CT": {"Clinical trials"},
	})
	require.NoError(t, err)

	index := memory.NewIndex()
	embedder := mock.NewMockEmbedder()

	config := DefaultConfig()
	config.RetryDelay = time.Millisecond
	config.PoolSize = 2

	reconciler, err := NewReconciler(stores.Services, stores.Embeddings, index,
		embedder, dictionary, testModel, config)
	require.NoError(t, err)

	return &reconcilerFixture{
		reconciler: reconciler,
		stores:     stores,
		index:      index,
		embedder:   embedder,
		dictionary: dictionary,
	}
}

func (f *reconcilerFixture) putService(t *testing.T, service *core.Service) {
	t.Helper()
	require.NoError(t, f.stores.Services.PutService(context.Background(), service))
}

// putFreshEmbedding stores the embedding row the reconciler itself
// would produce, so the service is not considered stale.
func (f *reconcilerFixture) putFreshEmbedding(t *testing.T, service *core.Service) {
	t.Helper()
	_, expanded, err := f.reconciler.isStale(context.Background(), service)
	require.NoError(t, err)
	require.NoError(t, f.stores.Embeddings.PutEmbedding(context.Background(), &core.ServiceEmbedding{
		ServiceId: service.Id,
		Vector:    []float32{1, 0},
		Model:     testModel,
		TextHash:  core.HashText(expanded),
	}))
}

func TestRunEmbedsMissingRows(t *testing.T) {
	f := newReconcilerFixture(t)

	f.putService(t, &core.Service{Id: "a-1", OrganizationCode: "a", Name: "One", Active: true})
	f.putService(t, &core.Service{Id: "a-2", OrganizationCode: "a", Name: "Two", Active: true})

	stats, err := f.reconciler.Run(context.Background(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Scanned)
	assert.Equal(t, 2, stats.Refreshed)
	assert.Equal(t, 0, stats.Failed)

	row, err := f.stores.Embeddings.GetEmbedding(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, testModel, row.Model)
	assert.Equal(t, 2, f.index.Len())
}

func TestRunIsIdempotent(t *testing.T) {
	f := newReconcilerFixture(t)

	f.putService(t, &core.Service{Id: "a-1", OrganizationCode: "a", Name: "One", Active: true})

	_, err := f.reconciler.Run(context.Background(), io.Discard)
	require.NoError(t, err)
	require.Equal(t, 1, f.embedder.PassageCalls())

	stats, err := f.reconciler.Run(context.Background(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Scanned)
	assert.Equal(t, 0, stats.Refreshed)
	assert.Equal(t, 1, f.embedder.PassageCalls(), "fresh rows must not re-embed")
}

func TestRunRefreshesOnTextChange(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	service := &core.Service{Id: "a-1", OrganizationCode: "a", Name: "One", Description: "Old text.", Active: true}
	f.putService(t, service)
	f.putFreshEmbedding(t, service)

	// The stored description moves on; the row's hash is now stale.
	service.Description = "New text."
	f.putService(t, service)

	stats, err := f.reconciler.Run(ctx, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Refreshed)
}

func TestRunRefreshesOnModelChange(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	service := &core.Service{Id: "a-1", OrganizationCode: "a", Name: "One", Active: true}
	f.putService(t, service)

	_, expanded, err := f.reconciler.isStale(ctx, service)
	require.NoError(t, err)
	require.NoError(t, f.stores.Embeddings.PutEmbedding(ctx, &core.ServiceEmbedding{
		ServiceId: "a-1",
		Vector:    []float32{1, 0},
		Model:     "some/older-model",
		TextHash:  core.HashText(expanded),
	}))

	stats, err := f.reconciler.Run(ctx, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Refreshed)

	row, err := f.stores.Embeddings.GetEmbedding(ctx, "a-1")
	require.NoError(t, err)
	assert.Equal(t, testModel, row.Model)
}

func TestRunRetriesTransientFailures(t *testing.T) {
	f := newReconcilerFixture(t)

	f.putService(t, &core.Service{Id: "a-1", OrganizationCode: "a", Name: "One", Active: true})

	calls := 0
	f.embedder.EmbedPassagesFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		calls++
		if calls == 1 {
			return nil, assert.AnError
		}
		return [][]float32{{1, 0}}, nil
	}

	stats, err := f.reconciler.Run(context.Background(), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Refreshed)
	assert.Equal(t, 2, calls)
}

func TestRunReportsPersistentFailures(t *testing.T) {
	f := newReconcilerFixture(t)

	f.putService(t, &core.Service{Id: "a-1", OrganizationCode: "a", Name: "One", Active: true})

	f.embedder.EmbedPassagesFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, assert.AnError
	}

	stats, err := f.reconciler.Run(context.Background(), io.Discard)
	assert.Error(t, err)
	assert.Equal(t, 1, stats.Failed)
	assert.Equal(t, 0, stats.Refreshed)
}

func TestServiceIteratorBatches(t *testing.T) {
	f := newReconcilerFixture(t)
	ctx := context.Background()

	for _, id := range []string{"a-1", "a-2", "a-3", "a-4", "a-5"} {
		f.putService(t, &core.Service{Id: id, OrganizationCode: "a", Name: id, Active: true})
	}

	// One listing serves both the total and the iteration.
	all, err := f.stores.Services.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)

	iterator := NewServiceIterator(all, 2)
	var batches [][]*core.Service
	err = iterator.ForEach(ctx, func(batch []*core.Service) error {
		batches = append(batches, batch)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)
}
