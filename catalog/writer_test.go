package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai/mock"
	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
	"github.com/poiesic/servicefinder/storage/badger"
	"github.com/poiesic/servicefinder/vector/memory"
)

type writerFixture struct {
	writer   *Writer
	stores   *badger.Stores
	index    *memory.Index
	embedder *mock.MockEmbedder
}

func newWriterFixture(t *testing.T) *writerFixture {
	t.Helper()

	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	require.NoError(t, stores.Organizations.PutOrganization(context.Background(), &core.Organization{
		Code:     "sbp",
		Label:    "SBP",
		FullName: "Swiss Biobanking Platform",
	}))

	dictionary, err := acronym.FromMap(map[string][]string{
		"CT":  {"Clinical trials"},
		"SBP": {"Swiss Biobanking Platform"},
	})
	require.NoError(t, err)

	index := memory.NewIndex()
	embedder := mock.NewMockEmbedder()

	writer, err := NewWriter(
		stores.Services, stores.Embeddings, stores.Organizations,
		index, embedder, dictionary, NewOverlay(0),
		"intfloat/multilingual-e5-small",
	)
	require.NoError(t, err)

	return &writerFixture{writer: writer, stores: stores, index: index, embedder: embedder}
}

func TestCreateEmbedsAndIndexes(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{UserID: "u-1", Email: "admin@sbp.ch", OrgCode: "sbp"}

	created, embeddingUpdated, err := f.writer.Create(ctx, actor, &core.Service{
		Id:               "sbp-01",
		OrganizationCode: "sbp",
		Name:             "Biobank sample storage",
		Description:      "Long-term storage for CT specimens.",
		Active:           true,
	})
	require.NoError(t, err)
	assert.True(t, embeddingUpdated)
	assert.Equal(t, 1, f.embedder.PassageCalls())

	// The CT acronym in the description produced aliases.
	assert.Contains(t, created.Aliases, "CT")
	assert.Contains(t, created.Aliases, "Clinical trials")

	row, err := f.stores.Embeddings.GetEmbedding(ctx, "sbp-01")
	require.NoError(t, err)
	assert.Equal(t, "intfloat/multilingual-e5-small", row.Model)
	assert.NotZero(t, row.TextHash)
	assert.Equal(t, 1, f.index.Len())

	// Overlay carries the fresh record.
	overlaid, ok := f.writer.Overlay().Get("sbp-01")
	require.True(t, ok)
	assert.Equal(t, "Biobank sample storage", overlaid.Name)
}

func TestCreateRejectsDuplicate(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	service := &core.Service{Id: "sbp-01", OrganizationCode: "sbp", Name: "One", Active: true}
	_, _, err := f.writer.Create(ctx, actor, service)
	require.NoError(t, err)

	_, _, err = f.writer.Create(ctx, actor, &core.Service{Id: "sbp-01", OrganizationCode: "sbp", Name: "Two", Active: true})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)
}

func TestCreateRejectsUnknownOrganization(t *testing.T) {
	f := newWriterFixture(t)
	actor := auth.Actor{Email: "root@example.org", SuperAdmin: true}

	_, _, err := f.writer.Create(context.Background(), actor, &core.Service{
		Id: "x-1", OrganizationCode: "nope", Name: "X", Active: true,
	})
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestCreateForbiddenForOtherOrg(t *testing.T) {
	f := newWriterFixture(t)
	actor := auth.Actor{Email: "admin@shcs.ch", OrgCode: "shcs"}

	_, _, err := f.writer.Create(context.Background(), actor, &core.Service{
		Id: "sbp-01", OrganizationCode: "sbp", Name: "X", Active: true,
	})
	assert.ErrorIs(t, err, core.ErrForbidden)
}

func TestUpdateSkipsEmbeddingWhenUnchanged(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	service := &core.Service{
		Id:               "sbp-01",
		OrganizationCode: "sbp",
		Name:             "Sample storage",
		Description:      "Storage.",
		Active:           true,
	}
	_, _, err := f.writer.Create(ctx, actor, service)
	require.NoError(t, err)
	require.Equal(t, 1, f.embedder.PassageCalls())

	// Complement is not an embedding field.
	update := &core.Service{
		Id:               "sbp-01",
		OrganizationCode: "sbp",
		Name:             "Sample storage",
		Description:      "Storage.",
		Complement:       "Now with a complement.",
		Active:           true,
	}
	_, embeddingUpdated, err := f.writer.Update(ctx, actor, update)
	require.NoError(t, err)
	assert.False(t, embeddingUpdated)
	assert.Equal(t, 1, f.embedder.PassageCalls())

	// A description change re-embeds.
	update.Description = "Cold storage."
	_, embeddingUpdated, err = f.writer.Update(ctx, actor, update)
	require.NoError(t, err)
	assert.True(t, embeddingUpdated)
	assert.Equal(t, 2, f.embedder.PassageCalls())
}

func TestUpdateMissingService(t *testing.T) {
	f := newWriterFixture(t)
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	_, _, err := f.writer.Update(context.Background(), actor, &core.Service{
		Id: "missing", OrganizationCode: "sbp", Name: "X", Active: true,
	})
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestUpdateIgnoresClientAliases(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	created, _, err := f.writer.Create(ctx, actor, &core.Service{
		Id:               "sbp-01",
		OrganizationCode: "sbp",
		Name:             "Plain name",
		Description:      "Nothing acronymic here.",
		Aliases:          []string{"bogus", "client", "aliases"},
		Active:           true,
	})
	require.NoError(t, err)
	assert.NotContains(t, created.Aliases, "bogus")
	// The SBP organization text still yields its aliases.
	assert.Contains(t, created.Aliases, "SBP")
}

func TestCreateDecodesHTMLEntities(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	created, _, err := f.writer.Create(ctx, actor, &core.Service{
		Id:               "sbp-01",
		OrganizationCode: "sbp",
		Name:             "Trial&nbsp;coordination",
		Description:      "Supports Clinical&#32;trials across sites.",
		Research:         []string{"Data&#32;management"},
		Active:           true,
	})
	require.NoError(t, err)

	// Entities are decoded before storage.
	assert.Equal(t, "Trial coordination", created.Name)
	assert.Equal(t, "Supports Clinical trials across sites.", created.Description)
	assert.Equal(t, []string{"Data management"}, created.Research)

	// Alias extraction sees the decoded text, so the expansion split by
	// an encoded space still matches.
	assert.Contains(t, created.Aliases, "CT")
	assert.Contains(t, created.Aliases, "Clinical trials")

	stored, err := f.stores.Services.GetService(ctx, "sbp-01")
	require.NoError(t, err)
	assert.Equal(t, "Supports Clinical trials across sites.", stored.Description)
}

func TestEmbedFailureKeepsRecord(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	boom := errors.New("embedding service down")
	f.embedder.EmbedPassagesFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, boom
	}

	_, embeddingUpdated, err := f.writer.Create(ctx, actor, &core.Service{
		Id: "sbp-01", OrganizationCode: "sbp", Name: "X", Active: true,
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, embeddingUpdated)

	// Relational write survived; the reconciler can heal the embedding.
	stored, err := f.stores.Services.GetService(ctx, "sbp-01")
	require.NoError(t, err)
	assert.Equal(t, "X", stored.Name)
	_, err = f.stores.Embeddings.GetEmbedding(ctx, "sbp-01")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteCascadesAndToleratesIndexFailure(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	actor := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}

	_, _, err := f.writer.Create(ctx, actor, &core.Service{
		Id: "sbp-01", OrganizationCode: "sbp", Name: "X", Active: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.writer.Delete(ctx, actor, "sbp-01"))

	_, err = f.stores.Services.GetService(ctx, "sbp-01")
	assert.ErrorIs(t, err, core.ErrNotFound)
	_, err = f.stores.Embeddings.GetEmbedding(ctx, "sbp-01")
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Equal(t, 0, f.index.Len())

	_, ok := f.writer.Overlay().Get("sbp-01")
	assert.False(t, ok)

	err = f.writer.Delete(ctx, actor, "sbp-01")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteForbiddenForOtherOrg(t *testing.T) {
	f := newWriterFixture(t)
	ctx := context.Background()
	owner := auth.Actor{Email: "admin@sbp.ch", OrgCode: "sbp"}
	stranger := auth.Actor{Email: "admin@shcs.ch", OrgCode: "shcs"}

	_, _, err := f.writer.Create(ctx, owner, &core.Service{
		Id: "sbp-01", OrganizationCode: "sbp", Name: "X", Active: true,
	})
	require.NoError(t, err)

	err = f.writer.Delete(ctx, stranger, "sbp-01")
	assert.ErrorIs(t, err, core.ErrForbidden)

	// Record untouched.
	_, err = f.stores.Services.GetService(ctx, "sbp-01")
	assert.NoError(t, err)
}
