package memory

import (
	"context"

	"github.com/poiesic/servicefinder/storage"
)

// Rebuild loads every embedding row into the index. Called at startup
// to reconstitute the in-process projection from the relational store.
func Rebuild(ctx context.Context, index *Index, embeddings storage.EmbeddingStore) (int, error) {
	rows, err := embeddings.ListEmbeddings(ctx)
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if err := index.Upsert(ctx, row.ServiceId, row.Vector, nil); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}
