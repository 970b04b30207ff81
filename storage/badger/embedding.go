package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
)

// EmbeddingStore implements storage.EmbeddingStore for BadgerDB.
type EmbeddingStore struct {
	backend *Backend
}

var _ storage.EmbeddingStore = (*EmbeddingStore)(nil)

// NewEmbeddingStore creates a new EmbeddingStore.
func NewEmbeddingStore(backend *Backend) (storage.EmbeddingStore, error) {
	return &EmbeddingStore{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (s *EmbeddingStore) Close() error {
	return nil
}

// PutEmbedding writes an embedding row, fully replacing any prior row.
func (s *EmbeddingStore) PutEmbedding(ctx context.Context, embedding *core.ServiceEmbedding) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(embedding.ServiceId)
		if err := tx.Set(key, storage.MarshalServiceEmbedding(embedding)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetEmbedding retrieves the embedding row for a service.
func (s *EmbeddingStore) GetEmbedding(ctx context.Context, serviceId string) (*core.ServiceEmbedding, error) {
	var result *core.ServiceEmbedding
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEmbeddingKey(serviceId))
		if err == badger.ErrKeyNotFound {
			return core.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var err error
			result, err = storage.UnmarshalServiceEmbedding(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListEmbeddings returns all embedding rows ordered by service id.
func (s *EmbeddingStore) ListEmbeddings(ctx context.Context) ([]*core.ServiceEmbedding, error) {
	var results []*core.ServiceEmbedding
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(embeddingPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				embedding, err := storage.UnmarshalServiceEmbedding(val)
				if err != nil {
					return err
				}
				results = append(results, embedding)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteEmbedding removes the embedding row for a service.
// Deleting a missing row is not an error.
func (s *EmbeddingStore) DeleteEmbedding(ctx context.Context, serviceId string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeEmbeddingKey(serviceId)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
