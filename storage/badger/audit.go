package badger

import (
	"context"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
)

// AuditStore implements storage.AuditStore for BadgerDB. Entries are
// keyed by timestamp plus a monotonic sequence so two entries written
// in the same microsecond still get distinct, ordered keys.
type AuditStore struct {
	backend *Backend
	seq     *badger.Sequence
	mu      sync.Mutex
	closed  bool
}

var _ storage.AuditStore = (*AuditStore)(nil)

// NewAuditStore creates a new AuditStore.
func NewAuditStore(backend *Backend) (storage.AuditStore, error) {
	seq, err := backend.GetSequence(auditSeq)
	if err != nil {
		return nil, err
	}
	return &AuditStore{backend: backend, seq: seq}, nil
}

// Close releases the sequence lease.
func (s *AuditStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.seq.Release()
}

// AppendAudit appends one audit entry.
func (s *AuditStore) AppendAudit(ctx context.Context, entry *core.AuditEntry) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return storage.ErrStorageClosed
	}
	next, err := s.seq.Next()
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAuditKey(entry.At, next)
		if err := tx.Set(key, storage.MarshalAuditEntry(entry)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListAudit returns the most recent entries, newest first, up to limit.
// A limit of zero or less returns everything.
func (s *AuditStore) ListAudit(ctx context.Context, limit int) ([]*core.AuditEntry, error) {
	var results []*core.AuditEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(auditPrefix + ":")
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse iteration starts just past the prefix range.
		seek := append([]byte(auditPrefix+":"), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
		seek = append(seek, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)

		for iter.Seek(seek); iter.Valid(); iter.Next() {
			if limit > 0 && len(results) >= limit {
				break
			}
			err := iter.Item().Value(func(val []byte) error {
				entry, err := storage.UnmarshalAuditEntry(val)
				if err != nil {
					return err
				}
				results = append(results, entry)
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
