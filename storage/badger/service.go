package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
)

// ServiceStore implements storage.ServiceStore for BadgerDB.
type ServiceStore struct {
	backend *Backend
}

var _ storage.ServiceStore = (*ServiceStore)(nil)

// NewServiceStore creates a new ServiceStore.
func NewServiceStore(backend *Backend) (storage.ServiceStore, error) {
	return &ServiceStore{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (s *ServiceStore) Close() error {
	return nil
}

// PutService writes a service record, inserting or replacing by id.
func (s *ServiceStore) PutService(ctx context.Context, service *core.Service) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeServiceKey(service.Id)

		old, err := readService(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			service.InsertedAt = old.InsertedAt
		} else if service.InsertedAt.IsZero() {
			service.InsertedAt = now
		}
		service.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalService(service)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetService retrieves a single service by id.
func (s *ServiceStore) GetService(ctx context.Context, id string) (*core.Service, error) {
	var result *core.Service
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readService(tx, makeServiceKey(id))
		if err != nil {
			return err
		}
		if result == nil {
			return core.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetServices retrieves multiple services by id, skipping missing ones.
func (s *ServiceStore) GetServices(ctx context.Context, ids ...string) ([]*core.Service, error) {
	results := make([]*core.Service, 0, len(ids))
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			service, err := readService(tx, makeServiceKey(id))
			if err != nil {
				return err
			}
			if service != nil {
				results = append(results, service)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListServices returns all services ordered by id.
func (s *ServiceStore) ListServices(ctx context.Context) ([]*core.Service, error) {
	return s.scan(func(*core.Service) bool { return true })
}

// ListServicesByOrganization returns one organization's services ordered by id.
func (s *ServiceStore) ListServicesByOrganization(ctx context.Context, code string) ([]*core.Service, error) {
	return s.scan(func(service *core.Service) bool {
		return strings.EqualFold(service.OrganizationCode, code)
	})
}

// DeleteService removes a service and cascade-deletes its embedding row.
func (s *ServiceStore) DeleteService(ctx context.Context, id string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeServiceKey(id)

		service, err := readService(tx, key)
		if err != nil {
			return err
		}
		if service == nil {
			return core.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		// Cascade: the embedding row exists iff its service exists.
		if err := tx.Delete(makeEmbeddingKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// scan iterates all service records, keeping those accepted by keep.
// Keys sort lexicographically, so results come back ordered by id.
func (s *ServiceStore) scan(keep func(*core.Service) bool) ([]*core.Service, error) {
	var results []*core.Service
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(servicePrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			var service *core.Service
			err := item.Value(func(val []byte) error {
				var err error
				service, err = storage.UnmarshalService(val)
				return err
			})
			if err != nil {
				return err
			}
			if service != nil && keep(service) {
				results = append(results, service)
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// readService reads a service by key, returning nil when absent.
func readService(tx *badger.Txn, key []byte) (*core.Service, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var service *core.Service
	err = item.Value(func(val []byte) error {
		var err error
		service, err = storage.UnmarshalService(val)
		return err
	})
	return service, err
}
