package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
)

// OrganizationStore implements storage.OrganizationStore for BadgerDB.
type OrganizationStore struct {
	backend *Backend
}

var _ storage.OrganizationStore = (*OrganizationStore)(nil)

// NewOrganizationStore creates a new OrganizationStore.
func NewOrganizationStore(backend *Backend) (storage.OrganizationStore, error) {
	return &OrganizationStore{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (s *OrganizationStore) Close() error {
	return nil
}

// PutOrganization writes an organization record by its code.
func (s *OrganizationStore) PutOrganization(ctx context.Context, org *core.Organization) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeOrgKey(org.Code)

		old, err := readOrganization(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			org.InsertedAt = old.InsertedAt
		} else if org.InsertedAt.IsZero() {
			org.InsertedAt = now
		}
		org.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalOrganization(org)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetOrganization retrieves a single organization by code.
func (s *OrganizationStore) GetOrganization(ctx context.Context, code string) (*core.Organization, error) {
	var result *core.Organization
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readOrganization(tx, makeOrgKey(code))
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

// ListOrganizations returns all organizations ordered by code.
func (s *OrganizationStore) ListOrganizations(ctx context.Context) ([]*core.Organization, error) {
	var results []*core.Organization
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(orgPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				org, err := storage.UnmarshalOrganization(val)
				if err != nil {
					return err
				}
				results = append(results, org)
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

// DeleteOrganization removes an organization. Refused with ErrReferenced
// while any service or user still carries the code.
func (s *OrganizationStore) DeleteOrganization(ctx context.Context, code string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeOrgKey(code)

		org, err := readOrganization(tx, key)
		if err != nil {
			return err
		}
		if org == nil {
			return core.ErrNotFound
		}

		referenced, err := organizationReferenced(tx, code)
		if err != nil {
			return err
		}
		if referenced {
			return storage.ErrReferenced
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// organizationReferenced reports whether any service or user record still
// carries the organization code.
func organizationReferenced(tx *badger.Txn, code string) (bool, error) {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(servicePrefix + ":")
	iter := tx.NewIterator(opts)
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var hit bool
		err := iter.Item().Value(func(val []byte) error {
			service, err := storage.UnmarshalService(val)
			if err != nil {
				return err
			}
			hit = strings.EqualFold(service.OrganizationCode, code)
			return nil
		})
		if err != nil {
			iter.Close()
			return false, err
		}
		if hit {
			iter.Close()
			return true, nil
		}
	}
	iter.Close()

	opts = badger.DefaultIteratorOptions
	opts.Prefix = []byte(userPrefix + ":")
	iter = tx.NewIterator(opts)
	defer iter.Close()
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var hit bool
		err := iter.Item().Value(func(val []byte) error {
			user, err := storage.UnmarshalUser(val)
			if err != nil {
				return err
			}
			hit = strings.EqualFold(user.OrganizationCode, code)
			return nil
		})
		if err != nil {
			return false, err
		}
		if hit {
			return true, nil
		}
	}
	return false, nil
}

// readOrganization reads an organization by key, returning nil when absent.
func readOrganization(tx *badger.Txn, key []byte) (*core.Organization, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var org *core.Organization
	err = item.Value(func(val []byte) error {
		var err error
		org, err = storage.UnmarshalOrganization(val)
		return err
	})
	return org, err
}
