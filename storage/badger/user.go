package badger

import (
	"context"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
)

// UserStore implements storage.UserStore for BadgerDB. A secondary
// email index key maps lowercased email to user id.
type UserStore struct {
	backend *Backend
}

var _ storage.UserStore = (*UserStore)(nil)

// NewUserStore creates a new UserStore.
func NewUserStore(backend *Backend) (storage.UserStore, error) {
	return &UserStore{backend: backend}, nil
}

// Close is a no-op; the backend owns the database handle.
func (s *UserStore) Close() error {
	return nil
}

// PutUser writes a user record and keeps the email index in sync.
// Returns ErrDuplicateKey if the email already belongs to another user.
func (s *UserStore) PutUser(ctx context.Context, user *core.User) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeUserKey(user.Id)
		emailKey := makeUserEmailKey(strings.ToLower(user.Email))

		owner, err := readEmailIndex(tx, emailKey)
		if err != nil {
			return err
		}
		if owner != "" && owner != user.Id {
			return storage.ErrDuplicateKey
		}

		old, err := readUser(tx, key)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if old != nil {
			user.InsertedAt = old.InsertedAt
			// Email changed: drop the stale index entry.
			if !strings.EqualFold(old.Email, user.Email) {
				oldKey := makeUserEmailKey(strings.ToLower(old.Email))
				if err := tx.Delete(oldKey); err != nil {
					return err
				}
			}
		} else if user.InsertedAt.IsZero() {
			user.InsertedAt = now
		}
		user.UpdatedAt = now

		if err := tx.Set(key, storage.MarshalUser(user)); err != nil {
			return err
		}
		if err := tx.Set(emailKey, []byte(user.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetUser retrieves a single user by id.
func (s *UserStore) GetUser(ctx context.Context, id string) (*core.User, error) {
	var result *core.User
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readUser(tx, makeUserKey(id))
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

// GetUserByEmail retrieves a user through the email index.
func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	var result *core.User
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		id, err := readEmailIndex(tx, makeUserEmailKey(strings.ToLower(email)))
		if err != nil {
			return err
		}
		if id == "" {
			return core.ErrNotFound
		}
		result, err = readUser(tx, makeUserKey(id))
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

// ListUsers returns all users ordered by id.
func (s *UserStore) ListUsers(ctx context.Context) ([]*core.User, error) {
	var results []*core.User
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(userPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				user, err := storage.UnmarshalUser(val)
				if err != nil {
					return err
				}
				results = append(results, user)
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

// DeleteUser removes a user and its email index entry.
func (s *UserStore) DeleteUser(ctx context.Context, id string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeUserKey(id)

		user, err := readUser(tx, key)
		if err != nil {
			return err
		}
		if user == nil {
			return core.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		emailKey := makeUserEmailKey(strings.ToLower(user.Email))
		if err := tx.Delete(emailKey); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readUser reads a user by key, returning nil when absent.
func readUser(tx *badger.Txn, key []byte) (*core.User, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var user *core.User
	err = item.Value(func(val []byte) error {
		var err error
		user, err = storage.UnmarshalUser(val)
		return err
	})
	return user, err
}

// readEmailIndex returns the user id an email index key points at,
// or "" when the key is absent.
func readEmailIndex(tx *badger.Txn, key []byte) (string, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	var id string
	err = item.Value(func(val []byte) error {
		id = string(val)
		return nil
	})
	return id, err
}
