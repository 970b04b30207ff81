package badger

import "github.com/poiesic/servicefinder/storage"

// Stores bundles every store backed by one Backend.
type Stores struct {
	Backend       *Backend
	Services      storage.ServiceStore
	Embeddings    storage.EmbeddingStore
	Organizations storage.OrganizationStore
	Users         storage.UserStore
	Audit         storage.AuditStore
}

// OpenStores opens a Backend at filePath and constructs all stores on it.
func OpenStores(filePath string, inMemory bool) (*Stores, error) {
	backend, err := OpenBackend(filePath, inMemory)
	if err != nil {
		return nil, err
	}
	stores, err := newStores(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	return stores, nil
}

// NewMemoryStores constructs all stores on an in-memory Backend.
// Intended for tests.
func NewMemoryStores() (*Stores, error) {
	return OpenStores("", true)
}

func newStores(backend *Backend) (*Stores, error) {
	services, err := NewServiceStore(backend)
	if err != nil {
		return nil, err
	}
	embeddings, err := NewEmbeddingStore(backend)
	if err != nil {
		return nil, err
	}
	orgs, err := NewOrganizationStore(backend)
	if err != nil {
		return nil, err
	}
	users, err := NewUserStore(backend)
	if err != nil {
		return nil, err
	}
	audit, err := NewAuditStore(backend)
	if err != nil {
		return nil, err
	}
	return &Stores{
		Backend:       backend,
		Services:      services,
		Embeddings:    embeddings,
		Organizations: orgs,
		Users:         users,
		Audit:         audit,
	}, nil
}

// Close closes every store, then the backing database.
func (s *Stores) Close() error {
	s.Audit.Close()
	s.Users.Close()
	s.Organizations.Close()
	s.Embeddings.Close()
	s.Services.Close()
	return s.Backend.Close()
}
