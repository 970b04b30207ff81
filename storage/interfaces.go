package storage

import (
	"context"

	"github.com/poiesic/servicefinder/core"
)

// ServiceStore provides operations for managing catalog services.
// Lookups for missing records return core.ErrNotFound.
type ServiceStore interface {
	// PutService writes a service record by its Id, inserting or replacing.
	// Sets InsertedAt on first write and refreshes UpdatedAt on every write.
	PutService(ctx context.Context, service *core.Service) error

	// GetService retrieves a single service by id.
	GetService(ctx context.Context, id string) (*core.Service, error)

	// GetServices retrieves multiple services by id.
	// Missing ids are skipped silently; the result preserves input order.
	GetServices(ctx context.Context, ids ...string) ([]*core.Service, error)

	// ListServices returns all services ordered by id.
	ListServices(ctx context.Context) ([]*core.Service, error)

	// ListServicesByOrganization returns the services of one organization,
	// ordered by id.
	ListServicesByOrganization(ctx context.Context, code string) ([]*core.Service, error)

	// DeleteService removes a service and cascade-deletes its embedding row.
	DeleteService(ctx context.Context, id string) error

	// Close releases store resources.
	Close() error
}

// EmbeddingStore provides operations for the derived embedding rows.
type EmbeddingStore interface {
	// PutEmbedding writes an embedding row keyed by service id,
	// fully replacing any prior row.
	PutEmbedding(ctx context.Context, embedding *core.ServiceEmbedding) error

	// GetEmbedding retrieves the embedding row for a service.
	GetEmbedding(ctx context.Context, serviceId string) (*core.ServiceEmbedding, error)

	// ListEmbeddings returns all embedding rows ordered by service id.
	// Used to rebuild the in-process vector index at startup.
	ListEmbeddings(ctx context.Context) ([]*core.ServiceEmbedding, error)

	// DeleteEmbedding removes the embedding row for a service.
	// Deleting a missing row is not an error.
	DeleteEmbedding(ctx context.Context, serviceId string) error

	// Close releases store resources.
	Close() error
}

// OrganizationStore provides operations for managing organizations.
type OrganizationStore interface {
	// PutOrganization writes an organization record by its Code.
	PutOrganization(ctx context.Context, org *core.Organization) error

	// GetOrganization retrieves a single organization by code.
	GetOrganization(ctx context.Context, code string) (*core.Organization, error)

	// ListOrganizations returns all organizations ordered by code.
	ListOrganizations(ctx context.Context) ([]*core.Organization, error)

	// DeleteOrganization removes an organization. Returns ErrReferenced
	// while any service or user still carries its code.
	DeleteOrganization(ctx context.Context, code string) error

	// Close releases store resources.
	Close() error
}

// UserStore provides operations for managing admin users.
type UserStore interface {
	// PutUser writes a user record by its Id, keeping the email index
	// in sync. Returns ErrDuplicateKey if the email belongs to another user.
	PutUser(ctx context.Context, user *core.User) error

	// GetUser retrieves a single user by id.
	GetUser(ctx context.Context, id string) (*core.User, error)

	// GetUserByEmail retrieves a user through the email index.
	// Lookup is case-insensitive.
	GetUserByEmail(ctx context.Context, email string) (*core.User, error)

	// ListUsers returns all users ordered by id.
	ListUsers(ctx context.Context) ([]*core.User, error)

	// DeleteUser removes a user and its email index entry.
	DeleteUser(ctx context.Context, id string) error

	// Close releases store resources.
	Close() error
}

// AuditStore provides the append-only audit log sink.
type AuditStore interface {
	// AppendAudit appends one audit entry.
	AppendAudit(ctx context.Context, entry *core.AuditEntry) error

	// ListAudit returns the most recent entries, newest first, up to limit.
	ListAudit(ctx context.Context, limit int) ([]*core.AuditEntry, error)

	// Close releases store resources.
	Close() error
}
