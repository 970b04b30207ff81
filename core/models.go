package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// TextHash is a content hash of the exact text last submitted for embedding.
// It lets the reconciler detect stale embeddings without re-reading vectors.
type TextHash uint64

// HashText computes a deterministic TextHash using BLAKE2b.
// Identical text always produces an identical hash.
func HashText(text string) TextHash {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return TextHash(binary.LittleEndian.Uint64(sum))
}

// Link is a typed reference attached to a service: a contact entry, a URL,
// or a document. Order controls display position.
type Link struct {
	Type  string
	Label string
	Value string
	Order int
}

// Service is a researcher-facing offering in the catalog.
// The relational store is the source of truth for it; the vector index
// holds a derived projection kept in sync by the catalog write path.
type Service struct {
	Id               string // stable human-assigned short code, e.g. "SBP-01"
	OrganizationCode string
	Name             string
	Hidden           string // internal descriptor: searchable but never shown
	Description      string
	Complement       string
	Research         []string
	Phase            []string
	Category         []string
	Output           []string
	Contacts         []Link
	Links            []Link
	Documents        []Link
	Aliases          []string // derived from name/hidden/description/organization, never client-supplied
	Active           bool
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// EmbeddingFields returns the fields whose change requires re-embedding.
func (s *Service) EmbeddingFields() (name, hidden, description string, aliases []string) {
	return s.Name, s.Hidden, s.Description, s.Aliases
}

// ServiceEmbedding is the derived embedding projection of a Service.
// It exists iff its service exists and is regenerated, never patched,
// whenever any embedding-relevant field changes.
type ServiceEmbedding struct {
	ServiceId string
	Vector    []float32
	Model     string
	TextHash  TextHash // hash of the exact text the vector was derived from
	UpdatedAt time.Time
}

// Organization provides services and scopes user write access.
type Organization struct {
	Code       string // stable primary key
	Label      string
	FullName   string
	IdPrefix   string // used to mint new service ids
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// User is an admin-panel account. Org scoping gates which services a
// non-superadmin user may touch.
type User struct {
	Id                  string
	Email               string
	PasswordHash        string
	OrganizationCode    string
	SuperAdmin          bool
	ForcePasswordChange bool
	InsertedAt          time.Time
	UpdatedAt           time.Time
}

// Hit is a single ranked search result.
type Hit struct {
	Id    string
	Score float32
}

// AuditEntry is one append-only audit log record.
type AuditEntry struct {
	At            time.Time
	ClientIP      string
	Actor         string
	Action        string
	Ids           []string
	ChangedFields []string
	Detail        string
}
