package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/audit"
	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/embedtext"
	"github.com/poiesic/servicefinder/storage"
	"github.com/poiesic/servicefinder/vector"
)

// Writer applies catalog mutations. The relational row is written
// first; the embedding follows only when a field feeding the embedding
// text changed. A failed embedding update leaves the row in place for
// the reconciler to heal.
type Writer struct {
	services   storage.ServiceStore
	embeddings storage.EmbeddingStore
	orgs       storage.OrganizationStore
	index      vector.Index
	embedder   ai.Embedder
	dictionary *acronym.Dictionary
	overlay    *Overlay
	auditLog   audit.Log
	model      string
	logger     *slog.Logger
}

// Option configures a Writer.
type Option func(*Writer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) error {
		if logger == nil {
			logger = slog.Default()
		}
		w.logger = logger
		return nil
	}
}

// WithAuditLog sets the audit sink. Default discards entries.
func WithAuditLog(log audit.Log) Option {
	return func(w *Writer) error {
		if log == nil {
			log = audit.NopLog()
		}
		w.auditLog = log
		return nil
	}
}

// NewWriter creates a catalog writer. The model name tags embedding
// rows so the reconciler can detect a model switch.
func NewWriter(
	services storage.ServiceStore,
	embeddings storage.EmbeddingStore,
	orgs storage.OrganizationStore,
	index vector.Index,
	embedder ai.Embedder,
	dictionary *acronym.Dictionary,
	overlay *Overlay,
	model string,
	opts ...Option,
) (*Writer, error) {
	if services == nil || embeddings == nil || orgs == nil {
		return nil, fmt.Errorf("%w: stores are required", core.ErrValidation)
	}
	if index == nil {
		return nil, fmt.Errorf("%w: vector index is required", core.ErrValidation)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", core.ErrValidation)
	}
	if dictionary == nil {
		return nil, fmt.Errorf("%w: acronym dictionary is required", core.ErrValidation)
	}
	if overlay == nil {
		overlay = NewOverlay(0)
	}

	w := &Writer{
		services:   services,
		embeddings: embeddings,
		orgs:       orgs,
		index:      index,
		embedder:   embedder,
		dictionary: dictionary,
		overlay:    overlay,
		auditLog:   audit.NopLog(),
		model:      model,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Overlay exposes the writer's overlay for read paths.
func (w *Writer) Overlay() *Overlay {
	return w.overlay
}

// Create inserts a new service. Returns the stored record and whether
// the embedding was (re)generated.
func (w *Writer) Create(ctx context.Context, actor auth.Actor, service *core.Service) (*core.Service, bool, error) {
	if err := core.ValidateService(service); err != nil {
		return nil, false, err
	}
	if !actor.CanWriteOrg(service.OrganizationCode) {
		return nil, false, fmt.Errorf("%w: organization %s", core.ErrForbidden, service.OrganizationCode)
	}

	org, err := w.orgs.GetOrganization(ctx, service.OrganizationCode)
	if err != nil {
		return nil, false, fmt.Errorf("%w: unknown organization %s", core.ErrValidation, service.OrganizationCode)
	}

	if _, err := w.services.GetService(ctx, service.Id); err == nil {
		return nil, false, fmt.Errorf("service %s already exists: %w", service.Id, storage.ErrDuplicateKey)
	}

	return w.write(ctx, actor, service, nil, org, "create_service")
}

// Update rewrites an existing service. Returns the stored record and
// whether the embedding was (re)generated.
func (w *Writer) Update(ctx context.Context, actor auth.Actor, service *core.Service) (*core.Service, bool, error) {
	if service == nil || strings.TrimSpace(service.Id) == "" {
		return nil, false, fmt.Errorf("%w: service id is required", core.ErrValidation)
	}

	prev, err := w.services.GetService(ctx, service.Id)
	if err != nil {
		return nil, false, err
	}

	// An update may omit the organization; it then stays put.
	if strings.TrimSpace(service.OrganizationCode) == "" {
		service.OrganizationCode = prev.OrganizationCode
	}
	if err := core.ValidateService(service); err != nil {
		return nil, false, err
	}
	if !actor.CanWriteOrg(prev.OrganizationCode) || !actor.CanWriteOrg(service.OrganizationCode) {
		return nil, false, fmt.Errorf("%w: organization %s", core.ErrForbidden, prev.OrganizationCode)
	}

	org, err := w.orgs.GetOrganization(ctx, service.OrganizationCode)
	if err != nil {
		return nil, false, fmt.Errorf("%w: unknown organization %s", core.ErrValidation, service.OrganizationCode)
	}

	return w.write(ctx, actor, service, prev, org, "update_service")
}

// Delete removes a service and its derived data. The vector delete is
// best-effort: the search path drops ids that no longer hydrate.
func (w *Writer) Delete(ctx context.Context, actor auth.Actor, id string) error {
	prev, err := w.services.GetService(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanWriteOrg(prev.OrganizationCode) {
		return fmt.Errorf("%w: organization %s", core.ErrForbidden, prev.OrganizationCode)
	}

	if err := w.services.DeleteService(ctx, id); err != nil {
		return err
	}
	w.overlay.Remove(id)

	if err := w.index.Delete(ctx, id); err != nil {
		w.logger.Warn("vector delete failed, search hydration will drop the id",
			"serviceId", id, "err", err)
	}

	w.auditLog.Record(ctx, core.AuditEntry{
		Actor:  actor.Email,
		Action: "delete_service",
		Ids:    []string{id},
	})
	return nil
}

// write is the shared tail of Create and Update: normalize, persist,
// re-embed when needed, audit.
func (w *Writer) write(ctx context.Context, actor auth.Actor, service *core.Service, prev *core.Service, org *core.Organization, action string) (*core.Service, bool, error) {
	w.normalize(service, org)

	if prev != nil {
		service.InsertedAt = prev.InsertedAt
	}
	if err := w.services.PutService(ctx, service); err != nil {
		return nil, false, fmt.Errorf("%w: service write: %w", core.ErrDependency, err)
	}
	w.overlay.Put(service)

	changed := changedEmbeddingFields(prev, service)
	embeddingUpdated := false
	var embedErr error
	if len(changed) > 0 {
		if embedErr = w.refreshEmbedding(ctx, service); embedErr == nil {
			embeddingUpdated = true
		} else {
			w.logger.Error("embedding update failed, record kept for reconciliation",
				"serviceId", service.Id, "err", embedErr)
		}
	}

	w.auditLog.Record(ctx, core.AuditEntry{
		Actor:         actor.Email,
		Action:        action,
		Ids:           []string{service.Id},
		ChangedFields: changed,
		Detail:        fmt.Sprintf("embeddingUpdated=%t", embeddingUpdated),
	})

	if embedErr != nil {
		return service, false, embedErr
	}
	return service, embeddingUpdated, nil
}

// normalize decodes HTML entities and trims the free-text fields,
// cleans list fields, and recomputes aliases. Entity decoding must
// happen before alias extraction: an expansion split by an encoded
// space would otherwise never match. Any client-supplied alias list
// is discarded.
func (w *Writer) normalize(service *core.Service, org *core.Organization) {
	service.Id = strings.TrimSpace(service.Id)
	service.Name = embedtext.NormalizeField(service.Name)
	service.Hidden = embedtext.NormalizeField(service.Hidden)
	service.Description = embedtext.NormalizeField(service.Description)
	service.Complement = embedtext.NormalizeField(service.Complement)
	service.Research = normalizeList(service.Research)
	service.Phase = normalizeList(service.Phase)
	service.Category = normalizeList(service.Category)
	service.Output = normalizeList(service.Output)

	orgText := strings.TrimSpace(org.Label + "\n" + org.FullName)
	service.Aliases = w.dictionary.BuildAliases(service.Name, orgText, service.Hidden, service.Description)
}

// normalizeList entity-decodes every entry, then drops blanks.
func normalizeList(values []string) []string {
	for i, v := range values {
		values[i] = embedtext.NormalizeField(v)
	}
	return core.NormalizeStringList(values)
}

// refreshEmbedding regenerates the embedding row and index entry from
// the current record.
func (w *Writer) refreshEmbedding(ctx context.Context, service *core.Service) error {
	text := embedtext.Build(service.EmbeddingFields())
	expanded := w.dictionary.ExpandInline(text)

	vectors, err := w.embedder.EmbedPassages(ctx, []string{expanded})
	if err != nil {
		return err
	}
	if len(vectors) != 1 {
		return fmt.Errorf("%w: expected 1 vector, got %d", core.ErrDependency, len(vectors))
	}
	vec := vector.Normalize(vectors[0])

	row := &core.ServiceEmbedding{
		ServiceId: service.Id,
		Vector:    vec,
		Model:     w.model,
		TextHash:  core.HashText(expanded),
	}
	if err := w.embeddings.PutEmbedding(ctx, row); err != nil {
		return fmt.Errorf("%w: embedding write: %w", core.ErrDependency, err)
	}
	metadata := map[string]string{"org": service.OrganizationCode}
	if err := w.index.Upsert(ctx, service.Id, vec, metadata); err != nil {
		return fmt.Errorf("%w: vector index upsert: %w", core.ErrDependency, err)
	}
	return nil
}

// changedEmbeddingFields reports which embedding-relevant fields differ
// between the previous and the incoming record. A nil previous record
// marks everything changed. Alias comparison is order-sensitive; the
// extractor emits aliases in a deterministic order, so a reorder really
// is a change.
func changedEmbeddingFields(prev, next *core.Service) []string {
	if prev == nil {
		return []string{"name", "hidden", "description", "aliases"}
	}
	var changed []string
	if prev.Name != next.Name {
		changed = append(changed, "name")
	}
	if prev.Hidden != next.Hidden {
		changed = append(changed, "hidden")
	}
	if prev.Description != next.Description {
		changed = append(changed, "description")
	}
	if !slices.Equal(prev.Aliases, next.Aliases) {
		changed = append(changed, "aliases")
	}
	return changed
}
