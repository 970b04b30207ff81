package search

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/servicefinder/acronym"
	"github.com/poiesic/servicefinder/ai"
	"github.com/poiesic/servicefinder/audit"
	"github.com/poiesic/servicefinder/auth"
	"github.com/poiesic/servicefinder/catalog"
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
	"github.com/poiesic/servicefinder/vector"
)

const (
	// aliasBoost is added to a candidate's similarity when its alias
	// list contains one of the query's matched acronyms. A precision
	// nudge: pure similarity can under-rank a document carrying the
	// literal acronym when the query was phrased with the expansion.
	aliasBoost = 0.05

	// DefaultTopK is the candidate count when the caller passes none.
	DefaultTopK = 10
)

// Result is a ranked search response with hydrated catalog records.
// Services is one-to-one with Hits.
type Result struct {
	Hits     []core.Hit
	Services []*core.Service
}

// Searcher ranks catalog services against free-text queries.
type Searcher struct {
	services   storage.ServiceStore
	index      vector.Index
	embedder   ai.Embedder
	dictionary *acronym.Dictionary
	overlay    *catalog.Overlay
	auditLog   audit.Log
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithOverlay merges recent catalog writes into hydration.
func WithOverlay(overlay *catalog.Overlay) Option {
	return func(s *Searcher) error {
		s.overlay = overlay
		return nil
	}
}

// WithAuditLog sets the request log sink. Default discards entries.
func WithAuditLog(log audit.Log) Option {
	return func(s *Searcher) error {
		if log == nil {
			log = audit.NopLog()
		}
		s.auditLog = log
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	services storage.ServiceStore,
	index vector.Index,
	embedder ai.Embedder,
	dictionary *acronym.Dictionary,
	opts ...Option,
) (*Searcher, error) {
	if services == nil {
		return nil, ErrServiceStoreRequired
	}
	if index == nil {
		return nil, ErrVectorIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if dictionary == nil {
		return nil, ErrDictionaryRequired
	}

	s := &Searcher{
		services:   services,
		index:      index,
		embedder:   embedder,
		dictionary: dictionary,
		auditLog:   audit.NopLog(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Search ranks services against the query.
// Returns up to topK results, best first.
func (s *Searcher) Search(ctx context.Context, query string, topK int) (*Result, error) {
	return s.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor ranks services against the query with monitoring.
// The monitor receives callbacks at each stage of the pipeline.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, topK int, monitor Monitor) (*Result, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query is required", core.ErrValidation)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	monitor.Start(query)

	// 1. Expand acronyms so an acronym-only query still retrieves
	// documents phrased with the expansion.
	expanded, matched := s.dictionary.ExpandQuery(query)
	monitor.AfterExpansion(expanded, matched)

	// 2. Embed the expanded query.
	vectors, err := s.embedder.EmbedQueries(ctx, []string{expanded})
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("%w: expected 1 query vector, got %d", core.ErrDependency, len(vectors))
	}

	// 3. Nearest neighbors.
	matches, err := s.index.Query(ctx, vectors[0], topK)
	if err != nil {
		s.logger.Error("error querying vector index", "err", err)
		return nil, fmt.Errorf("%w: vector query: %w", core.ErrDependency, err)
	}
	monitor.AfterVectorQuery(matches)

	// 4. Hydrate against the catalog, overlay included. Ids that no
	// longer resolve or resolve inactive are dropped here: the index
	// may lag behind deletes.
	ids := make([]string, len(matches))
	for i, match := range matches {
		ids[i] = match.ID
	}
	resolved, err := s.hydrate(ctx, ids)
	if err != nil {
		s.logger.Error("error resolving search candidates", "err", err)
		return nil, err
	}

	// 5. Boost and collect.
	result := &Result{}
	for _, match := range matches {
		service, ok := resolved[match.ID]
		if !ok || !service.Active {
			monitor.DroppedHit(match.ID)
			continue
		}
		score := match.Score
		if aliasOverlap(service.Aliases, matched) {
			score += aliasBoost
			monitor.BoostedHit(match.ID, match.Score, score)
		}
		result.Hits = append(result.Hits, core.Hit{Id: match.ID, Score: score})
		result.Services = append(result.Services, service)
	}
	monitor.AfterHydration(result.Services)

	// 6. Re-sort by boosted score, stable so exact ties keep index order.
	sort.SliceStable(result.Hits, func(i, j int) bool {
		return result.Hits[i].Score > result.Hits[j].Score
	})
	s.realign(result)

	// 7. Request log; failure never fails the search.
	s.audit(ctx, query, result.Hits)

	monitor.Finish(result.Hits)
	return result, nil
}

// hydrate resolves candidate ids against the store, merged with the
// overlay's recent writes. Missing ids are simply absent from the map.
func (s *Searcher) hydrate(ctx context.Context, ids []string) (map[string]*core.Service, error) {
	services, err := s.services.GetServices(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("%w: candidate hydration: %w", core.ErrDependency, err)
	}

	resolved := make(map[string]*core.Service, len(services))
	for _, service := range services {
		resolved[service.Id] = service
		// The store has caught up with this write; the overlay entry is
		// no longer needed.
		if s.overlay != nil {
			s.overlay.Confirm(service.Id, service.UpdatedAt)
		}
	}
	if s.overlay != nil {
		for _, id := range ids {
			if service, ok := s.overlay.Get(id); ok {
				resolved[id] = service
			}
		}
	}
	return resolved, nil
}

// realign reorders Services to match the sorted Hits.
func (s *Searcher) realign(result *Result) {
	byId := make(map[string]*core.Service, len(result.Services))
	for _, service := range result.Services {
		byId[service.Id] = service
	}
	for i, hit := range result.Hits {
		result.Services[i] = byId[hit.Id]
	}
}

// audit records the request in the append-only log.
func (s *Searcher) audit(ctx context.Context, query string, hits []core.Hit) {
	entry := core.AuditEntry{
		Action: "search",
		Detail: formatHits(query, hits),
	}
	if actor, ok := auth.ActorFromContext(ctx); ok {
		entry.Actor = actor.Email
	}
	for _, hit := range hits {
		entry.Ids = append(entry.Ids, hit.Id)
	}
	s.auditLog.Record(ctx, entry)
}

func formatHits(query string, hits []core.Hit) string {
	var b strings.Builder
	b.WriteString("query=")
	b.WriteString(query)
	for _, hit := range hits {
		fmt.Fprintf(&b, " %s=%.4f", hit.Id, hit.Score)
	}
	return b.String()
}

// aliasOverlap reports whether any stored alias equals one of the
// query's matched acronyms, case-insensitively.
func aliasOverlap(aliases, matched []string) bool {
	for _, m := range matched {
		for _, alias := range aliases {
			if strings.EqualFold(alias, m) {
				return true
			}
		}
	}
	return false
}
