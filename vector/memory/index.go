package memory

import (
	"context"
	"math"
	"slices"
	"sync"

	"github.com/poiesic/servicefinder/vector"
)

type entry struct {
	vec      []float32
	norm     float32
	metadata map[string]string
}

// Index is an in-process vector index. Entries are held in memory and
// rebuilt from the embedding rows at startup.
type Index struct {
	mu      sync.RWMutex
	entries map[string]entry
}

var _ vector.Index = (*Index)(nil)

// NewIndex creates an empty in-process index.
func NewIndex() *Index {
	return &Index{entries: make(map[string]entry)}
}

// Upsert writes a vector and its metadata, replacing any prior entry.
func (x *Index) Upsert(ctx context.Context, id string, vec []float32, metadata map[string]string) error {
	stored := make([]float32, len(vec))
	copy(stored, vec)

	var meta map[string]string
	if metadata != nil {
		meta = make(map[string]string, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
	}

	x.mu.Lock()
	x.entries[id] = entry{vec: stored, norm: norm(stored), metadata: meta}
	x.mu.Unlock()
	return nil
}

// Fetch returns the entries for the given ids, skipping missing ones.
func (x *Index) Fetch(ctx context.Context, ids ...string) ([]vector.Match, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	results := make([]vector.Match, 0, len(ids))
	for _, id := range ids {
		if e, ok := x.entries[id]; ok {
			results = append(results, vector.Match{ID: id, Score: 1, Metadata: e.metadata})
		}
	}
	return results, nil
}

// Query scores every entry by cosine similarity and returns the topK
// best matches, best first.
func (x *Index) Query(ctx context.Context, vec []float32, topK int) ([]vector.Match, error) {
	queryNorm := norm(vec)

	x.mu.RLock()
	results := make([]vector.Match, 0, len(x.entries))
	for id, e := range x.entries {
		results = append(results, vector.Match{
			ID:       id,
			Score:    cosine(vec, queryNorm, e.vec, e.norm),
			Metadata: e.metadata,
		})
	}
	x.mu.RUnlock()

	slices.SortFunc(results, func(a, b vector.Match) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if topK >= 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// Delete removes the entry for an id.
func (x *Index) Delete(ctx context.Context, id string) error {
	x.mu.Lock()
	delete(x.entries, id)
	x.mu.Unlock()
	return nil
}

// Close drops all entries.
func (x *Index) Close() error {
	x.mu.Lock()
	x.entries = make(map[string]entry)
	x.mu.Unlock()
	return nil
}

// Len returns the number of indexed entries.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

func cosine(a []float32, aNorm float32, b []float32, bNorm float32) float32 {
	if aNorm == 0 || bNorm == 0 {
		return 0
	}
	return dotProduct(a, b) / (aNorm * bNorm)
}

func dotProduct(a, b []float32) float32 {
	var sum float32
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	for i := 0; i < minLen; i++ {
		sum += a[i] * b[i]
	}
	return sum
}

func norm(v []float32) float32 {
	var sum float32
	for _, c := range v {
		sum += c * c
	}
	return float32(math.Sqrt(float64(sum)))
}
