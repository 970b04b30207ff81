package reindex

import (
	"context"

	"github.com/poiesic/servicefinder/core"
)

const (
	// DefaultBatchSize is the default number of services per batch
	DefaultBatchSize = 50
)

// ServiceIterator walks an already-fetched catalog listing in batches.
// The caller lists the services once and reuses the slice for both the
// progress total and the iteration.
type ServiceIterator struct {
	services  []*core.Service
	batchSize int
}

// NewServiceIterator creates a new service iterator over the listing.
// batchSize: number of services to hand to fn per call (must be > 0)
func NewServiceIterator(services []*core.Service, batchSize int) *ServiceIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &ServiceIterator{services: services, batchSize: batchSize}
}

// ForEach calls fn for each batch. Iteration stops on the first error
// from fn. Context cancellation is checked between batches.
func (it *ServiceIterator) ForEach(ctx context.Context, fn func([]*core.Service) error) error {
	for i := 0; i < len(it.services); i += it.batchSize {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := i + it.batchSize
		if end > len(it.services) {
			end = len(it.services)
		}

		if err := fn(it.services[i:end]); err != nil {
			return err
		}
	}

	return nil
}
