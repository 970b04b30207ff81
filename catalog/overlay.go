package catalog

import (
	"sync"
	"time"

	"github.com/poiesic/servicefinder/core"
)

// defaultOverlayCap bounds how many recent writes the overlay retains.
const defaultOverlayCap = 256

type overlayEntry struct {
	service *core.Service
	at      time.Time
}

// Overlay holds recently written service records so reads merge them in
// before the stores have necessarily surfaced the write. Last write per
// id wins. Entries leave the overlay when confirmed or evicted.
type Overlay struct {
	mu      sync.RWMutex
	entries map[string]overlayEntry
	cap     int
	now     func() time.Time
}

// NewOverlay creates an overlay holding at most capacity entries.
// A non-positive capacity falls back to the default.
func NewOverlay(capacity int) *Overlay {
	if capacity <= 0 {
		capacity = defaultOverlayCap
	}
	return &Overlay{
		entries: make(map[string]overlayEntry),
		cap:     capacity,
		now:     time.Now,
	}
}

// Put records a just-written service. The entry is stamped with the
// service's own UpdatedAt so a read that observes the same store
// timestamp can Confirm it away; records without one get the clock.
func (o *Overlay) Put(service *core.Service) {
	if service == nil {
		return
	}
	at := service.UpdatedAt
	if at.IsZero() {
		at = o.now()
	}
	o.mu.Lock()
	o.entries[service.Id] = overlayEntry{service: service, at: at}
	o.evictLocked()
	o.mu.Unlock()
}

// Remove drops an id, typically after a delete.
func (o *Overlay) Remove(id string) {
	o.mu.Lock()
	delete(o.entries, id)
	o.mu.Unlock()
}

// Confirm drops an id if its overlay entry is not newer than asOf.
// Called once a read path has observed the write in the store.
func (o *Overlay) Confirm(id string, asOf time.Time) {
	o.mu.Lock()
	if entry, ok := o.entries[id]; ok && !entry.at.After(asOf) {
		delete(o.entries, id)
	}
	o.mu.Unlock()
}

// Get returns the overlay record for an id, if present.
func (o *Overlay) Get(id string) (*core.Service, bool) {
	o.mu.RLock()
	entry, ok := o.entries[id]
	o.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return entry.service, true
}

// Merge overlays recent writes onto a store listing. Overlay records
// replace store records with the same id; overlay-only records are
// appended at the end.
func (o *Overlay) Merge(services []*core.Service) []*core.Service {
	o.mu.RLock()
	defer o.mu.RUnlock()

	if len(o.entries) == 0 {
		return services
	}

	seen := make(map[string]bool, len(services))
	merged := make([]*core.Service, 0, len(services)+len(o.entries))
	for _, service := range services {
		seen[service.Id] = true
		if entry, ok := o.entries[service.Id]; ok {
			merged = append(merged, entry.service)
		} else {
			merged = append(merged, service)
		}
	}
	for id, entry := range o.entries {
		if !seen[id] {
			merged = append(merged, entry.service)
		}
	}
	return merged
}

// Len returns the number of overlay entries.
func (o *Overlay) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.entries)
}

// evictLocked drops the oldest entries once the bound is exceeded.
func (o *Overlay) evictLocked() {
	for len(o.entries) > o.cap {
		var oldestID string
		var oldestAt time.Time
		first := true
		for id, entry := range o.entries {
			if first || entry.at.Before(oldestAt) {
				oldestID, oldestAt = id, entry.at
				first = false
			}
		}
		delete(o.entries, oldestID)
	}
}
