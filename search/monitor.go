package search

import (
	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/vector"
)

// Monitor provides hooks to observe the search pipeline.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(query string)
	AfterExpansion(expanded string, matched []string)
	AfterVectorQuery(matches []vector.Match)
	AfterHydration(services []*core.Service)
	BoostedHit(id string, base, boosted float32)
	DroppedHit(id string)
	Finish(hits []core.Hit)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                         {}
func (n *noopMonitor) AfterExpansion(_ string, _ []string)    {}
func (n *noopMonitor) AfterVectorQuery(_ []vector.Match)      {}
func (n *noopMonitor) AfterHydration(_ []*core.Service)       {}
func (n *noopMonitor) BoostedHit(_ string, _, _ float32)      {}
func (n *noopMonitor) DroppedHit(_ string)                    {}
func (n *noopMonitor) Finish(_ []core.Hit)                    {}
