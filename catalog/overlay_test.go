package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/servicefinder/core"
)

func TestOverlayPutGetRemove(t *testing.T) {
	overlay := NewOverlay(0)

	_, ok := overlay.Get("a-1")
	assert.False(t, ok)

	overlay.Put(&core.Service{Id: "a-1", Name: "First"})
	got, ok := overlay.Get("a-1")
	require.True(t, ok)
	assert.Equal(t, "First", got.Name)

	// Last write per id wins.
	overlay.Put(&core.Service{Id: "a-1", Name: "Second"})
	got, _ = overlay.Get("a-1")
	assert.Equal(t, "Second", got.Name)
	assert.Equal(t, 1, overlay.Len())

	overlay.Remove("a-1")
	_, ok = overlay.Get("a-1")
	assert.False(t, ok)
}

func TestOverlayMerge(t *testing.T) {
	overlay := NewOverlay(0)
	overlay.Put(&core.Service{Id: "a-1", Name: "Fresh"})
	overlay.Put(&core.Service{Id: "a-3", Name: "OverlayOnly"})

	stored := []*core.Service{
		{Id: "a-1", Name: "Stale"},
		{Id: "a-2", Name: "Untouched"},
	}

	merged := overlay.Merge(stored)
	require.Len(t, merged, 3)

	byId := make(map[string]*core.Service, len(merged))
	for _, s := range merged {
		byId[s.Id] = s
	}
	assert.Equal(t, "Fresh", byId["a-1"].Name)
	assert.Equal(t, "Untouched", byId["a-2"].Name)
	assert.Equal(t, "OverlayOnly", byId["a-3"].Name)
}

func TestOverlayConfirm(t *testing.T) {
	overlay := NewOverlay(0)
	overlay.Put(&core.Service{Id: "a-1"})

	// Confirming as of a time before the write keeps the entry.
	overlay.Confirm("a-1", time.Now().Add(-time.Minute))
	assert.Equal(t, 1, overlay.Len())

	overlay.Confirm("a-1", time.Now().Add(time.Minute))
	assert.Equal(t, 0, overlay.Len())
}

func TestOverlayConfirmAtStoreTimestamp(t *testing.T) {
	overlay := NewOverlay(0)
	updated := time.Now().UTC()
	overlay.Put(&core.Service{Id: "a-1", UpdatedAt: updated})

	// A store read carrying the same UpdatedAt proves the write has
	// surfaced, so the entry goes.
	overlay.Confirm("a-1", updated)
	assert.Equal(t, 0, overlay.Len())
}

func TestOverlayEviction(t *testing.T) {
	overlay := NewOverlay(2)
	now := time.Now()
	times := []time.Time{now, now.Add(time.Second), now.Add(2 * time.Second)}
	i := 0
	overlay.now = func() time.Time { t := times[i]; i++; return t }

	overlay.Put(&core.Service{Id: "a-1"})
	overlay.Put(&core.Service{Id: "a-2"})
	overlay.Put(&core.Service{Id: "a-3"})

	assert.Equal(t, 2, overlay.Len())
	_, ok := overlay.Get("a-1")
	assert.False(t, ok, "oldest entry should be evicted")
	_, ok = overlay.Get("a-3")
	assert.True(t, ok)
}
