package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage/badger"
)

func newStoreLog(t *testing.T) Log {
	t.Helper()
	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	return NewLog(stores.Audit, nil)
}

func TestRecordFillsTimestamp(t *testing.T) {
	log := newStoreLog(t)
	ctx := context.Background()

	log.Record(ctx, core.AuditEntry{Actor: "admin@sbp.ch", Action: "search"})

	entries, err := log.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "search", entries[0].Action)
	assert.False(t, entries[0].At.IsZero())
}

func TestRecordInheritsClientIP(t *testing.T) {
	log := newStoreLog(t)
	ctx := WithClientIP(context.Background(), "192.0.2.7")

	log.Record(ctx, core.AuditEntry{Actor: "admin@sbp.ch", Action: "delete_service"})

	entries, err := log.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "192.0.2.7", entries[0].ClientIP)

	// An explicit IP wins over the context.
	log.Record(ctx, core.AuditEntry{Action: "search", ClientIP: "198.51.100.1"})
	entries, err = log.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "198.51.100.1", entries[0].ClientIP)
}

func TestClientIPFromContextDefault(t *testing.T) {
	assert.Equal(t, "", ClientIPFromContext(context.Background()))
}

func TestNopLog(t *testing.T) {
	log := NopLog()
	log.Record(context.Background(), core.AuditEntry{Action: "search"})

	entries, err := log.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
