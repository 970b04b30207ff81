package badger

import (
	"context"
	"testing"
	"time"

	"github.com/poiesic/servicefinder/core"
)

func TestAuditAppendAndList(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	now := time.Now().UTC()

	entries := []*core.AuditEntry{
		{At: now.Add(-2 * time.Hour), Actor: "system", Action: "search", Detail: "first"},
		{At: now.Add(-1 * time.Hour), Actor: "admin@example.org", Action: "update_service", Ids: []string{"a-1"}},
		{At: now, Actor: "system", Action: "search", Detail: "third"},
	}
	for _, entry := range entries {
		if err := stores.Audit.AppendAudit(ctx, entry); err != nil {
			t.Fatalf("Failed to append audit entry: %v", err)
		}
	}

	list, err := stores.Audit.ListAudit(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list audit: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(list))
	}
	// Newest first.
	if list[0].Detail != "third" {
		t.Fatalf("Expected newest entry first, got %q", list[0].Detail)
	}
	if list[2].Detail != "first" {
		t.Fatalf("Expected oldest entry last, got %q", list[2].Detail)
	}

	limited, err := stores.Audit.ListAudit(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to list audit with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(limited))
	}
	if limited[0].Detail != "third" {
		t.Fatalf("Expected newest entry first, got %q", limited[0].Detail)
	}
}

func TestAuditSameTimestampKeepsBoth(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()
	at := time.Now().UTC()

	if err := stores.Audit.AppendAudit(ctx, &core.AuditEntry{At: at, Action: "search", Detail: "one"}); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	if err := stores.Audit.AppendAudit(ctx, &core.AuditEntry{At: at, Action: "search", Detail: "two"}); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}

	list, err := stores.Audit.ListAudit(ctx, 0)
	if err != nil {
		t.Fatalf("Failed to list audit: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(list))
	}
}

func TestAuditZeroTimestampDefaults(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	entry := &core.AuditEntry{Action: "login"}
	if err := stores.Audit.AppendAudit(context.Background(), entry); err != nil {
		t.Fatalf("Failed to append: %v", err)
	}
	if entry.At.IsZero() {
		t.Fatal("Expected timestamp to be defaulted")
	}
}
