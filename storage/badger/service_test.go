package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/servicefinder/core"
)

func TestServicePutGet(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	service := &core.Service{
		Id:               "shcs-42",
		OrganizationCode: "shcs",
		Name:             "Clinical trials unit",
		Description:      "Support for clinical trial design and conduct.",
		Aliases:          []string{"CT", "Clinical trials"},
		Active:           true,
	}

	if err := stores.Services.PutService(ctx, service); err != nil {
		t.Fatalf("Failed to put service: %v", err)
	}
	if service.InsertedAt.IsZero() || service.UpdatedAt.IsZero() {
		t.Fatal("Expected timestamps to be set on insert")
	}

	retrieved, err := stores.Services.GetService(ctx, "shcs-42")
	if err != nil {
		t.Fatalf("Failed to get service: %v", err)
	}
	if retrieved.Name != "Clinical trials unit" {
		t.Fatalf("Expected 'Clinical trials unit', got '%s'", retrieved.Name)
	}
	if len(retrieved.Aliases) != 2 {
		t.Fatalf("Expected 2 aliases, got %d", len(retrieved.Aliases))
	}
}

func TestServiceGetMissing(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	_, err = stores.Services.GetService(context.Background(), "nope")
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestServiceUpdateKeepsInsertedAt(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	service := &core.Service{Id: "a-1", OrganizationCode: "a", Name: "First", Active: true}
	if err := stores.Services.PutService(ctx, service); err != nil {
		t.Fatalf("Failed to put service: %v", err)
	}
	inserted := service.InsertedAt

	update := &core.Service{Id: "a-1", OrganizationCode: "a", Name: "Second", Active: true}
	if err := stores.Services.PutService(ctx, update); err != nil {
		t.Fatalf("Failed to update service: %v", err)
	}

	if !update.InsertedAt.Equal(inserted) {
		t.Fatalf("Expected InsertedAt preserved, got %v vs %v", update.InsertedAt, inserted)
	}

	retrieved, err := stores.Services.GetService(ctx, "a-1")
	if err != nil {
		t.Fatalf("Failed to get service: %v", err)
	}
	if retrieved.Name != "Second" {
		t.Fatalf("Expected 'Second', got '%s'", retrieved.Name)
	}
}

func TestServiceListByOrganization(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	for _, service := range []*core.Service{
		{Id: "shcs-1", OrganizationCode: "shcs", Name: "One", Active: true},
		{Id: "sbp-1", OrganizationCode: "sbp", Name: "Two", Active: true},
		{Id: "shcs-2", OrganizationCode: "shcs", Name: "Three", Active: true},
	} {
		if err := stores.Services.PutService(ctx, service); err != nil {
			t.Fatalf("Failed to put service: %v", err)
		}
	}

	all, err := stores.Services.ListServices(ctx)
	if err != nil {
		t.Fatalf("Failed to list services: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 services, got %d", len(all))
	}

	scoped, err := stores.Services.ListServicesByOrganization(ctx, "SHCS")
	if err != nil {
		t.Fatalf("Failed to list by organization: %v", err)
	}
	if len(scoped) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(scoped))
	}
	// Keys sort lexicographically, so ids come back ordered.
	if scoped[0].Id != "shcs-1" || scoped[1].Id != "shcs-2" {
		t.Fatalf("Unexpected order: %s, %s", scoped[0].Id, scoped[1].Id)
	}
}

func TestServiceGetServicesSkipsMissing(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	if err := stores.Services.PutService(ctx, &core.Service{Id: "a-1", OrganizationCode: "a", Name: "A", Active: true}); err != nil {
		t.Fatalf("Failed to put service: %v", err)
	}
	if err := stores.Services.PutService(ctx, &core.Service{Id: "a-2", OrganizationCode: "a", Name: "B", Active: true}); err != nil {
		t.Fatalf("Failed to put service: %v", err)
	}

	results, err := stores.Services.GetServices(ctx, "a-2", "missing", "a-1")
	if err != nil {
		t.Fatalf("Failed to get services: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 services, got %d", len(results))
	}
	if results[0].Id != "a-2" || results[1].Id != "a-1" {
		t.Fatalf("Expected input order preserved, got %s, %s", results[0].Id, results[1].Id)
	}
}

func TestServiceDeleteCascadesEmbedding(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	if err := stores.Services.PutService(ctx, &core.Service{Id: "a-1", OrganizationCode: "a", Name: "A", Active: true}); err != nil {
		t.Fatalf("Failed to put service: %v", err)
	}
	embedding := &core.ServiceEmbedding{
		ServiceId: "a-1",
		Vector:    []float32{0.1, 0.2, 0.3},
		Model:     "intfloat/multilingual-e5-small",
		TextHash:  core.HashText("passage text"),
	}
	if err := stores.Embeddings.PutEmbedding(ctx, embedding); err != nil {
		t.Fatalf("Failed to put embedding: %v", err)
	}

	if err := stores.Services.DeleteService(ctx, "a-1"); err != nil {
		t.Fatalf("Failed to delete service: %v", err)
	}

	if _, err := stores.Services.GetService(ctx, "a-1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for service, got %v", err)
	}
	if _, err := stores.Embeddings.GetEmbedding(ctx, "a-1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for embedding, got %v", err)
	}

	if err := stores.Services.DeleteService(ctx, "a-1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on second delete, got %v", err)
	}
}

func TestEmbeddingRoundTrip(t *testing.T) {
	stores, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	ctx := context.Background()

	embedding := &core.ServiceEmbedding{
		ServiceId: "a-1",
		Vector:    []float32{0.5, -0.25, 0.125},
		Model:     "intfloat/multilingual-e5-small",
		TextHash:  core.HashText("Description: something"),
	}
	if err := stores.Embeddings.PutEmbedding(ctx, embedding); err != nil {
		t.Fatalf("Failed to put embedding: %v", err)
	}

	retrieved, err := stores.Embeddings.GetEmbedding(ctx, "a-1")
	if err != nil {
		t.Fatalf("Failed to get embedding: %v", err)
	}
	if len(retrieved.Vector) != 3 {
		t.Fatalf("Expected 3 components, got %d", len(retrieved.Vector))
	}
	if retrieved.Vector[1] != -0.25 {
		t.Fatalf("Expected -0.25, got %f", retrieved.Vector[1])
	}
	if retrieved.TextHash != embedding.TextHash {
		t.Fatal("Expected text hash to round-trip")
	}

	list, err := stores.Embeddings.ListEmbeddings(ctx)
	if err != nil {
		t.Fatalf("Failed to list embeddings: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 embedding, got %d", len(list))
	}

	// Deleting a missing row is not an error.
	if err := stores.Embeddings.DeleteEmbedding(ctx, "missing"); err != nil {
		t.Fatalf("Expected nil for missing delete, got %v", err)
	}
	if err := stores.Embeddings.DeleteEmbedding(ctx, "a-1"); err != nil {
		t.Fatalf("Failed to delete embedding: %v", err)
	}
	if _, err := stores.Embeddings.GetEmbedding(ctx, "a-1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}
}
