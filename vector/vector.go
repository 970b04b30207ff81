// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vector defines the similarity index the search path queries.
// Implementations hold only the derived projection of the embedding rows;
// the relational store stays the source of truth.
package vector

import "context"

// Match is one scored candidate from a similarity query.
type Match struct {
	ID       string
	Score    float32
	Metadata map[string]string
}

// Index is a vector similarity index keyed by service id.
type Index interface {
	// Upsert writes a vector and its metadata, fully replacing any
	// prior entry for the id.
	Upsert(ctx context.Context, id string, vec []float32, metadata map[string]string) error

	// Fetch returns the entries for the given ids. Missing ids are
	// skipped silently.
	Fetch(ctx context.Context, ids ...string) ([]Match, error)

	// Query returns up to topK entries most similar to vec, scored by
	// cosine similarity, best first.
	Query(ctx context.Context, vec []float32, topK int) ([]Match, error)

	// Delete removes the entry for an id. Deleting a missing id is
	// not an error.
	Delete(ctx context.Context, id string) error

	// Close releases index resources.
	Close() error
}
