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

// Package search ranks catalog services against free-text queries.
//
// The Searcher runs the retrieval pipeline: acronym-aware query
// expansion, query embedding, nearest-neighbor lookup, an exact-alias
// score boost, and hydration against the relational catalog. Ids that
// no longer resolve, or resolve to inactive services, are dropped so a
// stale vector index never leaks deleted services to end users.
//
// The Explainer produces a free-text rationale for a single ranked
// match; its failures never disturb the ranked list, which is rendered
// independently.
package search
