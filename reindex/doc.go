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

// Package reindex reconciles stored embeddings with the catalog.
//
// The write path keeps embeddings fresh in the common case, but a
// failed embedding call, a model switch, or a change to the acronym
// dictionary leaves rows stale. The Reconciler walks every service,
// recomputes the embedding text, and re-embeds whenever the stored
// row is missing, hashes differently, or was produced by another
// model. Work is batched and runs on a worker pool with retries.
package reindex
