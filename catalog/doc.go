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

// Package catalog owns the service write path and keeps the derived
// embedding consistent with the relational record.
//
// Every mutation goes through the Writer: it recomputes aliases,
// writes the relational row first, and re-embeds only when a field
// that feeds the embedding text actually changed. The Overlay carries
// just-written records so reads issued right after a write see them
// even before slower index updates settle.
package catalog
