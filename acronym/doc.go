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


// Package acronym provides acronym-aware text expansion and alias extraction
// over a fixed dictionary of acronyms and their expansions.
//
// The dictionary is loaded once at process start and is immutable afterwards,
// so it is safe for unsynchronized concurrent reads. Three distinct transforms
// are built on it:
//
//   - ExpandQuery appends a glossary suffix to a live search query so that an
//     acronym-only query retrieves documents containing the expansion.
//   - ExpandInline rewrites stored passage text in place, appending only the
//     first expansion after each occurrence. Passages stay concise; full
//     glossaries appear only in query expansion and explanations.
//   - BuildAliases computes the alias set stored alongside a service. A hit on
//     either an acronym or any of its expansions adds both, which makes alias
//     matching symmetric.
//
// The asymmetry between ExpandInline (first expansion only) and BuildAliases
// (all expansions) is deliberate and must be preserved.
package acronym
