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


// Package ai defines the interfaces for the external AI collaborators:
// the embedding service and the explanation LLM. Both are pure I/O
// boundaries; orchestration logic never retries them itself.
//
// Concrete implementations live in subpackages:
//
//   - ai/tei: Text Embeddings Inference HTTP client with E5-style
//     query/passage prefixing
//   - ai/openai: OpenAI-compatible embedder and chat LLM via langchaingo
//   - ai/mock: deterministic test doubles
package ai
