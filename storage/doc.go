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


// Package storage provides the relational storage abstraction for the
// service catalog. The relational store is the source of truth; the vector
// index is a derived projection kept in sync by the catalog write path.
//
// # Constructor Return Type Pattern
//
// Public constructors return interfaces to enforce abstraction and allow
// alternative backends:
//
//	store, err := badger.NewServiceStore(backend)  // returns storage.ServiceStore
//
// # Thread Safety
//
// All store implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support.
package storage
