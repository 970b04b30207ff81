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


package core

import "errors"

// Error taxonomy. Handlers map these to HTTP status codes at the request
// boundary; inner layers only wrap them with context.
var (
	// ErrValidation indicates a missing or malformed required field.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates a request without a valid session.
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden indicates an org-scope or role violation.
	// It is checked before any mutation; a forbidden write never partially applies.
	ErrForbidden = errors.New("operation not permitted")

	// ErrNotFound indicates an operation on a nonexistent record.
	ErrNotFound = errors.New("record not found")

	// ErrDependency indicates an unreachable or failing external collaborator
	// (embedding service, vector index, relational store, LLM).
	ErrDependency = errors.New("dependency failure")

	// ErrDimensionMismatch indicates an embedding response whose vector length
	// differs from the configured dimension. Always fatal to the write.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)
