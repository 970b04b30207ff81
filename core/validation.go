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

import (
	"fmt"
	"strings"
)

// ValidateService validates a Service according to domain rules.
//
// Validation rules:
//   - Id must not be empty
//   - Name must not be empty
//   - OrganizationCode must not be empty
//
// NOT validated (populated by the catalog write path):
//   - Aliases (recomputed on every write, never client-supplied)
//   - timestamps
func ValidateService(service *Service) error {
	if service == nil {
		return fmt.Errorf("%w: service is nil", ErrValidation)
	}
	if strings.TrimSpace(service.Id) == "" {
		return fmt.Errorf("%w: service id is required", ErrValidation)
	}
	if strings.TrimSpace(service.Name) == "" {
		return fmt.Errorf("%w: service name is required", ErrValidation)
	}
	if strings.TrimSpace(service.OrganizationCode) == "" {
		return fmt.Errorf("%w: organization code is required", ErrValidation)
	}
	return nil
}

// ValidateOrganization validates an Organization according to domain rules.
func ValidateOrganization(org *Organization) error {
	if org == nil {
		return fmt.Errorf("%w: organization is nil", ErrValidation)
	}
	if strings.TrimSpace(org.Code) == "" {
		return fmt.Errorf("%w: organization code is required", ErrValidation)
	}
	if strings.TrimSpace(org.Label) == "" {
		return fmt.Errorf("%w: organization label is required", ErrValidation)
	}
	return nil
}

// ValidateUser validates a User according to domain rules.
//
// The password hash is required: accounts are never persisted without
// a credential.
func ValidateUser(user *User) error {
	if user == nil {
		return fmt.Errorf("%w: user is nil", ErrValidation)
	}
	if strings.TrimSpace(user.Email) == "" {
		return fmt.Errorf("%w: user email is required", ErrValidation)
	}
	if !strings.Contains(user.Email, "@") {
		return fmt.Errorf("%w: user email is malformed", ErrValidation)
	}
	if user.PasswordHash == "" {
		return fmt.Errorf("%w: user password hash is required", ErrValidation)
	}
	if !user.SuperAdmin && strings.TrimSpace(user.OrganizationCode) == "" {
		return fmt.Errorf("%w: organization code is required for non-superadmin users", ErrValidation)
	}
	return nil
}

// NormalizeStringList trims entries and drops blanks.
// Returns nil for an empty result so list comparisons stay predictable.
func NormalizeStringList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
