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


package storage

import (
	"github.com/poiesic/servicefinder/core"
)

// MarshalService serializes a Service to bytes.
func MarshalService(service *core.Service) []byte {
	buf := make([]byte, core.ServiceMUS.Size(*service))
	core.ServiceMUS.Marshal(*service, buf)
	return buf
}

// UnmarshalService deserializes a Service from bytes.
func UnmarshalService(data []byte) (*core.Service, error) {
	service, _, err := core.ServiceMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &service, nil
}

// MarshalServiceEmbedding serializes a ServiceEmbedding to bytes.
func MarshalServiceEmbedding(embedding *core.ServiceEmbedding) []byte {
	buf := make([]byte, core.ServiceEmbeddingMUS.Size(*embedding))
	core.ServiceEmbeddingMUS.Marshal(*embedding, buf)
	return buf
}

// UnmarshalServiceEmbedding deserializes a ServiceEmbedding from bytes.
func UnmarshalServiceEmbedding(data []byte) (*core.ServiceEmbedding, error) {
	embedding, _, err := core.ServiceEmbeddingMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &embedding, nil
}

// MarshalOrganization serializes an Organization to bytes.
func MarshalOrganization(org *core.Organization) []byte {
	buf := make([]byte, core.OrganizationMUS.Size(*org))
	core.OrganizationMUS.Marshal(*org, buf)
	return buf
}

// UnmarshalOrganization deserializes an Organization from bytes.
func UnmarshalOrganization(data []byte) (*core.Organization, error) {
	org, _, err := core.OrganizationMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// MarshalUser serializes a User to bytes.
func MarshalUser(user *core.User) []byte {
	buf := make([]byte, core.UserMUS.Size(*user))
	core.UserMUS.Marshal(*user, buf)
	return buf
}

// UnmarshalUser deserializes a User from bytes.
func UnmarshalUser(data []byte) (*core.User, error) {
	user, _, err := core.UserMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// MarshalAuditEntry serializes an AuditEntry to bytes.
func MarshalAuditEntry(entry *core.AuditEntry) []byte {
	buf := make([]byte, core.AuditEntryMUS.Size(*entry))
	core.AuditEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalAuditEntry deserializes an AuditEntry from bytes.
func UnmarshalAuditEntry(data []byte) (*core.AuditEntry, error) {
	entry, _, err := core.AuditEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
