// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceNFΔ8EALBG3FF68Ger9UswgΞΞ = ord.NewSliceSer[Link](LinkMUS)
	slicekMKyOcu1GJmzQuΣKVHLhygΞΞ = ord.NewSliceSer[string](ord.String)
	slicelYpmSUMrUKBgWfBMΔUa9xgΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var TextHashMUS = textHashMUS{}

type textHashMUS struct{}

func (s textHashMUS) Marshal(v TextHash, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s textHashMUS) Unmarshal(bs []byte) (v TextHash, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = TextHash(tmp)
	return
}

func (s textHashMUS) Size(v TextHash) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s textHashMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var LinkMUS = linkMUS{}

type linkMUS struct{}

func (s linkMUS) Marshal(v Link, bs []byte) (n int) {
	n = ord.String.Marshal(v.Type, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.Value, bs[n:])
	return n + varint.Int.Marshal(v.Order, bs[n:])
}

func (s linkMUS) Unmarshal(bs []byte) (v Link, n int, err error) {
	v.Type, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Value, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Order, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (s linkMUS) Size(v Link) (size int) {
	size = ord.String.Size(v.Type)
	size += ord.String.Size(v.Label)
	size += ord.String.Size(v.Value)
	return size + varint.Int.Size(v.Order)
}

func (s linkMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	return
}

var ServiceMUS = serviceMUS{}

type serviceMUS struct{}

func (s serviceMUS) Marshal(v Service, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.OrganizationCode, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Hidden, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += ord.String.Marshal(v.Complement, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.Research, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.Phase, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.Category, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.Output, bs[n:])
	n += sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Marshal(v.Contacts, bs[n:])
	n += sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Marshal(v.Links, bs[n:])
	n += sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Marshal(v.Documents, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.Aliases, bs[n:])
	n += ord.Bool.Marshal(v.Active, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s serviceMUS) Unmarshal(bs []byte) (v Service, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.OrganizationCode, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Hidden, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Complement, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Research, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Phase, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Output, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Contacts, n1, err = sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Links, n1, err = sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Documents, n1, err = sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Aliases, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Active, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s serviceMUS) Size(v Service) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.OrganizationCode)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Hidden)
	size += ord.String.Size(v.Description)
	size += ord.String.Size(v.Complement)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.Research)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.Phase)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.Category)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.Output)
	size += sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Size(v.Contacts)
	size += sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Size(v.Links)
	size += sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Size(v.Documents)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.Aliases)
	size += ord.Bool.Size(v.Active)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s serviceMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceNFΔ8EALBG3FF68Ger9UswgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var ServiceEmbeddingMUS = serviceEmbeddingMUS{}

type serviceEmbeddingMUS struct{}

func (s serviceEmbeddingMUS) Marshal(v ServiceEmbedding, bs []byte) (n int) {
	n = ord.String.Marshal(v.ServiceId, bs)
	n += slicelYpmSUMrUKBgWfBMΔUa9xgΞΞ.Marshal(v.Vector, bs[n:])
	n += ord.String.Marshal(v.Model, bs[n:])
	n += TextHashMUS.Marshal(v.TextHash, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s serviceEmbeddingMUS) Unmarshal(bs []byte) (v ServiceEmbedding, n int, err error) {
	v.ServiceId, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = slicelYpmSUMrUKBgWfBMΔUa9xgΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Model, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TextHash, n1, err = TextHashMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s serviceEmbeddingMUS) Size(v ServiceEmbedding) (size int) {
	size = ord.String.Size(v.ServiceId)
	size += slicelYpmSUMrUKBgWfBMΔUa9xgΞΞ.Size(v.Vector)
	size += ord.String.Size(v.Model)
	size += TextHashMUS.Size(v.TextHash)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s serviceEmbeddingMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicelYpmSUMrUKBgWfBMΔUa9xgΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = TextHashMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var OrganizationMUS = organizationMUS{}

type organizationMUS struct{}

func (s organizationMUS) Marshal(v Organization, bs []byte) (n int) {
	n = ord.String.Marshal(v.Code, bs)
	n += ord.String.Marshal(v.Label, bs[n:])
	n += ord.String.Marshal(v.FullName, bs[n:])
	n += ord.String.Marshal(v.IdPrefix, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s organizationMUS) Unmarshal(bs []byte) (v Organization, n int, err error) {
	v.Code, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Label, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FullName, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.IdPrefix, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s organizationMUS) Size(v Organization) (size int) {
	size = ord.String.Size(v.Code)
	size += ord.String.Size(v.Label)
	size += ord.String.Size(v.FullName)
	size += ord.String.Size(v.IdPrefix)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s organizationMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var UserMUS = userMUS{}

type userMUS struct{}

func (s userMUS) Marshal(v User, bs []byte) (n int) {
	n = ord.String.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Email, bs[n:])
	n += ord.String.Marshal(v.PasswordHash, bs[n:])
	n += ord.String.Marshal(v.OrganizationCode, bs[n:])
	n += ord.Bool.Marshal(v.SuperAdmin, bs[n:])
	n += ord.Bool.Marshal(v.ForcePasswordChange, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s userMUS) Unmarshal(bs []byte) (v User, n int, err error) {
	v.Id, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Email, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PasswordHash, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.OrganizationCode, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SuperAdmin, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ForcePasswordChange, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s userMUS) Size(v User) (size int) {
	size = ord.String.Size(v.Id)
	size += ord.String.Size(v.Email)
	size += ord.String.Size(v.PasswordHash)
	size += ord.String.Size(v.OrganizationCode)
	size += ord.Bool.Size(v.SuperAdmin)
	size += ord.Bool.Size(v.ForcePasswordChange)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s userMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.Bool.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var AuditEntryMUS = auditEntryMUS{}

type auditEntryMUS struct{}

func (s auditEntryMUS) Marshal(v AuditEntry, bs []byte) (n int) {
	n = raw.TimeUnixMicro.Marshal(v.At, bs)
	n += ord.String.Marshal(v.ClientIP, bs[n:])
	n += ord.String.Marshal(v.Actor, bs[n:])
	n += ord.String.Marshal(v.Action, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.Ids, bs[n:])
	n += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Marshal(v.ChangedFields, bs[n:])
	return n + ord.String.Marshal(v.Detail, bs[n:])
}

func (s auditEntryMUS) Unmarshal(bs []byte) (v AuditEntry, n int, err error) {
	v.At, n, err = raw.TimeUnixMicro.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ClientIP, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Actor, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Action, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ids, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ChangedFields, n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Detail, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	return
}

func (s auditEntryMUS) Size(v AuditEntry) (size int) {
	size = raw.TimeUnixMicro.Size(v.At)
	size += ord.String.Size(v.ClientIP)
	size += ord.String.Size(v.Actor)
	size += ord.String.Size(v.Action)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.Ids)
	size += slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Size(v.ChangedFields)
	return size + ord.String.Size(v.Detail)
}

func (s auditEntryMUS) Skip(bs []byte) (n int, err error) {
	n, err = raw.TimeUnixMicro.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicekMKyOcu1GJmzQuΣKVHLhygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	return
}
