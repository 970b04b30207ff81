package badger

import (
	"encoding/binary"
	"time"
)

// Key prefixes for different data types
const (
	servicePrefix    = "svcrec"
	embeddingPrefix  = "svcemb"
	orgPrefix        = "orgrec"
	userPrefix       = "usrrec"
	userEmailPrefix  = "usrema"
	auditPrefix      = "audrec"
	auditSeq         = "audrecseq"
)

// makeServiceKey generates a key for a service by id.
func makeServiceKey(id string) []byte {
	return []byte(servicePrefix + ":" + id)
}

// makeEmbeddingKey generates a key for a service's embedding row.
func makeEmbeddingKey(serviceId string) []byte {
	return []byte(embeddingPrefix + ":" + serviceId)
}

// makeOrgKey generates a key for an organization by code.
func makeOrgKey(code string) []byte {
	return []byte(orgPrefix + ":" + code)
}

// makeUserKey generates a key for a user by id.
func makeUserKey(id string) []byte {
	return []byte(userPrefix + ":" + id)
}

// makeUserEmailKey generates a key for the email index.
// Callers lowercase the email first.
func makeUserEmailKey(email string) []byte {
	return []byte(userEmailPrefix + ":" + email)
}

// makeAuditKey generates a composite key for an audit entry.
// Format: prefix:timestamp:seq, BigEndian so lexicographic order is
// chronological.
func makeAuditKey(at time.Time, seq uint64) []byte {
	prefix := auditPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for seq
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(at.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}
