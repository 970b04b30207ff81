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

// Package audit records who did what. The log is advisory: a failed
// write is reported through slog and swallowed so it never fails the
// operation being recorded.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/poiesic/servicefinder/core"
	"github.com/poiesic/servicefinder/storage"
)

// Log records audit entries.
type Log interface {
	// Record appends one entry. Failures are swallowed.
	Record(ctx context.Context, entry core.AuditEntry)

	// List returns the most recent entries, newest first, up to limit.
	List(ctx context.Context, limit int) ([]*core.AuditEntry, error)
}

type clientIPKey struct{}

// WithClientIP returns a context carrying the requester's IP. Entries
// recorded under this context inherit it when they carry none.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

// ClientIPFromContext extracts the requester IP, or "".
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// storeLog writes entries to an AuditStore.
type storeLog struct {
	store  storage.AuditStore
	logger *slog.Logger
}

var _ Log = (*storeLog)(nil)

// NewLog creates a Log backed by the given store.
func NewLog(store storage.AuditStore, logger *slog.Logger) Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &storeLog{store: store, logger: logger}
}

func (l *storeLog) Record(ctx context.Context, entry core.AuditEntry) {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}
	if entry.ClientIP == "" {
		entry.ClientIP = ClientIPFromContext(ctx)
	}
	if err := l.store.AppendAudit(ctx, &entry); err != nil {
		l.logger.Error("failed to append audit entry",
			"action", entry.Action, "actor", entry.Actor, "err", err)
	}
}

func (l *storeLog) List(ctx context.Context, limit int) ([]*core.AuditEntry, error) {
	return l.store.ListAudit(ctx, limit)
}

// nopLog discards every entry.
type nopLog struct{}

var _ Log = (*nopLog)(nil)

// NopLog returns a Log that records nothing.
func NopLog() Log {
	return &nopLog{}
}

func (*nopLog) Record(context.Context, core.AuditEntry) {}

func (*nopLog) List(context.Context, int) ([]*core.AuditEntry, error) {
	return nil, nil
}
