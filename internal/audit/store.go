// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package audit

import (
	"context"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/openscribe-io/openscribe/internal/secure"
)

// Store owns the logical collection of audit entries. All writes funnel
// through its batching queue; all persisted state lives under one storage
// key behind the envelope codec.
type Store struct {
	logger *slog.Logger
	db     secure.Storer
	policy *Policy
	queue  *Queue

	// writeMu guards every read-modify-write cycle against the persisted
	// blob: flush appends, purges, and retention cleanups all mutate the
	// same storage key, and an unserialized pair loses one side's write.
	writeMu sync.Mutex

	// now is swapped in tests to pin retention cutoffs.
	now func() time.Time
}

// NewStore creates a new Store.
func NewStore(
	logger *slog.Logger,
	db secure.Storer,
	policy *Policy,
) *Store {
	s := &Store{
		logger: logger,
		db:     db,
		policy: policy,
		now:    time.Now,
	}
	s.queue = NewQueue(s.append)

	return s
}

// Policy returns the store's retention policy.
func (s *Store) Policy() *Policy {
	return s.policy
}

// Log constructs an entry from in and enqueues it. Returns immediately; the
// entry is persisted on the next flush.
func (s *Store) Log(
	in Input,
) Entry {
	entry := NewEntry(in)
	s.queue.Enqueue(entry)

	return entry
}

// Flush persists all buffered entries.
func (s *Store) Flush(
	ctx context.Context,
) error {
	return s.queue.Flush(ctx)
}

// Query flushes buffered writes and returns the entries matching filter,
// sorted newest-timestamp-first. The flush gives read-your-writes: a query
// issued after a Log call observes it even if it had not been persisted yet.
func (s *Store) Query(
	ctx context.Context,
	filter Filter,
) ([]Entry, error) {
	entries, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if filter.Matches(e) {
			matched = append(matched, e)
		}
	}

	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

// Snapshot flushes buffered writes and returns every persisted entry,
// newest-first.
func (s *Store) Snapshot(
	ctx context.Context,
) ([]Entry, error) {
	if err := s.Flush(ctx); err != nil {
		return nil, err
	}

	entries, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	// Persisted order is append order. Reversing before the stable sort makes
	// same-timestamp entries come out insertion-newest first.
	slices.Reverse(entries)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	return entries, nil
}

// PurgeAll deletes every persisted entry and records the purge itself, so a
// purge is never fully silent.
func (s *Store) PurgeAll(
	ctx context.Context,
) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}

	marker := NewEntry(Input{
		EventType: EventAuditPurged,
		Metadata:  map[string]any{"manual_purge": true},
	})

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	return s.db.Save(ctx, StorageKey, []Entry{marker})
}

// CleanupExpired removes every entry strictly older than the retention
// cutoff and returns the count removed. A cleanup that removed anything is
// itself recorded; a no-op cleanup adds no entry.
func (s *Store) CleanupExpired(
	ctx context.Context,
) (int, error) {
	if err := s.Flush(ctx); err != nil {
		return 0, err
	}

	// Held across the load and the save: a flush landing in between would
	// otherwise be overwritten by the rewritten set.
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	entries, err := s.loadAll(ctx)
	if err != nil {
		return 0, err
	}

	days := s.policy.Days()
	cutoff := s.now().UTC().AddDate(0, 0, -days)

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Timestamp.Before(cutoff) {
			kept = append(kept, e)
		}
	}

	removed := len(entries) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	kept = append(kept, NewEntry(Input{
		EventType: EventAuditPurged,
		Metadata: map[string]any{
			"retention_days": days,
			"removed_count":  removed,
		},
	}))

	if err := s.db.Save(ctx, StorageKey, kept); err != nil {
		return 0, err
	}

	s.logger.Info(
		"expired audit entries removed",
		slog.Int("removed", removed),
		slog.Int("retention_days", days),
	)

	return removed, nil
}

// append merges a flushed batch with the persisted entries, preserving
// existing order, and writes the full set back. Only the queue calls this,
// and only one flush runs at a time.
func (s *Store) append(
	ctx context.Context,
	batch []Entry,
) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	existing, err := s.loadAll(ctx)
	if err != nil {
		return err
	}

	return s.db.Save(ctx, StorageKey, append(existing, batch...))
}

func (s *Store) loadAll(
	ctx context.Context,
) ([]Entry, error) {
	var entries []Entry
	if _, err := s.db.Load(ctx, StorageKey, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
