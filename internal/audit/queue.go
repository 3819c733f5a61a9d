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
	"fmt"
	"sync"
)

// flushSink persists one batch of entries in a single read-modify-write
// cycle against the store.
type flushSink func(ctx context.Context, entries []Entry) error

// Queue buffers newly created entries in memory and flushes them to
// persistent storage as one batch, bounding I/O and avoiding lost-update
// races from interleaved read-modify-write cycles on a single encrypted
// blob.
type Queue struct {
	mu  sync.Mutex
	buf []Entry

	// flushMu keeps batches in enqueue order: a second flush must not
	// snapshot the buffer until the in-flight one has reached the sink.
	flushMu sync.Mutex

	sink flushSink
}

// NewQueue creates a Queue draining into sink.
func NewQueue(
	sink flushSink,
) *Queue {
	return &Queue{sink: sink}
}

// Enqueue appends entry to the in-memory buffer in call order. Never blocks
// on persistence.
func (q *Queue) Enqueue(
	entry Entry,
) {
	q.mu.Lock()
	q.buf = append(q.buf, entry)
	q.mu.Unlock()
}

// Len returns the number of buffered, not-yet-persisted entries.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.buf)
}

// Flush persists the buffered entries as one batch, preserving buffer order.
// An empty buffer is a no-op success. Concurrent callers serialize: a second
// Flush waits for the in-flight one to complete before snapshotting. On sink
// failure the batch is not re-queued; the error surfaces as ErrFlushFailed
// and the caller decides whether to retry.
func (q *Queue) Flush(
	ctx context.Context,
) error {
	q.flushMu.Lock()
	defer q.flushMu.Unlock()

	q.mu.Lock()
	batch := q.buf
	q.buf = nil
	q.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	if err := q.sink(ctx, batch); err != nil {
		return fmt.Errorf("%w: %w", ErrFlushFailed, err)
	}

	return nil
}
