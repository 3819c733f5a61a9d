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
	"testing"

	"github.com/stretchr/testify/suite"
)

type QueueInternalTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *QueueInternalTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *QueueInternalTestSuite) TestFlushDrainsBuffer() {
	var flushed [][]Entry
	q := NewQueue(func(_ context.Context, batch []Entry) error {
		flushed = append(flushed, batch)
		return nil
	})

	q.Enqueue(NewEntry(Input{EventType: EventNoteCreated}))
	q.Enqueue(NewEntry(Input{EventType: EventNoteUpdated}))
	s.Equal(2, q.Len())

	err := q.Flush(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, q.Len())
	s.Require().Len(flushed, 1)
	s.Len(flushed[0], 2)
	s.Equal(EventNoteCreated, flushed[0][0].EventType)
	s.Equal(EventNoteUpdated, flushed[0][1].EventType)
}

func (s *QueueInternalTestSuite) TestFlushEmptyIsNoop() {
	calls := 0
	q := NewQueue(func(context.Context, []Entry) error {
		calls++
		return nil
	})

	s.NoError(q.Flush(s.ctx))
	s.Equal(0, calls, "an empty flush never hits the sink")
}

func (s *QueueInternalTestSuite) TestFlushSinkError() {
	q := NewQueue(func(context.Context, []Entry) error {
		return fmt.Errorf("storage offline")
	})

	q.Enqueue(NewEntry(Input{EventType: EventNoteCreated}))

	err := q.Flush(s.ctx)
	s.ErrorIs(err, ErrFlushFailed)
	s.Contains(err.Error(), "storage offline")
	s.Equal(0, q.Len(), "a failed batch is dropped, not re-queued")
}

func (s *QueueInternalTestSuite) TestConcurrentFlushesNeverInterleave() {
	var (
		mu     sync.Mutex
		active int
		peak   int
		total  int
	)

	q := NewQueue(func(_ context.Context, batch []Entry) error {
		mu.Lock()
		active++
		if active > peak {
			peak = active
		}
		total += len(batch)
		mu.Unlock()

		mu.Lock()
		active--
		mu.Unlock()
		return nil
	})

	const writers = 8
	const perWriter = 25

	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWriter {
				q.Enqueue(NewEntry(Input{EventType: EventNoteCreated}))
				_ = q.Flush(s.ctx)
			}
		}()
	}
	wg.Wait()
	s.Require().NoError(q.Flush(s.ctx))

	s.Equal(1, peak, "flushes are serialized")
	s.Equal(writers*perWriter, total, "every entry is flushed exactly once")
	s.Equal(0, q.Len())
}

func TestQueueInternalTestSuite(t *testing.T) {
	suite.Run(t, new(QueueInternalTestSuite))
}
