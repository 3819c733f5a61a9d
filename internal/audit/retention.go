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
	"fmt"
	"sync"
)

// DefaultRetentionDays is the retention window applied when none is
// configured.
const DefaultRetentionDays = 180

// Policy holds the process-wide retention window in days. An explicit object
// rather than ambient state so tests can construct independent instances.
// Last-writer-wins under concurrent updates.
type Policy struct {
	mu   sync.RWMutex
	days int
}

// NewPolicy creates a Policy at the default retention window.
func NewPolicy() *Policy {
	return &Policy{days: DefaultRetentionDays}
}

// Days returns the current retention window.
func (p *Policy) Days() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.days
}

// SetDays updates the retention window, effective for subsequent cleanup
// calls. Values that are not strictly positive are rejected before any state
// mutation.
func (p *Policy) SetDays(
	n int,
) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRetention, n)
	}

	p.mu.Lock()
	p.days = n
	p.mu.Unlock()

	return nil
}
