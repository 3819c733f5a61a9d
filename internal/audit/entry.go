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
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxMetadataStringLen is the per-value rune cap for string metadata.
// Anything longer looks like narrative content and is never persisted.
const MaxMetadataStringLen = 256

// Input is the caller-supplied portion of an audit entry. Callers pass only
// identifiers, counts, and flags — never the protected content itself.
type Input struct {
	EventType    EventType
	ResourceID   string
	Success      *bool
	ErrorMessage string
	Metadata     map[string]any
}

// NewEntry builds a complete Entry from in: id, timestamp, and acting
// principal are filled here, success defaults to true when unset, and
// metadata is reduced to the structural allow-list. Pure and synchronous;
// never fails for a valid shape.
func NewEntry(
	in Input,
) Entry {
	success := true
	if in.Success != nil {
		success = *in.Success
	}

	return Entry{
		ID:           uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		EventType:    in.EventType,
		ResourceID:   in.ResourceID,
		Success:      success,
		ErrorMessage: in.ErrorMessage,
		UserID:       LocalUserID,
		Metadata:     sanitizeMetadata(in.Metadata),
	}
}

// sanitizeMetadata reduces md to the structural allow-list: booleans, finite
// numbers, and strings up to MaxMetadataStringLen runes. Violating fields
// (nested structures, byte blobs, over-long strings, non-finite floats) are
// silently stripped so they can never reach persistence. Stripping rather
// than rejecting keeps entry construction infallible.
func sanitizeMetadata(
	md map[string]any,
) map[string]any {
	if len(md) == 0 {
		return nil
	}

	clean := make(map[string]any, len(md))
	for k, v := range md {
		switch val := v.(type) {
		case bool:
			clean[k] = val
		case string:
			if utf8.RuneCountInString(val) <= MaxMetadataStringLen {
				clean[k] = val
			}
		case int, int8, int16, int32, int64,
			uint, uint8, uint16, uint32, uint64:
			clean[k] = val
		case float32:
			if !math.IsNaN(float64(val)) && !math.IsInf(float64(val), 0) {
				clean[k] = val
			}
		case float64:
			if !math.IsNaN(val) && !math.IsInf(val, 0) {
				clean[k] = val
			}
		}
	}

	if len(clean) == 0 {
		return nil
	}

	return clean
}
