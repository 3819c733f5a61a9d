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
	"reflect"
	"time"
)

// ResourceIdentifier is implemented by results that can name the resource
// an audited operation acted on.
type ResourceIdentifier interface {
	ResourceID() string
}

// Descriptor names the audited operation. ResourceID, when set, overrides
// extraction from the result; Metadata is merged into the recorded entry
// alongside the measured duration.
type Descriptor struct {
	EventType  EventType
	ResourceID string
	Metadata   map[string]any
}

// WithAudit runs op and records its outcome per desc. The result and error
// of op pass through untouched; auditing never changes what the caller
// observes. A failed op is recorded with its error message, a successful
// one with the resource ID from desc or extracted from the result.
func WithAudit[T any](
	ctx context.Context,
	store *Store,
	desc Descriptor,
	op func(ctx context.Context) (T, error),
) (T, error) {
	start := time.Now()
	result, err := op(ctx)
	elapsed := time.Since(start)

	metadata := make(map[string]any, len(desc.Metadata)+1)
	for k, v := range desc.Metadata {
		metadata[k] = v
	}
	metadata["duration_ms"] = elapsed.Milliseconds()

	in := Input{
		EventType:  desc.EventType,
		ResourceID: desc.ResourceID,
		Metadata:   metadata,
	}

	if err != nil {
		success := false
		in.Success = &success
		in.ErrorMessage = err.Error()
	} else if in.ResourceID == "" {
		in.ResourceID = extractResourceID(result)
	}

	store.Log(in)

	return result, err
}

// extractResourceID pulls a resource ID off v: the ResourceIdentifier
// interface wins, then a string field named ID. Anything else yields "".
func extractResourceID(v any) string {
	if v == nil {
		return ""
	}

	if r, ok := v.(ResourceIdentifier); ok {
		return r.ResourceID()
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return ""
	}

	f := rv.FieldByName("ID")
	if f.IsValid() && f.Kind() == reflect.String {
		return f.String()
	}

	return ""
}
