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

package export

import (
	"encoding/json"

	"github.com/openscribe-io/openscribe/internal/audit"
)

// JSONExporter renders entries as a pretty-printed JSON array. An export of
// zero entries produces an empty array, not null.
type JSONExporter struct {
	entries []audit.Entry
}

// NewJSONExporter creates a new JSONExporter.
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

// Open begins the document.
func (e *JSONExporter) Open() error {
	e.entries = make([]audit.Entry, 0)

	return nil
}

// Write buffers one entry.
func (e *JSONExporter) Write(
	entry audit.Entry,
) error {
	e.entries = append(e.entries, entry)

	return nil
}

// Close marshals the buffered entries.
func (e *JSONExporter) Close() ([]byte, error) {
	return json.MarshalIndent(e.entries, "", "  ")
}
