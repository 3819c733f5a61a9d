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
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/openscribe-io/openscribe/internal/audit"
)

var csvHeader = []string{
	"ID",
	"Timestamp",
	"Event Type",
	"Resource ID",
	"Success",
	"User ID",
	"Error Message",
}

// CSVExporter renders entries as CSV. Field quoting and escaping follow
// encoding/csv, so commas, quotes, and newlines in values stay intact.
type CSVExporter struct {
	buf *bytes.Buffer
	w   *csv.Writer
}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	buf := &bytes.Buffer{}

	return &CSVExporter{
		buf: buf,
		w:   csv.NewWriter(buf),
	}
}

// Open writes the header row.
func (e *CSVExporter) Open() error {
	return e.w.Write(csvHeader)
}

// Write renders one entry as a row.
func (e *CSVExporter) Write(
	entry audit.Entry,
) error {
	return e.w.Write([]string{
		entry.ID,
		entry.Timestamp.UTC().Format(time.RFC3339),
		string(entry.EventType),
		entry.ResourceID,
		strconv.FormatBool(entry.Success),
		entry.UserID,
		entry.ErrorMessage,
	})
}

// Close flushes the writer and returns the document.
func (e *CSVExporter) Close() ([]byte, error) {
	e.w.Flush()
	if err := e.w.Error(); err != nil {
		return nil, err
	}

	return e.buf.Bytes(), nil
}
