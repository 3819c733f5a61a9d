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

// Package export renders audit entries to portable document formats.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openscribe-io/openscribe/internal/audit"
)

// Format identifies an export output format.
type Format string

const (
	// FormatCSV exports entries as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON exports entries as a JSON array.
	FormatJSON Format = "json"
)

// Result is a rendered export document.
type Result struct {
	// Filename is a timestamped suggested name for the document.
	Filename string
	// MIMEType is the document's media type.
	MIMEType string
	// Content is the rendered document body.
	Content []byte
}

// Exporter renders a stream of audit entries into one document.
type Exporter interface {
	// Open begins a document.
	Open() error
	// Write renders one entry.
	Write(e audit.Entry) error
	// Close finalizes and returns the document body.
	Close() ([]byte, error)
}

// New creates the exporter for format.
func New(
	format Format,
) (Exporter, error) {
	switch format {
	case FormatCSV:
		return NewCSVExporter(), nil
	case FormatJSON:
		return NewJSONExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %q", format)
	}
}

// Run flushes the store, renders every persisted entry in the requested
// format, and records the export itself as an audit event.
func Run(
	ctx context.Context,
	logger *slog.Logger,
	store *audit.Store,
	format Format,
) (*Result, error) {
	exporter, err := New(format)
	if err != nil {
		return nil, err
	}

	entries, err := store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if err := exporter.Open(); err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := exporter.Write(e); err != nil {
			return nil, err
		}
	}

	content, err := exporter.Close()
	if err != nil {
		return nil, err
	}

	store.Log(audit.Input{
		EventType: audit.EventAuditExported,
		Metadata: map[string]any{
			"format":      string(format),
			"entry_count": len(entries),
		},
	})
	if err := store.Flush(ctx); err != nil {
		// The document is complete; losing the self-audit entry is logged
		// rather than failing the export.
		logger.Warn(
			"failed to record export event",
			slog.String("error", err.Error()),
		)
	}

	stamp := time.Now().UTC().Format("2006-01-02")

	result := &Result{
		Filename: fmt.Sprintf("audit-logs-%s.%s", stamp, format),
		Content:  content,
	}
	switch format {
	case FormatCSV:
		result.MIMEType = "text/csv"
	case FormatJSON:
		result.MIMEType = "application/json"
	}

	return result, nil
}
