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

// Package audit provides the encrypted, tamper-evident audit log: entry
// model, write-batching queue, filtered queries, retention expiry, and purge.
package audit

import (
	"slices"
	"time"
)

// StorageKey is the single logical key holding the serialized audit log.
const StorageKey = "openscribe_audit_logs"

// LocalUserID is the acting principal in a single-user local deployment.
const LocalUserID = "local-user"

// EventType classifies an audit event. The set is closed; entries never
// carry free text describing payload content.
type EventType string

const (
	// EventMeetingCreated records creation of a meeting record.
	EventMeetingCreated EventType = "meeting.created"
	// EventMeetingUpdated records mutation of a meeting record.
	EventMeetingUpdated EventType = "meeting.updated"
	// EventMeetingDeleted records deletion of a meeting record.
	EventMeetingDeleted EventType = "meeting.deleted"
	// EventTranscriptCreated records a transcription completing.
	EventTranscriptCreated EventType = "transcript.created"
	// EventTranscriptDeleted records deletion of a transcript.
	EventTranscriptDeleted EventType = "transcript.deleted"
	// EventNoteCreated records creation of a note.
	EventNoteCreated EventType = "note.created"
	// EventNoteUpdated records mutation of a note.
	EventNoteUpdated EventType = "note.updated"
	// EventNoteDeleted records deletion of a note.
	EventNoteDeleted EventType = "note.deleted"
	// EventSettingsChanged records a settings mutation.
	EventSettingsChanged EventType = "settings.changed"
	// EventAuditExported records an export of the audit log itself.
	EventAuditExported EventType = "audit.exported"
	// EventAuditPurged records a manual purge or retention cleanup of the log.
	EventAuditPurged EventType = "audit.purged"
)

// EventTypes is the closed enumeration of recognized event types.
var EventTypes = []EventType{
	EventMeetingCreated,
	EventMeetingUpdated,
	EventMeetingDeleted,
	EventTranscriptCreated,
	EventTranscriptDeleted,
	EventNoteCreated,
	EventNoteUpdated,
	EventNoteDeleted,
	EventSettingsChanged,
	EventAuditExported,
	EventAuditPurged,
}

// Valid reports whether t is a recognized event type.
func (t EventType) Valid() bool {
	return slices.Contains(EventTypes, t)
}

// Entry represents a single audit log record. Immutable once written. An
// entry never contains the protected content the event concerned, only
// identifiers, counts, and flags.
type Entry struct {
	// ID is the unique identifier for this audit entry.
	ID string `json:"id"`
	// Timestamp is when the entry was created, in UTC.
	Timestamp time.Time `json:"timestamp"`
	// EventType is the tagged classification of the event.
	EventType EventType `json:"event_type"`
	// ResourceID is the opaque identifier of the affected resource, if any.
	ResourceID string `json:"resource_id,omitempty"`
	// Success is the outcome flag.
	Success bool `json:"success"`
	// ErrorMessage is a short sanitized failure description, if any.
	ErrorMessage string `json:"error_message,omitempty"`
	// UserID identifies the acting principal.
	UserID string `json:"user_id"`
	// Metadata holds primitive-valued annotations (see sanitizeMetadata).
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Filter narrows a query. All fields are optional and combine with AND.
type Filter struct {
	// Start is the inclusive lower timestamp bound.
	Start *time.Time
	// End is the inclusive upper timestamp bound.
	End *time.Time
	// EventTypes restricts results to the given types.
	EventTypes []EventType
	// Success restricts results to the given outcome.
	Success *bool
	// ResourceID restricts results to an exact resource match.
	ResourceID string
	// Limit keeps the first N results after sorting and filtering.
	Limit int
}

// Matches reports whether e satisfies every set filter dimension.
func (f Filter) Matches(
	e Entry,
) bool {
	if f.Start != nil && e.Timestamp.Before(*f.Start) {
		return false
	}
	if f.End != nil && e.Timestamp.After(*f.End) {
		return false
	}
	if len(f.EventTypes) > 0 && !slices.Contains(f.EventTypes, e.EventType) {
		return false
	}
	if f.Success != nil && e.Success != *f.Success {
		return false
	}
	if f.ResourceID != "" && e.ResourceID != f.ResourceID {
		return false
	}

	return true
}
