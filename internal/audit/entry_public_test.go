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

package audit_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/openscribe-io/openscribe/internal/audit"
)

type EntryPublicTestSuite struct {
	suite.Suite
}

func (s *EntryPublicTestSuite) TestNewEntry() {
	entry := audit.NewEntry(audit.Input{
		EventType:  audit.EventMeetingCreated,
		ResourceID: "meeting-1",
	})

	_, err := uuid.Parse(entry.ID)
	s.NoError(err)
	s.WithinDuration(time.Now().UTC(), entry.Timestamp, 5*time.Second)
	s.Equal(time.UTC, entry.Timestamp.Location())
	s.Equal(audit.EventMeetingCreated, entry.EventType)
	s.Equal("meeting-1", entry.ResourceID)
	s.True(entry.Success, "success defaults to true when unset")
	s.Equal(audit.LocalUserID, entry.UserID)
}

func (s *EntryPublicTestSuite) TestNewEntryExplicitFailure() {
	success := false

	entry := audit.NewEntry(audit.Input{
		EventType:    audit.EventNoteDeleted,
		Success:      &success,
		ErrorMessage: "disk full",
	})

	s.False(entry.Success)
	s.Equal("disk full", entry.ErrorMessage)
}

func (s *EntryPublicTestSuite) TestMetadataSanitization() {
	tests := []struct {
		name     string
		metadata map[string]any
		want     map[string]any
	}{
		{
			name:     "keeps booleans",
			metadata: map[string]any{"auto_saved": true},
			want:     map[string]any{"auto_saved": true},
		},
		{
			name:     "keeps integers and floats",
			metadata: map[string]any{"count": 3, "ratio": 0.5},
			want:     map[string]any{"count": 3, "ratio": 0.5},
		},
		{
			name:     "keeps short strings",
			metadata: map[string]any{"format": "csv"},
			want:     map[string]any{"format": "csv"},
		},
		{
			name:     "strips over-long strings",
			metadata: map[string]any{"note": strings.Repeat("a", 257)},
			want:     nil,
		},
		{
			name:     "keeps strings at the limit",
			metadata: map[string]any{"note": strings.Repeat("a", 256)},
			want:     map[string]any{"note": strings.Repeat("a", 256)},
		},
		{
			name:     "strips nested maps",
			metadata: map[string]any{"patient": map[string]any{"name": "x"}},
			want:     nil,
		},
		{
			name:     "strips slices",
			metadata: map[string]any{"tags": []string{"a", "b"}},
			want:     nil,
		},
		{
			name:     "strips byte blobs",
			metadata: map[string]any{"blob": []byte{0x01}},
			want:     nil,
		},
		{
			name:     "strips non-finite floats",
			metadata: map[string]any{"nan": math.NaN(), "inf": math.Inf(1)},
			want:     nil,
		},
		{
			name:     "strips nil values",
			metadata: map[string]any{"nothing": nil},
			want:     nil,
		},
		{
			name: "keeps clean fields while stripping violators",
			metadata: map[string]any{
				"count":  2,
				"nested": map[string]any{"deep": 1},
			},
			want: map[string]any{"count": 2},
		},
		{
			name:     "empty metadata stays nil",
			metadata: nil,
			want:     nil,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			entry := audit.NewEntry(audit.Input{
				EventType: audit.EventSettingsChanged,
				Metadata:  tt.metadata,
			})

			s.Equal(tt.want, entry.Metadata)
		})
	}
}

func (s *EntryPublicTestSuite) TestEventTypeValid() {
	s.True(audit.EventMeetingCreated.Valid())
	s.True(audit.EventAuditPurged.Valid())
	s.False(audit.EventType("meeting.renamed").Valid())
	s.False(audit.EventType("").Valid())
}

func TestEntryPublicTestSuite(t *testing.T) {
	suite.Run(t, new(EntryPublicTestSuite))
}
