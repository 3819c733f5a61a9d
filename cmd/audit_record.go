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

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/audit"
	"github.com/openscribe-io/openscribe/internal/cli"
	"github.com/openscribe-io/openscribe/internal/validation"
)

var (
	recordEventType    string
	recordResourceID   string
	recordFailed       bool
	recordErrorMessage string
	recordMeta         []string
)

// recordInput carries the flag values that need validation.
type recordInput struct {
	EventType string `validate:"required,event_type"`
}

// auditRecordCmd represents the auditRecord command.
var auditRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an audit entry",
	Long: `Record a single audit entry.

Metadata values are key=value pairs; values that look like PHI (nested
structures, long free text) are stripped before persistence.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		if msg, ok := validation.Struct(recordInput{EventType: recordEventType}); !ok {
			cli.LogFatal(
				logger,
				"invalid event type",
				errors.New(msg),
				"valid", audit.EventTypes,
			)
		}
		eventType := audit.EventType(recordEventType)

		metadata := make(map[string]any, len(recordMeta))
		for _, kv := range recordMeta {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				cli.LogFatal(
					logger,
					"invalid metadata",
					fmt.Errorf("expected key=value, got %q", kv),
				)
			}
			metadata[k] = v
		}

		success := !recordFailed
		store := buildAuditStore()
		entry := store.Log(audit.Input{
			EventType:    eventType,
			ResourceID:   recordResourceID,
			Success:      &success,
			ErrorMessage: recordErrorMessage,
			Metadata:     metadata,
		})

		if err := store.Flush(ctx); err != nil {
			cli.LogFatal(logger, "failed to persist audit entry", err)
		}

		fmt.Println()
		cli.PrintKV("ID", entry.ID, "Event", string(entry.EventType))
	},
}

func init() {
	auditCmd.AddCommand(auditRecordCmd)
	auditRecordCmd.Flags().
		StringVar(&recordEventType, "event-type", "", "Event type to record (required)")
	auditRecordCmd.Flags().
		StringVar(&recordResourceID, "resource-id", "", "Resource the event acted on")
	auditRecordCmd.Flags().
		BoolVar(&recordFailed, "failed", false, "Record the event as failed")
	auditRecordCmd.Flags().
		StringVar(&recordErrorMessage, "error-message", "", "Error message for failed events")
	auditRecordCmd.Flags().
		StringArrayVar(&recordMeta, "meta", nil, "Metadata key=value pair (repeatable)")
	_ = auditRecordCmd.MarkFlagRequired("event-type")
}
