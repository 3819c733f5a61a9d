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
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/audit"
	"github.com/openscribe-io/openscribe/internal/cli"
)

var (
	listLimit      int
	listEventTypes []string
	listResourceID string
	listFailedOnly bool
	listSince      time.Duration
	listUntil      time.Duration
)

// auditListCmd represents the auditList command.
var auditListCmd = &cobra.Command{
	Use:   "list",
	Short: "List audit entries",
	Long: `List audit entries, newest first.

Buffered writes are flushed before the query runs, so an entry recorded
moments ago always shows up.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		filter := audit.Filter{
			ResourceID: listResourceID,
			Limit:      listLimit,
		}
		for _, t := range listEventTypes {
			eventType := audit.EventType(t)
			if !eventType.Valid() {
				cli.LogFatal(
					logger,
					"invalid event type",
					fmt.Errorf("unknown event type %q", t),
					"valid", audit.EventTypes,
				)
			}
			filter.EventTypes = append(filter.EventTypes, eventType)
		}
		if listFailedOnly {
			success := false
			filter.Success = &success
		}
		if listSince > 0 {
			start := time.Now().UTC().Add(-listSince)
			filter.Start = &start
		}
		if listUntil > 0 {
			end := time.Now().UTC().Add(-listUntil)
			filter.End = &end
		}

		store := buildAuditStore()
		entries, err := store.Query(ctx, filter)
		if err != nil {
			cli.LogFatal(logger, "failed to query audit entries", err)
		}

		if jsonOutput {
			out, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				cli.LogFatal(logger, "failed to marshal entries", err)
			}
			fmt.Println(string(out))
			return
		}

		fmt.Println()
		cli.PrintKV("Total", strconv.Itoa(len(entries)))

		if len(entries) == 0 {
			fmt.Println("  No audit entries found.")
			return
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			status := "ok"
			if !e.Success {
				status = "failed"
			}
			rows = append(rows, []string{
				e.ID,
				e.Timestamp.Format("2006-01-02 15:04:05"),
				cli.FormatAge(time.Since(e.Timestamp)),
				string(e.EventType),
				e.ResourceID,
				status,
				e.ErrorMessage,
			})
		}

		cli.PrintCompactTable([]cli.Section{
			{
				Title: "Audit Entries",
				Headers: []string{
					"ID",
					"TIMESTAMP",
					"AGE",
					"EVENT",
					"RESOURCE",
					"STATUS",
					"ERROR",
				},
				Rows: rows,
			},
		})
	},
}

func init() {
	auditCmd.AddCommand(auditListCmd)
	auditListCmd.Flags().
		IntVar(&listLimit, "limit", 20, "Maximum number of entries to return (0 for all)")
	auditListCmd.Flags().
		StringArrayVar(&listEventTypes, "event-type", nil, "Filter by event type (repeatable)")
	auditListCmd.Flags().
		StringVar(&listResourceID, "resource-id", "", "Filter by resource ID")
	auditListCmd.Flags().
		BoolVar(&listFailedOnly, "failed-only", false, "Show only failed events")
	auditListCmd.Flags().
		DurationVar(&listSince, "since", 0, "Show entries newer than this age (e.g. 24h)")
	auditListCmd.Flags().
		DurationVar(&listUntil, "until", 0, "Show entries older than this age (e.g. 1h)")
}
