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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/audit"
	"github.com/openscribe-io/openscribe/internal/cli"
)

var cleanupWatch bool

// auditCleanupCmd represents the auditCleanup command.
var auditCleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove entries older than the retention period",
	Long: `Remove audit entries older than the configured retention period.

Runs once and exits. With --watch it keeps running and performs cleanup
on the configured cron schedule instead.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()
		store := buildAuditStore()

		if cleanupWatch {
			schedule := appConfig.Audit.CleanupSchedule
			if schedule == "" {
				cli.LogFatal(
					logger,
					"no cleanup schedule configured",
					fmt.Errorf("set audit.cleanup_schedule to use --watch"),
				)
			}

			scheduler := audit.NewCleanupScheduler(logger, store, schedule)
			if err := cli.RunWorker(ctx, scheduler); err != nil {
				cli.LogFatal(logger, "cleanup scheduler failed", err)
			}
			return
		}

		removed, err := store.CleanupExpired(ctx)
		if err != nil {
			cli.LogFatal(logger, "cleanup failed", err)
		}

		fmt.Println()
		cli.PrintKV(
			"Removed", strconv.Itoa(removed),
			"Retention Days", strconv.Itoa(store.Policy().Days()),
		)
	},
}

func init() {
	auditCmd.AddCommand(auditCleanupCmd)
	auditCleanupCmd.Flags().
		BoolVar(&cleanupWatch, "watch", false, "Run continuously on the configured cron schedule")
}
