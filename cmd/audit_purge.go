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

	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/cli"
)

var purgeYes bool

// auditPurgeCmd represents the auditPurge command.
var auditPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all audit entries",
	Long: `Delete every audit entry.

The log afterwards contains a single entry recording the purge, so the
deletion is itself auditable.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		if !purgeYes {
			cli.LogFatal(
				logger,
				"refusing to purge",
				fmt.Errorf("pass --yes to confirm deleting all audit entries"),
			)
		}

		store := buildAuditStore()
		if err := store.PurgeAll(ctx); err != nil {
			cli.LogFatal(logger, "purge failed", err)
		}

		logger.Info("audit log purged")
	},
}

func init() {
	auditCmd.AddCommand(auditPurgeCmd)
	auditPurgeCmd.Flags().BoolVar(&purgeYes, "yes", false, "Confirm the purge")
}
