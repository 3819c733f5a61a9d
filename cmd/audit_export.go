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

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/audit/export"
	"github.com/openscribe-io/openscribe/internal/cli"
)

var (
	exportFormat string
	exportOutput string
)

// auditExportCmd represents the auditExport command.
var auditExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export audit entries to a file",
	Long: `Export all audit entries as CSV or JSON for compliance review.

The export itself is recorded as an audit event.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		store := buildAuditStore()
		result, err := export.Run(ctx, logger, store, export.Format(exportFormat))
		if err != nil {
			cli.LogFatal(logger, "export failed", err)
		}

		output := exportOutput
		if output == "" {
			output = result.Filename
		}

		if err := afero.WriteFile(appFs, output, result.Content, 0o600); err != nil {
			cli.LogFatal(logger, "failed to write export file", err)
		}

		fmt.Println()
		cli.PrintKV(
			"Output", output,
			"Size", cli.FormatBytes(len(result.Content)),
		)
	},
}

func init() {
	auditCmd.AddCommand(auditExportCmd)
	auditExportCmd.Flags().
		StringVar(&exportFormat, "format", "csv", "Export format: csv or json")
	auditExportCmd.Flags().
		StringVar(&exportOutput, "output", "", "Output file path (defaults to a timestamped name)")
}
