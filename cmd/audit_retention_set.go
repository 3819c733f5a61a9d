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
	"github.com/spf13/viper"

	"github.com/openscribe-io/openscribe/internal/audit"
	"github.com/openscribe-io/openscribe/internal/cli"
)

// auditRetentionSetCmd represents the auditRetentionSet command.
var auditRetentionSetCmd = &cobra.Command{
	Use:   "set DAYS",
	Short: "Set the retention period in days",
	Long: `Set the retention period in days and persist it to the config file.

Entries older than the retention period are removed on the next cleanup.
A non-positive value is rejected without changing the stored policy.
`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		days, err := strconv.Atoi(args[0])
		if err != nil {
			cli.LogFatal(
				logger,
				"invalid retention",
				fmt.Errorf("%w: %q is not an integer", audit.ErrInvalidRetention, args[0]),
			)
		}

		policy := audit.NewPolicy()
		if err := policy.SetDays(days); err != nil {
			cli.LogFatal(logger, "invalid retention", err)
		}

		viper.Set("audit.retention_days", days)
		if err := viper.WriteConfig(); err != nil {
			cli.LogFatal(
				logger,
				"failed to persist retention",
				err,
				"openscribeFile", viper.ConfigFileUsed(),
			)
		}

		fmt.Println()
		cli.PrintKV("Retention Days", strconv.Itoa(policy.Days()))
	},
}

func init() {
	auditRetentionCmd.AddCommand(auditRetentionSetCmd)
}
