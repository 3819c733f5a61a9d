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
	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/cli"
	"github.com/openscribe-io/openscribe/internal/secure"
)

// keyRotateCmd represents the keyRotate command.
var keyRotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate the encryption key",
	Long: `Generate a fresh encryption key, store it in the OS keychain, and
re-encrypt every stored file under it.

Fails on platforms without a usable keychain backend; the existing key
and data are left untouched.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		ring := openKeyring()
		rotator := secure.NewRotator(logger, buildFileStore(), ring)
		if err := rotator.Rotate(ctx); err != nil {
			cli.LogFatal(logger, "key rotation failed", err)
		}

		logger.Info("encryption key rotated")
	},
}

func init() {
	keyCmd.AddCommand(keyRotateCmd)
}
