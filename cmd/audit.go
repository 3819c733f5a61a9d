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
	"github.com/99designs/keyring"
	"github.com/spf13/cobra"

	"github.com/openscribe-io/openscribe/internal/audit"
	"github.com/openscribe-io/openscribe/internal/cli"
	"github.com/openscribe-io/openscribe/internal/secure"
)

// auditCmd represents the audit command.
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Manage the encrypted audit log",
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

// openKeyring opens the OS keychain. Returns nil on platforms without a
// usable backend; key resolution then falls through to the configured key.
func openKeyring() keyring.Keyring {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: secure.KeyringService,
	})
	if err != nil {
		logger.Debug("OS keychain unavailable", "error", err.Error())
		return nil
	}

	return ring
}

// buildFileStore assembles the encrypted file store from the resolved key
// and the configured storage directory.
func buildFileStore() *secure.FileStore {
	key, err := secure.LoadKey(openKeyring(), appConfig.Security.EncryptionKey)
	if err != nil {
		cli.LogFatal(logger, "failed to resolve encryption key", err)
	}

	codec, err := secure.NewCodec(key)
	if err != nil {
		cli.LogFatal(logger, "failed to create codec", err)
	}

	return secure.NewFileStore(logger, appFs, appConfig.Audit.StorageDir, codec)
}

// buildAuditStore assembles the audit store with the configured retention
// policy.
func buildAuditStore() *audit.Store {
	policy := audit.NewPolicy()
	if err := policy.SetDays(appConfig.Audit.RetentionDays); err != nil {
		cli.LogFatal(logger, "invalid retention configuration", err)
	}

	return audit.NewStore(logger, buildFileStore(), policy)
}
