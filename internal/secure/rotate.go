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

package secure

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/99designs/keyring"
)

// availableBackends reports which OS keychain backends exist on this host.
// Overridable in tests.
var availableBackends = keyring.AvailableBackends

// Rotator replaces the active encryption key and re-seals all stored data
// under it. Rotation requires an OS keychain to hold the new key; hosts
// without one fail fast.
type Rotator struct {
	logger *slog.Logger
	store  *FileStore
	ring   keyring.Keyring
}

// NewRotator creates a new Rotator.
func NewRotator(
	logger *slog.Logger,
	store *FileStore,
	ring keyring.Keyring,
) *Rotator {
	return &Rotator{
		logger: logger,
		store:  store,
		ring:   ring,
	}
}

// Rotate generates a fresh key, stores it in the OS keychain, and re-seals
// every stored blob under it. The key is persisted before data is rewritten
// so a partial rotation never leaves blobs sealed under an unrecoverable key.
func (r *Rotator) Rotate(
	ctx context.Context,
) error {
	if len(availableBackends()) == 0 || r.ring == nil {
		return ErrUnsupportedEnvironment
	}

	newKey := make([]byte, KeySize)
	if _, err := randRead(newKey); err != nil {
		return fmt.Errorf("generate key: %w", err)
	}

	newCodec, err := NewCodec(newKey)
	if err != nil {
		return err
	}

	if err := r.ring.Set(keyring.Item{
		Key:   keyringItem,
		Label: "OpenScribe encryption key",
		Data:  newKey,
	}); err != nil {
		return fmt.Errorf("store rotated key: %w", err)
	}

	if err := r.store.Rekey(ctx, newCodec); err != nil {
		return err
	}

	r.logger.Info("encryption key rotated")

	return nil
}
