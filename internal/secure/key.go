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
	"encoding/hex"
	"fmt"

	"github.com/99designs/keyring"
)

const (
	// KeyringService is the OS keychain service name holding rotated keys.
	KeyringService = "openscribe"

	// keyringItem is the keychain item key for the encryption key.
	keyringItem = "encryption-key"
)

// DecodeKey decodes a hex-encoded symmetric key from configuration.
func DecodeKey(
	hexKey string,
) ([]byte, error) {
	if hexKey == "" {
		return nil, ErrKeyMissing
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not valid hex", ErrKeyInvalidLength)
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrKeyInvalidLength, len(key))
	}

	return key, nil
}

// LoadKey resolves the active encryption key. A rotated key stored in the OS
// keychain takes precedence over the configured hex key; absence of both is
// ErrKeyMissing, never a silent default.
func LoadKey(
	ring keyring.Keyring,
	configured string,
) ([]byte, error) {
	if ring != nil {
		item, err := ring.Get(keyringItem)
		if err == nil && len(item.Data) == KeySize {
			return item.Data, nil
		}
	}

	return DecodeKey(configured)
}
