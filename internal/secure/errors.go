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

import "errors"

var (
	// ErrKeyMissing indicates no encryption key is configured.
	ErrKeyMissing = errors.New("no encryption key configured")

	// ErrKeyInvalidLength indicates the configured key does not match the
	// cipher's required key size.
	ErrKeyInvalidLength = errors.New("encryption key must be exactly 32 bytes")

	// ErrDecryptionFailed indicates an authentication failure or a malformed
	// envelope. Ciphertext is never silently treated as plaintext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrUnsupportedEnvironment indicates no secure key-storage facility is
	// available on this host.
	ErrUnsupportedEnvironment = errors.New("secure key storage is not available in this environment")
)
