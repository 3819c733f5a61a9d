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

// Package secure provides the versioned envelope codec and the encrypted
// key-value store protecting audit data at rest.
package secure

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	// KeySize is the symmetric key size required by AES-256-GCM.
	KeySize = 32

	envelopePrefix = "enc."
	versionCurrent = "v2"
	versionLegacy  = "v1"

	nonceSizeCurrent = 12
	nonceSizeLegacy  = 16
)

// Overridable for fault-injection in tests.
var (
	marshalJSON = json.Marshal
	randRead    = rand.Read
)

// Codec seals arbitrary JSON-serializable values into versioned envelopes
// and opens any recognized envelope version, flagging stale formats for
// rewrite.
type Codec struct {
	key []byte
}

// NewCodec creates a Codec for the given 32-byte symmetric key.
func NewCodec(
	key []byte,
) (*Codec, error) {
	if len(key) == 0 {
		return nil, ErrKeyMissing
	}
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d", ErrKeyInvalidLength, len(key))
	}

	return &Codec{key: key}, nil
}

// Seal serializes value to JSON, encrypts it under a fresh random nonce, and
// returns the envelope string tagged at the current version:
//
//	enc.v2.<base64url nonce>.<base64url ciphertext+tag>
func (c *Codec) Seal(
	value any,
) (string, error) {
	plaintext, err := marshalJSON(value)
	if err != nil {
		return "", fmt.Errorf("marshal envelope payload: %w", err)
	}

	gcm, err := c.newGCM(nonceSizeCurrent)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, nonceSizeCurrent)
	if _, err := randRead(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)

	return envelopePrefix + versionCurrent + "." +
		base64.RawURLEncoding.EncodeToString(nonce) + "." +
		base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

// Open decodes an envelope into out. The returned rewrite flag is true when
// the stored form is a recognized older version or legacy plaintext JSON and
// should be re-sealed at the current version by the caller. Migration is
// signalled through the flag, never through an error.
func (c *Codec) Open(
	envelope string,
	out any,
) (bool, error) {
	if !strings.HasPrefix(envelope, envelopePrefix) {
		// Legacy unencrypted form: raw JSON with no tag.
		if err := json.Unmarshal([]byte(envelope), out); err != nil {
			return false, fmt.Errorf("%w: not an envelope and not valid JSON", ErrDecryptionFailed)
		}

		return true, nil
	}

	parts := strings.SplitN(envelope, ".", 4)
	if len(parts) != 4 {
		return false, fmt.Errorf("%w: malformed envelope", ErrDecryptionFailed)
	}

	var (
		plaintext []byte
		err       error
		rewrite   bool
	)

	switch parts[1] {
	case versionCurrent:
		plaintext, err = c.open(parts[2], parts[3], base64.RawURLEncoding, nonceSizeCurrent)
	case versionLegacy:
		plaintext, err = c.open(parts[2], parts[3], base64.StdEncoding, nonceSizeLegacy)
		rewrite = true
	default:
		return false, fmt.Errorf("%w: unrecognized envelope version %q", ErrDecryptionFailed, parts[1])
	}

	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return false, fmt.Errorf("%w: corrupt payload", ErrDecryptionFailed)
	}

	return rewrite, nil
}

func (c *Codec) open(
	encodedNonce string,
	encodedCiphertext string,
	encoding *base64.Encoding,
	nonceSize int,
) ([]byte, error) {
	nonce, err := encoding.DecodeString(encodedNonce)
	if err != nil || len(nonce) != nonceSize {
		return nil, fmt.Errorf("%w: malformed nonce", ErrDecryptionFailed)
	}

	ciphertext, err := encoding.DecodeString(encodedCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed ciphertext", ErrDecryptionFailed)
	}

	gcm, err := c.newGCM(nonceSize)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed", ErrDecryptionFailed)
	}

	return plaintext, nil
}

func (c *Codec) newGCM(
	nonceSize int,
) (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	if nonceSize == nonceSizeCurrent {
		return cipher.NewGCM(block)
	}

	return cipher.NewGCMWithNonceSize(block, nonceSize)
}
