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
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/99designs/keyring"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"
)

type RotateInternalTestSuite struct {
	suite.Suite

	ctx   context.Context
	appFs afero.Fs
	store *FileStore
	ring  keyring.Keyring
}

func (s *RotateInternalTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.appFs = afero.NewMemMapFs()
	s.ring = keyring.NewArrayKeyring(nil)

	codec, err := NewCodec(bytes.Repeat([]byte{0x42}, KeySize))
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s.store = NewFileStore(logger, s.appFs, "/data", codec)
}

func (s *RotateInternalTestSuite) newRotator() *Rotator {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	return NewRotator(logger, s.store, s.ring)
}

func (s *RotateInternalTestSuite) TestRotate() {
	type record struct {
		Value string `json:"value"`
	}

	s.Require().NoError(s.store.Save(s.ctx, "k", record{Value: "survives"}))

	originalBackends := availableBackends
	availableBackends = func() []keyring.BackendType {
		return []keyring.BackendType{keyring.FileBackend}
	}
	defer func() { availableBackends = originalBackends }()

	err := s.newRotator().Rotate(s.ctx)
	s.Require().NoError(err)

	// The rotated key is in the keychain and is a full-size key.
	item, err := s.ring.Get(keyringItem)
	s.Require().NoError(err)
	s.Len(item.Data, KeySize)

	// Stored data reads back under the rotated key.
	var out record
	found, err := s.store.Load(s.ctx, "k", &out)
	s.Require().NoError(err)
	s.True(found)
	s.Equal("survives", out.Value)

	// A codec built from the keychain key can open the stored blob directly.
	rotated, err := NewCodec(item.Data)
	s.Require().NoError(err)
	data, err := afero.ReadFile(s.appFs, "/data/k.enc")
	s.Require().NoError(err)
	var direct record
	rewrite, err := rotated.Open(string(data), &direct)
	s.Require().NoError(err)
	s.False(rewrite)
	s.Equal("survives", direct.Value)
}

func (s *RotateInternalTestSuite) TestRotateNoBackends() {
	originalBackends := availableBackends
	availableBackends = func() []keyring.BackendType { return nil }
	defer func() { availableBackends = originalBackends }()

	err := s.newRotator().Rotate(s.ctx)

	s.ErrorIs(err, ErrUnsupportedEnvironment)
}

func (s *RotateInternalTestSuite) TestRotateNilRing() {
	s.ring = nil
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	rotator := NewRotator(logger, s.store, nil)

	err := rotator.Rotate(s.ctx)

	s.ErrorIs(err, ErrUnsupportedEnvironment)
}

func TestRotateInternalTestSuite(t *testing.T) {
	suite.Run(t, new(RotateInternalTestSuite))
}
