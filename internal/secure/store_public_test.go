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

package secure_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/suite"

	"github.com/openscribe-io/openscribe/internal/secure"
)

type FileStorePublicTestSuite struct {
	suite.Suite

	ctx   context.Context
	appFs afero.Fs
	store *secure.FileStore
}

func (s *FileStorePublicTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.appFs = afero.NewMemMapFs()

	codec, err := secure.NewCodec(bytes.Repeat([]byte{0x42}, secure.KeySize))
	s.Require().NoError(err)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	s.store = secure.NewFileStore(logger, s.appFs, "/data", codec)
}

func (s *FileStorePublicTestSuite) TestSaveLoad() {
	in := payload{Name: "saved", Count: 11}

	err := s.store.Save(s.ctx, "openscribe_audit_logs", in)
	s.Require().NoError(err)

	var out payload
	found, err := s.store.Load(s.ctx, "openscribe_audit_logs", &out)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(in, out)
}

func (s *FileStorePublicTestSuite) TestSaveWritesAnEnvelopeNotPlaintext() {
	err := s.store.Save(s.ctx, "k", payload{Name: "sensitive"})
	s.Require().NoError(err)

	data, err := afero.ReadFile(s.appFs, "/data/k.enc")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(string(data), "enc.v2."))
	s.NotContains(string(data), "sensitive")
}

func (s *FileStorePublicTestSuite) TestLoadMissingKey() {
	var out payload
	found, err := s.store.Load(s.ctx, "absent", &out)

	s.NoError(err)
	s.False(found)
}

func (s *FileStorePublicTestSuite) TestLoadRewritesLegacyPlaintext() {
	raw, err := json.Marshal(payload{Name: "legacy", Count: 1})
	s.Require().NoError(err)
	s.Require().NoError(s.appFs.MkdirAll("/data", 0o700))
	s.Require().NoError(afero.WriteFile(s.appFs, "/data/k.enc", raw, 0o600))

	var out payload
	found, err := s.store.Load(s.ctx, "k", &out)
	s.Require().NoError(err)
	s.True(found)
	s.Equal("legacy", out.Name)

	// The stored form is now a current-version envelope.
	data, err := afero.ReadFile(s.appFs, "/data/k.enc")
	s.Require().NoError(err)
	s.True(strings.HasPrefix(string(data), "enc.v2."))

	var again payload
	_, err = s.store.Load(s.ctx, "k", &again)
	s.Require().NoError(err)
	s.Equal(out, again)
}

func (s *FileStorePublicTestSuite) TestLoadCorruptEnvelope() {
	s.Require().NoError(s.appFs.MkdirAll("/data", 0o700))
	s.Require().
		NoError(afero.WriteFile(s.appFs, "/data/k.enc", []byte("enc.v2.garbage.bytes"), 0o600))

	var out payload
	_, err := s.store.Load(s.ctx, "k", &out)

	s.ErrorIs(err, secure.ErrDecryptionFailed)
}

func (s *FileStorePublicTestSuite) TestDelete() {
	s.Require().NoError(s.store.Save(s.ctx, "k", payload{Name: "x"}))

	err := s.store.Delete(s.ctx, "k")
	s.Require().NoError(err)

	var out payload
	found, err := s.store.Load(s.ctx, "k", &out)
	s.NoError(err)
	s.False(found)

	s.NoError(s.store.Delete(s.ctx, "k"), "deleting a missing key is not an error")
}

func (s *FileStorePublicTestSuite) TestKeys() {
	keys, err := s.store.Keys()
	s.Require().NoError(err)
	s.Empty(keys)

	s.Require().NoError(s.store.Save(s.ctx, "a", payload{}))
	s.Require().NoError(s.store.Save(s.ctx, "b", payload{}))

	keys, err = s.store.Keys()
	s.Require().NoError(err)
	s.ElementsMatch([]string{"a", "b"}, keys)
}

func (s *FileStorePublicTestSuite) TestRekey() {
	in := payload{Name: "survives rotation", Count: 5}
	s.Require().NoError(s.store.Save(s.ctx, "k", in))

	before, err := afero.ReadFile(s.appFs, "/data/k.enc")
	s.Require().NoError(err)

	newCodec, err := secure.NewCodec(bytes.Repeat([]byte{0x07}, secure.KeySize))
	s.Require().NoError(err)

	err = s.store.Rekey(s.ctx, newCodec)
	s.Require().NoError(err)

	after, err := afero.ReadFile(s.appFs, "/data/k.enc")
	s.Require().NoError(err)
	s.NotEqual(before, after)

	// The store now reads and writes under the new codec.
	var out payload
	found, err := s.store.Load(s.ctx, "k", &out)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(in, out)
}

func TestFileStorePublicTestSuite(t *testing.T) {
	suite.Run(t, new(FileStorePublicTestSuite))
}
