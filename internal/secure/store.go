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
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// storeFileExt is the extension for envelope blob files.
const storeFileExt = ".enc"

// Storer persists opaque JSON-serializable values under string keys, applying
// the envelope codec at rest.
type Storer interface {
	// Save seals value and writes it under key.
	Save(ctx context.Context, key string, value any) error
	// Load reads and opens the value under key into out. The returned bool is
	// false when no value exists.
	Load(ctx context.Context, key string, out any) (bool, error)
	// Delete removes the value under key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}

// ensure FileStore implements Storer at compile time.
var _ Storer = (*FileStore)(nil)

// FileStore implements Storer with one envelope file per key on an afero
// filesystem.
type FileStore struct {
	logger *slog.Logger
	appFs  afero.Fs
	dir    string
	codec  *Codec
}

// NewFileStore creates a new FileStore rooted at dir.
func NewFileStore(
	logger *slog.Logger,
	appFs afero.Fs,
	dir string,
	codec *Codec,
) *FileStore {
	return &FileStore{
		logger: logger,
		appFs:  appFs,
		dir:    dir,
		codec:  codec,
	}
}

// Save seals value at the current envelope version and writes it under key.
func (s *FileStore) Save(
	_ context.Context,
	key string,
	value any,
) error {
	return s.saveWith(s.codec, key, value)
}

// Load opens the envelope stored under key into out. Older envelope versions
// and legacy plaintext blobs are rewritten at the current version before
// returning (read-triggers-migration); a failed rewrite is logged and retried
// on the next read.
func (s *FileStore) Load(
	_ context.Context,
	key string,
	out any,
) (bool, error) {
	data, err := afero.ReadFile(s.appFs, s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	rewrite, err := s.codec.Open(string(data), out)
	if err != nil {
		return false, err
	}

	if rewrite {
		if err := s.saveWith(s.codec, key, out); err != nil {
			s.logger.Warn(
				"failed to rewrite stale envelope",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
	}

	return true, nil
}

// Delete removes the value stored under key.
func (s *FileStore) Delete(
	_ context.Context,
	key string,
) error {
	err := s.appFs.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}

// Keys lists all keys with a stored envelope.
func (s *FileStore) Keys() ([]string, error) {
	infos, err := afero.ReadDir(s.appFs, s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list storage dir: %w", err)
	}

	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || !strings.HasSuffix(info.Name(), storeFileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(info.Name(), storeFileExt))
	}

	return keys, nil
}

// Rekey re-seals every stored blob under newCodec and makes it the store's
// active codec. Payloads pass through as raw JSON so no value-specific
// decoding is required.
func (s *FileStore) Rekey(
	_ context.Context,
	newCodec *Codec,
) error {
	keys, err := s.Keys()
	if err != nil {
		return err
	}

	for _, key := range keys {
		var payload json.RawMessage

		data, err := afero.ReadFile(s.appFs, s.path(key))
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		if _, err := s.codec.Open(string(data), &payload); err != nil {
			return fmt.Errorf("rekey %s: %w", key, err)
		}
		if err := s.saveWith(newCodec, key, payload); err != nil {
			return fmt.Errorf("rekey %s: %w", key, err)
		}
	}

	s.codec = newCodec

	return nil
}

func (s *FileStore) saveWith(
	codec *Codec,
	key string,
	value any,
) error {
	envelope, err := codec.Seal(value)
	if err != nil {
		return err
	}

	if err := s.appFs.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	if err := afero.WriteFile(s.appFs, s.path(key), []byte(envelope), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}

	return nil
}

func (s *FileStore) path(
	key string,
) string {
	return filepath.Join(s.dir, key+storeFileExt)
}
