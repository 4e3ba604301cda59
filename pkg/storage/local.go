package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
)

// Local implements Storage on a directory. All paths are resolved inside the
// root, so keys cannot reach files outside it.
type Local struct {
	root *os.Root
}

// NewLocal creates the directory if needed and opens it as the storage root.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		return nil, ErrInvalidConfig
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return &Local{root: root}, nil
}

// Put writes the object to a file, creating parent directories.
// Cache-Control and ACL options have no meaning on disk and are ignored.
func (l *Local) Put(_ context.Context, key string, r io.Reader, size int64, opts ...Option) (*FileInfo, error) {
	if _, err := objectKey("", key); err != nil {
		return nil, err
	}
	o := newPutOptions(key, opts)

	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if size >= 0 && n != size {
		return nil, fmt.Errorf("%w: wrote %d bytes, expected %d", ErrUploadFailed, n, size)
	}

	if dir := path.Dir(key); dir != "." {
		if err := l.root.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
		}
	}
	if err := l.root.WriteFile(key, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return &FileInfo{Key: key, ContentType: o.contentType, Size: n}, nil
}

// Get opens the file for key.
func (l *Local) Get(_ context.Context, key string) (io.ReadCloser, error) {
	if _, err := objectKey("", key); err != nil {
		return nil, err
	}
	f, err := l.root.Open(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	return f, nil
}

// Delete removes the file for key.
func (l *Local) Delete(_ context.Context, key string) error {
	if _, err := objectKey("", key); err != nil {
		return err
	}
	if err := l.root.Remove(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return nil
}

// Close releases the root directory handle.
func (l *Local) Close() error {
	return l.root.Close()
}

var _ Storage = (*Local)(nil)
