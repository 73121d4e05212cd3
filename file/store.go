package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/opd-ai/bufcrypt/limits"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

var (
	// ErrNotFound indicates the named file does not exist
	ErrNotFound = errors.New("file not found")

	// ErrShortRead indicates fewer bytes were read than the file reported
	ErrShortRead = errors.New("short read")

	// ErrShortWrite indicates fewer bytes were written than the buffer holds
	ErrShortWrite = errors.New("short write")
)

// DefaultPerm is the mode of files created by Write.
const DefaultPerm os.FileMode = 0o600

// Reader supplies the whole contents of a named file.
type Reader interface {
	Read(name string) ([]byte, error)
}

// Writer persists a buffer under a name.
type Writer interface {
	Write(name string, data []byte) error
}

// Store reads and writes whole files on an afero filesystem.
type Store struct {
	fs      afero.Fs
	perm    os.FileMode
	maxSize int64
}

// Option configures a Store.
type Option func(*Store)

// WithPerm sets the mode used for files created by Write.
func WithPerm(perm os.FileMode) Option {
	return func(s *Store) { s.perm = perm }
}

// WithMaxSize sets the largest file Read will load.
func WithMaxSize(size int64) Option {
	return func(s *Store) { s.maxSize = size }
}

// NewStore creates a store over fs.
func NewStore(fsys afero.Fs, opts ...Option) *Store {
	s := &Store{
		fs:      fsys,
		perm:    DefaultPerm,
		maxSize: limits.MaxFileSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewOSStore creates a store over the host filesystem.
func NewOSStore(opts ...Option) *Store {
	return NewStore(afero.NewOsFs(), opts...)
}

// Read returns the entire contents of name. A missing file yields
// ErrNotFound and a file that delivers fewer bytes than its size yields
// ErrShortRead. An empty file is a valid, empty buffer.
func (s *Store) Read(name string) ([]byte, error) {
	info, err := s.fs.Stat(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}
	if err := limits.ValidateSize(info.Size(), s.maxSize); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	f, err := s.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	buf := make([]byte, info.Size())
	n, err := io.ReadFull(f, buf)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: got %d of %d bytes", ErrShortRead, name, n, len(buf))
		}
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Read",
		"package":  "file",
		"name":     name,
		"size":     n,
	}).Debug("Read file")

	return buf, nil
}

// Write stores data under name. The data goes to a uniquely named temporary
// file in the same directory that is renamed into place, so name either
// holds the full buffer or is left as it was.
func (s *Store) Write(name string, data []byte) error {
	f, err := afero.TempFile(s.fs, filepath.Dir(name), "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file for %s: %w", name, err)
	}
	tmp := f.Name()

	n, err := f.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		f.Close()
		s.fs.Remove(tmp)
		if errors.Is(err, io.ErrShortWrite) {
			return fmt.Errorf("%w: %s: wrote %d of %d bytes", ErrShortWrite, name, n, len(data))
		}
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}

	if err := f.Close(); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", tmp, err)
	}

	if err := s.fs.Chmod(tmp, s.perm); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("failed to chmod %s: %w", tmp, err)
	}

	if err := s.fs.Rename(tmp, name); err != nil {
		s.fs.Remove(tmp)
		return fmt.Errorf("failed to rename %s: %w", tmp, err)
	}

	logrus.WithFields(logrus.Fields{
		"function": "Write",
		"package":  "file",
		"name":     name,
		"size":     n,
	}).Debug("Wrote file")

	return nil
}
