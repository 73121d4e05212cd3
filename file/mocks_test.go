package file

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"
)

// truncatingFs serves files that end early: reads stop after limit bytes
// even though Stat reports the full size.
type truncatingFs struct {
	afero.Fs
	limit int
}

func (t *truncatingFs) Open(name string) (afero.File, error) {
	f, err := t.Fs.Open(name)
	if err != nil {
		return nil, err
	}
	return &truncatedFile{File: f, remaining: t.limit}, nil
}

type truncatedFile struct {
	afero.File
	remaining int
}

func (f *truncatedFile) Read(p []byte) (int, error) {
	if f.remaining <= 0 {
		return 0, io.EOF
	}
	if len(p) > f.remaining {
		p = p[:f.remaining]
	}
	n, err := f.File.Read(p)
	f.remaining -= n
	return n, err
}

// shortWriteFs accepts only half of every write without reporting an error.
type shortWriteFs struct {
	afero.Fs
}

func (s *shortWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	f, err := s.Fs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &halfWriter{File: f}, nil
}

type halfWriter struct {
	afero.File
}

func (h *halfWriter) Write(p []byte) (int, error) {
	return h.File.Write(p[:len(p)/2])
}

// failingRenameFs refuses every rename.
type failingRenameFs struct {
	afero.Fs
}

func (f *failingRenameFs) Rename(oldname, newname string) error {
	return errors.New("rename refused")
}
