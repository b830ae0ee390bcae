// Package staging writes inbound upload streams to uniquely named temporary
// files before they are forwarded to the external media host. A staged file
// lives for one request; callers defer Cleanup so removal happens on every
// exit path, success or failure.
package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stager stages byte streams into a directory of temporary files.
type Stager struct {
	dir string
}

// StagedFile is a handle to one staged artifact. It supports exactly one
// Open/read cycle followed by Cleanup.
type StagedFile struct {
	path string
}

// New creates a Stager writing under dir. An empty dir means the OS default
// temporary directory.
func New(dir string) *Stager {
	return &Stager{dir: dir}
}

// Stage copies src to a fresh temporary file. The original filename only
// contributes its extension; the name itself comes from os.CreateTemp so
// concurrent stagings never collide.
func (s *Stager) Stage(src io.Reader, originalName string) (*StagedFile, error) {
	f, err := os.CreateTemp(s.dir, "upload-*"+filepath.Ext(originalName))
	if err != nil {
		return nil, fmt.Errorf("create staging file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("write staging file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("close staging file: %w", err)
	}

	return &StagedFile{path: f.Name()}, nil
}

// Path returns the on-disk location of the staged bytes.
func (f *StagedFile) Path() string {
	return f.path
}

// Open returns a reader over the staged bytes. The caller closes it.
func (f *StagedFile) Open() (io.ReadCloser, error) {
	return os.Open(f.path)
}

// Cleanup removes the staged file. It is safe to call more than once.
func (f *StagedFile) Cleanup() {
	if f == nil || f.path == "" {
		return
	}
	_ = os.Remove(f.path)
	f.path = ""
}
