// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package osfile

import (
	"os"
	"sync"

	"github.com/pkg/errors"
)

// File wraps *os.File with a Close that is safe to call more than once,
// matching the handle-owns-its-resources discipline the bed/bim/fam
// tables rely on when a caller closes a handle that's already been closed
// along another error path.
type File struct {
	f        *os.File
	closeMu  sync.Mutex
	closed   bool
	closeErr error

	// removeOnClose, when non-empty, is removed after the OS file is
	// closed -- the Windows fallback for TempFile, where a file can't be
	// unlinked while still open.
	removeOnClose string
}

// Open opens path for the given os.OpenFile flags and permissions.
func Open(path string, flag int, perm os.FileMode) (*File, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	return &File{f: f}, nil
}

// Wrap adopts an already-open *os.File.
func Wrap(f *os.File) *File {
	return &File{f: f}
}

// OSFile returns the underlying *os.File.
func (s *File) OSFile() *os.File { return s.f }

// Fd returns the underlying file descriptor.
func (s *File) Fd() uintptr { return s.f.Fd() }

// Close closes the underlying file exactly once; subsequent calls return
// the same error (nil on success) without touching the OS handle again.
func (s *File) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return s.closeErr
	}
	s.closed = true
	s.closeErr = s.f.Close()
	if s.removeOnClose != "" {
		if err := os.Remove(s.removeOnClose); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
	}
	return s.closeErr
}
