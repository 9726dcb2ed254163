// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package osfile

import (
	"os"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Mmap is a scoped memory mapping of a file descriptor, released exactly
// once by Close. Transpose and the allele-flip pass each open one of
// these for the duration of a single operation and never let it outlive
// the call.
type Mmap struct {
	data    []byte
	closeMu sync.Mutex
	closed  bool
}

// MapReadOnly maps the whole of f read-only (PROT_READ, MAP_PRIVATE), used
// by transpose to walk a source .bed without loading it into a Go slice.
func MapReadOnly(f *os.File) (*Mmap, error) {
	return mapFile(f, unix.PROT_READ)
}

// MapReadWrite maps the whole of f for read-write access (PROT_READ|
// PROT_WRITE, MAP_SHARED so writes land back in the file), used by the
// allele-flip pass to rewrite packed rows in place.
func MapReadWrite(f *os.File) (*Mmap, error) {
	return mapFile(f, unix.PROT_READ|unix.PROT_WRITE)
}

func mapFile(f *os.File, prot int) (*Mmap, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stat for mmap")
	}
	size := fi.Size()
	if size == 0 {
		return &Mmap{data: nil}, nil
	}
	flags := unix.MAP_SHARED
	if prot == unix.PROT_READ {
		flags = unix.MAP_PRIVATE
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), prot, flags)
	if err != nil {
		return nil, errors.Wrap(err, "mmap")
	}
	return &Mmap{data: data}, nil
}

// Bytes returns the mapped region. It is valid only until Close.
func (m *Mmap) Bytes() []byte { return m.data }

// Close unmaps the region. Safe to call more than once; only the first
// call does any work.
func (m *Mmap) Close() error {
	m.closeMu.Lock()
	defer m.closeMu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	if len(m.data) == 0 {
		return nil
	}
	if err := unix.Munmap(m.data); err != nil {
		return errors.Wrap(err, "munmap")
	}
	return nil
}
