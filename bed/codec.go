// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bed

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/bitpack"
	"github.com/mfranberg-go/plinkio/osfile"
)

// File is an open .bed stream: a decoded Header plus a cursor over its
// packed rows.
type File struct {
	f      *osfile.File
	Header Header
	curRow int
}

// Open opens an existing .bed file, decodes its header against the
// declared geometry, and positions the stream at the first row.
func Open(path string, numLoci, numSamples int) (*File, error) {
	f, err := osfile.Open(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, errors.Wrap(err, "open bed")
	}
	h, err := DecodeHeader(f.OSFile(), numLoci, numSamples)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "decode bed header")
	}
	return &File{f: f, Header: h}, nil
}

// Create truncates/creates path and writes an empty V100
// one-locus-per-row header: NumLoci starts at 0 and grows with WriteRow.
func Create(path string, numSamples int) (*File, error) {
	f, err := osfile.Open(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "create bed")
	}
	h := NewHeader(0, numSamples)
	if _, err := f.OSFile().Write(h.Bytes()); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write bed header")
	}
	return &File{f: f, Header: h}, nil
}

// NewFromHandle wraps an already-open file handle with a freshly written
// header and returns the resulting stream, for callers that hold an
// unlinked temporary descriptor (from osfile.TempFile) rather than a
// path -- the ingest pipeline's working bed.
func NewFromHandle(f *osfile.File, header Header) (*File, error) {
	if _, err := f.OSFile().Write(header.Bytes()); err != nil {
		return nil, errors.Wrap(err, "write bed header")
	}
	return &File{f: f, Header: header}, nil
}

// OSFile exposes the underlying *os.File, for callers that need to mmap
// it directly (e.g. to feed Transpose's already-open-descriptor variant).
func (bf *File) OSFile() *os.File {
	return bf.f.OSFile()
}

// ErrEnd is returned by ReadRow once the cursor reaches the header's
// declared row count, regardless of any trailing bytes left in the
// underlying stream.
var ErrEnd = errors.New("bed: end of rows")

// ReadRow unpacks the next row into dst, which must have length
// Header.NumCols(). Returns ErrEnd once NumRows rows have been read.
func (bf *File) ReadRow(dst []bitpack.Genotype) error {
	if bf.curRow >= bf.Header.NumRows() {
		return ErrEnd
	}
	rowBytes := bf.Header.RowBytes()
	buf := make([]byte, rowBytes)
	if _, err := io.ReadFull(bf.f.OSFile(), buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrEnd
		}
		return errors.Wrap(err, "read bed row")
	}
	bitpack.Unpack(buf, dst, bf.Header.NumCols())
	bf.curRow++
	return nil
}

// SkipRow advances the cursor and stream by one row without unpacking it.
func (bf *File) SkipRow() error {
	if bf.curRow >= bf.Header.NumRows() {
		return ErrEnd
	}
	rowBytes := int64(bf.Header.RowBytes())
	if _, err := bf.f.OSFile().Seek(rowBytes, io.SeekCurrent); err != nil {
		return errors.Wrap(err, "skip bed row")
	}
	bf.curRow++
	return nil
}

// WriteRow packs src (length Header.NumCols()) and appends it, bumping
// whichever of NumLoci/NumSamples the current snp-order grows.
func (bf *File) WriteRow(src []bitpack.Genotype) error {
	if len(src) != bf.Header.NumCols() {
		return errors.Errorf("bed: write row wants %d genotypes, got %d", bf.Header.NumCols(), len(src))
	}
	buf := make([]byte, bf.Header.RowBytes())
	bitpack.Pack(src, buf, bf.Header.NumCols())
	if _, err := bf.f.OSFile().Write(buf); err != nil {
		return errors.Wrap(err, "write bed row")
	}
	if bf.Header.Order == OneLocusPerRow {
		bf.Header.NumLoci++
	} else {
		bf.Header.NumSamples++
	}
	bf.curRow++
	return nil
}

// ResetRow rewinds the cursor and stream to the first data row.
func (bf *File) ResetRow() error {
	if _, err := bf.f.OSFile().Seek(int64(bf.Header.DataOffset()), io.SeekStart); err != nil {
		return errors.Wrap(err, "reset bed cursor")
	}
	bf.curRow = 0
	return nil
}

// Close closes the underlying stream. Idempotent.
func (bf *File) Close() error {
	return bf.f.Close()
}
