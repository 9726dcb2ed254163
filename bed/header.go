// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bed

import (
	"io"

	"github.com/pkg/errors"
)

// Version is the bed file format generation.
type Version int

const (
	VersionPre099 Version = iota
	Version099
	Version100
)

// SnpOrder is the orientation of rows in the packed matrix.
type SnpOrder int

const (
	OneSamplePerRow SnpOrder = iota
	OneLocusPerRow
)

const (
	v100Magic1   = 0x6C
	v100Magic2   = 0x1B
	snpOrderBit  = 0x01
	headerProbeN = 3
)

// Header is the in-memory bed header: format version, row orientation,
// and the declared loci/sample counts it was opened or created with.
type Header struct {
	Version    Version
	Order      SnpOrder
	NumLoci    int
	NumSamples int
}

// NewHeader returns the header written by Create: V100, one-locus-per-row.
func NewHeader(numLoci, numSamples int) Header {
	return Header{
		Version:    Version100,
		Order:      OneLocusPerRow,
		NumLoci:    numLoci,
		NumSamples: numSamples,
	}
}

// NewHeaderTransposed returns the header for a working one-sample-per-row
// file with a fixed locus count and zero samples, the orientation the
// ingest pipeline streams .ped rows into before its final transpose.
func NewHeaderTransposed(numLoci int) Header {
	return Header{
		Version:    Version100,
		Order:      OneSamplePerRow,
		NumLoci:    numLoci,
		NumSamples: 0,
	}
}

// snpOrderFromByte decodes a V099/V100 order byte. Anything other than
// exactly 0x00 or 0x01 defensively decodes as one-sample-per-row -- the
// chosen resolution (see DESIGN.md) of the open question over unknown
// order bytes, applied uniformly to both versions.
func snpOrderFromByte(b byte) SnpOrder {
	if b == snpOrderBit {
		return OneLocusPerRow
	}
	return OneSamplePerRow
}

func snpOrderToByte(order SnpOrder) byte {
	if order == OneLocusPerRow {
		return snpOrderBit
	}
	return 0
}

// DecodeHeader reads the fixed 3-byte header probe from r (failing if
// fewer than 3 bytes are available, matching the original reader's
// unconditional 3-byte read before sniffing), decodes the version and
// snp-order, and seeks r to the resulting data offset.
func DecodeHeader(r io.ReadSeeker, numLoci, numSamples int) (Header, error) {
	var probe [headerProbeN]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		return Header{}, errors.Wrap(err, "read bed header")
	}

	h := Header{NumLoci: numLoci, NumSamples: numSamples}
	switch {
	case probe[0] == v100Magic1 && probe[1] == v100Magic2:
		h.Version = Version100
		h.Order = snpOrderFromByte(probe[2])
	case probe[0]&^snpOrderBit == 0:
		h.Version = Version099
		h.Order = snpOrderFromByte(probe[0])
	default:
		h.Version = VersionPre099
		h.Order = OneSamplePerRow
	}

	if _, err := r.Seek(int64(h.DataOffset()), io.SeekStart); err != nil {
		return Header{}, errors.Wrap(err, "seek to bed data offset")
	}
	return h, nil
}

// Bytes encodes the header to its on-disk form: 3 bytes for V100, 1 for
// V099, 0 for PRE_099.
func (h Header) Bytes() []byte {
	switch h.Version {
	case Version100:
		return []byte{v100Magic1, v100Magic2, snpOrderToByte(h.Order)}
	case Version099:
		return []byte{snpOrderToByte(h.Order)}
	default:
		return nil
	}
}

// DataOffset is the byte offset where the packed row data begins.
func (h Header) DataOffset() int {
	switch h.Version {
	case Version100:
		return 3
	case Version099:
		return 1
	default:
		return 0
	}
}

// NumRows is the number of on-disk rows, which depends on snp-order.
func (h Header) NumRows() int {
	if h.Order == OneLocusPerRow {
		return h.NumLoci
	}
	return h.NumSamples
}

// NumCols is the number of genotypes per row.
func (h Header) NumCols() int {
	if h.Order == OneLocusPerRow {
		return h.NumSamples
	}
	return h.NumLoci
}

// RowBytes is ceil(NumCols/4), the number of packed bytes per row.
func (h Header) RowBytes() int {
	return (h.NumCols() + 3) / 4
}

// DataSize is the total size in bytes of the packed row data.
func (h Header) DataSize() int {
	return h.NumRows() * h.RowBytes()
}

// FileSize is DataOffset + DataSize, the expected total file size.
func (h Header) FileSize() int {
	return h.DataOffset() + h.DataSize()
}

// Transpose flips the header's snp-order in place; NumLoci/NumSamples are
// unchanged, so NumRows/NumCols swap meaning.
func (h *Header) Transpose() {
	if h.Order == OneLocusPerRow {
		h.Order = OneSamplePerRow
	} else {
		h.Order = OneLocusPerRow
	}
}
