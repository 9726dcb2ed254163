// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bed

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/osfile"
)

// Transpose writes the snp-order-flipped form of srcPath to dstPath.
// srcPath is opened read-only and memory-mapped; dstPath is truncated
// and rewritten from scratch.
func Transpose(srcPath, dstPath string, numLoci, numSamples int) error {
	srcFile, err := osfile.Open(srcPath, os.O_RDONLY, 0)
	if err != nil {
		return errors.Wrap(err, "open transpose source")
	}
	defer srcFile.Close()

	srcMap, err := osfile.MapReadOnly(srcFile.OSFile())
	if err != nil {
		return errors.Wrap(err, "mmap transpose source")
	}
	defer srcMap.Close()

	dstFile, err := osfile.Open(dstPath, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return errors.Wrap(err, "create transpose destination")
	}
	defer dstFile.Close()

	return transpose(srcMap.Bytes(), dstFile.OSFile(), numLoci, numSamples)
}

// TransposeOpen is the already-open-descriptor variant of Transpose: src
// must be the full contents of a source bed file (header included,
// typically obtained via Mmap.Bytes on an already-open fd), dst is an
// already-open destination file truncated and positioned at offset 0.
// The ingest pipeline uses this to transpose its own working bed without
// reopening files by path.
func TransposeOpen(src []byte, dst *os.File, numLoci, numSamples int) error {
	return transpose(src, dst, numLoci, numSamples)
}

// transpose implements the core byte-shuffle described for §4.4: src is
// the fully mapped source file's bytes (header included), dst is written
// header-then-rows. It is split out from Transpose so the ingest
// pipeline can drive it over already-open descriptors.
func transpose(src []byte, dst *os.File, numLoci, numSamples int) error {
	srcHeader, err := DecodeHeader(bytes.NewReader(src), numLoci, numSamples)
	if err != nil {
		return errors.Wrap(err, "decode transpose source header")
	}

	dstHeader := srcHeader
	dstHeader.Transpose()
	if _, err := dst.Write(dstHeader.Bytes()); err != nil {
		return errors.Wrap(err, "write transpose destination header")
	}

	r := srcHeader.NumRows()
	c := srcHeader.NumCols()
	srcRowBytes := srcHeader.RowBytes()
	dstRowBytes := dstHeader.RowBytes()
	data := src[srcHeader.DataOffset():]

	dstRow := make([]byte, dstRowBytes)
	for j := 0; j < c; j++ {
		for i := range dstRow {
			dstRow[i] = 0
		}
		for i := 0; i < r; i++ {
			srcByte := data[i*srcRowBytes+j/4]
			bit := (srcByte >> uint((j%4)*2)) & 0x3
			dstRow[i/4] |= bit << uint((i%4)*2)
		}
		if _, err := dst.Write(dstRow); err != nil {
			return errors.Wrapf(err, "write transposed row %d", j)
		}
	}
	return nil
}
