// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack

import "math/bits"

// Per-width masks used by the branch-free allele bit tricks below. Every
// width shares the same bit pattern: 0xA.. picks out the high bit of each
// 2-bit pair, 0x5.. the low bit.
const (
	highMask8  = 0xAA
	lowMask8   = 0x55
	highMask16 = 0xAAAA
	lowMask16  = 0x5555
	highMask32 = 0xAAAAAAAA
	lowMask32  = 0x55555555
	highMask64 = 0xAAAAAAAAAAAAAAAA
	lowMask64  = 0x5555555555555555
)

// homozygoteMask8 returns, for each 2-bit pair in x, 0b11 if the pair is
// homozygous (00 or 11) and 0b00 if it is heterozygous (10) or missing (01).
func homozygoteMask8(x uint8) uint8 {
	y := (^(x ^ ((x & highMask8) >> 1))) & lowMask8
	y |= y << 1
	return y
}

func homozygoteMask16(x uint16) uint16 {
	y := (^(x ^ ((x & highMask16) >> 1))) & lowMask16
	y |= y << 1
	return y
}

func homozygoteMask32(x uint32) uint32 {
	y := (^(x ^ ((x & highMask32) >> 1))) & lowMask32
	y |= y << 1
	return y
}

func homozygoteMask64(x uint64) uint64 {
	y := (^(x ^ ((x & highMask64) >> 1))) & lowMask64
	y |= y << 1
	return y
}

// countAllele1Byte returns the number of allele1 copies (2 for a
// homozygous-major pair, 1 for a heterozygous pair, 0 otherwise) encoded in
// the 2-bit pairs of x.
func countAllele1Byte(x uint8) int {
	y := homozygoteMask8(x)
	return bits.OnesCount8((^x & y) | (x & ^y & highMask8))
}

func countAllele2Byte(x uint8) int {
	y := homozygoteMask8(x)
	return bits.OnesCount8((x & y) | (x & ^y & highMask8))
}

func countAllele1Word16(x uint16) int {
	y := homozygoteMask16(x)
	return bits.OnesCount16((^x & y) | (x & ^y & highMask16))
}

func countAllele2Word16(x uint16) int {
	y := homozygoteMask16(x)
	return bits.OnesCount16((x & y) | (x & ^y & highMask16))
}

func countAllele1Word32(x uint32) int {
	y := homozygoteMask32(x)
	return bits.OnesCount32((^x & y) | (x & ^y & highMask32))
}

func countAllele2Word32(x uint32) int {
	y := homozygoteMask32(x)
	return bits.OnesCount32((x & y) | (x & ^y & highMask32))
}

func countAllele1Word64(x uint64) int {
	y := homozygoteMask64(x)
	return bits.OnesCount64((^x & y) | (x & ^y & highMask64))
}

func countAllele2Word64(x uint64) int {
	y := homozygoteMask64(x)
	return bits.OnesCount64((x & y) | (x & ^y & highMask64))
}

// CountAlleles returns the total number of allele1 and allele2 copies
// represented by a packed row of numCols genotypes. Missing calls, and any
// unused bit pairs in the row's trailing byte, contribute to neither count.
//
// The row is walked a machine word at a time when its address happens to be
// sufficiently aligned, falling back to byte-at-a-time counting for the
// unaligned remainder -- the same alignment probe used by Unpack and
// FlipAlleles.
func CountAlleles(packed []byte, numCols int) (first, second int) {
	n := RowBytes(numCols)
	row := packed[:n]

	if frac := numCols % 4; frac > 0 {
		// Count the trailing byte on its own, with its unused pairs
		// replaced by the missing code (01) so they add nothing.
		unused := byte(0xFF) << uint(2*frac)
		last := (row[n-1] &^ unused) | (lowMask8 & unused)
		first += countAllele1Byte(last)
		second += countAllele2Byte(last)
		row = row[:n-1]
	}

	for len(row) >= maxWordBytes && addrAlignment(row) >= maxWordBytes {
		w := nativeUint64(row)
		first += countAllele1Word64(w)
		second += countAllele2Word64(w)
		row = row[maxWordBytes:]
	}
	for len(row) >= 4 && addrAlignment(row) >= 4 {
		w := nativeUint32(row)
		first += countAllele1Word32(w)
		second += countAllele2Word32(w)
		row = row[4:]
	}
	for len(row) >= 2 && addrAlignment(row) >= 2 {
		w := nativeUint16(row)
		first += countAllele1Word16(w)
		second += countAllele2Word16(w)
		row = row[2:]
	}
	for _, b := range row {
		first += countAllele1Byte(b)
		second += countAllele2Byte(b)
	}
	return first, second
}
