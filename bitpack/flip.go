// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack

// flipByte swaps homozygous-major and homozygous-minor pairs (00 <-> 11)
// in x while leaving heterozygous (10) and missing (01) pairs untouched.
func flipByte(x uint8) uint8 {
	y := homozygoteMask8(x)
	return (^x & y) | (x & ^y)
}

func flipWord16(x uint16) uint16 {
	y := homozygoteMask16(x)
	return (^x & y) | (x & ^y)
}

func flipWord32(x uint32) uint32 {
	y := homozygoteMask32(x)
	return (^x & y) | (x & ^y)
}

func flipWord64(x uint64) uint64 {
	y := homozygoteMask64(x)
	return (^x & y) | (x & ^y)
}

// FlipAlleles swaps allele1 and allele2 in place across a packed row of
// numCols genotypes: every homozygous-major call becomes homozygous-minor
// and vice versa, heterozygous and missing calls are left untouched. It is
// the in-place companion to the allele1/allele2 swap a caller performs on
// the locus metadata once CountAlleles shows the major allele was called
// first.
//
// Any unused bit pairs in the row's trailing byte (when numCols is not a
// multiple of 4) are zeroed, matching Pack's convention that unused tail
// bits are always zero.
func FlipAlleles(packed []byte, numCols int) {
	n := RowBytes(numCols)
	row := packed[:n]

	for len(row) >= maxWordBytes && addrAlignment(row) >= maxWordBytes {
		storeNativeUint64(row, flipWord64(nativeUint64(row)))
		row = row[maxWordBytes:]
	}
	for len(row) >= 4 && addrAlignment(row) >= 4 {
		storeNativeUint32(row, flipWord32(nativeUint32(row)))
		row = row[4:]
	}
	for len(row) >= 2 && addrAlignment(row) >= 2 {
		storeNativeUint16(row, flipWord16(nativeUint16(row)))
		row = row[2:]
	}
	for i, b := range row {
		row[i] = flipByte(b)
	}

	if frac := numCols % 4; frac > 0 {
		mask := byte(0xFF) >> uint(8-2*frac)
		packed[n-1] &= mask
	}
}
