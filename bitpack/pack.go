// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack

import "unsafe"

// RowBytes returns ceil(numCols/4), the number of packed bytes needed to
// store numCols genotypes.
func RowBytes(numCols int) int {
	return (numCols + 3) / 4
}

// Unpack expands a packed row of ceil(numCols/4) disk bytes into numCols
// unpacked genotype bytes in dst. dst must have length >= numCols.
//
// When dst's backing array happens to be aligned to 8, 4, or 2 bytes, the
// expansion is stored in machine words instead of writing each of the four
// genotypes individually: one 64-bit word per two packed input bytes, one
// 32-bit word per packed byte, or two 16-bit words per packed byte,
// respectively. The trailing numCols%4 genotypes
// (and the whole row, on an unaligned destination) are always written
// byte-by-byte from the same table.
func Unpack(packed []byte, dst []Genotype, numCols int) {
	full := numCols / 4
	switch addrAlignment(dst) {
	case 8:
		unpackWords64(packed[:full], dst[:full*4])
	case 4:
		unpackWords32(packed[:full], dst[:full*4])
	case 2:
		unpackWords16(packed[:full], dst[:full*4])
	default:
		unpackBytes(packed[:full], dst[:full*4])
	}

	tail := numCols - full*4
	if tail > 0 {
		exp := snpLookupBytes[packed[full]]
		copy(dst[full*4:full*4+tail], exp[:tail])
	}
}

func unpackBytes(packed []byte, dst []Genotype) {
	for i, b := range packed {
		exp := snpLookupBytes[b]
		copy(dst[i*4:i*4+4], exp[:])
	}
}

// unpackWords64 writes two packed bytes (8 unpacked genotypes) per 64-bit
// store, falling back to a 32-bit store for a trailing odd byte.
func unpackWords64(packed []byte, dst []Genotype) {
	n := len(packed)
	pairs := n / 2
	if pairs > 0 {
		words := unsafe.Slice((*uint64)(unsafe.Pointer(&dst[0])), pairs)
		for i := 0; i < pairs; i++ {
			lo := uint64(snpLookupWord[packed[2*i]])
			hi := uint64(snpLookupWord[packed[2*i+1]])
			if isLittleEndian() {
				words[i] = lo | hi<<32
			} else {
				words[i] = hi | lo<<32
			}
		}
	}
	if n%2 == 1 {
		exp := snpLookupBytes[packed[n-1]]
		copy(dst[pairs*8:pairs*8+4], exp[:])
	}
}

func unpackWords32(packed []byte, dst []Genotype) {
	if len(packed) == 0 {
		return
	}
	words := unsafe.Slice((*uint32)(unsafe.Pointer(&dst[0])), len(packed))
	for i, b := range packed {
		words[i] = snpLookupWord[b]
	}
}

func unpackWords16(packed []byte, dst []Genotype) {
	// No 16-bit-wide expansion table exists (each packed byte expands to a
	// full 32-bit word), so the 16-bit "fast path" degrades to two 16-bit
	// stores per input byte -- still avoids a third branch for the common
	// case where dst is 2-byte aligned but not 4-byte aligned.
	if len(packed) == 0 {
		return
	}
	words := unsafe.Slice((*uint16)(unsafe.Pointer(&dst[0])), len(packed)*2)
	for i, b := range packed {
		exp := snpLookupBytes[b]
		var w0, w1 uint16
		if isLittleEndian() {
			w0 = uint16(exp[0]) | uint16(exp[1])<<8
			w1 = uint16(exp[2]) | uint16(exp[3])<<8
		} else {
			w0 = uint16(exp[1]) | uint16(exp[0])<<8
			w1 = uint16(exp[3]) | uint16(exp[2])<<8
		}
		words[2*i] = w0
		words[2*i+1] = w1
	}
}

// Pack compresses numCols unpacked genotypes from src into dst, which must
// have length >= RowBytes(numCols). Any trailing unused bit pairs in the
// last byte are zeroed.
func Pack(src []Genotype, dst []byte, numCols int) {
	n := RowBytes(numCols)
	for i := range dst[:n] {
		dst[i] = 0
	}
	for i := 0; i < numCols; i++ {
		dst[i/4] |= unpackedToDisk[src[i]&0x3] << uint((i%4)*2)
	}
}

// addrAlignment reports the largest power-of-two alignment (8, 4, 2, or 1)
// that g's backing array satisfies, the same runtime probe the packed_snp
// fast paths use to pick a widened loop.
func addrAlignment(g []Genotype) int {
	if len(g) == 0 {
		return 1
	}
	addr := uintptr(unsafe.Pointer(&g[0]))
	switch {
	case addr&7 == 0:
		return 8
	case addr&3 == 0:
		return 4
	case addr&1 == 0:
		return 2
	default:
		return 1
	}
}
