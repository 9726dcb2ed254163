// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack

import "encoding/binary"

// Genotype is the unpacked, one-byte-per-sample representation of a
// single genotype call.
type Genotype = byte

// The four ordinal genotype categories, in their unpacked encoding.
const (
	HomozygousMajor Genotype = 0
	Heterozygous    Genotype = 1
	HomozygousMinor Genotype = 2
	Missing         Genotype = 3
)

// diskToUnpacked maps a 2-bit on-disk pair to its unpacked genotype.
// The disk alphabet is asymmetric: 01 means missing, not "homozygous
// something" -- this table is the only place that asymmetry should be
// encoded.
var diskToUnpacked = [4]Genotype{
	0b00: HomozygousMajor,
	0b01: Missing,
	0b10: Heterozygous,
	0b11: HomozygousMinor,
}

// unpackedToDisk is the inverse of diskToUnpacked.
var unpackedToDisk = [4]byte{
	HomozygousMajor: 0b00,
	Heterozygous:    0b10,
	HomozygousMinor: 0b11,
	Missing:         0b01,
}

// UnpackedToDisk returns the 2-bit on-disk code for an unpacked genotype.
func UnpackedToDisk(g Genotype) byte { return unpackedToDisk[g&0x3] }

// DiskToUnpacked returns the unpacked genotype for a 2-bit on-disk code.
func DiskToUnpacked(d byte) Genotype { return diskToUnpacked[d&0x3] }

// snpExpansion is the four unpacked genotypes packed into one disk byte,
// right-to-left (pair 0 is the two low bits).
type snpExpansion = [4]byte

// snpLookupBytes[b] is the 4-byte unpacked expansion of disk byte b. It is
// endianness-independent: it's just "the four genotypes in order".
var snpLookupBytes [256]snpExpansion

// snpLookupWord[b] is snpLookupBytes[b] reinterpreted as a single machine
// word in the *native* byte order, so that storing it through a *uint32
// pointer writes the four expanded bytes in the correct order without
// further shuffling. Two candidate tables are built at init time (one per
// endianness) and the correct one is selected once, mirroring the
// teacher's own endian-selected lookup-table pattern.
var snpLookupWord [256]uint32

func init() {
	var little, big [256]uint32
	for b := 0; b < 256; b++ {
		var exp snpExpansion
		for k := 0; k < 4; k++ {
			exp[k] = diskToUnpacked[(byte(b)>>(uint(k)*2))&0x3]
		}
		snpLookupBytes[b] = exp
		little[b] = uint32(exp[0]) | uint32(exp[1])<<8 | uint32(exp[2])<<16 | uint32(exp[3])<<24
		big[b] = uint32(exp[3]) | uint32(exp[2])<<8 | uint32(exp[1])<<16 | uint32(exp[0])<<24
	}
	if isLittleEndian() {
		snpLookupWord = little
	} else {
		snpLookupWord = big
	}
}

func isLittleEndian() bool {
	return binary.NativeEndian.Uint16([]byte{1, 0}) == 1
}
