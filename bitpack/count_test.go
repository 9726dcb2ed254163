// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfranberg-go/plinkio/bitpack"
)

// countAllelesNaive counts allele copies by unpacking first, the
// straightforward reference implementation the bit-trick fast paths must
// agree with. Like CountAlleles, it counts only the numCols real
// genotypes; the unused trailing bit pairs of the last byte are ignored.
func countAllelesNaive(packed []byte, numCols int) (first, second int) {
	unpacked := make([]bitpack.Genotype, numCols)
	bitpack.Unpack(packed, unpacked, numCols)
	for _, g := range unpacked {
		switch g {
		case bitpack.HomozygousMajor:
			first += 2
		case bitpack.Heterozygous:
			first++
			second++
		case bitpack.HomozygousMinor:
			second += 2
		}
	}
	return first, second
}

func TestCountAllelesMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, numCols := range []int{0, 1, 2, 3, 4, 7, 8, 9, 16, 31, 32, 63, 64, 65, 257} {
		src := make([]bitpack.Genotype, numCols)
		for i := range src {
			src[i] = bitpack.Genotype(rng.Intn(4))
		}
		packed := make([]byte, bitpack.RowBytes(numCols))
		bitpack.Pack(src, packed, numCols)

		wantFirst, wantSecond := countAllelesNaive(packed, numCols)
		first, second := bitpack.CountAlleles(packed, numCols)
		assert.Equal(t, wantFirst, first, "first, numCols=%d", numCols)
		assert.Equal(t, wantSecond, second, "second, numCols=%d", numCols)
	}
}

func TestCountAllelesAllCategories(t *testing.T) {
	// One row, one of each of the four categories.
	src := []bitpack.Genotype{
		bitpack.HomozygousMajor,
		bitpack.Heterozygous,
		bitpack.HomozygousMinor,
		bitpack.Missing,
	}
	packed := make([]byte, bitpack.RowBytes(4))
	bitpack.Pack(src, packed, 4)

	first, second := bitpack.CountAlleles(packed, 4)
	assert.Equal(t, 3, first)  // 2 (hom-major) + 1 (het)
	assert.Equal(t, 3, second) // 1 (het) + 2 (hom-minor)
}
