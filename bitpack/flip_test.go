// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranberg-go/plinkio/bitpack"
)

func TestFlipAllelesSwapsHomozygotes(t *testing.T) {
	src := []bitpack.Genotype{
		bitpack.HomozygousMajor,
		bitpack.Heterozygous,
		bitpack.HomozygousMinor,
		bitpack.Missing,
	}
	packed := make([]byte, bitpack.RowBytes(4))
	bitpack.Pack(src, packed, 4)

	bitpack.FlipAlleles(packed, 4)

	got := make([]bitpack.Genotype, 4)
	bitpack.Unpack(packed, got, 4)
	assert.Equal(t, []bitpack.Genotype{
		bitpack.HomozygousMinor,
		bitpack.Heterozygous,
		bitpack.HomozygousMajor,
		bitpack.Missing,
	}, got)
}

func TestFlipAllelesIsInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for _, numCols := range []int{0, 1, 2, 3, 4, 7, 8, 9, 31, 32, 63, 64, 65, 257} {
		src := make([]bitpack.Genotype, numCols)
		for i := range src {
			src[i] = bitpack.Genotype(rng.Intn(4))
		}
		packed := make([]byte, bitpack.RowBytes(numCols))
		bitpack.Pack(src, packed, numCols)

		original := append([]byte(nil), packed...)
		bitpack.FlipAlleles(packed, numCols)
		bitpack.FlipAlleles(packed, numCols)
		require.Equal(t, original, packed, "numCols=%d", numCols)
	}
}

func TestFlipAllelesZeroesTailBits(t *testing.T) {
	src := []bitpack.Genotype{bitpack.HomozygousMajor, bitpack.HomozygousMajor, bitpack.HomozygousMajor}
	packed := make([]byte, bitpack.RowBytes(3))
	bitpack.Pack(src, packed, 3)

	bitpack.FlipAlleles(packed, 3)
	// Three hom-major pairs flip to hom-minor (0b11), and the unused
	// fourth pair stays zeroed rather than also flipping to 0b11.
	assert.Equal(t, byte(0b00111111), packed[0])
}
