// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranberg-go/plinkio/bed"
	"github.com/mfranberg-go/plinkio/bitpack"
)

func TestNormalizeAllelesFlipsAllHomozygousFirst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flip.bed")
	writeRawBed(t, path, []byte{0x6C, 0x1B, 0x01}, []byte{0x00})

	var flipped []int
	require.NoError(t, bed.NormalizeAlleles(path, 1, 4, func(i int) { flipped = append(flipped, i) }))
	assert.Equal(t, []int{0}, flipped)

	f, err := bed.Open(path, 1, 4)
	require.NoError(t, err)
	defer f.Close()

	row := make([]bitpack.Genotype, 4)
	require.NoError(t, f.ReadRow(row))
	for _, g := range row {
		assert.Equal(t, bitpack.HomozygousMinor, g)
	}

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), raw[3])
}

func TestNormalizeAllelesLeavesMinorRowUntouched(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noflip.bed")
	writeRawBed(t, path, []byte{0x6C, 0x1B, 0x01}, []byte{0xFF})

	var flipped []int
	require.NoError(t, bed.NormalizeAlleles(path, 1, 4, func(i int) { flipped = append(flipped, i) }))
	assert.Empty(t, flipped)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), raw[3])
}
