// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bim_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranberg-go/plinkio/bim"
)

func TestParseTwoLoci(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bim")
	content := "1 rs1 0 1234567 A C\n1 rs2 0.23 7654321 - ACCG\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	b, err := bim.Open(path)
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, 2, b.Num())
	l0, ok := b.Locus(0)
	require.True(t, ok)
	assert.Equal(t, bim.Locus{PioID: 0, Chromosome: 1, Name: "rs1", Position: 0, BPPosition: 1234567, Allele1: "A", Allele2: "C"}, l0)

	l1, ok := b.Locus(1)
	require.True(t, ok)
	assert.Equal(t, byte(1), l1.Chromosome)
	assert.Equal(t, "rs2", l1.Name)
	assert.InDelta(t, 0.23, l1.Position, 1e-6)
	assert.Equal(t, int64(7654321), l1.BPPosition)
	assert.Equal(t, "-", l1.Allele1)
	assert.Equal(t, "ACCG", l1.Allele2)

	_, ok = b.Locus(2)
	assert.False(t, ok)
}

func TestAppendAndReparse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bim")

	w, err := bim.Create(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(bim.Locus{Chromosome: 1, Name: "rs1", Position: 0, BPPosition: 1234567, Allele1: "A", Allele2: "C"}))
	require.NoError(t, w.Append(bim.Locus{Chromosome: 2, Name: "rs2", Position: 0.5, BPPosition: 99, Allele1: "G", Allele2: "T"}))
	require.NoError(t, w.Close())

	r, err := bim.Open(path)
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, 2, r.Num())
	l0, _ := r.Locus(0)
	assert.Equal(t, "rs1", l0.Name)
	l1, _ := r.Locus(1)
	assert.Equal(t, "rs2", l1.Name)
	assert.InDelta(t, 0.5, l1.Position, 1e-6)
}

func TestMalformedRowFailsWholeParse(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.bim")
	content := "1 rs1 0 1234567 A C\n1 rs2 0 missing_bp_and_alleles\n2 rs3 0 5 A C\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := bim.Open(path)
	require.Error(t, err)
}
