// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pedmap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranberg-go/plinkio/bed"
	"github.com/mfranberg-go/plinkio/bim"
	"github.com/mfranberg-go/plinkio/bitpack"
	"github.com/mfranberg-go/plinkio/fam"
	"github.com/mfranberg-go/plinkio/pedmap"
	"github.com/mfranberg-go/plinkio/txt"
)

func TestIngestSimpleFormatWithFlip(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "test.map")
	pedPath := filepath.Join(dir, "test.ped")
	outPrefix := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(mapPath, []byte("1 rs1 0 100\n"), 0644))
	require.NoError(t, os.WriteFile(pedPath, []byte(
		"F1 P1 0 0 1 1 A A\n"+
			"F1 P2 0 0 2 2 A A\n"+
			"F2 P3 0 0 1 1 A A\n"+
			"F2 P4 0 0 2 2 T T\n"), 0644))

	require.NoError(t, pedmap.Ingest(mapPath, pedPath, outPrefix))

	b, err := bim.Open(outPrefix + ".bim")
	require.NoError(t, err)
	defer b.Close()
	require.Equal(t, 1, b.Num())
	locus, _ := b.Locus(0)
	assert.Equal(t, byte(1), locus.Chromosome)
	assert.Equal(t, "rs1", locus.Name)
	assert.Equal(t, int64(100), locus.BPPosition)
	assert.Equal(t, "T", locus.Allele1)
	assert.Equal(t, "A", locus.Allele2)

	f, err := fam.Open(outPrefix + ".fam")
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, 4, f.Num())
	s0, _ := f.Sample(0)
	assert.Equal(t, "P1", s0.IID)
	assert.Equal(t, txt.SexMale, s0.Sex)
	assert.Equal(t, txt.AffectionControl, s0.Affection)
	s3, _ := f.Sample(3)
	assert.Equal(t, "P4", s3.IID)
	assert.Equal(t, txt.SexFemale, s3.Sex)
	assert.Equal(t, txt.AffectionCase, s3.Affection)

	bf, err := bed.Open(outPrefix+".bed", 1, 4)
	require.NoError(t, err)
	defer bf.Close()
	assert.Equal(t, bed.OneLocusPerRow, bf.Header.Order)

	row := make([]bitpack.Genotype, 4)
	require.NoError(t, bf.ReadRow(row))
	assert.Equal(t, []bitpack.Genotype{
		bitpack.HomozygousMinor, bitpack.HomozygousMinor, bitpack.HomozygousMinor, bitpack.HomozygousMajor,
	}, row)
	assert.Equal(t, bed.ErrEnd, bf.ReadRow(row))
}

func TestIngestCompoundFormat(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "test.map")
	pedPath := filepath.Join(dir, "test.ped")
	outPrefix := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(mapPath, []byte("1 rs1 100\n"), 0644))
	require.NoError(t, os.WriteFile(pedPath, []byte(
		"F1 P1 0 0 1 1 AA\n"+
			"F1 P2 0 0 2 2 AT\n"), 0644))

	require.NoError(t, pedmap.Ingest(mapPath, pedPath, outPrefix))

	b, err := bim.Open(outPrefix + ".bim")
	require.NoError(t, err)
	defer b.Close()
	locus, ok := b.Locus(0)
	require.True(t, ok)
	assert.Equal(t, int64(100), locus.BPPosition)
	assert.Equal(t, "T", locus.Allele1)
	assert.Equal(t, "A", locus.Allele2)

	bf, err := bed.Open(outPrefix+".bed", 1, 2)
	require.NoError(t, err)
	defer bf.Close()
	row := make([]bitpack.Genotype, 2)
	require.NoError(t, bf.ReadRow(row))
	assert.Equal(t, []bitpack.Genotype{bitpack.HomozygousMinor, bitpack.Heterozygous}, row)
}

func TestIngestMalformedPedRowFailsWholeIngest(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "test.map")
	pedPath := filepath.Join(dir, "test.ped")
	outPrefix := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(mapPath, []byte("1 rs1 0 100\n"), 0644))
	require.NoError(t, os.WriteFile(pedPath, []byte(
		"F1 P1 0 0 1 1 A A\n"+
			"F1 P2 0 0 2 2 A\n"), 0644))

	err := pedmap.Ingest(mapPath, pedPath, outPrefix)
	require.Error(t, err)
}

func TestIngestMalformedMapRowFailsWholeIngest(t *testing.T) {
	dir := t.TempDir()
	mapPath := filepath.Join(dir, "test.map")
	pedPath := filepath.Join(dir, "test.ped")
	outPrefix := filepath.Join(dir, "out")

	require.NoError(t, os.WriteFile(mapPath, []byte("1 rs1 0 100\n1 rs2\n"), 0644))
	require.NoError(t, os.WriteFile(pedPath, []byte(
		"F1 P1 0 0 1 1 A A G G\n"), 0644))

	err := pedmap.Ingest(mapPath, pedPath, outPrefix)
	require.Error(t, err)
}
