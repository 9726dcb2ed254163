// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pedmap

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/bed"
	"github.com/mfranberg-go/plinkio/bim"
	"github.com/mfranberg-go/plinkio/fam"
	"github.com/mfranberg-go/plinkio/osfile"
)

// Ingest reads mapPath/pedPath (either transparently gzip-decompressed
// if its path ends ".gz") and writes outPrefix.bed/.bim/.fam: it parses
// the loci table, streams the ped rows into a transposed working bed
// while discovering alleles, transposes to one-locus-per-row, runs the
// allele-flip pass, and finally emits the persistent .bim/.fam.
func Ingest(mapPath, pedPath, outPrefix string) error {
	loci, err := parseMap(mapPath)
	if err != nil {
		return errors.Wrap(err, "pedmap: parse map")
	}
	numLoci := len(loci)

	slots := make([]alleleSlot, numLoci)
	rows, err := parsePed(pedPath, numLoci, slots)
	if err != nil {
		return errors.Wrap(err, "pedmap: parse ped")
	}

	workingFile, err := writeWorkingBed(outPrefix, numLoci, rows)
	if err != nil {
		return err
	}
	defer workingFile.Close()

	numSamples := len(rows)
	bedPath := outPrefix + ".bed"
	if err := transposeWorkingBed(workingFile, bedPath, numLoci, numSamples); err != nil {
		return errors.Wrap(err, "pedmap: transpose working bed")
	}

	if err := bed.NormalizeAlleles(bedPath, numLoci, numSamples, func(i int) {
		slots[i].Allele1, slots[i].Allele2 = slots[i].Allele2, slots[i].Allele1
	}); err != nil {
		return errors.Wrap(err, "pedmap: normalize alleles")
	}

	if err := writeBim(outPrefix+".bim", loci, slots); err != nil {
		return errors.Wrap(err, "pedmap: write bim")
	}
	if err := writeFam(outPrefix+".fam", rows); err != nil {
		return errors.Wrap(err, "pedmap: write fam")
	}
	return nil
}

// writeWorkingBed streams every accepted row into an unlinked temporary
// one-sample-per-row bed under outPrefix's directory.
func writeWorkingBed(outPrefix string, numLoci int, rows []pedRow) (*bed.File, error) {
	dir := filepath.Dir(outPrefix)
	tmp, err := osfile.TempFile(dir, "plinkio-ped-*.bed")
	if err != nil {
		return nil, errors.Wrap(err, "create working bed")
	}

	working, err := bed.NewFromHandle(tmp, bed.NewHeaderTransposed(numLoci))
	if err != nil {
		tmp.Close()
		return nil, errors.Wrap(err, "initialize working bed")
	}

	for _, row := range rows {
		if err := working.WriteRow(row.genotypes); err != nil {
			working.Close()
			return nil, errors.Wrap(err, "write working bed row")
		}
	}
	return working, nil
}

func transposeWorkingBed(working *bed.File, dstPath string, numLoci, numSamples int) error {
	m, err := osfile.MapReadOnly(working.OSFile())
	if err != nil {
		return errors.Wrap(err, "mmap working bed")
	}
	defer m.Close()

	dstFile, err := osfile.Open(dstPath, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return errors.Wrap(err, "create destination bed")
	}
	defer dstFile.Close()

	return bed.TransposeOpen(m.Bytes(), dstFile.OSFile(), numLoci, numSamples)
}

func writeBim(path string, loci []MapLocus, slots []alleleSlot) error {
	b, err := bim.Create(path)
	if err != nil {
		return err
	}
	defer b.Close()
	for i, l := range loci {
		locus := bim.Locus{
			Chromosome: l.Chromosome,
			Name:       l.Name,
			Position:   l.Position,
			BPPosition: l.BPPosition,
			Allele1:    slots[i].Allele1,
			Allele2:    slots[i].Allele2,
		}
		if err := b.Append(locus); err != nil {
			return err
		}
	}
	return nil
}

func writeFam(path string, rows []pedRow) error {
	samples := make([]fam.Sample, len(rows))
	for i, row := range rows {
		samples[i] = row.sample
	}
	f, err := fam.CreateBulk(path, samples)
	if err != nil {
		return err
	}
	return f.Close()
}
