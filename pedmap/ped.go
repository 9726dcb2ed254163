// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pedmap

import (
	"bufio"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/bitpack"
	"github.com/mfranberg-go/plinkio/fam"
	"github.com/mfranberg-go/plinkio/txt"
)

const numSampleFields = 6

type pedFormat int

const (
	pedSimple pedFormat = iota
	pedCompound
)

// alleleSlot tracks the two discovered alleles of one locus across every
// sample row of a .ped stream.
type alleleSlot struct {
	Allele1 string
	Allele2 string
}

// detectPedFormat determines simple-vs-compound from the ped column
// count and the known locus count: 6+2L columns is simple (one allele
// per column), 6+L is compound (two characters per column).
func detectPedFormat(cols, numLoci int) (pedFormat, error) {
	switch cols {
	case numSampleFields + 2*numLoci:
		return pedSimple, nil
	case numSampleFields + numLoci:
		return pedCompound, nil
	default:
		return 0, errors.Errorf("pedmap: .ped has %d columns, want %d (simple) or %d (compound) for %d loci",
			cols, numSampleFields+2*numLoci, numSampleFields+numLoci, numLoci)
	}
}

// pedRow is one accepted .ped sample row: the six sample fields plus the
// per-locus genotype calls.
type pedRow struct {
	sample    fam.Sample
	genotypes []bitpack.Genotype
}

// parsePed streams path's rows, discovering alleles into slots (one per
// locus, indexed in .map order) and emitting one pedRow per sample whose
// every locus call resolved without error. A malformed row is dropped
// from the result but flags the whole parse as failed, matching the
// original's any_error/PIO_ERROR behavior.
func parsePed(path string, numLoci int, slots []alleleSlot) ([]pedRow, error) {
	r, closeFn, err := openSeekable(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	cols, err := txt.ProbeColumnCount(r)
	if err != nil {
		return nil, errors.Wrap(err, "probe ped column count")
	}
	format, err := detectPedFormat(cols, numLoci)
	if err != nil {
		return nil, err
	}

	fields := make([][]byte, cols)
	count := 0
	var rows []pedRow
	anyError := false

	onField := func(field []byte, fieldNum int) {
		if fieldNum < cols {
			fields[fieldNum] = append(fields[fieldNum][:0], field...)
		}
		count = fieldNum + 1
	}
	onRow := func(int) {
		defer func() { count = 0 }()
		if count != cols {
			anyError = true
			return
		}
		row, ok := parsePedRow(fields, format, numLoci, slots)
		if !ok {
			anyError = true
			return
		}
		rows = append(rows, row)
	}

	p := txt.NewParser()
	br := bufio.NewReader(r)
	if err := p.Parse(br, onField, onRow); err != nil {
		return nil, errors.Wrap(err, "tokenize ped")
	}
	p.Finalize(onField, onRow)
	if anyError {
		return rows, errors.New("pedmap: malformed ped row")
	}
	return rows, nil
}

func parsePedRow(fields [][]byte, format pedFormat, numLoci int, slots []alleleSlot) (pedRow, bool) {
	fid, err := txt.ParseStr(fields[0])
	if err != nil {
		return pedRow{}, false
	}
	iid, err := txt.ParseStr(fields[1])
	if err != nil {
		return pedRow{}, false
	}
	father, err := txt.ParseStr(fields[2])
	if err != nil {
		return pedRow{}, false
	}
	mother, err := txt.ParseStr(fields[3])
	if err != nil {
		return pedRow{}, false
	}
	sex, err := txt.ParseSex(fields[4])
	if err != nil {
		return pedRow{}, false
	}
	aff, pheno, err := txt.ParsePhenotype(fields[5])
	if err != nil {
		return pedRow{}, false
	}

	genotypes := make([]bitpack.Genotype, numLoci)
	for i := 0; i < numLoci; i++ {
		tok1, tok2, ok := alleleTokens(fields, format, i)
		if !ok {
			return pedRow{}, false
		}
		call1 := txt.ParseAllele(tok1, &slots[i].Allele1, &slots[i].Allele2)
		call2 := txt.ParseAllele(tok2, &slots[i].Allele1, &slots[i].Allele2)
		g, ok := encodeCallPair(call1, call2)
		if !ok {
			return pedRow{}, false
		}
		genotypes[i] = g
	}

	return pedRow{
		sample: fam.Sample{
			FID: fid, IID: iid, FatherIID: father, MotherIID: mother,
			Sex: sex, Affection: aff, Phenotype: pheno,
		},
		genotypes: genotypes,
	}, true
}

func alleleTokens(fields [][]byte, format pedFormat, locus int) (tok1, tok2 []byte, ok bool) {
	if format == pedSimple {
		return fields[numSampleFields+2*locus], fields[numSampleFields+2*locus+1], true
	}
	field := fields[numSampleFields+locus]
	if len(field) != 2 {
		return nil, nil, false
	}
	return field[0:1], field[1:2], true
}

// encodeCallPair maps a locus's two allele calls to the packed genotype
// alphabet: a no-call on either side is missing; matching first calls
// are homozygous-major; matching second calls are homozygous-minor;
// mixed calls are heterozygous; any parse error rejects the row.
func encodeCallPair(call1, call2 txt.AlleleCall) (bitpack.Genotype, bool) {
	switch {
	case call1 == txt.AlleleCallError || call2 == txt.AlleleCallError:
		return 0, false
	case call1 == txt.AlleleCallNo || call2 == txt.AlleleCallNo:
		return bitpack.Missing, true
	case call1 == txt.AlleleCallFirst && call2 == txt.AlleleCallFirst:
		return bitpack.HomozygousMajor, true
	case call1 == txt.AlleleCallSecond && call2 == txt.AlleleCallSecond:
		return bitpack.HomozygousMinor, true
	default:
		return bitpack.Heterozygous, true
	}
}
