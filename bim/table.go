// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bim

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/txt"
)

// Locus is one row of a .bim variant-annotation table. PioID is the
// zero-based insertion index, shared with the locus's row in a
// one-locus-per-row .bed file.
type Locus struct {
	PioID      int
	Chromosome byte
	Name       string
	Position   float32
	BPPosition int64
	Allele1    string
	Allele2    string
}

const numFields = 6

// Bim is an open .bim table: an append-only slice of Locus plus the
// backing file (the file written to by Append after Create, or the file
// that was parsed by Open, which stays open until Close).
type Bim struct {
	f    *os.File
	loci []Locus
}

// Open parses an existing .bim file in full.
func Open(path string) (*Bim, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open bim")
	}
	loci, err := parse(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "parse bim")
	}
	return &Bim{f: f, loci: loci}, nil
}

// Create truncates/creates an empty .bim file ready for Append.
func Create(path string) (*Bim, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "create bim")
	}
	return &Bim{f: f}, nil
}

// Num returns the number of loci in the table.
func (b *Bim) Num() int { return len(b.loci) }

// Locus returns the locus at pioID and whether it exists.
func (b *Bim) Locus(pioID int) (Locus, bool) {
	if pioID < 0 || pioID >= len(b.loci) {
		return Locus{}, false
	}
	return b.loci[pioID], true
}

// Loci returns every locus in insertion order.
func (b *Bim) Loci() []Locus { return b.loci }

// SetAlleles updates the allele1/allele2 strings of the locus at pioID in
// the in-memory table only; it does not rewrite the file.
func (b *Bim) SetAlleles(pioID int, allele1, allele2 string) {
	b.loci[pioID].Allele1 = allele1
	b.loci[pioID].Allele2 = allele2
}

// Append writes one fixed-format row and records it in the table. PioID
// is assigned from the current table length.
func (b *Bim) Append(l Locus) error {
	l.PioID = len(b.loci)
	line := fmt.Sprintf("%d\t%s\t%s\t%d\t%s\t%s\n",
		l.Chromosome, l.Name, strconv.FormatFloat(float64(l.Position), 'f', 6, 32),
		l.BPPosition, l.Allele1, l.Allele2)
	if _, err := b.f.WriteString(line); err != nil {
		return errors.Wrap(err, "append bim row")
	}
	b.loci = append(b.loci, l)
	return nil
}

// Close closes the backing file.
func (b *Bim) Close() error {
	if b.f == nil {
		return nil
	}
	return b.f.Close()
}

func parse(f *os.File) ([]Locus, error) {
	var loci []Locus
	var fields [numFields][]byte
	count := 0
	anyError := false

	onField := func(field []byte, fieldNum int) {
		if fieldNum < numFields {
			fields[fieldNum] = append(fields[fieldNum][:0], field...)
		}
		count = fieldNum + 1
	}
	onRow := func(int) {
		defer func() { count = 0 }()
		if count != numFields {
			anyError = true
			return
		}
		l, ok := parseRow(fields)
		if !ok {
			anyError = true
			return
		}
		l.PioID = len(loci)
		loci = append(loci, l)
	}

	p := txt.NewParser()
	r := bufio.NewReader(f)
	if err := p.Parse(r, onField, onRow); err != nil {
		return nil, errors.Wrap(err, "tokenize bim")
	}
	p.Finalize(onField, onRow)
	if anyError {
		return loci, errors.New("bim: malformed row")
	}
	return loci, nil
}

func parseRow(fields [numFields][]byte) (Locus, bool) {
	chr, err := txt.ParseChr(fields[0])
	if err != nil {
		return Locus{}, false
	}
	name, err := txt.ParseStr(fields[1])
	if err != nil {
		return Locus{}, false
	}
	pos, err := txt.ParseGeneticPosition(fields[2])
	if err != nil {
		return Locus{}, false
	}
	bp, err := txt.ParseBPPosition(fields[3])
	if err != nil {
		return Locus{}, false
	}
	a1, err := txt.ParseStr(fields[4])
	if err != nil {
		return Locus{}, false
	}
	a2, err := txt.ParseStr(fields[5])
	if err != nil {
		return Locus{}, false
	}
	return Locus{Chromosome: chr, Name: name, Position: pos, BPPosition: bp, Allele1: a1, Allele2: a2}, true
}
