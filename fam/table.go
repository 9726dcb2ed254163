// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fam

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/txt"
)

// Sample is one row of a .fam sample-annotation table. PioID is the
// zero-based insertion index, shared with the sample's column in the
// corresponding .bed file.
type Sample struct {
	PioID     int
	FID       string
	IID       string
	FatherIID string
	MotherIID string
	Sex       txt.Sex
	Affection txt.Affection
	Phenotype float32
}

const numFields = 6

// Fam is an open .fam table: an append-only slice of Sample plus the
// backing file.
type Fam struct {
	f       *os.File
	samples []Sample
}

// Open parses an existing .fam file in full.
func Open(path string) (*Fam, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open fam")
	}
	samples, err := parse(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "parse fam")
	}
	return &Fam{f: f, samples: samples}, nil
}

// Create truncates/creates an empty .fam file ready for Append.
func Create(path string) (*Fam, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "create fam")
	}
	return &Fam{f: f}, nil
}

// CreateBulk creates path and writes every sample immediately, the
// usual way a .fam table is produced: the façade's Create(prefix,
// samples) needs the sample count up front before it can write an
// empty-body .bed with the right column width.
func CreateBulk(path string, samples []Sample) (*Fam, error) {
	f, err := Create(path)
	if err != nil {
		return nil, err
	}
	for _, s := range samples {
		if err := f.Append(s); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

// Num returns the number of samples in the table.
func (f *Fam) Num() int { return len(f.samples) }

// Sample returns the sample at pioID and whether it exists.
func (f *Fam) Sample(pioID int) (Sample, bool) {
	if pioID < 0 || pioID >= len(f.samples) {
		return Sample{}, false
	}
	return f.samples[pioID], true
}

// Samples returns every sample in insertion order.
func (f *Fam) Samples() []Sample { return f.samples }

// Append writes one fixed-format row and records it in the table.
func (f *Fam) Append(s Sample) error {
	s.PioID = len(f.samples)
	line := fmt.Sprintf("%s\t%s\t%s\t%s\t%d\t%s\n",
		s.FID, s.IID, s.FatherIID, s.MotherIID, sexToInt(s.Sex), phenotypeField(s.Affection, s.Phenotype))
	if _, err := f.f.WriteString(line); err != nil {
		return errors.Wrap(err, "append fam row")
	}
	f.samples = append(f.samples, s)
	return nil
}

// Close closes the backing file.
func (f *Fam) Close() error {
	if f.f == nil {
		return nil
	}
	return f.f.Close()
}

func sexToInt(s txt.Sex) int {
	switch s {
	case txt.SexMale:
		return 1
	case txt.SexFemale:
		return 2
	default:
		return 0
	}
}

// phenotypeField re-serializes the entangled affection/phenotype column:
// control/case/missing write their fixed integer token; continuous
// writes the float value.
func phenotypeField(a txt.Affection, pheno float32) string {
	switch a {
	case txt.AffectionControl:
		return "1"
	case txt.AffectionCase:
		return "2"
	case txt.AffectionMissing:
		return "0"
	default:
		return strconv.FormatFloat(float64(pheno), 'f', -1, 32)
	}
}

func parse(file *os.File) ([]Sample, error) {
	var samples []Sample
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
		s, ok := parseRow(fields)
		if !ok {
			anyError = true
			return
		}
		s.PioID = len(samples)
		samples = append(samples, s)
	}

	p := txt.NewParser()
	r := bufio.NewReader(file)
	if err := p.Parse(r, onField, onRow); err != nil {
		return nil, errors.Wrap(err, "tokenize fam")
	}
	p.Finalize(onField, onRow)
	if anyError {
		return samples, errors.New("fam: malformed row")
	}
	return samples, nil
}

func parseRow(fields [numFields][]byte) (Sample, bool) {
	fid, err := txt.ParseStr(fields[0])
	if err != nil {
		return Sample{}, false
	}
	iid, err := txt.ParseStr(fields[1])
	if err != nil {
		return Sample{}, false
	}
	father, err := txt.ParseStr(fields[2])
	if err != nil {
		return Sample{}, false
	}
	mother, err := txt.ParseStr(fields[3])
	if err != nil {
		return Sample{}, false
	}
	sex, err := txt.ParseSex(fields[4])
	if err != nil {
		return Sample{}, false
	}
	aff, pheno, err := txt.ParsePhenotype(fields[5])
	if err != nil {
		return Sample{}, false
	}
	return Sample{FID: fid, IID: iid, FatherIID: father, MotherIID: mother, Sex: sex, Affection: aff, Phenotype: pheno}, true
}
