// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package plinkio

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/bed"
	"github.com/mfranberg-go/plinkio/bim"
	"github.com/mfranberg-go/plinkio/bitpack"
	"github.com/mfranberg-go/plinkio/fam"
)

// Plink is one dataset: a .bed, .bim, and .fam sharing a path prefix.
type Plink struct {
	Bed *bed.File
	Bim *bim.Bim
	Fam *fam.Fam
}

// Open opens prefix+".fam", then prefix+".bim", then prefix+".bed", in
// that order, passing the loci/sample counts discovered from the first
// two to the bed opener. A failure in any step leaves the files opened
// by earlier steps closed rather than returned to the caller.
func Open(prefix string) (*Plink, error) {
	f, err := fam.Open(prefix + ".fam")
	if err != nil {
		return nil, tagErr(StatusFamIOError, err)
	}
	b, err := bim.Open(prefix + ".bim")
	if err != nil {
		f.Close()
		return nil, tagErr(StatusBimIOError, err)
	}
	bf, err := bed.Open(prefix+".bed", b.Num(), f.Num())
	if err != nil {
		b.Close()
		f.Close()
		return nil, tagErr(StatusBedIOError, err)
	}
	return &Plink{Bed: bf, Bim: b, Fam: f}, nil
}

// Create writes prefix+".fam" from samples up front (fixing the row
// size), then an empty prefix+".bim", then a one-locus-per-row
// prefix+".bed" sized for len(samples) columns.
func Create(prefix string, samples []fam.Sample) (*Plink, error) {
	f, err := fam.CreateBulk(prefix+".fam", samples)
	if err != nil {
		return nil, tagErr(StatusFamIOError, err)
	}
	b, err := bim.Create(prefix + ".bim")
	if err != nil {
		f.Close()
		return nil, tagErr(StatusBimIOError, err)
	}
	bf, err := bed.Create(prefix+".bed", len(samples))
	if err != nil {
		b.Close()
		f.Close()
		return nil, tagErr(StatusBedIOError, err)
	}
	return &Plink{Bed: bf, Bim: b, Fam: f}, nil
}

// WriteRow appends one locus to the bim table and its packed genotype
// row to the bed file. The bim append is attempted first so a format
// error in locus metadata is surfaced before anything is written to the
// (harder to truncate) bed stream.
func (p *Plink) WriteRow(locus bim.Locus, snps []bitpack.Genotype) error {
	if err := p.Bim.Append(locus); err != nil {
		return tagErr(StatusBimIOError, err)
	}
	if err := p.Bed.WriteRow(snps); err != nil {
		return tagErr(StatusBedIOError, err)
	}
	return nil
}

// OneLocusPerRow reports whether the underlying bed stream is stored
// one-locus-per-row, the orientation ReadRow/WriteRow require for the
// bim/fam pairing above to line up with each row.
func (p *Plink) OneLocusPerRow() bool {
	return p.Bed.Header.Order == bed.OneLocusPerRow
}

// Close closes the bed, bim, and fam streams, returning the first error
// encountered but always attempting all three.
func (p *Plink) Close() error {
	var first error
	if err := p.Bed.Close(); err != nil && first == nil {
		first = tagErr(StatusBedIOError, err)
	}
	if err := p.Bim.Close(); err != nil && first == nil {
		first = tagErr(StatusBimIOError, err)
	}
	if err := p.Fam.Close(); err != nil && first == nil {
		first = tagErr(StatusFamIOError, err)
	}
	return first
}

// Transpose flips a dataset's bed orientation into a new prefix: the bed
// itself is rewritten by bed.Transpose, while the bim and fam siblings
// are identical regardless of orientation and are simply byte-copied.
func Transpose(srcPrefix, dstPrefix string) error {
	f, err := fam.Open(srcPrefix + ".fam")
	if err != nil {
		return tagErr(StatusFamIOError, err)
	}
	defer f.Close()
	b, err := bim.Open(srcPrefix + ".bim")
	if err != nil {
		return tagErr(StatusBimIOError, err)
	}
	defer b.Close()

	if err := bed.Transpose(srcPrefix+".bed", dstPrefix+".bed", b.Num(), f.Num()); err != nil {
		return tagErr(StatusBedIOError, err)
	}
	if err := copyFile(srcPrefix+".bim", dstPrefix+".bim"); err != nil {
		return tagErr(StatusBimIOError, err)
	}
	if err := copyFile(srcPrefix+".fam", dstPrefix+".fam"); err != nil {
		return tagErr(StatusFamIOError, err)
	}
	return nil
}

// copyFile is the portable, direct replacement for a cp/rm shell-out:
// byte-for-byte via io.Copy, truncating/creating dst.
func copyFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return errors.Wrap(err, "open copy source")
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "create copy destination")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrap(err, "copy file")
	}
	return nil
}
