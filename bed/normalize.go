// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bed

import (
	"bytes"
	"os"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/bitpack"
	"github.com/mfranberg-go/plinkio/osfile"
)

// NormalizeAlleles rewrites every row of a one-locus-per-row .bed at path
// so that allele2 is carried by at least as many copies as allele1: for
// each row, it counts first- vs second-allele copies and, when first
// outnumbers second, flips the row in place and invokes onFlip with the
// row's index so the caller can swap the corresponding locus's
// allele1/allele2 strings.
//
// Precondition: the file is one-locus-per-row (the caller transposes
// first if necessary). The file is mapped read-write for the duration.
func NormalizeAlleles(path string, numLoci, numSamples int, onFlip func(locusIndex int)) error {
	f, err := osfile.Open(path, os.O_RDWR, 0)
	if err != nil {
		return errors.Wrap(err, "open bed for normalization")
	}
	defer f.Close()

	m, err := osfile.MapReadWrite(f.OSFile())
	if err != nil {
		return errors.Wrap(err, "mmap bed for normalization")
	}
	defer m.Close()

	h, err := DecodeHeader(bytes.NewReader(m.Bytes()), numLoci, numSamples)
	if err != nil {
		return errors.Wrap(err, "decode bed header for normalization")
	}
	if h.Order != OneLocusPerRow {
		return errors.New("bed: NormalizeAlleles requires one-locus-per-row")
	}

	rowBytes := h.RowBytes()
	data := m.Bytes()[h.DataOffset():]
	numCols := h.NumCols()

	for i := 0; i < h.NumRows(); i++ {
		row := data[i*rowBytes : (i+1)*rowBytes]
		first, second := bitpack.CountAlleles(row, numCols)
		if first > second {
			bitpack.FlipAlleles(row, numCols)
			if onFlip != nil {
				onFlip(i)
			}
		}
	}
	return nil
}
