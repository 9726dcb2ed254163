// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pedmap

import (
	"bufio"

	"github.com/pkg/errors"

	"github.com/mfranberg-go/plinkio/txt"
)

// MapLocus is one parsed .map row. HasGeneticPosition is false for the
// 3-column format, where no genetic-position field was present.
type MapLocus struct {
	Chromosome         byte
	Name               string
	HasGeneticPosition bool
	Position           float32
	BPPosition         int64
}

const (
	mapColsNoGenetic   = 3
	mapColsWithGenetic = 4
)

// parseMap reads an entire .map file, detecting the 3-vs-4 column format
// from the first row's column count and holding it fixed for the rest of
// the file, per spec.
func parseMap(path string) ([]MapLocus, error) {
	r, closeFn, err := openSeekable(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	cols, err := txt.ProbeColumnCount(r)
	if err != nil {
		return nil, errors.Wrap(err, "probe map column count")
	}
	if cols != mapColsNoGenetic && cols != mapColsWithGenetic {
		return nil, errors.Errorf("pedmap: .map has %d columns, want %d or %d", cols, mapColsNoGenetic, mapColsWithGenetic)
	}

	var loci []MapLocus
	var fields [mapColsWithGenetic][]byte
	count := 0
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
		l, ok := parseMapRow(fields, cols)
		if !ok {
			anyError = true
			return
		}
		loci = append(loci, l)
	}

	p := txt.NewParser()
	br := bufio.NewReader(r)
	if err := p.Parse(br, onField, onRow); err != nil {
		return nil, errors.Wrap(err, "tokenize map")
	}
	p.Finalize(onField, onRow)
	if anyError {
		return loci, errors.New("pedmap: malformed map row")
	}
	return loci, nil
}

func parseMapRow(fields [mapColsWithGenetic][]byte, cols int) (MapLocus, bool) {
	chr, err := txt.ParseChr(fields[0])
	if err != nil {
		return MapLocus{}, false
	}
	name, err := txt.ParseStr(fields[1])
	if err != nil {
		return MapLocus{}, false
	}

	l := MapLocus{Chromosome: chr, Name: name}
	if cols == mapColsWithGenetic {
		pos, err := txt.ParseGeneticPosition(fields[2])
		if err != nil {
			return MapLocus{}, false
		}
		bp, err := txt.ParseBPPosition(fields[3])
		if err != nil {
			return MapLocus{}, false
		}
		l.HasGeneticPosition = true
		l.Position = pos
		l.BPPosition = bp
		return l, true
	}

	bp, err := txt.ParseBPPosition(fields[2])
	if err != nil {
		return MapLocus{}, false
	}
	l.BPPosition = bp
	return l, true
}
