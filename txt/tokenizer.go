// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package txt

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// charClass is one of the four character classes the tokeniser
// distinguishes: GRAPH (non-whitespace), DELIM (space/tab), EOL ('\n'),
// and the implicit EOF reached at end of input. No other character class
// is interpreted -- no quoting, no escapes, no comments.
type charClass int

const (
	classDelim charClass = iota
	classGraph
	classEOL
)

func classify(b byte) charClass {
	switch b {
	case ' ', '\t':
		return classDelim
	case '\n':
		return classEOL
	default:
		return classGraph
	}
}

// FieldFunc receives a single token. field is reused by the Parser after
// the call returns; callers that need to retain it must copy it.
type FieldFunc func(field []byte, fieldNum int)

// RowFunc is invoked once per row, immediately after its last field.
type RowFunc func(rowNum int)

// Parser is a single-pass, buffer-driven tokeniser. It is not safe for
// concurrent use, matching the single-threaded, blocking tokeniser the
// bed/bim/fam readers all build on.
type Parser struct {
	prevClass charClass
	field     []byte
	fieldNum  int
	rowNum    int
}

// NewParser returns a Parser ready to read the start of a fresh stream.
func NewParser() *Parser {
	return &Parser{prevClass: classDelim, field: make([]byte, 0, 16)}
}

// Parse streams r to EOF, invoking onField on every GRAPH-to-non-GRAPH
// transition and onRow on every EOL. It does not call Finalize; callers
// must do so once Parse returns a nil error, to flush a trailing field or
// row that wasn't terminated by a final newline.
func (p *Parser) Parse(r *bufio.Reader, onField FieldFunc, onRow RowFunc) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read")
		}

		class := classify(b)
		if class == classGraph {
			p.field = append(p.field, b)
		} else if p.prevClass == classGraph {
			onField(p.field, p.fieldNum)
			p.field = p.field[:0]
			p.fieldNum++
		}
		if class == classEOL {
			onRow(p.rowNum)
			p.rowNum++
			p.fieldNum = 0
		}
		p.prevClass = class
	}
}

// Finalize flushes a trailing field (if the stream ended mid-token) and a
// trailing row callback (if the stream didn't end on a newline).
func (p *Parser) Finalize(onField FieldFunc, onRow RowFunc) {
	if p.prevClass == classGraph {
		onField(p.field, p.fieldNum)
	}
	if p.prevClass != classEOL {
		onRow(p.rowNum)
	}
}

// ProbeColumnCount counts the whitespace-delimited fields on the first
// row of r, then seeks r back to the start -- the one-row, rewind-after
// variant used to detect .ped simple-vs-compound format and .map
// 3-vs-4 column format before the real parse begins.
func ProbeColumnCount(r io.ReadSeeker) (int, error) {
	buf := bufio.NewReader(r)
	prevClass := classDelim
	columns := 0

loop:
	for {
		b, err := buf.ReadByte()
		switch {
		case err == io.EOF:
			break loop
		case err != nil:
			return 0, errors.Wrap(err, "read")
		}

		class := classify(b)
		if class == classEOL {
			break loop
		}
		if class == classGraph && prevClass != classGraph {
			columns++
		}
		prevClass = class
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, errors.Wrap(err, "rewind")
	}
	return columns, nil
}
