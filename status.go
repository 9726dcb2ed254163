// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package plinkio ties together the bed, bim, and fam packages into a
// single PLINK dataset: three sibling files sharing a path prefix.
package plinkio

import (
	"errors"

	"github.com/mfranberg-go/plinkio/bed"
)

// Status is the PLINK-ism status tag (pio_status_t in the C library),
// recoverable from any error this package returns via StatusOf. Ordinary
// callers can ignore it entirely and just check err != nil /
// errors.Is(err, ErrEnd) the idiomatic-Go way.
type Status int

const (
	StatusOK Status = iota
	StatusEnd
	StatusError
	StatusFamIOError
	StatusBimIOError
	StatusBedIOError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusEnd:
		return "END"
	case StatusFamIOError:
		return "FAM_IO_ERROR"
	case StatusBimIOError:
		return "BIM_IO_ERROR"
	case StatusBedIOError:
		return "BED_IO_ERROR"
	default:
		return "ERROR"
	}
}

// ErrEnd is the sentinel for normal row exhaustion, the same value bed
// returns from ReadRow/SkipRow. It is never wrapped: callers compare
// against it with errors.Is.
var ErrEnd = bed.ErrEnd

// taggedError attaches a Status to an underlying error without disturbing
// its message or its Unwrap chain, so errors.Is/As still sees through to
// whatever pkg/errors.Wrap produced underneath.
type taggedError struct {
	kind Status
	err  error
}

func (e *taggedError) Error() string { return e.err.Error() }
func (e *taggedError) Unwrap() error { return e.err }

func tagErr(kind Status, err error) error {
	if err == nil {
		return nil
	}
	return &taggedError{kind: kind, err: err}
}

// StatusOf classifies an error returned by this package's entry points
// into the PLINK status tag it corresponds to. A nil error is StatusOK.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	if errors.Is(err, ErrEnd) {
		return StatusEnd
	}
	var te *taggedError
	if errors.As(err, &te) {
		return te.kind
	}
	return StatusError
}
