// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package txt

import (
	"strconv"

	"github.com/pkg/errors"
)

// Sex is the parsed value of a .fam/.ped sex column.
type Sex int

const (
	SexUnknown Sex = iota
	SexMale
	SexFemale
)

// Affection and phenotype form an entangled sum type: Control/Case/Missing
// always carry the fixed phenotype value their category implies;
// Continuous carries an arbitrary one.
type Affection int

const (
	AffectionMissing Affection = iota
	AffectionControl
	AffectionCase
	AffectionContinuous
)

// AlleleCall classifies a single allele token against a locus's
// discovered allele1/allele2.
type AlleleCall int

const (
	AlleleCallNo AlleleCall = iota
	AlleleCallFirst
	AlleleCallSecond
	AlleleCallError
)

// ParseStr accepts any non-empty field as an owned string.
func ParseStr(field []byte) (string, error) {
	if len(field) == 0 {
		return "", errors.New("empty string field")
	}
	return string(field), nil
}

// ParseChr parses a decimal chromosome number. Values outside the u8
// range silently truncate mod 256, the same as the original's
// `(unsigned char) strtol(...)` cast -- chromosome numbers above 255
// don't occur in PLINK data, so the truncation is a format-intrinsic
// limit rather than a defect to guard against.
func ParseChr(field []byte) (byte, error) {
	if len(field) == 0 {
		return 0, errors.New("empty chromosome field")
	}
	v, err := strconv.ParseInt(string(field), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse chromosome")
	}
	return byte(v), nil
}

// ParseGeneticPosition parses a floating-point centimorgan position.
func ParseGeneticPosition(field []byte) (float32, error) {
	if len(field) == 0 {
		return 0, errors.New("empty genetic position field")
	}
	v, err := strconv.ParseFloat(string(field), 32)
	if err != nil {
		return 0, errors.Wrap(err, "parse genetic position")
	}
	return float32(v), nil
}

// ParseBPPosition parses a signed base-pair position.
func ParseBPPosition(field []byte) (int64, error) {
	if len(field) == 0 {
		return 0, errors.New("empty bp position field")
	}
	v, err := strconv.ParseInt(string(field), 10, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parse bp position")
	}
	return v, nil
}

// ParseSex accepts exactly "1" (male), "2" (female), or "0" (unknown);
// any other token is rejected.
func ParseSex(field []byte) (Sex, error) {
	if len(field) == 1 {
		switch field[0] {
		case '1':
			return SexMale, nil
		case '2':
			return SexFemale, nil
		case '0':
			return SexUnknown, nil
		}
	}
	return SexUnknown, errors.New("invalid sex field")
}

// ParsePhenotype decodes the entangled affection/phenotype column: "1",
// "2", "0", "-9", and "NA" map to the discrete categories with their
// fixed phenotype values; any other floating literal is continuous.
func ParsePhenotype(field []byte) (Affection, float32, error) {
	if len(field) == 0 {
		return 0, 0, errors.New("empty phenotype field")
	}
	if len(field) == 1 {
		switch field[0] {
		case '1':
			return AffectionControl, 0.0, nil
		case '2':
			return AffectionCase, 1.0, nil
		case '0':
			return AffectionMissing, -9.0, nil
		}
	}
	s := string(field)
	if s == "-9" || s == "NA" {
		return AffectionMissing, -9.0, nil
	}

	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse phenotype")
	}
	return AffectionContinuous, float32(v), nil
}

// ParseAllele interprets an allele token against a locus's
// allele1/allele2 slots, discovering new alleles in order of first
// appearance. allele1/allele2 are read and, on first sight of a new
// allele, written through the pointers -- the same discovery-by-reference
// the ingest pipeline needs across successive calls for the same locus.
// "0" is the no-call token and never touches the slots.
func ParseAllele(field []byte, allele1, allele2 *string) AlleleCall {
	if len(field) == 0 {
		return AlleleCallError
	}
	token := string(field)

	switch {
	case token == "0":
		return AlleleCallNo
	case *allele1 == "":
		*allele1 = token
		return AlleleCallFirst
	case token == *allele1:
		return AlleleCallFirst
	case *allele2 == "":
		*allele2 = token
		return AlleleCallSecond
	case token == *allele2:
		return AlleleCallSecond
	default:
		return AlleleCallError
	}
}
