// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package txt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranberg-go/plinkio/txt"
)

func TestParseStr(t *testing.T) {
	v, err := txt.ParseStr([]byte("rs1"))
	require.NoError(t, err)
	assert.Equal(t, "rs1", v)

	_, err = txt.ParseStr([]byte(""))
	assert.Error(t, err)
}

func TestParseChr(t *testing.T) {
	v, err := txt.ParseChr([]byte("22"))
	require.NoError(t, err)
	assert.Equal(t, byte(22), v)

	_, err = txt.ParseChr([]byte("22x"))
	assert.Error(t, err)

	_, err = txt.ParseChr([]byte(""))
	assert.Error(t, err)
}

func TestParseGeneticPosition(t *testing.T) {
	v, err := txt.ParseGeneticPosition([]byte("0.23"))
	require.NoError(t, err)
	assert.InDelta(t, 0.23, v, 1e-6)

	_, err = txt.ParseGeneticPosition([]byte("abc"))
	assert.Error(t, err)
}

func TestParseBPPosition(t *testing.T) {
	v, err := txt.ParseBPPosition([]byte("-1234567"))
	require.NoError(t, err)
	assert.Equal(t, int64(-1234567), v)

	_, err = txt.ParseBPPosition([]byte("12x"))
	assert.Error(t, err)
}

func TestParseSex(t *testing.T) {
	cases := map[string]txt.Sex{"1": txt.SexMale, "2": txt.SexFemale, "0": txt.SexUnknown}
	for s, want := range cases {
		v, err := txt.ParseSex([]byte(s))
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	_, err := txt.ParseSex([]byte("3"))
	assert.Error(t, err)
}

func TestParsePhenotype(t *testing.T) {
	aff, pheno, err := txt.ParsePhenotype([]byte("1"))
	require.NoError(t, err)
	assert.Equal(t, txt.AffectionControl, aff)
	assert.Equal(t, float32(0.0), pheno)

	aff, pheno, err = txt.ParsePhenotype([]byte("2"))
	require.NoError(t, err)
	assert.Equal(t, txt.AffectionCase, aff)
	assert.Equal(t, float32(1.0), pheno)

	for _, s := range []string{"0", "-9", "NA"} {
		aff, pheno, err := txt.ParsePhenotype([]byte(s))
		require.NoError(t, err)
		assert.Equal(t, txt.AffectionMissing, aff)
		assert.Equal(t, float32(-9.0), pheno)
	}

	aff, pheno, err = txt.ParsePhenotype([]byte("2.5"))
	require.NoError(t, err)
	assert.Equal(t, txt.AffectionContinuous, aff)
	assert.InDelta(t, 2.5, pheno, 1e-6)

	_, _, err = txt.ParsePhenotype([]byte("junk"))
	assert.Error(t, err)
}

func TestParseAlleleDiscovery(t *testing.T) {
	var a1, a2 string

	call := txt.ParseAllele([]byte("A"), &a1, &a2)
	assert.Equal(t, txt.AlleleCallFirst, call)
	assert.Equal(t, "A", a1)

	call = txt.ParseAllele([]byte("A"), &a1, &a2)
	assert.Equal(t, txt.AlleleCallFirst, call)

	call = txt.ParseAllele([]byte("C"), &a1, &a2)
	assert.Equal(t, txt.AlleleCallSecond, call)
	assert.Equal(t, "C", a2)

	call = txt.ParseAllele([]byte("0"), &a1, &a2)
	assert.Equal(t, txt.AlleleCallNo, call)

	call = txt.ParseAllele([]byte("G"), &a1, &a2)
	assert.Equal(t, txt.AlleleCallError, call)

	call = txt.ParseAllele([]byte(""), &a1, &a2)
	assert.Equal(t, txt.AlleleCallError, call)
}
