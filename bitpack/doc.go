// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bitpack provides the byte-level building blocks for PLINK's
// 2-bit genotype encoding: the disk/unpacked lookup tables, pack/unpack
// routines with alignment-aware fast paths, and the branch-free bit
// tricks used by the minor-allele normaliser to count and flip alleles
// across a packed row.
//
// None of this package touches files; it operates purely on byte slices,
// the same separation of concerns as github.com/grailbio/bio/biosimd.
package bitpack
