// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package pedmap ingests the PLINK text format (.map + .ped) into a
// binary .bed/.bim/.fam triple: parse .map for loci, stream .ped into a
// transposed working bed while discovering alleles, transpose to
// one-locus-per-row, run the allele-flip pass, and emit .bim/.fam.
package pedmap
