// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bed reads and writes PLINK .bed files: a versioned header
// followed by a 2-bit-per-genotype packed matrix, in either
// one-locus-per-row or one-sample-per-row orientation.
package bed
