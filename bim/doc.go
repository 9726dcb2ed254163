// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package bim reads and writes PLINK .bim variant-annotation files: one
// tab-delimited row per locus, in the same order as the corresponding
// one-locus-per-row .bed rows.
package bim
