// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fam reads and writes PLINK .fam sample-annotation files: one
// tab-delimited row per sample, in the same order as the sample axis of
// the corresponding .bed file.
package fam
