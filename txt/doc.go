// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package txt implements the whitespace-delimited streaming tokeniser
// shared by the .bim, .fam, .map, and .ped readers, plus the typed field
// parsers those readers apply to each token.
package txt
