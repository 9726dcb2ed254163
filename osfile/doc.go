// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package osfile provides the OS-abstraction primitives the bed codec and
// the ingest pipeline build on: a scoped file wrapper whose Close is
// idempotent, a scoped memory mapping for read-only or read-write access,
// and an unlink-on-open temp file used by ingest to stage a working .bed
// that is unreachable by name once created.
package osfile
