// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package osfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfranberg-go/plinkio/osfile"
)

func TestFileCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	f, err := osfile.Open(path, os.O_CREATE|os.O_RDWR, 0o600)
	require.NoError(t, err)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestTempFileIsUnlinked(t *testing.T) {
	dir := t.TempDir()
	f, err := osfile.TempFile(dir, "plinkio-*.bed")
	require.NoError(t, err)
	defer f.Close()

	n, err := f.OSFile().Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp file should be unlinked immediately after creation")
}
