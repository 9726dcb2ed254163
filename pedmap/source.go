// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package pedmap

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// openSeekable opens path for reading, transparently gzip-decompressing
// it into memory when path ends in ".gz" -- checked by extension, the
// way PLINK tooling conventionally names compressed text inputs, not by
// magic-sniffing. The ingest parsers need io.ReadSeeker (to rewind after
// probing the column count), which a streaming gzip.Reader can't offer
// directly, hence the decompress-to-memory step for the gzip path.
func openSeekable(path string) (io.ReadSeeker, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open %s", path)
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, f.Close, nil
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "gunzip %s", path)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read gzipped %s", path)
	}
	return bytes.NewReader(data), func() error { return nil }, nil
}
