// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package osfile

import (
	"os"

	"github.com/pkg/errors"
)

// TempFile opens a new, empty read-write file under dir and immediately
// unlinks it from the filesystem while keeping the descriptor open,
// mirroring libplinkio_tmp_open_'s open-then-unlink sequence: the ingest
// pipeline's working .bed is reachable only through the returned handle,
// never by path, and disappears automatically however the process exits.
//
// Windows disallows removing a file that's still open by the same
// process; on that platform the file is left in place and removed when
// the returned handle is closed instead (the same gap libplinkio's own
// _WIN32 branch in utility.c accepts).
func TempFile(dir, pattern string) (*File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, errors.Wrap(err, "create temp file")
	}
	path := f.Name()

	if os.PathSeparator == '\\' {
		// Windows: can't unlink an open file. Remove on Close instead.
		return &File{f: f, removeOnClose: path}, nil
	}

	if err := os.Remove(path); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "unlink temp file %s", path)
	}
	return &File{f: f}, nil
}
