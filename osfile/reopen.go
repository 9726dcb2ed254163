// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package osfile

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// ReopenMode reopens f's underlying descriptor with the given flags (e.g.
// os.O_RDONLY), the Go equivalent of libplinkio_change_mode_and_open_'s
// /dev/fd/<n> reopen trick: the result is a new handle over the same
// inode with different flags. The original fd is left untouched; callers
// close it independently.
func ReopenMode(f *File, flag int) (*File, error) {
	path := fmt.Sprintf("/dev/fd/%d", f.Fd())
	reopened, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "reopen fd %d with flag %#x", f.Fd(), flag)
	}
	return &File{f: reopened}, nil
}
