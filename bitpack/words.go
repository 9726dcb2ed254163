// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package bitpack

import (
	"unsafe"

	"github.com/grailbio/base/simd"
)

// maxWordBytes is the widest machine word the aligned fast paths in
// count.go/flip.go will reinterpret a byte slice as, re-exported
// from grailbio/base/simd the same way biosimd's own BytesPerWord does.
const maxWordBytes = simd.BytesPerWord

// nativeUint16/32/64 reinterpret the first 2/4/8 bytes of b as a machine
// word in native byte order. Callers must only use these once addrAlignment
// has confirmed b is suitably aligned. The count/flip bit tricks are
// symmetric per byte-pair regardless of word byte order, so operating on
// the reinterpreted word reproduces the same result as the per-byte
// versions, just fewer iterations.
func nativeUint16(b []byte) uint16 {
	return *(*uint16)(unsafe.Pointer(&b[0]))
}

func nativeUint32(b []byte) uint32 {
	return *(*uint32)(unsafe.Pointer(&b[0]))
}

func nativeUint64(b []byte) uint64 {
	return *(*uint64)(unsafe.Pointer(&b[0]))
}

func storeNativeUint16(b []byte, w uint16) {
	*(*uint16)(unsafe.Pointer(&b[0])) = w
}

func storeNativeUint32(b []byte, w uint32) {
	*(*uint32)(unsafe.Pointer(&b[0])) = w
}

func storeNativeUint64(b []byte, w uint64) {
	*(*uint64)(unsafe.Pointer(&b[0])) = w
}
