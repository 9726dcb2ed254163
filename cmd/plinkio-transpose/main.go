// Copyright 2026 The plinkio Authors. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command plinkio-transpose flips a PLINK dataset's .bed snp-order,
// writing the result under a new path prefix.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mfranberg-go/plinkio"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s src-prefix dst-prefix\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  transposes src-prefix.bed into dst-prefix.bed and copies the .bim/.fam siblings\n")
}

func main() {
	flags := flag.NewFlagSet("plinkio-transpose", flag.ExitOnError)
	flags.Usage = usage
	flags.Parse(os.Args[1:])

	args := flags.Args()
	if len(args) != 2 {
		usage()
		os.Exit(2)
	}
	srcPrefix, dstPrefix := args[0], args[1]

	if err := plinkio.Transpose(srcPrefix, dstPrefix); err != nil {
		fmt.Fprintf(os.Stderr, "plinkio-transpose: %s: %v\n", plinkio.StatusOf(err), err)
		os.Exit(1)
	}
}
