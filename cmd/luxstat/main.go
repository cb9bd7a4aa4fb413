// SPDX-License-Identifier: MIT

// Command luxstat runs the lux statistics routines on a single array.
//
// Usage:
//
//	luxstat total --kind int --dims 4,3 --values 1,2,3,4,5,6,7,8,9,10,11,12 --axis 1
//	luxstat mean --file data.yaml --axis 0 --keepdims
//	luxstat smooth --file data.yaml --width 5 --full-width
//	luxstat kinds
//
// Input is a YAML document {kind, dims, values} (from --file, or "-" for
// stdin) or the equivalent --kind/--dims/--values flags. Values are stored
// first dimension fastest. The result is written to stdout as the same kind
// of YAML document. Diagnostics go to stderr; --verbose enables debug logs.
package main

import (
	"fmt"
	"os"
)

const appName = "luxstat"

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}
