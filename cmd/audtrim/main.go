// SPDX-License-Identifier: EPL-2.0

// Command audtrim inspects, trims, resamples and classifies audio files.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "audtrim: %s\n", describe(err))
		os.Exit(1)
	}
}
