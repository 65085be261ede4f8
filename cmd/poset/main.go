// SPDX-License-Identifier: MIT

// Command poset validates, expands, reduces and sorts partial orders read
// from incidence-matrix files.
package main

import "github.com/katalvlaran/poset/internal/cli"

func main() {
	cli.Execute()
}
