// Command polyc is a stack calculator for sparse multivariate polynomials.
package main

import (
	"os"

	"src.polyc.dev/pkg/buildinfo"
	"src.polyc.dev/pkg/calc"
	"src.polyc.dev/pkg/lsp"
	"src.polyc.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		&buildinfo.Program{}, &lsp.Program{}, &calc.Program{}))
}
