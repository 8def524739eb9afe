// Package buildinfo contains build information.
package buildinfo

import (
	"fmt"
	"os"

	"src.polyc.dev/pkg/prog"
)

// Version identifies the version of polyc.
const Version = "0.1.0"

// Program is the buildinfo subprogram.
type Program struct {
	version bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	if !p.version {
		return prog.ErrNextProgram
	}
	fmt.Fprintln(fds[1], Version)
	return nil
}
