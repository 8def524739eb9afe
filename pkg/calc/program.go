package calc

import (
	"fmt"
	"os"
	"strings"

	"src.polyc.dev/pkg/prog"
	"src.polyc.dev/pkg/sys"
)

// Program is the calculator subprogram. It is the last program in the chain
// and handles every invocation that reaches it.
type Program struct {
	codeInArg bool
	rcPath    string
	noRc      bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false, "take first argument as input lines to evaluate")
	fs.StringVar(&p.rcPath, "rc", "", "path to the rc file for interactive mode")
	fs.BoolVar(&p.noRc, "norc", false, "don't load the rc file in interactive mode")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if len(args) > 1 {
		return prog.BadUsage("at most one argument may be given")
	}
	if len(args) == 1 {
		if p.codeInArg {
			c := New(fds[1], fds[2])
			c.Eval(strings.NewReader(args[0]))
			return nil
		}
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("cannot open script %q: %w", args[0], err)
		}
		defer f.Close()
		c := New(fds[1], fds[2])
		c.Eval(f)
		return nil
	}
	if p.codeInArg {
		return prog.BadUsage("-c requires an argument")
	}

	if sys.IsATTY(fds[0].Fd()) {
		cfg := defaultConfig()
		if !p.noRc {
			cfg = loadConfig(p.rcPath, fds[2])
		}
		return interact(fds, cfg)
	}
	c := New(fds[1], fds[2])
	c.Eval(fds[0])
	return nil
}
