// Package prog provides the entry point to polyc. Its sibling packages
// implement the actual subprograms: the calculator, the language server and
// the version printer.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.polyc.dev/pkg/logutil"
)

// Program represents a subprogram.
//
// This is the only abstraction the entry point knows about; subprograms
// advertise their flags via RegisterFlags and get a chance to run in the
// order they are passed to Run. A subprogram that decides it is not the one
// being requested returns ErrNextProgram.
type Program interface {
	// RegisterFlags registers the subprogram's flags on the shared flag set.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram with the three standard file descriptors and
	// the non-flag arguments.
	Run(fds [3]*os.File, args []string) error
}

// FlagSet wraps a [flag.FlagSet] shared by all subprograms.
type FlagSet struct {
	*flag.FlagSet
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: polyc [flags] [script]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the process.
func Run(fds [3]*os.File, args []string, programs ...Program) int {
	fs := flag.NewFlagSet("polyc", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	var logFile string
	var help bool
	fs.StringVar(&logFile, "log", "", "path to a file to write debug log")
	fs.BoolVar(&help, "help", false, "show usage help and quit")

	wfs := &FlagSet{FlagSet: fs}
	for _, program := range programs {
		program.RegisterFlags(wfs)
	}

	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h or -help was
			// requested but *not* defined. Since -help is defined, this means
			// that -h has been requested. Handle this by printing the same
			// message as an undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if logFile != "" {
		err = logutil.SetOutputFile(logFile)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if help {
		usage(fds[1], fs)
		return 0
	}

	for _, program := range programs {
		err := program.Run(fds, fs.Args())
		if errors.Is(err, ErrNextProgram) {
			continue
		}
		if err == nil {
			return 0
		}
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(fds[2], msg)
		}
		switch err := err.(type) {
		case badUsageError:
			usage(fds[2], fs)
		case exitError:
			return err.exit
		}
		return 2
	}
	// If we have reached here, all subprograms have returned ErrNextProgram.
	fmt.Fprintln(fds[2], "internal error: no suitable subprogram")
	return 2
}

// ErrNextProgram is a special error that may be returned by Program.Run, to
// signify that the next program should be tried instead.
var ErrNextProgram = errors.New("next program")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
