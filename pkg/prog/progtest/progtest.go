// Package progtest provides utilities for testing subprograms.
//
// The entry point of this package is [Test], which runs a [prog.Program]
// against a number of test cases built with [ThatPolyc].
package progtest

import (
	"os"
	"strings"
	"testing"

	"src.polyc.dev/pkg/must"
	"src.polyc.dev/pkg/prog"
)

// Case is a test case for a subprogram.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + o.content
	}
	return o.content
}

// ThatPolyc returns a new Case with the given command-line arguments.
func ThatPolyc(args ...string) Case {
	return Case{args: append([]string{"polyc"}, args...)}
}

// WithStdin returns an altered Case that feeds the given text on stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// have no expectations, and thus only test that the program exits with 0 and
// prints nothing.
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit code.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program
// run to write stdout output containing the given text.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program
// run to write stderr output containing the given text.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs a [prog.Program] against the given test cases.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args[1:], " "), func(t *testing.T) {
			t.Helper()
			r := run(p, c.args, c.stdin)
			if r.exit != c.want.exit {
				t.Errorf("got exit code %v, want %v", r.exit, c.want.exit)
			}
			if !matchOutput(r.stdout, c.want.stdout) {
				t.Errorf("got stdout %q, want %v", r.stdout, c.want.stdout)
			}
			if !matchOutput(r.stderr, c.want.stderr) {
				t.Errorf("got stderr %q, want %v", r.stderr, c.want.stderr)
			}
		})
	}
}

type runResult struct {
	exit   int
	stdout string
	stderr string
}

func matchOutput(got string, want output) bool {
	if want.partial {
		return strings.Contains(got, want.content)
	}
	return got == want.content
}

func run(p prog.Program, args []string, stdin string) runResult {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	// Feed stdin from a goroutine; the write can block if the input exceeds
	// the pipe buffer.
	go func() {
		defer w0.Close()
		w0.WriteString(stdin)
	}()
	// Drain stdout and stderr from goroutines for the same reason.
	stdout := make(chan string, 1)
	stderr := make(chan string, 1)
	go func() { stdout <- string(must.ReadAllAndClose(r1)) }()
	go func() { stderr <- string(must.ReadAllAndClose(r2)) }()

	exit := prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	r0.Close()
	return runResult{exit, <-stdout, <-stderr}
}
