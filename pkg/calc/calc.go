// Package calc implements the calculator that drives the polynomial engine:
// it owns the polynomial stack and executes parsed input lines against it.
//
// Results of inspecting commands go to the output writer; diagnostics go to
// the error writer as "ERROR <lineNr> <MESSAGE>" lines. Errors never stop
// the calculator; the offending line is skipped and processing continues.
package calc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"src.polyc.dev/pkg/diag"
	"src.polyc.dev/pkg/logutil"
	"src.polyc.dev/pkg/parse"
	"src.polyc.dev/pkg/poly"
)

var logger = logutil.GetLogger("[calc] ")

// StackUnderflow is the diagnostic for commands that need more operands than
// the stack holds.
const StackUnderflow = "STACK UNDERFLOW"

// Calculator executes input lines one at a time against its polynomial
// stack. Line numbers start at 1 and count every line seen, including
// skipped ones.
type Calculator struct {
	stack  Stack
	out    io.Writer
	errOut io.Writer
	lineNr int
}

// New returns a Calculator with an empty stack writing results to out and
// diagnostics to errOut.
func New(out, errOut io.Writer) *Calculator {
	return &Calculator{out: out, errOut: errOut}
}

// ProcessLine handles one raw input line, with the trailing newline already
// stripped. Empty lines and lines starting with '#' are comments: they are
// skipped entirely but still advance the line number.
func (c *Calculator) ProcessLine(text string) {
	c.lineNr++
	if text == "" || text[0] == '#' {
		return
	}
	line, err := parse.Parse(text)
	if err != nil {
		c.complain(err)
		return
	}
	switch line := line.(type) {
	case parse.PolyLine:
		c.stack.Push(line.Poly)
	case parse.CommandLine:
		c.execute(line)
	}
}

func (c *Calculator) complain(err error) {
	msg := err.Error()
	var perr *parse.Error
	if errors.As(err, &perr) {
		msg = perr.Message
	}
	diag.Complain(c.errOut, c.lineNr, msg)
}

func (c *Calculator) underflow() {
	diag.Complain(c.errOut, c.lineNr, StackUnderflow)
}

// require reports whether the stack holds at least n polynomials, emitting
// the underflow diagnostic if it does not.
func (c *Calculator) require(n int) bool {
	if c.stack.Len() < n {
		c.underflow()
		return false
	}
	return true
}

func (c *Calculator) printBool(b bool) {
	if b {
		fmt.Fprintln(c.out, 1)
	} else {
		fmt.Fprintln(c.out, 0)
	}
}

func (c *Calculator) execute(line parse.CommandLine) {
	logger.Printf("line %d: %s", c.lineNr, line.Cmd)
	switch line.Cmd {
	case parse.Zero:
		c.stack.Push(poly.FromCoeff(0))
	case parse.IsCoeff:
		if c.require(1) {
			c.printBool(c.stack.Peek(0).IsCoeff())
		}
	case parse.IsZero:
		if c.require(1) {
			c.printBool(c.stack.Peek(0).IsZero())
		}
	case parse.Clone:
		if c.require(1) {
			c.stack.Push(c.stack.Peek(0).Clone())
		}
	case parse.Add:
		if c.require(2) {
			a, b := c.stack.Pop(), c.stack.Pop()
			c.stack.Push(b.Add(a))
		}
	case parse.Mul:
		if c.require(2) {
			a, b := c.stack.Pop(), c.stack.Pop()
			c.stack.Push(b.Mul(a))
		}
	case parse.Sub:
		// The top is subtracted from the polynomial below it.
		if c.require(2) {
			a, b := c.stack.Pop(), c.stack.Pop()
			c.stack.Push(b.Sub(a))
		}
	case parse.Neg:
		if c.require(1) {
			c.stack.Push(c.stack.Pop().Neg())
		}
	case parse.IsEq:
		if c.require(2) {
			c.printBool(c.stack.Peek(0).Equal(c.stack.Peek(1)))
		}
	case parse.Deg:
		if c.require(1) {
			fmt.Fprintln(c.out, c.stack.Peek(0).Deg())
		}
	case parse.DegBy:
		if c.require(1) {
			fmt.Fprintln(c.out, c.stack.Peek(0).DegBy(line.Var))
		}
	case parse.At:
		if c.require(1) {
			c.stack.Push(c.stack.Pop().At(line.At))
		}
	case parse.Compose:
		c.compose(line.Var)
	case parse.Print:
		if c.require(1) {
			fmt.Fprintln(c.out, c.stack.Peek(0))
		}
	case parse.Pop:
		if c.require(1) {
			c.stack.Pop()
		}
	}
}

// compose pops the target polynomial and k substitutes. The depth check is
// done on uint64 so that k values near MaxUint64 cannot overflow it.
func (c *Calculator) compose(k uint64) {
	size := c.stack.Len()
	if size == 0 || uint64(size-1) < k {
		c.underflow()
		return
	}
	p := c.stack.Pop()
	// The first substitute popped replaces the highest variable.
	qs := make([]poly.Poly, k)
	for i := int(k) - 1; i >= 0; i-- {
		qs[i] = c.stack.Pop()
	}
	c.stack.Push(p.Compose(qs))
}

// Eval reads lines from r until EOF and processes each. Lines are separated
// by '\n'; a final line without the separator still counts.
func (c *Calculator) Eval(r io.Reader) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			c.ProcessLine(strings.TrimSuffix(line, "\n"))
		}
		if err != nil {
			if err != io.EOF {
				logger.Println("read:", err)
			}
			return
		}
	}
}
