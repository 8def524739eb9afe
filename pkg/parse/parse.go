// Package parse converts one line of calculator input into a [Line] value:
// a polynomial literal or a command.
//
// A line whose first character is a letter is classified as a command;
// everything else is parsed as a polynomial literal. Errors are returned as
// [*Error] values carrying one of the canonical diagnostic messages and the
// offending range within the line; nothing is printed here. The caller
// decides how to render errors (see diag.Complain).
package parse

import (
	"src.polyc.dev/pkg/diag"
	"src.polyc.dev/pkg/poly"
)

// Canonical diagnostic messages.
const (
	WrongPoly             = "WRONG POLY"
	WrongCommand          = "WRONG COMMAND"
	DegByWrongVariable    = "DEG BY WRONG VARIABLE"
	AtWrongValue          = "AT WRONG VALUE"
	ComposeWrongParameter = "COMPOSE WRONG PARAMETER"
)

// Error is a parse or classification error for one line of input.
type Error struct {
	// Message is the canonical diagnostic text, e.g. "WRONG POLY".
	Message string
	// The byte range of the offending text within the line.
	diag.Ranging
}

// Error returns the canonical diagnostic text.
func (e *Error) Error() string { return e.Message }

// Line is the result of parsing one line of input. It is either a [PolyLine]
// or a [CommandLine].
type Line interface{ line() }

// PolyLine is a line holding a polynomial literal.
type PolyLine struct{ Poly poly.Poly }

// CommandLine is a line holding a command, possibly with an argument.
type CommandLine struct {
	Cmd Command
	// Argument of DegBy and Compose.
	Var uint64
	// Argument of At.
	At int64
}

func (PolyLine) line()    {}
func (CommandLine) line() {}

// Parse converts one input line, with the trailing newline already stripped,
// into a [Line]. The returned error, if any, is always a [*Error].
func Parse(src string) (Line, error) {
	if len(src) > 0 && isAlpha(src[0]) {
		return parseCommand(src)
	}
	p, err := ParsePoly(src)
	if err != nil {
		return nil, err
	}
	return PolyLine{p}, nil
}

func isAlpha(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }

func isDigitOrMinus(b byte) bool { return isDigit(b) || b == '-' }

// isSpace reports whether b is an ASCII whitespace character.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
