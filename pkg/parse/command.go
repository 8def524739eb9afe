package parse

import (
	"strconv"
	"strings"

	"src.polyc.dev/pkg/diag"
)

// Command identifies a calculator command.
type Command int

// Calculator commands, in the order of the input vocabulary.
const (
	Zero Command = iota
	IsCoeff
	IsZero
	Clone
	Add
	Mul
	Neg
	Sub
	IsEq
	Deg
	Print
	Pop
	DegBy
	At
	Compose
)

var commandNames = [...]string{
	Zero: "ZERO", IsCoeff: "IS_COEFF", IsZero: "IS_ZERO", Clone: "CLONE",
	Add: "ADD", Mul: "MUL", Neg: "NEG", Sub: "SUB", IsEq: "IS_EQ",
	Deg: "DEG", Print: "PRINT", Pop: "POP",
	DegBy: "DEG_BY", At: "AT", Compose: "COMPOSE",
}

// String returns the input keyword of the command.
func (c Command) String() string { return commandNames[c] }

var exactCommands = map[string]Command{
	"ZERO": Zero, "IS_COEFF": IsCoeff, "IS_ZERO": IsZero, "CLONE": Clone,
	"ADD": Add, "MUL": Mul, "NEG": Neg, "SUB": Sub, "IS_EQ": IsEq,
	"DEG": Deg, "PRINT": Print, "POP": Pop,
}

// parseCommand classifies a line starting with a letter. Commands without an
// argument must match their keyword exactly; DEG_BY, AT and COMPOSE claim
// the line as soon as their keyword is followed by end of line or a
// whitespace character, and then validate the argument with their own
// diagnostic message.
func parseCommand(src string) (Line, error) {
	if cmd, ok := exactCommands[src]; ok {
		return CommandLine{Cmd: cmd}, nil
	}
	switch {
	case keywordClaims(src, "DEG_BY"):
		if !(len(src) >= 8 && src[6] == ' ' && isDigit(src[7])) {
			return nil, argError(src, "DEG_BY", DegByWrongVariable)
		}
		v, err := strconv.ParseUint(src[7:], 10, 64)
		if err != nil {
			return nil, argError(src, "DEG_BY", DegByWrongVariable)
		}
		return CommandLine{Cmd: DegBy, Var: v}, nil
	case keywordClaims(src, "AT"):
		if !(len(src) >= 4 && src[2] == ' ' && isDigitOrMinus(src[3])) {
			return nil, argError(src, "AT", AtWrongValue)
		}
		x, err := strconv.ParseInt(src[3:], 10, 64)
		if err != nil {
			return nil, argError(src, "AT", AtWrongValue)
		}
		return CommandLine{Cmd: At, At: x}, nil
	case keywordClaims(src, "COMPOSE"):
		if !(len(src) >= 9 && src[7] == ' ' && isDigit(src[8])) {
			return nil, argError(src, "COMPOSE", ComposeWrongParameter)
		}
		v, err := strconv.ParseUint(src[8:], 10, 64)
		if err != nil {
			return nil, argError(src, "COMPOSE", ComposeWrongParameter)
		}
		return CommandLine{Cmd: Compose, Var: v}, nil
	}
	return nil, &Error{WrongCommand, diag.Ranging{From: 0, To: len(src)}}
}

// keywordClaims reports whether the line consists of the keyword followed by
// end of line or a whitespace character. Such a line belongs to the keyword
// even if its argument turns out to be malformed.
func keywordClaims(src, keyword string) bool {
	if !strings.HasPrefix(src, keyword) {
		return false
	}
	return len(src) == len(keyword) || isSpace(src[len(keyword)])
}

func argError(src, keyword, msg string) *Error {
	return &Error{msg, diag.Ranging{From: len(keyword), To: len(src)}}
}
