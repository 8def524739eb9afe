package parse_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"src.polyc.dev/pkg/parse"
)

var polyTests = []struct {
	src string
	// Canonical rendering of the parsed polynomial, or "" if wantErr is set.
	want    string
	wantErr string
}{
	{src: "0", want: "0"},
	{src: "007", want: "7"},
	{src: "-42", want: "-42"},
	{src: "9223372036854775807", want: "9223372036854775807"},
	{src: "-9223372036854775808", want: "-9223372036854775808"},
	{src: "(1,2)", want: "(1,2)"},
	{src: "(1,2)+(3,0)", want: "(1,2)+(3,0)"},
	// Normalization: reordering, collapsing and merging.
	{src: "(3,0)+(1,2)", want: "(1,2)+(3,0)"},
	{src: "(5,0)", want: "5"},
	{src: "(1,0)+(2,0)", want: "3"},
	{src: "(1,2)+(-1,2)", want: "0"},
	{src: "(0,3)", want: "0"},
	{src: "((1,1),0)", want: "((1,1),0)"},
	{src: "((2,0),1)", want: "(2,1)"},
	{src: "((1,0)+(1,2),3)", want: "((1,2)+(1,0),3)"},

	{src: "", wantErr: parse.WrongPoly},
	{src: "+", wantErr: parse.WrongPoly},
	{src: "-", wantErr: parse.WrongPoly},
	{src: "--1", wantErr: parse.WrongPoly},
	{src: "1+1", wantErr: parse.WrongPoly},
	{src: "1 ", wantErr: parse.WrongPoly},
	{src: "1.5", wantErr: parse.WrongPoly},
	{src: "(1,2", wantErr: parse.WrongPoly},
	{src: "1,2)", wantErr: parse.WrongPoly},
	{src: "(1,2))", wantErr: parse.WrongPoly},
	{src: "()", wantErr: parse.WrongPoly},
	{src: "(1)", wantErr: parse.WrongPoly},
	{src: "(1,)", wantErr: parse.WrongPoly},
	{src: "(1,-1)", wantErr: parse.WrongPoly},
	{src: "(1,2)(3,4)", wantErr: parse.WrongPoly},
	{src: "(1,2)+", wantErr: parse.WrongPoly},
	{src: "(1,2)+3", wantErr: parse.WrongPoly},
	// Out-of-range coefficient and exponent.
	{src: "9223372036854775808", wantErr: parse.WrongPoly},
	{src: "(-9223372036854775809,1)", wantErr: parse.WrongPoly},
	{src: "(1,2147483648)", wantErr: parse.WrongPoly},
}

func TestParsePoly(t *testing.T) {
	for _, test := range polyTests {
		t.Run(test.src, func(t *testing.T) {
			p, err := parse.ParsePoly(test.src)
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("ParsePoly(%q) parsed to %s, want error", test.src, p)
				}
				if err.Error() != test.wantErr {
					t.Errorf("ParsePoly(%q) errored with %q, want %q", test.src, err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePoly(%q) -> error %v", test.src, err)
			}
			if got := p.String(); got != test.want {
				t.Errorf("ParsePoly(%q).String() = %q, want %q", test.src, got, test.want)
			}
		})
	}
}

// Printing a parsed polynomial and parsing it back is the identity on
// canonical forms.
func TestParsePolyRoundTrip(t *testing.T) {
	for _, test := range polyTests {
		if test.wantErr != "" {
			continue
		}
		p, err := parse.ParsePoly(test.src)
		if err != nil {
			t.Fatalf("ParsePoly(%q) -> error %v", test.src, err)
		}
		q, err := parse.ParsePoly(p.String())
		if err != nil {
			t.Fatalf("ParsePoly(%q) -> error %v", p.String(), err)
		}
		if !p.Equal(q) {
			t.Errorf("round trip of %q: got %s, want %s", test.src, q, p)
		}
	}
}

var commandTests = []struct {
	src     string
	want    parse.CommandLine
	wantErr string
}{
	{src: "ZERO", want: parse.CommandLine{Cmd: parse.Zero}},
	{src: "IS_COEFF", want: parse.CommandLine{Cmd: parse.IsCoeff}},
	{src: "IS_ZERO", want: parse.CommandLine{Cmd: parse.IsZero}},
	{src: "CLONE", want: parse.CommandLine{Cmd: parse.Clone}},
	{src: "ADD", want: parse.CommandLine{Cmd: parse.Add}},
	{src: "MUL", want: parse.CommandLine{Cmd: parse.Mul}},
	{src: "NEG", want: parse.CommandLine{Cmd: parse.Neg}},
	{src: "SUB", want: parse.CommandLine{Cmd: parse.Sub}},
	{src: "IS_EQ", want: parse.CommandLine{Cmd: parse.IsEq}},
	{src: "DEG", want: parse.CommandLine{Cmd: parse.Deg}},
	{src: "PRINT", want: parse.CommandLine{Cmd: parse.Print}},
	{src: "POP", want: parse.CommandLine{Cmd: parse.Pop}},

	{src: "DEG_BY 0", want: parse.CommandLine{Cmd: parse.DegBy, Var: 0}},
	{src: "DEG_BY 007", want: parse.CommandLine{Cmd: parse.DegBy, Var: 7}},
	{src: "DEG_BY 18446744073709551615", want: parse.CommandLine{Cmd: parse.DegBy, Var: math.MaxUint64}},
	{src: "AT 2", want: parse.CommandLine{Cmd: parse.At, At: 2}},
	{src: "AT -1", want: parse.CommandLine{Cmd: parse.At, At: -1}},
	{src: "AT -9223372036854775808", want: parse.CommandLine{Cmd: parse.At, At: math.MinInt64}},
	{src: "COMPOSE 3", want: parse.CommandLine{Cmd: parse.Compose, Var: 3}},

	// Exact-match commands tolerate nothing after the keyword.
	{src: "POP ", wantErr: parse.WrongCommand},
	{src: "ADD 1", wantErr: parse.WrongCommand},
	{src: "add", wantErr: parse.WrongCommand},
	{src: "ZERO_", wantErr: parse.WrongCommand},
	{src: "FOO", wantErr: parse.WrongCommand},
	// A keyword followed by whitespace claims the line; the argument is then
	// validated with the command-specific message.
	{src: "DEG_BY", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY ", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY x", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY -5", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY 5 6", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY\t5", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY  5", wantErr: parse.DegByWrongVariable},
	{src: "DEG_BY 18446744073709551616", wantErr: parse.DegByWrongVariable},
	{src: "AT", wantErr: parse.AtWrongValue},
	{src: "AT ", wantErr: parse.AtWrongValue},
	{src: "AT x", wantErr: parse.AtWrongValue},
	{src: "AT 2x", wantErr: parse.AtWrongValue},
	{src: "AT 9223372036854775808", wantErr: parse.AtWrongValue},
	{src: "AT\t2", wantErr: parse.AtWrongValue},
	{src: "COMPOSE", wantErr: parse.ComposeWrongParameter},
	{src: "COMPOSE -1", wantErr: parse.ComposeWrongParameter},
	{src: "COMPOSE 18446744073709551616", wantErr: parse.ComposeWrongParameter},
	// Keyword followed by a non-space character is not claimed.
	{src: "DEG_BYX 1", wantErr: parse.WrongCommand},
	{src: "ATX 1", wantErr: parse.WrongCommand},
}

func TestParseCommand(t *testing.T) {
	for _, test := range commandTests {
		t.Run(test.src, func(t *testing.T) {
			line, err := parse.Parse(test.src)
			if test.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse(%q) -> %v, want error", test.src, line)
				}
				if err.Error() != test.wantErr {
					t.Errorf("Parse(%q) errored with %q, want %q", test.src, err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) -> error %v", test.src, err)
			}
			if diff := cmp.Diff(test.want, line); diff != "" {
				t.Errorf("Parse(%q) (-want +got):\n%s", test.src, diff)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  parse.Command
		want string
	}{
		{parse.Zero, "ZERO"}, {parse.IsEq, "IS_EQ"}, {parse.DegBy, "DEG_BY"},
		{parse.At, "AT"}, {parse.Compose, "COMPOSE"},
	}
	for _, test := range tests {
		if got := test.cmd.String(); got != test.want {
			t.Errorf("%d.String() = %q, want %q", int(test.cmd), got, test.want)
		}
	}
}

func TestErrorRange(t *testing.T) {
	_, err := parse.ParsePoly("(1,2)+x")
	perr, ok := err.(*parse.Error)
	if !ok {
		t.Fatalf("ParsePoly returned %T, want *parse.Error", err)
	}
	if perr.From != 6 || perr.To != 7 {
		t.Errorf("error range = [%d,%d), want [6,7)", perr.From, perr.To)
	}
}
