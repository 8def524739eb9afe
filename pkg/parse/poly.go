package parse

import (
	"math"
	"strconv"

	"src.polyc.dev/pkg/diag"
	"src.polyc.dev/pkg/poly"
)

// ParsePoly parses a whole line as a polynomial literal, accepting the
// grammar
//
//	Polynomial := Coefficient | Term ('+' Term)*
//	Coefficient := ['-'] digit+              // signed 64-bit range
//	Term := '(' Polynomial ',' Exponent ')'
//	Exponent := digit+                       // at most MaxInt32
//
// Every failure carries the WRONG POLY message; the range narrows down the
// offending spot for consumers that can use it.
func ParsePoly(src string) (poly.Poly, error) {
	// Two up-front checks, as cheap line-level filters before the
	// structural parse.
	for i := 0; i < len(src); i++ {
		if !isLegalPolyChar(src[i]) {
			return poly.Poly{}, &Error{WrongPoly, diag.Ranging{From: i, To: i + 1}}
		}
	}
	if !parensBalanced(src) {
		return poly.Poly{}, &Error{WrongPoly, diag.Ranging{From: 0, To: len(src)}}
	}

	ps := &parser{src: src}
	p, err := ps.poly()
	if err != nil {
		return poly.Poly{}, err
	}
	if ps.pos != len(src) {
		return poly.Poly{}, ps.errorFrom(ps.pos)
	}
	return p, nil
}

func isLegalPolyChar(b byte) bool {
	return isDigit(b) || b == '-' || b == '+' || b == '(' || b == ')' || b == ','
}

// parensBalanced reports whether parentheses in s are balanced: the counter
// must never go negative and must end at zero.
func parensBalanced(s string) bool {
	ctr := 0
	for i := 0; i < len(s) && ctr >= 0; i++ {
		switch s[i] {
		case '(':
			ctr++
		case ')':
			ctr--
		}
	}
	return ctr == 0
}

// parser is a cursor over one line of source text.
type parser struct {
	src string
	pos int
}

const eof = -1

func (ps *parser) peek() int {
	if ps.pos == len(ps.src) {
		return eof
	}
	return int(ps.src[ps.pos])
}

// errorFrom returns a WRONG POLY error spanning from the given position to
// the next character (or to the position itself at end of line).
func (ps *parser) errorFrom(from int) *Error {
	to := from
	if to < len(ps.src) {
		to++
	}
	return &Error{WrongPoly, diag.Ranging{From: from, To: to}}
}

// poly parses a polynomial: a coefficient if the line continues with a digit
// or '-', a sum of terms otherwise. On success the cursor rests on the first
// unconsumed character, which for a valid polynomial is ',' or end of line.
func (ps *parser) poly() (poly.Poly, error) {
	switch {
	case ps.peek() == eof:
		return poly.Poly{}, ps.errorFrom(ps.pos)
	case isDigitOrMinus(ps.src[ps.pos]):
		return ps.coefficient()
	default:
		return ps.termSum()
	}
}

func (ps *parser) coefficient() (poly.Poly, error) {
	begin := ps.pos
	if ps.peek() == '-' {
		ps.pos++
	}
	for ps.pos < len(ps.src) && isDigit(ps.src[ps.pos]) {
		ps.pos++
	}
	c, err := strconv.ParseInt(ps.src[begin:ps.pos], 10, 64)
	if err != nil {
		// A bare sign with no digits, or out of the signed 64-bit range.
		return poly.Poly{}, &Error{WrongPoly, diag.Ranging{From: begin, To: ps.pos}}
	}
	if ps.peek() != eof && ps.peek() != ',' {
		return poly.Poly{}, ps.errorFrom(ps.pos)
	}
	return poly.FromCoeff(c), nil
}

// termSum parses one or more '+'-separated terms. The cursor must be on the
// first term's '('; afterwards it rests on ',' or end of line.
func (ps *parser) termSum() (poly.Poly, error) {
	var terms []poly.Term
	for {
		if ps.peek() != '(' {
			return poly.Poly{}, ps.errorFrom(ps.pos)
		}
		ps.pos++
		t, err := ps.term()
		if err != nil {
			return poly.Poly{}, err
		}
		terms = append(terms, t)

		switch ps.peek() {
		case eof, ',':
			return poly.FromTerms(terms), nil
		case '+':
			ps.pos++
		default:
			return poly.Poly{}, ps.errorFrom(ps.pos)
		}
	}
}

// term parses the remainder of a term after its opening '(', consuming the
// closing ')'.
func (ps *parser) term() (poly.Term, error) {
	p, err := ps.poly()
	if err != nil {
		return poly.Term{}, err
	}
	// After a successful inner polynomial the cursor rests on ',' or end of
	// line; only the former continues a term.
	if ps.peek() != ',' {
		return poly.Term{}, ps.errorFrom(ps.pos)
	}
	ps.pos++
	exp, err := ps.exponent()
	if err != nil {
		return poly.Term{}, err
	}
	if ps.peek() != ')' {
		return poly.Term{}, ps.errorFrom(ps.pos)
	}
	ps.pos++
	return poly.Term{Exp: exp, Coeff: p}, nil
}

func (ps *parser) exponent() (int, error) {
	begin := ps.pos
	for ps.pos < len(ps.src) && isDigit(ps.src[ps.pos]) {
		ps.pos++
	}
	if ps.pos == begin {
		return 0, ps.errorFrom(begin)
	}
	x, err := strconv.ParseUint(ps.src[begin:ps.pos], 10, 64)
	if err != nil || x > math.MaxInt32 {
		return 0, &Error{WrongPoly, diag.Ranging{From: begin, To: ps.pos}}
	}
	return int(x), nil
}
