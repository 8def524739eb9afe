package poly

import (
	"strconv"
	"strings"
)

// String renders p in its canonical text form, which the parser accepts
// back: a constant is the bare integer, and a sum of terms is
// "(coeff,exp)+(coeff,exp)+..." with coefficients rendered recursively.
func (p Poly) String() string {
	var sb strings.Builder
	p.writeTo(&sb)
	return sb.String()
}

func (p Poly) writeTo(sb *strings.Builder) {
	if p.IsCoeff() {
		sb.WriteString(strconv.FormatInt(p.coeff, 10))
		return
	}
	for i, t := range p.terms {
		if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteByte('(')
		t.Coeff.writeTo(sb)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(t.Exp))
		sb.WriteByte(')')
	}
}
