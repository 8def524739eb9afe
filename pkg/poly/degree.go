package poly

// DegZero is the degree reported for the zero polynomial.
const DegZero = -1

// Deg returns the total degree of p: the maximum over all terms, at every
// nesting level, of the sum of exponents along the path to a nonzero
// constant. The zero polynomial has degree [DegZero]; every other constant
// has degree 0.
func (p Poly) Deg() int {
	if p.IsCoeff() {
		if p.coeff == 0 {
			return DegZero
		}
		return 0
	}
	max := DegZero
	for _, t := range p.terms {
		if d := t.Exp + t.Coeff.Deg(); d > max {
			max = d
		}
	}
	return max
}

// DegBy returns the degree of p in the variable at nesting depth v. For the
// zero polynomial it is [DegZero] when v is 0, and 0 for deeper variables;
// any other constant has degree 0 in every variable.
func (p Poly) DegBy(v uint64) int {
	if p.IsCoeff() {
		if p.coeff == 0 && v == 0 {
			return DegZero
		}
		return 0
	}
	if v == 0 {
		// Terms are ordered by decreasing exponent.
		return p.terms[0].Exp
	}
	max := 0
	for _, t := range p.terms {
		if d := t.Coeff.DegBy(v - 1); d > max {
			max = d
		}
	}
	return max
}
