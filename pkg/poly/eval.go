package poly

// At evaluates p with the outermost variable set to x. The result is a
// polynomial in the remaining variables, whose own outermost nesting level
// is what used to be variable 1.
//
// Evaluation is Horner-style over the gaps between consecutive exponents, so
// the number of multiplications is bounded by the number of terms plus the
// bit length of the exponents.
func (p Poly) At(x int64) Poly {
	if p.IsCoeff() {
		return p
	}
	acc := p.terms[0].Coeff
	prev := p.terms[0].Exp
	for _, t := range p.terms[1:] {
		acc = acc.Mul(FromCoeff(ipow(x, prev-t.Exp))).Add(t.Coeff)
		prev = t.Exp
	}
	return acc.Mul(FromCoeff(ipow(x, prev)))
}

// Compose substitutes qs[i] for variable i of p, for all i simultaneously.
// Variables with index len(qs) or higher are left in place.
func (p Poly) Compose(qs []Poly) Poly {
	if p.IsCoeff() || len(qs) == 0 {
		return p
	}
	sum := Poly{}
	for _, t := range p.terms {
		sum = sum.Add(qs[0].Pow(t.Exp).Mul(t.Coeff.Compose(qs[1:])))
	}
	return sum
}

// ipow returns x**n for non-negative n, wrapping per two's complement.
func ipow(x int64, n int) int64 {
	result := int64(1)
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}
