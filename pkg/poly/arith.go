package poly

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	if p.IsCoeff() && q.IsCoeff() {
		return FromCoeff(p.coeff + q.coeff)
	}
	ts := make([]Term, 0, len(p.terms)+len(q.terms)+2)
	ts = appendAsTerms(ts, p)
	ts = appendAsTerms(ts, q)
	return FromTerms(ts)
}

// appendAsTerms appends p viewed as terms of its outermost variable. A
// nonzero constant becomes a single term with exponent 0; the zero
// polynomial contributes nothing.
func appendAsTerms(ts []Term, p Poly) []Term {
	if p.IsCoeff() {
		if p.coeff == 0 {
			return ts
		}
		return append(ts, Term{Exp: 0, Coeff: p})
	}
	return append(ts, p.terms...)
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	if p.IsCoeff() {
		return FromCoeff(-p.coeff)
	}
	// Negation maps canonical form to canonical form: no nonzero
	// coefficient can become zero, so no renormalization is needed.
	ts := make([]Term, len(p.terms))
	for i, t := range p.terms {
		ts[i] = Term{t.Exp, t.Coeff.Neg()}
	}
	return Poly{terms: ts}
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly { return p.Add(q.Neg()) }

// Mul returns p * q.
func (p Poly) Mul(q Poly) Poly {
	switch {
	case p.IsCoeff() && q.IsCoeff():
		return FromCoeff(p.coeff * q.coeff)
	case p.IsCoeff():
		return q.scale(p.coeff)
	case q.IsCoeff():
		return p.scale(q.coeff)
	}
	ts := make([]Term, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			ts = append(ts, Term{a.Exp + b.Exp, a.Coeff.Mul(b.Coeff)})
		}
	}
	return FromTerms(ts)
}

// scale multiplies every coefficient of p by c. A product can wrap around to
// zero, so the result is renormalized.
func (p Poly) scale(c int64) Poly {
	if c == 0 {
		return Poly{}
	}
	k := FromCoeff(c)
	ts := make([]Term, len(p.terms))
	for i, t := range p.terms {
		ts[i] = Term{t.Exp, t.Coeff.Mul(k)}
	}
	return FromTerms(ts)
}

// Pow returns p raised to the n-th power, for non-negative n, by binary
// exponentiation.
func (p Poly) Pow(n int) Poly {
	result := FromCoeff(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base)
		}
	}
	return result
}
