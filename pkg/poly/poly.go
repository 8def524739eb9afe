// Package poly implements sparse multivariate polynomials with 64-bit
// integer coefficients.
//
// A polynomial is either a constant, or a sum of terms in its outermost
// variable whose coefficients are themselves polynomials in the remaining
// variables. This recursive representation supports arbitrarily many
// variables without tracking a variable count: variable 0 is the outermost
// nesting level, variable 1 the next, and so on.
//
// All values handed out by this package are in canonical form: term lists
// are ordered by strictly decreasing exponent, contain no zero coefficients,
// and a polynomial that is equal to a constant is represented as one. The
// zero polynomial is always Constant(0), which is also the zero value of
// [Poly].
//
// Coefficient arithmetic wraps around per two's complement; this applies to
// [Poly.Add], [Poly.Mul] and everything built on them.
package poly

import "sort"

// Poly is a polynomial. The zero value is the zero polynomial.
//
// Operations never mutate their receiver or arguments; they return fresh
// values.
type Poly struct {
	// Valid iff terms is nil.
	coeff int64
	// Ordered by strictly decreasing exponent; coefficients are never zero.
	terms []Term
}

// Term is one term of a polynomial: a non-negative exponent of the outermost
// variable paired with a coefficient polynomial in the remaining variables.
type Term struct {
	Exp   int
	Coeff Poly
}

// FromCoeff returns the constant polynomial c.
func FromCoeff(c int64) Poly { return Poly{coeff: c} }

// FromTerms returns the canonical polynomial equal to the sum of the given
// terms. Terms may come in any order and may repeat exponents; duplicates
// are merged by adding their coefficients, and zero coefficients (including
// ones produced by merging) are dropped. The argument is not retained.
func FromTerms(terms []Term) Poly {
	sorted := make([]Term, len(terms))
	copy(sorted, terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Exp > sorted[j].Exp
	})

	var merged []Term
	for _, t := range sorted {
		if n := len(merged); n > 0 && merged[n-1].Exp == t.Exp {
			merged[n-1].Coeff = merged[n-1].Coeff.Add(t.Coeff)
		} else {
			merged = append(merged, t)
		}
	}

	var ts []Term
	for _, t := range merged {
		if !t.Coeff.IsZero() {
			ts = append(ts, t)
		}
	}
	return normalized(ts)
}

// normalized wraps an ordered, duplicate-free, zero-free term list in a
// Poly, collapsing to the constant variant where the invariants require it.
func normalized(ts []Term) Poly {
	switch {
	case len(ts) == 0:
		return Poly{}
	case len(ts) == 1 && ts[0].Exp == 0 && ts[0].Coeff.IsCoeff():
		return ts[0].Coeff
	default:
		return Poly{terms: ts}
	}
}

// IsCoeff reports whether p is a constant.
func (p Poly) IsCoeff() bool { return p.terms == nil }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return p.terms == nil && p.coeff == 0 }

// Equal reports whether p and q are structurally equal. Since all values are
// canonical, structural equality coincides with algebraic equality.
func (p Poly) Equal(q Poly) bool {
	if p.IsCoeff() != q.IsCoeff() {
		return false
	}
	if p.IsCoeff() {
		return p.coeff == q.coeff
	}
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i := range p.terms {
		if p.terms[i].Exp != q.terms[i].Exp ||
			!p.terms[i].Coeff.Equal(q.terms[i].Coeff) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p sharing no storage with p.
func (p Poly) Clone() Poly {
	if p.IsCoeff() {
		return p
	}
	ts := make([]Term, len(p.terms))
	for i, t := range p.terms {
		ts[i] = Term{t.Exp, t.Coeff.Clone()}
	}
	return Poly{terms: ts}
}
