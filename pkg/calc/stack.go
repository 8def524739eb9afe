package calc

import "src.polyc.dev/pkg/poly"

// Stack is a stack of polynomials. The zero value is an empty stack.
type Stack struct {
	items []poly.Poly
}

// Len returns the number of polynomials on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Push adds p on top of the stack.
func (s *Stack) Push(p poly.Poly) { s.items = append(s.items, p) }

// Pop removes and returns the top of the stack, which must not be empty.
func (s *Stack) Pop() poly.Poly {
	p := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return p
}

// Peek returns the i-th polynomial from the top without removing it; Peek(0)
// is the top. The stack must hold more than i elements.
func (s *Stack) Peek(i int) poly.Poly {
	return s.items[len(s.items)-1-i]
}
