// Package curve implements the elliptic-curve point group (§4.7): three
// variants — short Weierstrass over F_q, the non-simplified form over
// F_{2^m}, and the exact-rational curve over Q — sharing one abstract
// contract, generic over the underlying field element type the same way
// the teacher's roast/ subpackage parameterises its group over a
// CurveImpl type argument.
package curve

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDomain is returned when constructing a point that does not lie on its
// curve, or a curve whose coefficients violate the nonsingularity
// precondition (§4.7, §7).
var ErrDomain = errors.New("curve: domain error")

// Elem is the contract a field element type must satisfy to support the
// point group's arithmetic: a commutative ring with inverses, exposing its
// own multiplicative identity so the group law can build small integer
// constants (2, 3, 4, 27, ...) by repeated addition of One() without the
// curve package needing to know how to construct field elements from
// scratch.
type Elem[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Inverse() (T, error)
	IsZero() bool
	Equal(T) bool
	One() T
}

// Point is an affine point (x, y) on a curve over field element type T, or
// the identity ("point at infinity"), represented uniformly as a
// distinguished value with absent coordinates (§3).
type Point[T Elem[T]] struct {
	infinity bool
	x, y     T
}

// Identity returns the point at infinity, the neutral element of the group.
func Identity[T Elem[T]]() Point[T] {
	return Point[T]{infinity: true}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point[T]) IsIdentity() bool {
	return p.infinity
}

// X returns the x-coordinate of an affine point. Panics if p is the
// identity (§3, §7: "AttributeError-equivalent" reading coordinates of O).
func (p Point[T]) X() T {
	if p.infinity {
		panic("curve: identity point has no x-coordinate")
	}
	return p.x
}

// Y returns the y-coordinate of an affine point. Panics if p is the
// identity, for the same reason as X.
func (p Point[T]) Y() T {
	if p.infinity {
		panic("curve: identity point has no y-coordinate")
	}
	return p.y
}

// Equal reports whether p and q denote the same point.
func (p Point[T]) Equal(q Point[T]) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// String renders the identity as "Elemento neutro" (the original Python
// implementation's own repr, kept verbatim since §6 calls these debugging
// forms stable) and an affine point as "(x, y)".
func (p Point[T]) String() string {
	if p.infinity {
		return "Elemento neutro"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// affine builds an affine point without an on-curve check; used internally
// by group-law implementations that have already established membership
// algebraically.
func affine[T Elem[T]](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

// Group is the interface a concrete curve (Weierstrass, F_{2^m}, rational)
// implements, enough to drive scalar multiplication generically.
type Group[T Elem[T]] interface {
	Identity() Point[T]
	Neg(p Point[T]) Point[T]
	Add(p, q Point[T]) Point[T]
}

// ScalarMulDoubleAdd computes k*P via left-to-right double-and-add over the
// binary expansion of |k| (§4.7), starting from the identity. If k < 0, it
// multiplies -P by |k| instead. If P is the identity, the result is the
// identity regardless of k.
func ScalarMulDoubleAdd[T Elem[T]](g Group[T], p Point[T], k *big.Int) Point[T] {
	if p.IsIdentity() {
		return g.Identity()
	}
	if k.Sign() == 0 {
		return g.Identity()
	}
	base := p
	exp := k
	if k.Sign() < 0 {
		base = g.Neg(p)
		exp = new(big.Int).Neg(k)
	}

	result := g.Identity()
	for i := exp.BitLen() - 1; i >= 0; i-- {
		result = g.Add(result, result)
		if exp.Bit(i) == 1 {
			result = g.Add(result, base)
		}
	}
	return result
}

// ScalarMulNaive computes k*P by repeated addition, exact but slow, for
// small k. The curve over Q's own ScalarMul method does not call it:
// Rational is Weierstrass[RatElem] and multiplies by double-and-add.
func ScalarMulNaive[T Elem[T]](g Group[T], p Point[T], k *big.Int) Point[T] {
	if p.IsIdentity() || k.Sign() == 0 {
		return g.Identity()
	}
	base := p
	exp := new(big.Int).Set(k)
	if exp.Sign() < 0 {
		base = g.Neg(p)
		exp.Neg(exp)
	}

	result := g.Identity()
	one := big.NewInt(1)
	for i := big.NewInt(0); i.Cmp(exp) < 0; i.Add(i, one) {
		result = g.Add(result, base)
	}
	return result
}

// smallInt builds the field element representing the small non-negative
// integer n by repeated addition starting from the field's multiplicative
// identity, avoiding any dependency on how to construct field elements
// from integers directly.
func smallInt[T Elem[T]](one T, n int) T {
	if n == 0 {
		return one.Sub(one)
	}
	result := one
	for i := 1; i < n; i++ {
		result = result.Add(one)
	}
	return result
}
