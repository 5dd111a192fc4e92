package curve

import "math/big"

// Weierstrass is the short-Weierstrass curve y^2 = x^3 + a*x + b over a
// field of characteristic != 2, 3 (§4.7). It is used both for curves over
// F_q (package fq, n=1 aliasing ModP) and, via the RatElem field element,
// for the exact-rational curve over Q.
type Weierstrass[T Elem[T]] struct {
	a, b T
}

// NewWeierstrass constructs the curve y^2 = x^3 + a*x + b, requiring the
// discriminant 4a^3 + 27b^2 != 0 (§3, §4.7). Returns ErrDomain otherwise.
func NewWeierstrass[T Elem[T]](a, b T) (*Weierstrass[T], error) {
	one := a.One()
	four := smallInt[T](one, 4)
	twentySeven := smallInt[T](one, 27)

	a3 := a.Mul(a).Mul(a)
	b2 := b.Mul(b)
	discriminant := four.Mul(a3).Add(twentySeven.Mul(b2))
	if discriminant.IsZero() {
		return nil, ErrDomain
	}
	return &Weierstrass[T]{a: a, b: b}, nil
}

// Contains reports whether (x, y) satisfies y^2 = x^3 + a*x + b.
func (c *Weierstrass[T]) Contains(x, y T) bool {
	lhs := y.Mul(y)
	rhs := x.Mul(x).Mul(x).Add(c.a.Mul(x)).Add(c.b)
	return lhs.Equal(rhs)
}

// NewPoint builds the affine point (x, y). Returns ErrDomain if it is not
// on the curve.
func (c *Weierstrass[T]) NewPoint(x, y T) (Point[T], error) {
	if !c.Contains(x, y) {
		return Point[T]{}, ErrDomain
	}
	return affine(x, y), nil
}

// Identity returns the point at infinity.
func (c *Weierstrass[T]) Identity() Point[T] {
	return Identity[T]()
}

// Neg returns -(x, y) = (x, -y).
func (c *Weierstrass[T]) Neg(p Point[T]) Point[T] {
	if p.IsIdentity() {
		return p
	}
	return affine(p.x, p.y.Neg())
}

// Add implements the short-Weierstrass group law (§4.7), including the
// 2-torsion (P = Q, y = 0) and vertical-line (x1 = x2, y1 = -y2) edge cases.
func (c *Weierstrass[T]) Add(p, q Point[T]) Point[T] {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}

	x1, y1, x2, y2 := p.x, p.y, q.x, q.y

	if x1.Equal(x2) && y1.Equal(y2.Neg()) {
		return c.Identity()
	}

	var lambda T
	if x1.Equal(x2) && y1.Equal(y2) {
		if y1.IsZero() {
			return c.Identity()
		}
		one := c.a.One()
		three := smallInt[T](one, 3)
		two := smallInt[T](one, 2)
		num := three.Mul(x1.Mul(x1)).Add(c.a)
		den := two.Mul(y1)
		denInv, err := den.Inverse()
		if err != nil {
			panic(err) // unreachable: y1 != 0 checked above
		}
		lambda = num.Mul(denInv)
	} else {
		num := y2.Sub(y1)
		den := x2.Sub(x1)
		denInv, err := den.Inverse()
		if err != nil {
			panic(err) // unreachable: x1 != x2 in this branch
		}
		lambda = num.Mul(denInv)
	}

	x3 := lambda.Mul(lambda).Sub(x1).Sub(x2)
	y3 := lambda.Mul(x1.Sub(x3)).Sub(y1)
	return affine(x3, y3)
}

// Sub returns p - q.
func (c *Weierstrass[T]) Sub(p, q Point[T]) Point[T] {
	return c.Add(p, c.Neg(q))
}

// ScalarMul computes k*p by double-and-add (§4.7), for every element type,
// including RatElem for the curve over Q.
func (c *Weierstrass[T]) ScalarMul(p Point[T], k *big.Int) Point[T] {
	return ScalarMulDoubleAdd[T](c, p, k)
}
