package curve

import "math/big"

// F2m is the non-simplified curve y^2 + xy = x^3 + a*x^2 + b over a field
// of characteristic 2 (§4.7), used with an fq.Element field of degree m
// over F_2.
type F2m[T Elem[T]] struct {
	a, b T
}

// NewF2m constructs the curve y^2 + xy = x^3 + a*x^2 + b, requiring b != 0
// (§3, §4.7). Returns ErrDomain otherwise.
func NewF2m[T Elem[T]](a, b T) (*F2m[T], error) {
	if b.IsZero() {
		return nil, ErrDomain
	}
	return &F2m[T]{a: a, b: b}, nil
}

// Contains reports whether (x, y) satisfies y^2 + xy = x^3 + a*x^2 + b.
func (c *F2m[T]) Contains(x, y T) bool {
	lhs := y.Mul(y).Add(x.Mul(y))
	rhs := x.Mul(x).Mul(x).Add(c.a.Mul(x.Mul(x))).Add(c.b)
	return lhs.Equal(rhs)
}

// NewPoint builds the affine point (x, y). Returns ErrDomain if it is not
// on the curve.
func (c *F2m[T]) NewPoint(x, y T) (Point[T], error) {
	if !c.Contains(x, y) {
		return Point[T]{}, ErrDomain
	}
	return affine(x, y), nil
}

// Identity returns the point at infinity.
func (c *F2m[T]) Identity() Point[T] {
	return Identity[T]()
}

// Neg returns -(x, y) = (x, x+y), the characteristic-2 negation (§4.7).
func (c *F2m[T]) Neg(p Point[T]) Point[T] {
	if p.IsIdentity() {
		return p
	}
	return affine(p.x, p.x.Add(p.y))
}

// Add implements the F_{2^m} group law (§4.7), including the 2-torsion
// (P = Q, x1 = 0) and vertical-line (x1 = x2, P != Q) edge cases.
func (c *F2m[T]) Add(p, q Point[T]) Point[T] {
	if p.IsIdentity() {
		return q
	}
	if q.IsIdentity() {
		return p
	}

	x1, y1, x2, y2 := p.x, p.y, q.x, q.y
	same := x1.Equal(x2) && y1.Equal(y2)

	if same {
		if x1.IsZero() {
			return c.Identity()
		}
		one := c.a.One()
		x1Inv, err := x1.Inverse()
		if err != nil {
			panic(err) // unreachable: x1 != 0 checked above
		}
		lambda := x1.Add(y1.Mul(x1Inv))
		x3 := lambda.Mul(lambda).Add(lambda).Add(c.a)
		y3 := x1.Mul(x1).Add(lambda.Add(one).Mul(x3))
		return affine(x3, y3)
	}

	if x1.Equal(x2) {
		return c.Identity()
	}

	den := x1.Add(x2)
	denInv, err := den.Inverse()
	if err != nil {
		panic(err) // unreachable: x1 != x2 in this branch
	}
	lambda := y1.Add(y2).Mul(denInv)
	x3 := lambda.Mul(lambda).Add(lambda).Add(x1).Add(x2).Add(c.a)
	y3 := lambda.Mul(x1.Add(x3)).Add(x3).Add(y1)
	return affine(x3, y3)
}

// Sub returns p - q.
func (c *F2m[T]) Sub(p, q Point[T]) Point[T] {
	return c.Add(p, c.Neg(q))
}

// ScalarMul computes k*p by double-and-add.
func (c *F2m[T]) ScalarMul(p Point[T], k *big.Int) Point[T] {
	return ScalarMulDoubleAdd[T](c, p, k)
}
