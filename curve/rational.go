package curve

import (
	"errors"
	"math/big"
)

// RatElem wraps a *big.Rat so the exact-rational curve over Q can share the
// same generic Weierstrass group law as the finite-field curves (§4.7,
// §12: the curve over Q is a first-class variant, not a stub, matching
// ranea/ccepy's own test suite use of it for exact, non-modular sanity
// checks on small curves).
type RatElem struct {
	v *big.Rat
}

// NewRatElem wraps r. r is not copied defensively; callers should treat it
// as owned by the returned RatElem from then on.
func NewRatElem(r *big.Rat) RatElem {
	return RatElem{v: r}
}

// RatFromInt64 builds the RatElem representing the integer n.
func RatFromInt64(n int64) RatElem {
	return RatElem{v: big.NewRat(n, 1)}
}

// Rat returns the underlying rational value.
func (e RatElem) Rat() *big.Rat {
	return new(big.Rat).Set(e.v)
}

func (e RatElem) Add(o RatElem) RatElem { return RatElem{v: new(big.Rat).Add(e.v, o.v)} }
func (e RatElem) Sub(o RatElem) RatElem { return RatElem{v: new(big.Rat).Sub(e.v, o.v)} }
func (e RatElem) Mul(o RatElem) RatElem { return RatElem{v: new(big.Rat).Mul(e.v, o.v)} }
func (e RatElem) Neg() RatElem          { return RatElem{v: new(big.Rat).Neg(e.v)} }
func (e RatElem) IsZero() bool          { return e.v.Sign() == 0 }
func (e RatElem) Equal(o RatElem) bool  { return e.v.Cmp(o.v) == 0 }
func (e RatElem) One() RatElem          { return RatFromInt64(1) }

// Inverse returns 1/e. Returns an error if e is zero (§4.1's ZeroDivision,
// mirrored here since Q is a field like any other).
func (e RatElem) Inverse() (RatElem, error) {
	if e.IsZero() {
		return RatElem{}, errors.New("curve: division by zero in Q")
	}
	return RatElem{v: new(big.Rat).Inv(e.v)}, nil
}

func (e RatElem) String() string { return e.v.RatString() }

// Rational is the short-Weierstrass curve over Q: same equation and
// discriminant precondition as the finite-field Weierstrass curve, but
// over exact rationals rather than a modular field.
type Rational = Weierstrass[RatElem]

// NewRational constructs y^2 = x^3 + a*x + b over Q.
func NewRational(a, b RatElem) (*Rational, error) {
	return NewWeierstrass[RatElem](a, b)
}
