// Package polyzp implements univariate polynomials with coefficients in
// Z/pZ (§4.3), the substrate extension fields (package fq) are built on top
// of via reduction modulo a fixed irreducible.
package polyzp

import (
	"errors"
	"math"
	"math/big"
	"strings"

	"github.com/ranea-labs/ecc-toolkit/modp"
)

// ErrZeroDivision is returned by DivMod when the divisor is the zero polynomial.
var ErrZeroDivision = modp.ErrZeroDivision

// NegInfDegree is the degree of the zero polynomial: a sentinel guaranteed to
// compare as strictly less than the degree of any nonzero polynomial.
const NegInfDegree = math.MinInt

// Poly is a polynomial over F_p, coefficients stored least-significant
// first (coeffs[0] is the constant term). It is always canonicalised: the
// leading coefficient is nonzero unless the polynomial is the zero
// polynomial, represented as a single zero coefficient.
type Poly struct {
	p      *big.Int
	coeffs []modp.Value
}

// New builds a polynomial over F_p from coefficients c0, c1, ..., cd
// (constant term first), reducing each modulo p and trimming trailing zero
// coefficients.
func New(coeffs []*big.Int, p *big.Int) Poly {
	vs := make([]modp.Value, len(coeffs))
	for i, c := range coeffs {
		vs[i] = modp.FromBigInt(c, p)
	}
	return canonicalise(Poly{p: new(big.Int).Set(p), coeffs: vs})
}

// NewFromValues builds a polynomial directly from already-reduced modp.Value
// coefficients, all of which must share modulus p.
func NewFromValues(coeffs []modp.Value, p *big.Int) Poly {
	return canonicalise(Poly{p: new(big.Int).Set(p), coeffs: append([]modp.Value(nil), coeffs...)})
}

// Zero returns the zero polynomial over F_p.
func Zero(p *big.Int) Poly {
	return Poly{p: new(big.Int).Set(p), coeffs: []modp.Value{modp.New(0, p)}}
}

// One returns the constant polynomial 1 over F_p.
func One(p *big.Int) Poly {
	return Poly{p: new(big.Int).Set(p), coeffs: []modp.Value{modp.New(1, p)}}
}

// Monomial returns c*X^k over F_p.
func Monomial(c *big.Int, k int, p *big.Int) Poly {
	coeffs := make([]*big.Int, k+1)
	for i := range coeffs {
		coeffs[i] = big.NewInt(0)
	}
	coeffs[k] = c
	return New(coeffs, p)
}

func canonicalise(f Poly) Poly {
	last := len(f.coeffs) - 1
	for last > 0 && f.coeffs[last].IsZero() {
		last--
	}
	f.coeffs = f.coeffs[:last+1]
	return f
}

// Modulus returns the prime p this polynomial's coefficients live in.
func (f Poly) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

// Degree returns the index of the highest nonzero coefficient, or
// NegInfDegree for the zero polynomial.
func (f Poly) Degree() int {
	if len(f.coeffs) == 1 && f.coeffs[0].IsZero() {
		return NegInfDegree
	}
	return len(f.coeffs) - 1
}

// IsZero reports whether f is the zero polynomial.
func (f Poly) IsZero() bool {
	return f.Degree() == NegInfDegree
}

// LeadingCoeff returns the coefficient of the highest-degree term.
func (f Poly) LeadingCoeff() modp.Value {
	return f.coeffs[len(f.coeffs)-1]
}

// Coeff returns the coefficient of X^i, or zero if i exceeds the degree.
func (f Poly) Coeff(i int) modp.Value {
	if i < 0 || i >= len(f.coeffs) {
		return modp.New(0, f.p)
	}
	return f.coeffs[i]
}

func (f Poly) checkSameField(g Poly) {
	if f.p.Cmp(g.p) != 0 {
		panic("polyzp: mismatched moduli")
	}
}

func (f Poly) pad(n int) []modp.Value {
	out := make([]modp.Value, n)
	zero := modp.New(0, f.p)
	for i := range out {
		out[i] = zero
	}
	copy(out, f.coeffs)
	return out
}

// Add returns f + g.
func (f Poly) Add(g Poly) Poly {
	f.checkSameField(g)
	n := len(f.coeffs)
	if len(g.coeffs) > n {
		n = len(g.coeffs)
	}
	fc, gc := f.pad(n), g.pad(n)
	out := make([]modp.Value, n)
	for i := range out {
		out[i] = fc[i].Add(gc[i])
	}
	return canonicalise(Poly{p: f.p, coeffs: out})
}

// Neg returns -f.
func (f Poly) Neg() Poly {
	out := make([]modp.Value, len(f.coeffs))
	for i, c := range f.coeffs {
		out[i] = c.Neg()
	}
	return canonicalise(Poly{p: f.p, coeffs: out})
}

// Sub returns f - g.
func (f Poly) Sub(g Poly) Poly {
	return f.Add(g.Neg())
}

// Mul returns f * g via schoolbook convolution.
func (f Poly) Mul(g Poly) Poly {
	f.checkSameField(g)
	if f.IsZero() || g.IsZero() {
		return Zero(f.p)
	}
	out := make([]modp.Value, len(f.coeffs)+len(g.coeffs)-1)
	zero := modp.New(0, f.p)
	for i := range out {
		out[i] = zero
	}
	for i, a := range f.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range g.coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return canonicalise(Poly{p: f.p, coeffs: out})
}

// MulInt returns f scaled by the plain integer n (scalar multiplication,
// commutative with Mul by a constant polynomial — §8 property 7).
func (f Poly) MulInt(n *big.Int) Poly {
	return f.Mul(New([]*big.Int{n}, f.p))
}

// DivMod performs classical polynomial long division, returning (quotient,
// remainder) with deg(remainder) < deg(h). Returns ErrZeroDivision if h is
// the zero polynomial.
func DivMod(g, h Poly) (q, r Poly, err error) {
	g.checkSameField(h)
	if h.IsZero() {
		return Poly{}, Poly{}, ErrZeroDivision
	}
	p := g.p
	lcInv, invErr := h.LeadingCoeff().Inverse()
	if invErr != nil {
		return Poly{}, Poly{}, invErr
	}

	remainder := g
	quotientCoeffs := make([]*big.Int, 0)
	for remainder.Degree() >= h.Degree() && !remainder.IsZero() {
		shift := remainder.Degree() - h.Degree()
		coeff := remainder.LeadingCoeff().Mul(lcInv)

		for len(quotientCoeffs) <= shift {
			quotientCoeffs = append(quotientCoeffs, big.NewInt(0))
		}
		quotientCoeffs[shift] = coeff.Int()

		term := Monomial(coeff.Int(), shift, p)
		remainder = remainder.Sub(term.Mul(h))
	}
	if len(quotientCoeffs) == 0 {
		quotientCoeffs = []*big.Int{big.NewInt(0)}
	}
	return New(quotientCoeffs, p), remainder, nil
}

// Pow returns f^n for n >= 0, by repeated squaring.
func (f Poly) Pow(n int) Poly {
	if n < 0 {
		panic("polyzp: negative exponent")
	}
	result := One(f.p)
	base := f
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// Equal reports whether f and g are the same polynomial over the same field.
func (f Poly) Equal(g Poly) bool {
	f.checkSameField(g)
	if len(f.coeffs) != len(g.coeffs) {
		return false
	}
	for i := range f.coeffs {
		if !f.coeffs[i].Equal(g.coeffs[i]) {
			return false
		}
	}
	return true
}

// EqualInt reports whether f equals the plain integer n: true iff f has
// degree < 1 and its constant term equals n mod p.
func (f Poly) EqualInt(n *big.Int) bool {
	if f.Degree() > 0 {
		return false
	}
	return f.Coeff(0).Equal(modp.FromBigInt(n, f.p))
}

// String renders descending monomials joined by " + ", e.g. "X^3 + X^2 + 1".
// The zero polynomial prints as "0"; a degree-1 monomial with coefficient 1
// prints as "X".
func (f Poly) String() string {
	if f.IsZero() {
		return "0"
	}
	var terms []string
	for i := len(f.coeffs) - 1; i >= 0; i-- {
		c := f.coeffs[i]
		if c.IsZero() {
			continue
		}
		terms = append(terms, monomialString(c, i))
	}
	return strings.Join(terms, " + ")
}

func monomialString(c modp.Value, degree int) string {
	one := big.NewInt(1)
	switch {
	case degree == 0:
		return c.Int().String()
	case degree == 1 && c.Int().Cmp(one) == 0:
		return "X"
	case degree == 1:
		return c.Int().String() + "X"
	case c.Int().Cmp(one) == 0:
		return "X^" + big.NewInt(int64(degree)).String()
	default:
		return c.Int().String() + "X^" + big.NewInt(int64(degree)).String()
	}
}

// ErrNotIrreducible is returned when an operation requires an irreducible
// modulus and the one supplied fails the test.
var ErrNotIrreducible = errors.New("polyzp: polynomial is not irreducible")
