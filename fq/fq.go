// Package fq implements elements of F_{p^n} (§4.6), built as F_p[X]
// modulo a fixed irreducible polynomial of degree n. For n=1 this reduces
// to ModP; the package accepts n=1 too, in which case the field stores no
// irreducible and reduce leaves polynomials as they are, so an n=1 element
// built with FromCoeffs or FromPoly keeps any coefficients above the
// constant term.
package fq

import (
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/ranea-labs/ecc-toolkit/modp"
	"github.com/ranea-labs/ecc-toolkit/polyzp"
)

// ErrZeroDivision is returned when inverting the zero element.
var ErrZeroDivision = modp.ErrZeroDivision

// ErrNotIrreducible is returned by NewField when the supplied modulus is
// not an irreducible polynomial of the stated degree.
var ErrNotIrreducible = polyzp.ErrNotIrreducible

// Field is an immutable handle binding a prime p, an extension degree n,
// and (for n>1) the fixed irreducible polynomial elements are reduced
// modulo. Two Field values are "the same type" in the sense of §9's design
// note when they share p, n and irreducible; Field is intended to be
// constructed once per extension and shared by every Element built from it.
type Field struct {
	p           *big.Int
	n           int
	irreducible polyzp.Poly // only meaningful when n > 1
}

// NewPrimeField returns the n=1 field, i.e. F_p itself.
func NewPrimeField(p *big.Int) *Field {
	return &Field{p: new(big.Int).Set(p), n: 1}
}

// NewField returns the F_{p^n} field reducing modulo the given irreducible
// polynomial of degree n. Returns ErrNotIrreducible if it isn't.
func NewField(p *big.Int, n int, irreducible polyzp.Poly) (*Field, error) {
	if n == 1 {
		return NewPrimeField(p), nil
	}
	if irreducible.Degree() != n {
		return nil, fmt.Errorf("fq: irreducible polynomial must have degree %d: %w", n, ErrNotIrreducible)
	}
	if !polyzp.IsIrreducible(irreducible) {
		return nil, ErrNotIrreducible
	}
	return &Field{p: new(big.Int).Set(p), n: n, irreducible: irreducible}, nil
}

// GenerateField samples a random irreducible of degree n and builds the
// F_{p^n} field reducing modulo it (§4.6: "the irreducible f may be ...
// generated on construction of the Fq type").
func GenerateField(p *big.Int, n int, rng *rand.Rand) *Field {
	if n == 1 {
		return NewPrimeField(p)
	}
	irr := polyzp.GenerateIrreducible(n, p, rng)
	f, err := NewField(p, n, irr)
	if err != nil {
		// GenerateIrreducible always returns an irreducible polynomial of
		// the right degree, so NewField cannot fail here.
		panic(err)
	}
	return f
}

// Degree returns the extension degree n.
func (f *Field) Degree() int { return f.n }

// Modulus returns the prime p.
func (f *Field) Modulus() *big.Int { return new(big.Int).Set(f.p) }

// Irreducible returns the fixed modulus polynomial (only meaningful for n>1).
func (f *Field) Irreducible() polyzp.Poly { return f.irreducible }

// Order returns q = p^n, the field's cardinality.
func (f *Field) Order() *big.Int {
	return new(big.Int).Exp(f.p, big.NewInt(int64(f.n)), nil)
}

// Element is a value of F_{p^n}: a polynomial of degree < n, reduced modulo
// the Field's irreducible.
type Element struct {
	field *Field
	poly  polyzp.Poly
}

func (f *Field) reduce(poly polyzp.Poly) polyzp.Poly {
	if f.n == 1 {
		return poly
	}
	_, r, err := polyzp.DivMod(poly, f.irreducible)
	if err != nil {
		panic(err) // irreducible is never zero
	}
	return r
}

// FromInt builds the element representing the constant polynomial n.
func (f *Field) FromInt(n *big.Int) Element {
	return Element{field: f, poly: f.reduce(polyzp.New([]*big.Int{n}, f.p))}
}

// FromCoeffs builds the element from coefficients c0, c1, ..., (constant
// term first), reduced modulo the field's irreducible.
func (f *Field) FromCoeffs(coeffs []*big.Int) Element {
	return Element{field: f, poly: f.reduce(polyzp.New(coeffs, f.p))}
}

// FromPoly builds the element from an existing polynomial, reducing it
// modulo the field's irreducible.
func (f *Field) FromPoly(poly polyzp.Poly) Element {
	return Element{field: f, poly: f.reduce(poly)}
}

// Zero returns the additive identity of f.
func (f *Field) Zero() Element { return Element{field: f, poly: polyzp.Zero(f.p)} }

// One returns the multiplicative identity of f.
func (f *Field) One() Element { return Element{field: f, poly: polyzp.One(f.p)} }

func (e Element) checkSameField(o Element) {
	if e.field == o.field {
		return
	}
	f, g := e.field, o.field
	if f == nil || g == nil || f.n != g.n || f.p.Cmp(g.p) != 0 ||
		(f.n > 1 && !f.irreducible.Equal(g.irreducible)) {
		panic("fq: mismatched fields")
	}
}

// Field returns the field e belongs to.
func (e Element) Field() *Field { return e.field }

// Poly returns the canonical representative polynomial (degree < n).
func (e Element) Poly() polyzp.Poly { return e.poly }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.poly.IsZero() }

// One returns the multiplicative identity of e's field, so curve.Elem
// consumers can build small integer constants without a separate
// construction path.
func (e Element) One() Element { return e.field.One() }

// Int returns the canonical integer representative of e, for the prime
// field (n=1) case only — protocols layered on a prime-order base field
// (§4.9) need to treat a coordinate as a plain integer. Panics if the
// field is a nontrivial extension.
func (e Element) Int() *big.Int {
	if e.field.n != 1 {
		panic("fq: Int() is only defined over a prime field")
	}
	return e.poly.Coeff(0).Int()
}

// Equal reports whether e and o denote the same element.
func (e Element) Equal(o Element) bool {
	e.checkSameField(o)
	return e.poly.Equal(o.poly)
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	e.checkSameField(o)
	return Element{field: e.field, poly: e.field.reduce(e.poly.Add(o.poly))}
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	e.checkSameField(o)
	return Element{field: e.field, poly: e.field.reduce(e.poly.Sub(o.poly))}
}

// Neg returns -e.
func (e Element) Neg() Element {
	return Element{field: e.field, poly: e.field.reduce(e.poly.Neg())}
}

// Mul returns e * o, reduced modulo the field's irreducible.
func (e Element) Mul(o Element) Element {
	e.checkSameField(o)
	return Element{field: e.field, poly: e.field.reduce(e.poly.Mul(o.poly))}
}

// Inverse returns the multiplicative inverse of e. Since the field's
// modulus is irreducible and e != 0, gcd(e, f) = 1 and the s-cofactor of
// the extended polynomial gcd is the inverse (§4.6). Returns
// ErrZeroDivision if e is zero.
func (e Element) Inverse() (Element, error) {
	if e.IsZero() {
		return Element{}, ErrZeroDivision
	}
	if e.field.n == 1 {
		inv, err := e.poly.Coeff(0).Inverse()
		if err != nil {
			return Element{}, err
		}
		return e.field.FromInt(inv.Int()), nil
	}
	s, _, d, err := polyzp.ExtGCD(e.poly, e.field.irreducible)
	if err != nil {
		return Element{}, err
	}
	if d.Degree() != 0 {
		// Unreachable when the field's irreducible is genuinely
		// irreducible; surfaced defensively.
		return Element{}, errors.New("fq: element is not invertible")
	}
	return Element{field: e.field, poly: e.field.reduce(s)}, nil
}

// Div returns e / o, i.e. e * o.Inverse().
func (e Element) Div(o Element) (Element, error) {
	e.checkSameField(o)
	inv, err := o.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv), nil
}

// Pow returns e^k (§4.6): 0 if e is zero, taking priority over k = 0 (per
// cuerpos_finitos.py's __pow__, which checks self == cero() first,
// unconditionally, before looking at the exponent); otherwise 1 if e is one
// or k is zero; otherwise reduce k modulo q-1 (Fermat/Lagrange) before
// square-and-multiply, inverting first if the original exponent was
// negative. The exponent reduction keeps large k cheap, matching the spec's
// requirement that it is essential.
func (e Element) Pow(k *big.Int) (Element, error) {
	one := e.field.One()
	if e.IsZero() {
		return e.field.Zero(), nil
	}
	if k.Sign() == 0 || e.Equal(one) {
		return one, nil
	}

	base := e
	exp := new(big.Int).Set(k)
	if exp.Sign() < 0 {
		inv, err := e.Inverse()
		if err != nil {
			return Element{}, err
		}
		base = inv
		exp.Neg(exp)
	}

	qMinus1 := new(big.Int).Sub(e.field.Order(), big.NewInt(1))
	exp.Mod(exp, qMinus1)

	result := one
	b := base
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result = result.Mul(b)
		}
		b = b.Mul(b)
		exp.Rsh(exp, 1)
	}
	return result, nil
}

// String renders the coefficients c0..c_{n-1} zero-padded to length n:
// "{[c0, c1, ..., c_{n-1}]; q}" (§6).
func (e Element) String() string {
	n := e.field.n
	q := e.field.Order()
	sb := "{["
	for i := 0; i < n; i++ {
		if i > 0 {
			sb += ", "
		}
		sb += e.poly.Coeff(i).Int().String()
	}
	sb += "]; " + q.String() + "}"
	return sb
}
