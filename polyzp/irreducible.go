package polyzp

import (
	"math/big"
	"math/rand"
)

// IsIrreducible reports whether f is irreducible over F_p (§4.5), using the
// Rabin-style test: f is irreducible iff it shares no nontrivial factor with
// X^(p^i) - X for every i <= deg(f)/2.
func IsIrreducible(f Poly) bool {
	p := f.p
	if f.LeadingCoeff().Int().Cmp(big.NewInt(1)) != 0 {
		lcInv, err := f.LeadingCoeff().Inverse()
		if err != nil {
			return false
		}
		f = f.Mul(New([]*big.Int{lcInv.Int()}, p))
	}
	m := f.Degree()
	if m <= 0 {
		return false
	}

	x := Monomial(big.NewInt(1), 1, p)
	u := powModPoly(x, p, f)
	for i := 1; i <= m/2; i++ {
		_, _, d, err := ExtGCD(f, u.Sub(x))
		if err != nil {
			return false
		}
		if !(d.Degree() == 0) {
			return false
		}
		u = powModPoly(u, p, f)
	}
	return true
}

// powModPoly computes base^exponent mod modulus via square-and-multiply,
// reducing by modulus (DivMod's remainder) after every multiplication.
func powModPoly(base Poly, exponent *big.Int, modulus Poly) Poly {
	p := base.p
	_, reduced, _ := DivMod(base, modulus)
	result := One(p)
	e := new(big.Int).Set(exponent)
	b := reduced
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			_, result, _ = DivMod(result.Mul(b), modulus)
		}
		_, b, _ = DivMod(b.Mul(b), modulus)
		e.Rsh(e, 1)
	}
	return result
}

// GenerateIrreducible samples a monic polynomial of the given degree over
// F_p uniformly (constant term nonzero, middle coefficients arbitrary,
// leading coefficient 1) and resamples until it is irreducible (§4.5).
// Termination is probabilistic, expected O(degree) iterations.
func GenerateIrreducible(degree int, p *big.Int, rng *rand.Rand) Poly {
	if degree < 1 {
		panic("polyzp: degree must be >= 1")
	}
	pInt64 := p.Int64()
	for {
		coeffs := make([]*big.Int, degree+1)
		coeffs[0] = big.NewInt(1 + rng.Int63n(pInt64-1))
		for i := 1; i < degree; i++ {
			coeffs[i] = big.NewInt(rng.Int63n(pInt64))
		}
		coeffs[degree] = big.NewInt(1)

		candidate := New(coeffs, p)
		if IsIrreducible(candidate) {
			return candidate
		}
	}
}
