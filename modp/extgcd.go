package modp

import "math/big"

// ExtGCDInt returns (x, y, d) such that a*x + b*y = d = gcd(a, b), d >= 0,
// using the iterative two-vector update (§4.2). It is symmetric in its
// arguments: swapping a and b swaps x and y in the result.
func ExtGCDInt(a, b *big.Int) (x, y, d *big.Int) {
	// Guide to Elliptic Curve Cryptography, Alg. 2.19/2.20, expressed as an
	// iterative two-vector update rather than recursion.
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int)
		rem := new(big.Int)
		q.DivMod(oldR, r, rem)
		// big.Int.DivMod is Euclidean division (remainder always >= 0),
		// which is exactly what the iteration needs.

		oldR, r = r, rem

		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}

	return oldS, oldT, oldR
}
