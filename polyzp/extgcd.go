package polyzp

import "math/big"

// ExtGCD returns (s, t, d) with s*g + t*h = d and d = monic gcd(g, h),
// using the Euclidean two-vector iteration (§4.4), identical in shape to
// modp.ExtGCDInt but over F_p[X] with DivMod in place of integer division.
// g must be nonzero.
func ExtGCD(g, h Poly) (s, t, d Poly, err error) {
	g.checkSameField(h)
	p := g.p

	oldR, r := g, h
	oldS, sCur := One(p), Zero(p)
	oldT, tCur := Zero(p), One(p)

	for !r.IsZero() {
		q, rem, divErr := DivMod(oldR, r)
		if divErr != nil {
			return Poly{}, Poly{}, Poly{}, divErr
		}
		oldR, r = r, rem
		oldS, sCur = sCur, oldS.Sub(q.Mul(sCur))
		oldT, tCur = tCur, oldT.Sub(q.Mul(tCur))
	}

	// Required invariant: normalise the gcd to monic (§4.4).
	if !oldR.IsZero() && oldR.LeadingCoeff().Int().Cmp(big.NewInt(1)) != 0 {
		lcInv, invErr := oldR.LeadingCoeff().Inverse()
		if invErr != nil {
			return Poly{}, Poly{}, Poly{}, invErr
		}
		scale := New([]*big.Int{lcInv.Int()}, p)
		oldR = oldR.Mul(scale)
		oldS = oldS.Mul(scale)
		oldT = oldT.Mul(scale)
	}

	return oldS, oldT, oldR, nil
}
