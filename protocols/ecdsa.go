package protocols

import (
	"crypto/sha1" //nolint:gosec // §6: SHA-1 is the spec's stated hash, not a security choice made here.
	"errors"
	"math/big"
	"math/rand"

	"github.com/ranea-labs/ecc-toolkit/curve"
	"github.com/ranea-labs/ecc-toolkit/fq"
	"github.com/ranea-labs/ecc-toolkit/modp"
)

// ErrNonPrimeField is returned by NewECDSA when the curve's base field is a
// nontrivial extension F_{p^n}, n>1 (§4.9, §7 DomainError).
var ErrNonPrimeField = errors.New("protocols: ECDSA requires a prime base field")

// ErrCompositeOrder is returned by NewECDSA when the stated generator order
// is not prime (§4.9: "n must be prime").
var ErrCompositeOrder = errors.New("protocols: ECDSA requires a prime order")

// ECDSA is a signing/verifying participant over a curve whose base field is
// F_p (not a nontrivial extension) and whose generator has prime order n
// (§4.9).
type ECDSA struct {
	Group curve.Group[fq.Element]
	Field *fq.Field
	G     curve.Point[fq.Element]
	N     *big.Int

	D *big.Int
	Q curve.Point[fq.Element]
}

// NewECDSA constructs a participant, generating (d, Q) as in NewECDH.
// Refuses curves over a nontrivial extension field or a non-prime order.
func NewECDSA(
	group curve.Group[fq.Element],
	field *fq.Field,
	g curve.Point[fq.Element],
	n *big.Int,
	rng *rand.Rand,
) (*ECDSA, error) {
	if field.Degree() != 1 {
		return nil, ErrNonPrimeField
	}
	if !n.ProbablyPrime(20) {
		return nil, ErrCompositeOrder
	}
	d := randRange(rng, big.NewInt(1), n)
	q := curve.ScalarMulDoubleAdd[fq.Element](group, g, d)
	return &ECDSA{Group: group, Field: field, G: g, N: n, D: d, Q: q}, nil
}

// hashToInt computes e, the integer interpretation of the first
// ceil(bitlen(n)/8) bytes of SHA-1(message), big-endian (§4.9, §6).
func hashToInt(message []byte, n *big.Int) *big.Int {
	digest := sha1.Sum(message) //nolint:gosec // see import comment
	byteLen := (n.BitLen() + 7) / 8
	if byteLen > len(digest) {
		byteLen = len(digest)
	}
	return new(big.Int).SetBytes(digest[:byteLen])
}

// Sign computes an ECDSA signature over message (interpreted as UTF-8
// bytes), resampling the per-signature nonce k whenever it produces r=0 or
// s=0 (§4.9). The loop is unbounded, like the teacher's own unbounded
// coordination loops; termination is a probabilistic, not a worst-case,
// guarantee.
func (e *ECDSA) Sign(message []byte, rng *rand.Rand) (r, s *big.Int, err error) {
	zn := func(v *big.Int) modp.Value { return modp.FromBigInt(v, e.N) }

	for {
		k := randRange(rng, big.NewInt(1), e.N)
		kP := curve.ScalarMulDoubleAdd[fq.Element](e.Group, e.G, k)

		rVal := zn(kP.X().Int())
		if rVal.IsZero() {
			continue
		}

		eVal := zn(hashToInt(message, e.N))
		dVal := zn(e.D)

		kInv, invErr := zn(k).Inverse()
		if invErr != nil {
			continue
		}
		sVal := kInv.Mul(eVal.Add(dVal.Mul(rVal)))
		if sVal.IsZero() {
			continue
		}

		return rVal.Int(), sVal.Int(), nil
	}
}

// Verify checks an ECDSA signature (r, s) over message against the
// signer's public point signerQ (§4.9). It never panics; out-of-range
// (r, s) and a failed equation check both simply return false.
func (e *ECDSA) Verify(message []byte, r, s *big.Int, signerQ curve.Point[fq.Element]) bool {
	one := big.NewInt(1)
	nMinus1 := new(big.Int).Sub(e.N, one)
	if r.Cmp(one) < 0 || r.Cmp(nMinus1) > 0 {
		return false
	}
	if s.Cmp(one) < 0 || s.Cmp(nMinus1) > 0 {
		return false
	}

	zn := func(v *big.Int) modp.Value { return modp.FromBigInt(v, e.N) }

	eVal := zn(hashToInt(message, e.N))
	w, err := zn(s).Inverse()
	if err != nil {
		return false
	}
	u1 := eVal.Mul(w).Int()
	u2 := zn(r).Mul(w).Int()

	x := e.Group.Add(
		curve.ScalarMulDoubleAdd[fq.Element](e.Group, e.G, u1),
		curve.ScalarMulDoubleAdd[fq.Element](e.Group, signerQ, u2),
	)
	if x.IsIdentity() {
		return false
	}

	v := zn(x.X().Int())
	return v.Equal(zn(r))
}
