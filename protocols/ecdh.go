package protocols

import (
	"math/big"
	"math/rand"

	"github.com/ranea-labs/ecc-toolkit/curve"
)

// ECDH is a Diffie-Hellman participant over a curve group of order n with
// generator G (§4.8). D and Q are exported, writable attributes: a caller
// may override them directly, with Q = D*G as the only invariant the
// toolkit enforces (and only at construction time) — enforcing it after an
// override is the caller's responsibility, per §4.8 and the open question
// in §9 about whether these should be frozen.
type ECDH[T curve.Elem[T]] struct {
	Group curve.Group[T]
	G     curve.Point[T]
	N     *big.Int

	D *big.Int       // private scalar
	Q curve.Point[T] // public point, D*G
}

// NewECDH picks a private scalar uniformly from [1, n) and computes the
// matching public point Q = d*G.
func NewECDH[T curve.Elem[T]](group curve.Group[T], g curve.Point[T], n *big.Int, rng *rand.Rand) *ECDH[T] {
	d := randRange(rng, big.NewInt(1), n)
	q := curve.ScalarMulDoubleAdd[T](group, g, d)
	return &ECDH[T]{Group: group, G: g, N: n, D: d, Q: q}
}

// SharedSecret returns the x-coordinate of d*peerQ, as a base-field element
// (§4.8).
func (e *ECDH[T]) SharedSecret(peerQ curve.Point[T]) T {
	shared := curve.ScalarMulDoubleAdd[T](e.Group, peerQ, e.D)
	return shared.X()
}
