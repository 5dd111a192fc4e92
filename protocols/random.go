// Package protocols implements the ECDH and ECDSA participants (§4.8, §4.9)
// layered on top of package curve and package fq.
package protocols

import (
	"math/big"
	"math/rand"
)

// randRange samples uniformly from [lo, hi), using math/big's Rand, which
// in turn draws from the supplied math/rand.Rand source (§5: a process-wide
// PRNG callers needing determinism seed explicitly; never crypto/rand,
// since the toolkit's own test suite seeds at fixture setup the same way
// the teacher's property tests do).
func randRange(rng *rand.Rand, lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	n := new(big.Int).Rand(rng, span)
	return n.Add(n, lo)
}
