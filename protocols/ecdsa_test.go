package protocols_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ranea-labs/ecc-toolkit/curve"
	"github.com/ranea-labs/ecc-toolkit/fq"
	"github.com/ranea-labs/ecc-toolkit/internal/testutils"
	"github.com/ranea-labs/ecc-toolkit/polyzp"
	"github.com/ranea-labs/ecc-toolkit/protocols"
)

// polyIrreducibleOverF2 returns X^2+X+1, the standard degree-2 irreducible
// used to build F_4, the same polynomial the fq test suite uses.
func polyIrreducibleOverF2(t *testing.T) polyzp.Poly {
	t.Helper()
	p := big.NewInt(2)
	return polyzp.New([]*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(1)}, p)
}

// pointOrder brute-forces the order of g by repeated addition, for small
// test curves only.
func pointOrder(c *curve.Weierstrass[fq.Element], g curve.Point[fq.Element]) *big.Int {
	o := curve.Identity[fq.Element]()
	acc := g
	k := int64(1)
	for {
		acc = c.Add(acc, g)
		k++
		if acc.Equal(o) {
			return big.NewInt(k)
		}
	}
}

// ecdsaFixture builds a small curve over F_2003 with a generator of prime
// order, suitable for exercising NewECDSA's acceptance path.
func ecdsaFixture(t *testing.T) (*curve.Weierstrass[fq.Element], curve.Point[fq.Element], *big.Int, *fq.Field) {
	t.Helper()
	field := fq.NewPrimeField(big.NewInt(2003))
	elem := func(n int64) fq.Element { return field.FromInt(big.NewInt(n)) }

	c, err := curve.NewWeierstrass[fq.Element](elem(1), elem(1))
	testutils.AssertNoError(t, "NewWeierstrass", err)

	// (6,667) is on y^2=x^3+x+1 over F_2003 and has prime order 251.
	g, err := c.NewPoint(elem(6), elem(667))
	testutils.AssertNoError(t, "generator on curve", err)

	n := pointOrder(c, g)
	if !n.ProbablyPrime(20) {
		t.Fatalf("fixture generator order %v is not prime; pick another curve", n)
	}
	return c, g, n, field
}

func TestSignVerifyRoundTrip(t *testing.T) {
	c, g, n, field := ecdsaFixture(t)
	rng := rand.New(rand.NewSource(10))

	signer, err := protocols.NewECDSA(c, field, g, n, rng)
	testutils.AssertNoError(t, "NewECDSA", err)

	message := []byte("transfer 10 coins to bob")
	r, s, err := signer.Sign(message, rng)
	testutils.AssertNoError(t, "Sign", err)

	if !signer.Verify(message, r, s, signer.Q) {
		t.Fatalf("Verify rejected a valid signature")
	}
}

// TestVerifyRejectsTamperedMessage covers property 14: changing the signed
// message invalidates the signature.
func TestVerifyRejectsTamperedMessage(t *testing.T) {
	c, g, n, field := ecdsaFixture(t)
	rng := rand.New(rand.NewSource(11))

	signer, err := protocols.NewECDSA(c, field, g, n, rng)
	testutils.AssertNoError(t, "NewECDSA", err)

	r, s, err := signer.Sign([]byte("original message"), rng)
	testutils.AssertNoError(t, "Sign", err)

	if signer.Verify([]byte("tampered message"), r, s, signer.Q) {
		t.Fatalf("Verify accepted a signature over a different message")
	}
}

// TestVerifyRejectsWrongSigner covers property 14's other half: a signature
// does not verify against an unrelated public key.
func TestVerifyRejectsWrongSigner(t *testing.T) {
	c, g, n, field := ecdsaFixture(t)
	rng := rand.New(rand.NewSource(12))

	alice, err := protocols.NewECDSA(c, field, g, n, rng)
	testutils.AssertNoError(t, "NewECDSA alice", err)
	eve, err := protocols.NewECDSA(c, field, g, n, rng)
	testutils.AssertNoError(t, "NewECDSA eve", err)

	if eve.D.Cmp(alice.D) == 0 {
		eve.D = new(big.Int).Mod(new(big.Int).Add(eve.D, big.NewInt(1)), n)
		eve.Q = c.ScalarMul(g, eve.D)
	}

	message := []byte("pay alice")
	r, s, err := alice.Sign(message, rng)
	testutils.AssertNoError(t, "Sign", err)

	if alice.Verify(message, r, s, eve.Q) {
		t.Fatalf("Verify accepted alice's signature against eve's public key")
	}
}

func TestNewECDSARejectsNonPrimeField(t *testing.T) {
	field, err := fq.NewField(big.NewInt(2), 2, polyIrreducibleOverF2(t))
	testutils.AssertNoError(t, "NewField", err)

	a := field.FromInt(big.NewInt(1))
	b := field.FromInt(big.NewInt(1))
	c, err := curve.NewWeierstrass[fq.Element](a, b)
	testutils.AssertNoError(t, "NewWeierstrass", err)

	g := curve.Identity[fq.Element]()

	_, err = protocols.NewECDSA(c, field, g, big.NewInt(3), rand.New(rand.NewSource(13)))
	testutils.AssertErrorIs(t, "non-prime field", err, protocols.ErrNonPrimeField)
}

func TestNewECDSARejectsCompositeOrder(t *testing.T) {
	c, g, _, field := ecdsaFixture(t)
	_, err := protocols.NewECDSA(c, field, g, big.NewInt(15), rand.New(rand.NewSource(14)))
	testutils.AssertErrorIs(t, "composite order", err, protocols.ErrCompositeOrder)
}
