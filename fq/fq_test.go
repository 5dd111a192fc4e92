package fq_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ranea-labs/ecc-toolkit/fq"
	"github.com/ranea-labs/ecc-toolkit/internal/testutils"
	"github.com/ranea-labs/ecc-toolkit/polyzp"
)

func TestPrimeFieldAliasesModP(t *testing.T) {
	p := big.NewInt(97)
	field := fq.NewPrimeField(p)

	a := field.FromInt(big.NewInt(42))
	b := field.FromInt(big.NewInt(55))

	sum := a.Add(b)
	testutils.AssertBigIntsEqual(t, "42+55 mod 97", big.NewInt(0), sum.Poly().Coeff(0).Int())
}

func TestExtensionFieldArithmetic(t *testing.T) {
	p := big.NewInt(2)
	// X^2+X+1 is irreducible over F_2 — builds F_4.
	irr := polyzp.New([]*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(1)}, p)
	field, err := fq.NewField(p, 2, irr)
	testutils.AssertNoError(t, "NewField", err)

	a := field.FromCoeffs([]*big.Int{big.NewInt(1), big.NewInt(1)}) // X+1
	b := field.FromCoeffs([]*big.Int{big.NewInt(0), big.NewInt(1)}) // X

	prod := a.Mul(b) // (X+1)*X = X^2+X = (X+1)+X [mod f] = 1
	one := field.One()
	if !prod.Equal(one) {
		t.Fatalf("expected (X+1)*X = 1 in F_4, got %v", prod)
	}

	inv, err := a.Inverse()
	testutils.AssertNoError(t, "inverse", err)
	if !inv.Equal(b) {
		t.Fatalf("expected inverse(X+1) = X in F_4, got %v", inv)
	}
}

func TestInverseOfZeroFails(t *testing.T) {
	p := big.NewInt(2)
	irr := polyzp.New([]*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(1)}, p)
	field, _ := fq.NewField(p, 2, irr)
	_, err := field.Zero().Inverse()
	testutils.AssertErrorIs(t, "inverse(0)", err, fq.ErrZeroDivision)
}

func TestNewFieldRejectsReducible(t *testing.T) {
	p := big.NewInt(2)
	reducible := polyzp.New([]*big.Int{big.NewInt(1), big.NewInt(0), big.NewInt(1)}, p) // X^2+1
	_, err := fq.NewField(p, 2, reducible)
	testutils.AssertErrorIs(t, "NewField(reducible)", err, fq.ErrNotIrreducible)
}

// TestPowFermat checks e^(q-1) == 1 for e != 0, i.e. the exponent-reduction
// invariant Pow relies on.
func TestPowFermat(t *testing.T) {
	p := big.NewInt(5)
	field := fq.NewPrimeField(p)
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := rng.Int63n(4) + 1
		e := field.FromInt(big.NewInt(n))
		result, err := e.Pow(big.NewInt(4))
		testutils.AssertNoError(t, "pow", err)
		if !result.Equal(field.One()) {
			t.Fatalf("expected %v^4 = 1 mod 5, got %v", n, result)
		}
	}
}

func TestPowLargeExponentReduced(t *testing.T) {
	p := big.NewInt(2)
	irr := polyzp.New([]*big.Int{big.NewInt(1), big.NewInt(1), big.NewInt(1)}, p)
	field, _ := fq.NewField(p, 2, irr)
	a := field.FromCoeffs([]*big.Int{big.NewInt(1), big.NewInt(1)}) // X+1, order divides q-1=3

	huge := new(big.Int).Lsh(big.NewInt(1), 200)
	direct, err := a.Pow(huge)
	testutils.AssertNoError(t, "pow huge", err)

	reducedExp := new(big.Int).Mod(huge, big.NewInt(3))
	expected, err := a.Pow(reducedExp)
	testutils.AssertNoError(t, "pow reduced", err)

	if !direct.Equal(expected) {
		t.Fatalf("pow with huge exponent does not match reduced exponent")
	}
}

func TestGenerateField(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	field := fq.GenerateField(big.NewInt(3), 3, rng)
	testutils.AssertIntsEqual(t, "degree", 3, field.Degree())
	if !polyzp.IsIrreducible(field.Irreducible()) {
		t.Fatalf("generated field's modulus is not irreducible")
	}
}
