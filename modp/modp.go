// Package modp implements arithmetic in the integers modulo a prime p.
//
// A Value carries its modulus alongside its canonical representative, so
// that two Values over different primes can never be silently mixed: every
// operation checks the moduli agree and panics if they don't, the same way
// a slice index out of range panics rather than returning a zero value.
package modp

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrZeroDivision is returned when a Value of zero is inverted or divided by.
var ErrZeroDivision = errors.New("modp: division by zero")

// Value is an element of Z/pZ, always held in canonical form n mod p, 0 <= n < p.
type Value struct {
	n *big.Int
	p *big.Int
}

// New builds the canonical representative of n modulo p. n may be negative.
// Panics if p is not positive; it does not verify that p is prime (or even
// >= 2), mirroring the teacher's assumption that the caller
// supplies a genuine prime (ModP's field axioms only hold then).
func New(n int64, p *big.Int) Value {
	return FromBigInt(big.NewInt(n), p)
}

// FromBigInt builds the canonical representative of n modulo p.
func FromBigInt(n *big.Int, p *big.Int) Value {
	if p.Sign() <= 0 {
		panic("modp: modulus must be positive")
	}
	r := new(big.Int).Mod(n, p)
	return Value{n: r, p: new(big.Int).Set(p)}
}

// Int returns the canonical representative as a big.Int, in [0, p).
func (v Value) Int() *big.Int {
	return new(big.Int).Set(v.n)
}

// Modulus returns the prime p this value is reduced modulo.
func (v Value) Modulus() *big.Int {
	return new(big.Int).Set(v.p)
}

func (v Value) checkSameField(w Value) {
	if v.p.Cmp(w.p) != 0 {
		panic(fmt.Sprintf("modp: mismatched moduli %s and %s", v.p, w.p))
	}
}

// Add returns v + w mod p.
func (v Value) Add(w Value) Value {
	v.checkSameField(w)
	return FromBigInt(new(big.Int).Add(v.n, w.n), v.p)
}

// Sub returns v - w mod p.
func (v Value) Sub(w Value) Value {
	v.checkSameField(w)
	return FromBigInt(new(big.Int).Sub(v.n, w.n), v.p)
}

// Mul returns v * w mod p.
func (v Value) Mul(w Value) Value {
	v.checkSameField(w)
	return FromBigInt(new(big.Int).Mul(v.n, w.n), v.p)
}

// Neg returns -v mod p.
func (v Value) Neg() Value {
	return FromBigInt(new(big.Int).Neg(v.n), v.p)
}

// IsZero reports whether v is the additive identity.
func (v Value) IsZero() bool {
	return v.n.Sign() == 0
}

// Equal reports whether v and w denote the same field element.
func (v Value) Equal(w Value) bool {
	v.checkSameField(w)
	return v.n.Cmp(w.n) == 0
}

// Inverse returns the multiplicative inverse of v, via the extended
// Euclidean algorithm over signed integers (§4.1, §4.2): gcd(v, p) = 1 since
// p is prime and v != 0, and the Bezout coefficient of v is the inverse.
//
// Returns ErrZeroDivision if v is zero.
func (v Value) Inverse() (Value, error) {
	if v.IsZero() {
		return Value{}, ErrZeroDivision
	}
	x, _, d := ExtGCDInt(v.n, v.p)
	if d.Cmp(big.NewInt(1)) != 0 {
		// Unreachable when p is actually prime; surfaced defensively.
		return Value{}, fmt.Errorf("modp: %s is not invertible mod %s", v.n, v.p)
	}
	return FromBigInt(x, v.p), nil
}

// Div returns v / w, i.e. v * w.Inverse(). Returns ErrZeroDivision if w is zero.
func (v Value) Div(w Value) (Value, error) {
	v.checkSameField(w)
	inv, err := w.Inverse()
	if err != nil {
		return Value{}, err
	}
	return v.Mul(inv), nil
}

// Pow returns v^k. For k < 0 it computes (v.Inverse())^(-k), returning
// ErrZeroDivision if v is zero and k is negative.
func (v Value) Pow(k *big.Int) (Value, error) {
	if k.Sign() >= 0 {
		return FromBigInt(new(big.Int).Exp(v.n, k, v.p), v.p), nil
	}
	inv, err := v.Inverse()
	if err != nil {
		return Value{}, err
	}
	return FromBigInt(new(big.Int).Exp(inv.n, new(big.Int).Neg(k), v.p), v.p), nil
}

// String renders the canonical representative, e.g. "5 (mod 7)".
func (v Value) String() string {
	return fmt.Sprintf("%s (mod %s)", v.n, v.p)
}
