// Package ephemeral wraps an ECDH shared secret (§4.8) into a symmetric
// session key, the natural next step after SharedSecret that the original
// pack's SymmetricEcdhKey always implied but whose box.go never shipped.
package ephemeral

import (
	"crypto/sha256"

	"github.com/ranea-labs/ecc-toolkit/curve"
	"github.com/ranea-labs/ecc-toolkit/fq"
	"github.com/ranea-labs/ecc-toolkit/protocols"
)

// SymmetricEcdhKey is a session key derived from an ECDH shared secret,
// usable for authenticated encryption via Encrypt/Decrypt.
type SymmetricEcdhKey struct {
	box *box
}

// NewSymmetricEcdhKey computes dh's shared secret with peerQ and derives a
// session key from it by hashing the shared point's coordinate with
// SHA-256, mirroring the teacher's own sha256.Sum256(shared) step but
// sourcing "shared" from our own ECDH instead of btcec.GenerateSharedSecret.
func NewSymmetricEcdhKey(dh *protocols.ECDH[fq.Element], peerQ curve.Point[fq.Element]) *SymmetricEcdhKey {
	shared := dh.SharedSecret(peerQ)
	return &SymmetricEcdhKey{box: newBox(sha256.Sum256(elementBytes(shared)))}
}

// elementBytes gives a deterministic byte encoding of a field element,
// writing each coefficient as a fixed-width big-endian field of
// ceil(bitlen(p)/8) bytes so two different coefficient vectors never
// collide to the same encoding.
func elementBytes(e fq.Element) []byte {
	width := (e.Field().Modulus().BitLen() + 7) / 8
	var buf []byte
	for i := 0; i < e.Field().Degree(); i++ {
		buf = append(buf, e.Poly().Coeff(i).Int().FillBytes(make([]byte, width))...)
	}
	return buf
}

// Encrypt seals plaintext under the session key.
func (sek *SymmetricEcdhKey) Encrypt(plaintext []byte) ([]byte, error) {
	return sek.box.encrypt(plaintext)
}

// Decrypt opens ciphertext under the session key.
func (sek *SymmetricEcdhKey) Decrypt(ciphertext []byte) (plaintext []byte, err error) {
	return sek.box.decrypt(ciphertext)
}
