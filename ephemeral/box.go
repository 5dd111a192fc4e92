package ephemeral

import (
	"crypto/rand"
	"errors"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

// box is a NaCl secretbox-backed symmetric encrypter/decrypter keyed by a
// fixed 32-byte key (§11, §12): the layer SymmetricEcdhKey always wrapped
// but the pack never shipped. A fresh random nonce is prepended to every
// ciphertext, so encrypting the same plaintext twice never yields the
// same bytes.
type box struct {
	key [32]byte
}

func newBox(key [32]byte) *box {
	return &box{key: key}
}

func (b *box) encrypt(plaintext []byte) ([]byte, error) {
	var nonce [24]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, err
	}
	return secretbox.Seal(nonce[:], plaintext, &nonce, &b.key), nil
}

func (b *box) decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < 24 {
		return nil, errors.New("symmetric key decryption failed")
	}
	var nonce [24]byte
	copy(nonce[:], ciphertext[:24])

	plaintext, ok := secretbox.Open(nil, ciphertext[24:], &nonce, &b.key)
	if !ok {
		return nil, errors.New("symmetric key decryption failed")
	}
	return plaintext, nil
}
