// Package cryptox implements the field-level encryption used by the
// registry. Every patient owns a symmetric key derived from their password;
// the key itself is never stored. Encrypted values are self-contained blobs
// (nonce prefixed to the AES-GCM ciphertext) suitable for a single column.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// keySalt is the fixed application-wide salt. Changing it invalidates every
// credential and patient row already stored.
var keySalt = []byte{
	0xc8, 0x09, 0x70, 0xcd, 0x11, 0x72, 0x33, 0x1f,
	0x0c, 0xb9, 0x32, 0x96, 0x29, 0xcc, 0xd9, 0xa3,
}

const (
	keyIterations = 100000
	keySize       = 32
	nonceSize     = 12
)

// DeriveKey stretches a password into a 32-byte AES key with
// PBKDF2-SHA256. It is deterministic: the same password always yields the
// same key, which is what makes the scan-and-decrypt credential lookup
// possible at all.
func DeriveKey(password string) []byte {
	return pbkdf2.Key([]byte(password), keySalt, keyIterations, keySize, sha256.New)
}

// Encrypt seals plaintext under key with AES-GCM using a fresh random
// nonce. The returned blob is nonce || ciphertext.
func Encrypt(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt opens a blob produced by Encrypt. It reports ok=false instead of
// returning an error: a blob that does not open under the given key is an
// expected, frequent outcome during the credential scan, not a fault.
func Decrypt(key, blob []byte) (plaintext []byte, ok bool) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, false
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, false
	}
	if len(blob) < aesgcm.NonceSize() {
		return nil, false
	}

	plaintext, err = aesgcm.Open(nil, blob[:aesgcm.NonceSize()], blob[aesgcm.NonceSize():], nil)
	if err != nil {
		return nil, false
	}
	return plaintext, true
}
