// Package auth provides credential hashing/verification and session
// tokens. Passwords are never stored or compared in plaintext: each
// account keeps a random salt and an argon2id-derived verifier.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
)

// Provider hashes and verifies user credentials. It is an interface so
// the derivation scheme can be swapped without touching the services.
type Provider interface {
	// Hash derives a fresh salt and verifier for the given password.
	Hash(password []byte) (salt, verifier []byte, err error)

	// Verify reports whether password matches the stored salt/verifier
	// pair. Comparison is constant-time.
	Verify(password, salt, verifier []byte) bool
}

// Argon2Provider derives keys with argon2id and stores a SHA-256
// verifier of the derived key.
type Argon2Provider struct{}

func NewArgon2Provider() *Argon2Provider {
	return &Argon2Provider{}
}

func deriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

func makeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

func (p *Argon2Provider) Hash(password []byte) ([]byte, []byte, error) {
	salt := common.GenerateRandByteArray(32)
	key := deriveKey(password, salt)
	return salt, makeVerifier(key), nil
}

func (p *Argon2Provider) Verify(password, salt, verifier []byte) bool {
	candidate := makeVerifier(deriveKey(password, salt))
	return subtle.ConstantTimeCompare(verifier, candidate) == 1
}
