package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

// VerifySecret compares a supplied secret against a stored descriptor in
// constant time. Both sides are reduced to fixed-length digests before
// comparison, so the time taken does not depend on where the inputs differ
// or on the length of either secret.
func VerifySecret(supplied string, secret Secret) bool {
	switch secret.Type {
	case SecretTypeCleartext:
		a := sha256.Sum256([]byte(supplied))
		b := sha256.Sum256([]byte(secret.Cleartext))
		return subtle.ConstantTimeCompare(a[:], b[:]) == 1
	case SecretTypeHashed:
		derived, ok := deriveDigest(supplied, secret)
		if !ok {
			return false
		}
		return constantTimeEqual(derived, secret.Digest)
	default:
		return false
	}
}

func deriveDigest(supplied string, secret Secret) ([]byte, bool) {
	switch secret.Algorithm {
	case SHA256:
		sum := sha256.Sum256([]byte(supplied))
		return sum[:], true
	case SHA512:
		sum := sha512.Sum512([]byte(supplied))
		return sum[:], true
	case PBKDF2SHA256:
		iterations := secret.Iterations
		if iterations <= 0 {
			iterations = DefaultPBKDF2Iterations
		}
		return pbkdf2.Key([]byte(supplied), secret.Salt, iterations, pbkdf2KeyLength, sha256.New), true
	default:
		return nil, false
	}
}

// constantTimeEqual never returns early on a length mismatch; a corrupt
// stored digest still costs a full comparison pass.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		subtle.ConstantTimeCompare(a, a)
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
