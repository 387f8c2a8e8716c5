package auth

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

type HashAlgorithm string

const (
	SHA256       = HashAlgorithm("sha256")
	SHA512       = HashAlgorithm("sha512")
	PBKDF2SHA256 = HashAlgorithm("pbkdf2-sha256")
)

func (h HashAlgorithm) String() string {
	return string(h)
}

func (h HashAlgorithm) IsValid() bool {
	switch h {
	case SHA256, SHA512, PBKDF2SHA256:
		return true
	default:
		return false
	}
}

const DefaultPBKDF2Iterations = 4096

const pbkdf2KeyLength = 32

type SecretType string

const (
	SecretTypeCleartext = SecretType("CLEARTEXT")
	SecretTypeHashed    = SecretType("HASHED")
)

// Secret is the stored representation of a client's credential: either the
// cleartext secret itself or an algorithm-tagged digest. Secrets are built at
// configuration time and never mutated; comparison goes through VerifySecret,
// never through direct equality.
type Secret struct {
	Type       SecretType
	Cleartext  string
	Algorithm  HashAlgorithm
	Digest     []byte
	Salt       []byte
	Iterations int
}

func NewCleartextSecret(secret string) Secret {
	return Secret{Type: SecretTypeCleartext, Cleartext: secret}
}

func NewHashedSecret(algo HashAlgorithm, digest []byte) Secret {
	return Secret{Type: SecretTypeHashed, Algorithm: algo, Digest: digest}
}

// HashSecret produces the hashed descriptor for a cleartext secret. For
// PBKDF2SHA256 a salt is required; iterations <= 0 falls back to
// DefaultPBKDF2Iterations.
func HashSecret(secret string, algo HashAlgorithm, salt []byte, iterations int) (Secret, error) {
	if !algo.IsValid() {
		return Secret{}, fmt.Errorf("unknown hash algorithm: %s", algo)
	}

	s := Secret{Type: SecretTypeHashed, Algorithm: algo}
	switch algo {
	case SHA256:
		sum := sha256.Sum256([]byte(secret))
		s.Digest = sum[:]
	case SHA512:
		sum := sha512.Sum512([]byte(secret))
		s.Digest = sum[:]
	case PBKDF2SHA256:
		if len(salt) == 0 {
			return Secret{}, fmt.Errorf("%s requires a salt", algo)
		}
		if iterations <= 0 {
			iterations = DefaultPBKDF2Iterations
		}
		s.Salt = salt
		s.Iterations = iterations
		s.Digest = pbkdf2.Key([]byte(secret), salt, iterations, pbkdf2KeyLength, sha256.New)
	}

	return s, nil
}

// EncodePortable renders a hashed secret in the self-describing text form
// consumed by ParsePortableHash:
//
//	$sha256$<b64 digest>
//	$pbkdf2-sha256$<b64 salt>$<iterations>$<b64 digest>
func (s Secret) EncodePortable() (string, error) {
	if s.Type != SecretTypeHashed {
		return "", fmt.Errorf("cannot encode a %s secret as a portable hash", s.Type)
	}

	digest := base64.StdEncoding.EncodeToString(s.Digest)
	if s.Algorithm == PBKDF2SHA256 {
		salt := base64.StdEncoding.EncodeToString(s.Salt)
		return fmt.Sprintf("$%s$%s$%d$%s", s.Algorithm, salt, s.Iterations, digest), nil
	}

	return fmt.Sprintf("$%s$%s", s.Algorithm, digest), nil
}

// ParsePortableHash parses the portable hash form produced by EncodePortable.
func ParsePortableHash(value string) (Secret, error) {
	if !strings.HasPrefix(value, "$") {
		return Secret{}, fmt.Errorf("portable hash must start with '$': %q", value)
	}

	parts := strings.Split(value[1:], "$")
	algo := HashAlgorithm(parts[0])
	if !algo.IsValid() {
		return Secret{}, fmt.Errorf("unknown hash algorithm: %s", parts[0])
	}

	s := Secret{Type: SecretTypeHashed, Algorithm: algo}
	switch algo {
	case SHA256, SHA512:
		if len(parts) != 2 {
			return Secret{}, fmt.Errorf("portable %s hash needs exactly one digest segment", algo)
		}
		digest, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return Secret{}, fmt.Errorf("failed to decode digest: %v", err)
		}
		s.Digest = digest
	case PBKDF2SHA256:
		if len(parts) != 4 {
			return Secret{}, fmt.Errorf("portable %s hash needs salt, iterations and digest segments", algo)
		}
		salt, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return Secret{}, fmt.Errorf("failed to decode salt: %v", err)
		}
		iterations, err := strconv.Atoi(parts[2])
		if err != nil || iterations <= 0 {
			return Secret{}, fmt.Errorf("invalid iteration count: %q", parts[2])
		}
		digest, err := base64.StdEncoding.DecodeString(parts[3])
		if err != nil {
			return Secret{}, fmt.Errorf("failed to decode digest: %v", err)
		}
		s.Salt = salt
		s.Iterations = iterations
		s.Digest = digest
	}

	return s, nil
}
