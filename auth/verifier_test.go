package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifySecret_CleartextReflexive(t *testing.T) {
	secrets := []string{"password1", "p", "a longer secret with spaces", "пароль"}

	for _, s := range secrets {
		require.True(t, VerifySecret(s, NewCleartextSecret(s)))
	}
}

func TestVerifySecret_CleartextRejectsMutations(t *testing.T) {
	secret := "password1"

	for i := 0; i < len(secret); i++ {
		mutated := []byte(secret)
		mutated[i] ^= 0x01
		require.False(t, VerifySecret(string(mutated), NewCleartextSecret(secret)))
	}

	require.False(t, VerifySecret("", NewCleartextSecret(secret)))
	require.False(t, VerifySecret(secret+"x", NewCleartextSecret(secret)))
	require.False(t, VerifySecret(secret[:len(secret)-1], NewCleartextSecret(secret)))
}

func TestVerifySecret_HashedReflexive(t *testing.T) {
	tests := []struct {
		name string
		algo HashAlgorithm
		salt []byte
	}{
		{name: "sha256", algo: SHA256},
		{name: "sha512", algo: SHA512},
		{name: "pbkdf2_sha256", algo: PBKDF2SHA256, salt: []byte("0123456789abcdef")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := HashSecret("password1", tt.algo, tt.salt, 0)
			require.NoError(t, err)

			require.True(t, VerifySecret("password1", hashed))
			require.False(t, VerifySecret("password2", hashed))
			require.False(t, VerifySecret("", hashed))
		})
	}
}

func TestVerifySecret_DigestLengthMismatch(t *testing.T) {
	// a corrupt stored digest must fail verification, not panic or pass
	corrupt := NewHashedSecret(SHA256, []byte{0x01, 0x02, 0x03})
	require.False(t, VerifySecret("password1", corrupt))
}

func TestVerifySecret_UnknownAlgorithm(t *testing.T) {
	secret := Secret{Type: SecretTypeHashed, Algorithm: HashAlgorithm("md5"), Digest: []byte{0x01}}
	require.False(t, VerifySecret("password1", secret))
}

func TestVerifySecret_EmptyDescriptor(t *testing.T) {
	require.False(t, VerifySecret("password1", Secret{}))
}
