package auth

import "errors"

var (
	// ErrCredentialNotFound is returned when the request carries no
	// Authorization header at all.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrSchemeNotRecognized is returned when an Authorization header is
	// present but does not use the Basic scheme.
	ErrSchemeNotRecognized = errors.New("authorization scheme not recognized")

	// ErrMalformedCredential covers base64 decode failures and decoded
	// payloads that do not split into exactly two colon-separated segments.
	ErrMalformedCredential = errors.New("malformed basic credential")

	// ErrInvalidCredentialChars is returned when the client id or secret
	// contains control characters.
	ErrInvalidCredentialChars = errors.New("credential contains control characters")

	// ErrClientNotFound is returned when no secret is configured for the
	// client id in this realm.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidSecret is returned when the supplied secret fails
	// verification.
	ErrInvalidSecret = errors.New("invalid secret")

	// ErrInvalidRealm is a configuration-time error; a stage with an invalid
	// realm never starts.
	ErrInvalidRealm = errors.New("invalid realm name")
)

// IsAuthError reports whether err is one of the per-request authentication
// failures. Anything else (a resolver callback fault, typically) must not be
// presented to the client as an authentication failure.
func IsAuthError(err error) bool {
	for _, target := range []error{
		ErrCredentialNotFound,
		ErrSchemeNotRecognized,
		ErrMalformedCredential,
		ErrInvalidCredentialChars,
		ErrClientNotFound,
		ErrInvalidSecret,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsUnattempted reports whether err means the client never attempted Basic
// authentication, as opposed to attempting it and failing.
func IsUnattempted(err error) bool {
	return errors.Is(err, ErrCredentialNotFound) || errors.Is(err, ErrSchemeNotRecognized)
}
