package auth

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

const basicSchemePrefix = "Basic "

// ExtractCredential parses a single Authorization header value into a Basic
// credential pair. It is a pure function of its input; the caller is
// responsible for picking exactly one header value off the request.
//
// The scheme token is matched case-sensitively as transmitted. Any number of
// extra spaces between the scheme and the base64 token is tolerated; some
// older clients over-pad the token.
func ExtractCredential(header mo.Option[string]) (*Credential, error) {
	value, ok := header.Get()
	if !ok {
		return nil, ErrCredentialNotFound
	}

	if !strings.HasPrefix(value, basicSchemePrefix) {
		return nil, ErrSchemeNotRecognized
	}

	token := strings.TrimLeft(value[len(basicSchemePrefix):], " ")
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}

	segments := strings.Split(string(decoded), ":")
	if len(segments) != 2 {
		return nil, fmt.Errorf("%w: expected exactly two colon-separated segments", ErrMalformedCredential)
	}

	// control characters in either segment could end up in response headers
	// or logs
	if hasControlBytes(segments[0]) || hasControlBytes(segments[1]) {
		return nil, ErrInvalidCredentialChars
	}

	return &Credential{
		Type:     CredentialTypeBasic,
		Username: segments[0],
		Password: segments[1],
	}, nil
}

func hasControlBytes(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7F {
			return true
		}
	}
	return false
}
