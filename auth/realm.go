package auth

import "fmt"

// Realm names a protection space. It is presented inside the quoted-string
// parameter of a WWW-Authenticate challenge, so it must survive that grammar
// verbatim; Validate runs once at configuration time.
type Realm string

func (r Realm) String() string {
	return string(r)
}

// Validate rejects realm names that cannot be emitted as an HTTP
// quoted-string value without escaping: empty names, raw control characters,
// double quotes and backslashes.
func (r Realm) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("%w: realm must not be empty", ErrInvalidRealm)
	}

	for i := 0; i < len(r); i++ {
		c := r[i]
		if c < 0x20 || c == 0x7F {
			return fmt.Errorf("%w: control character at position %d", ErrInvalidRealm, i)
		}
		if c == '"' || c == '\\' {
			return fmt.Errorf("%w: %q at position %d", ErrInvalidRealm, string(c), i)
		}
	}

	return nil
}
