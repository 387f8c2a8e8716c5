package auth

import "context"

// Authenticator is a single authentication stage. Implementations decide
// whether the supplied credential is valid for their protection space.
type Authenticator interface {
	GetName() string
	Authenticate(ctx context.Context, cred *Credential) (*AuthenticatedUser, error)
}

type Credential struct {
	Type     CredentialType `json:"type"`
	Username string         `json:"username"`
	Password string         `json:"password"`
}

type CredentialType string

const (
	CredentialTypeBasic = CredentialType("BASIC")
)

func (c CredentialType) String() string {
	return string(c)
}

// AuthenticatedUser carries the verified identity attached to a request
// context. ClientID is always the id that passed verification, never the one
// merely extracted from the header.
type AuthenticatedUser struct {
	AuthenticatedByRealm string `json:"authenticated_by_realm"`
	Realm                Realm  `json:"realm"`
	ClientID             string `json:"client_id"`
}
