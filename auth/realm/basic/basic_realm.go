package basic

import (
	"context"
	"fmt"

	"github.com/samber/mo"

	"github.com/frain-dev/httpauth/auth"
)

const realmKind = "basic_realm"

var _ auth.Authenticator = (*Realm)(nil)

// Realm is the decision engine for one Basic protection space: it runs
// extraction, resolution and constant-time verification and produces a single
// terminal outcome per request. A failed attempt is final for this stage; a
// pipeline may still let another stage try a different scheme.
type Realm struct {
	name     auth.Realm
	resolver auth.SecretResolver
}

// NewRealm constructs a Basic realm authenticator. The realm name is
// validated once here; an invalid name is a configuration error and the
// stage never starts.
func NewRealm(name string, resolver auth.SecretResolver) (*Realm, error) {
	realm := auth.Realm(name)
	if err := realm.Validate(); err != nil {
		return nil, err
	}

	if resolver == nil {
		return nil, fmt.Errorf("no secret resolver supplied for realm '%s'", name)
	}

	return &Realm{name: realm, resolver: resolver}, nil
}

func (r *Realm) GetName() string {
	return realmKind
}

func (r *Realm) Realm() auth.Realm {
	return r.name
}

// Authenticate resolves and verifies an already-extracted credential.
func (r *Realm) Authenticate(ctx context.Context, cred *auth.Credential) (*auth.AuthenticatedUser, error) {
	if cred.Type != auth.CredentialTypeBasic {
		return nil, fmt.Errorf("unsupported credential type: %s", cred.Type.String())
	}

	resolved, err := r.resolver.Resolve(ctx, r.name, cred.Username)
	if err != nil {
		// a resolver fault is not an authentication failure
		return nil, fmt.Errorf("secret resolver failed for realm '%s': %w", r.name, err)
	}

	secret, ok := resolved.Get()
	if !ok {
		return nil, auth.ErrClientNotFound
	}

	if !auth.VerifySecret(cred.Password, secret) {
		return nil, auth.ErrInvalidSecret
	}

	return &auth.AuthenticatedUser{
		AuthenticatedByRealm: r.GetName(),
		Realm:                r.name,
		ClientID:             cred.Username,
	}, nil
}

// Decide runs the full pipeline from a raw Authorization header value to an
// outcome.
func (r *Realm) Decide(ctx context.Context, header mo.Option[string]) (*auth.AuthenticatedUser, error) {
	cred, err := auth.ExtractCredential(header)
	if err != nil {
		return nil, err
	}

	return r.Authenticate(ctx, cred)
}
