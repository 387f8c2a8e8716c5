package auth

import (
	"context"

	"github.com/samber/mo"
)

// SecretResolver yields the stored secret for a client id within a realm.
// mo.None means the client is unknown; a non-nil error is a resolver fault
// (an outage, not a missing client) and must never be reported to the client
// as an authentication failure.
//
// Resolvers are read concurrently by many request-handling goroutines and
// must not require locking; the static table achieves this by being immutable
// after construction.
type SecretResolver interface {
	Resolve(ctx context.Context, realm Realm, clientID string) (mo.Option[Secret], error)
}

// ResolverFunc adapts a callback to the SecretResolver interface. When a
// stage is configured with a callback it fully supersedes any static table.
type ResolverFunc func(ctx context.Context, realm Realm, clientID string) (mo.Option[Secret], error)

func (f ResolverFunc) Resolve(ctx context.Context, realm Realm, clientID string) (mo.Option[Secret], error) {
	return f(ctx, realm, clientID)
}

// ClientEntry is one configured (client id, secret) pair.
type ClientEntry struct {
	ClientID string
	Secret   Secret
}

// StaticTable resolves clients from an in-memory table scoped to one realm.
type StaticTable struct {
	secrets map[string]Secret
}

// NewStaticTable builds a table from configuration order. A duplicate client
// id overwrites the earlier entry: the last one wins.
func NewStaticTable(entries []ClientEntry) *StaticTable {
	secrets := make(map[string]Secret, len(entries))
	for _, e := range entries {
		secrets[e.ClientID] = e.Secret
	}
	return &StaticTable{secrets: secrets}
}

func (t *StaticTable) Resolve(_ context.Context, _ Realm, clientID string) (mo.Option[Secret], error) {
	secret, ok := t.secrets[clientID]
	if !ok {
		return mo.None[Secret](), nil
	}
	return mo.Some(secret), nil
}

// Len reports the number of distinct client ids in the table.
func (t *StaticTable) Len() int {
	return len(t.secrets)
}
