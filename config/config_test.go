package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frain-dev/httpauth/auth"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "httpauth.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"auth": {
			"verbosity": "debug",
			"stages": [
				{
					"realm": "realm1",
					"halt": true,
					"clients": [
						{"client_id": "username1", "secret": "password1"}
					]
				},
				{
					"realm": "realm2",
					"advertise_unattempted": true,
					"clients": [
						{"client_id": "username2", "hash": "$sha256$XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg="}
					]
				}
			]
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, auth.VerbosityDebug, cfg.Auth.Verbosity)
	require.Len(t, cfg.Auth.Stages, 2)
	require.True(t, cfg.Auth.Stages[0].Halt)
	require.True(t, cfg.Auth.Stages[1].AdvertiseUnattempted)
}

func TestLoad_DefaultVerbosity(t *testing.T) {
	path := writeConfig(t, `{
		"auth": {
			"stages": [
				{"realm": "realm1", "clients": [{"client_id": "username1", "secret": "password1"}]}
			]
		}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, auth.VerbosityNormal, cfg.Auth.Verbosity)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `{
		"auth": {
			"verbosity": "normal",
			"stages": [
				{"realm": "realm1", "clients": [{"client_id": "username1", "secret": "password1"}]}
			]
		}
	}`)

	t.Setenv("HTTPAUTH_AUTH_VERBOSITY", "minimal")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, auth.VerbosityMinimal, cfg.Auth.Verbosity)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestConfigurationValidate(t *testing.T) {
	tests := []struct {
		name       string
		contents   string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "should_reject_invalid_realm",
			contents: `{
				"auth": {
					"stages": [
						{"realm": "bad\"realm", "clients": [{"client_id": "username1", "secret": "password1"}]}
					]
				}
			}`,
			wantErr: auth.ErrInvalidRealm,
		},
		{
			name:       "should_reject_missing_stages",
			contents:   `{"auth": {"verbosity": "normal"}}`,
			wantErrMsg: "at least one authentication stage is required",
		},
		{
			name: "should_reject_invalid_verbosity",
			contents: `{
				"auth": {
					"verbosity": "loud",
					"stages": [
						{"realm": "realm1", "clients": [{"client_id": "username1", "secret": "password1"}]}
					]
				}
			}`,
			wantErrMsg: "invalid verbosity",
		},
		{
			name: "should_reject_duplicate_realms",
			contents: `{
				"auth": {
					"stages": [
						{"realm": "realm1", "clients": [{"client_id": "username1", "secret": "password1"}]},
						{"realm": "realm1", "clients": [{"client_id": "username2", "secret": "password2"}]}
					]
				}
			}`,
			wantErrMsg: "configured twice",
		},
		{
			name: "should_reject_stage_without_clients",
			contents: `{
				"auth": {
					"stages": [{"realm": "realm1"}]
				}
			}`,
			wantErrMsg: "no clients configured",
		},
		{
			name: "should_reject_client_without_id",
			contents: `{
				"auth": {
					"stages": [
						{"realm": "realm1", "clients": [{"secret": "password1"}]}
					]
				}
			}`,
			wantErrMsg: "has no client_id",
		},
		{
			name: "should_reject_client_with_secret_and_hash",
			contents: `{
				"auth": {
					"stages": [
						{"realm": "realm1", "clients": [{"client_id": "username1", "secret": "password1", "hash": "$sha256$Zm9v"}]}
					]
				}
			}`,
			wantErrMsg: "exactly one of secret or hash",
		},
		{
			name: "should_reject_malformed_hash_descriptor",
			contents: `{
				"auth": {
					"stages": [
						{"realm": "realm1", "clients": [{"client_id": "username1", "hash": "$md5$Zm9v"}]}
					]
				}
			}`,
			wantErrMsg: "unknown hash algorithm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.contents)

			_, err := Load(path)
			require.Error(t, err)

			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
			}
			if tt.wantErrMsg != "" {
				require.Contains(t, err.Error(), tt.wantErrMsg)
			}
		})
	}
}

func TestStageConfigurationTable(t *testing.T) {
	stage := StageConfiguration{
		Realm: "realm1",
		Clients: []ClientAuth{
			{ClientID: "username1", Secret: "password1"},
			{ClientID: "username2", Hash: "$sha256$XohImNooBHFR0OVvjcYpJ3NgPQ1qq73WKhHvch0VQtg="},
			{ClientID: "username1", Secret: "rotated"},
		},
	}

	table, err := stage.Table()
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	resolved, err := table.Resolve(context.Background(), "realm1", "username1")
	require.NoError(t, err)
	secret, ok := resolved.Get()
	require.True(t, ok)

	// the last configured entry wins
	require.True(t, auth.VerifySecret("rotated", secret))
	require.False(t, auth.VerifySecret("password1", secret))

	resolved, err = table.Resolve(context.Background(), "realm1", "username2")
	require.NoError(t, err)
	secret, ok = resolved.Get()
	require.True(t, ok)
	require.True(t, auth.VerifySecret("password", secret))
}
