package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/frain-dev/httpauth/auth"
	"github.com/frain-dev/httpauth/util"
)

const envPrefix = "HTTPAUTH"

type Configuration struct {
	Auth AuthConfiguration `json:"auth" mapstructure:"auth"`
}

type AuthConfiguration struct {
	Verbosity auth.Verbosity       `json:"verbosity" mapstructure:"verbosity"`
	Stages    []StageConfiguration `json:"stages" mapstructure:"stages"`
}

// StageConfiguration describes one Basic-authentication stage: a realm and
// its ordered client list. Entry order matters; a duplicate client id is
// resolved last-entry-wins when the table is built.
type StageConfiguration struct {
	Realm                string       `json:"realm" mapstructure:"realm"`
	Halt                 bool         `json:"halt" mapstructure:"halt"`
	AdvertiseUnattempted bool         `json:"advertise_unattempted" mapstructure:"advertise_unattempted"`
	Clients              []ClientAuth `json:"clients" mapstructure:"clients"`
}

// ClientAuth is one configured client. Exactly one of Secret (cleartext) or
// Hash (portable hash descriptor, see auth.ParsePortableHash) must be set.
type ClientAuth struct {
	ClientID string `json:"client_id" mapstructure:"client_id"`
	Secret   string `json:"secret" mapstructure:"secret"`
	Hash     string `json:"hash" mapstructure:"hash"`
}

// Load reads a JSON or YAML configuration file, applies HTTPAUTH_* env
// overrides and validates the result. Validation failures are fatal: a
// configuration that fails here must never serve requests.
func Load(path string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("auth.verbosity", auth.VerbosityNormal.String())

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}

	c := new(Configuration)
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Configuration) Validate() error {
	if !c.Auth.Verbosity.IsValid() {
		return fmt.Errorf("invalid verbosity: %q", c.Auth.Verbosity)
	}

	if len(c.Auth.Stages) == 0 {
		return fmt.Errorf("at least one authentication stage is required")
	}

	seen := map[string]struct{}{}
	for i, stage := range c.Auth.Stages {
		if err := auth.Realm(stage.Realm).Validate(); err != nil {
			return fmt.Errorf("stage %d: %w", i, err)
		}

		if _, ok := seen[stage.Realm]; ok {
			return fmt.Errorf("stage %d: realm '%s' is configured twice", i, stage.Realm)
		}
		seen[stage.Realm] = struct{}{}

		if len(stage.Clients) == 0 {
			return fmt.Errorf("stage %d: no clients configured for realm '%s'", i, stage.Realm)
		}

		for j, client := range stage.Clients {
			if util.IsStringEmpty(client.ClientID) {
				return fmt.Errorf("stage %d: client %d has no client_id", i, j)
			}

			hasSecret := client.Secret != ""
			hasHash := !util.IsStringEmpty(client.Hash)
			if hasSecret == hasHash {
				return fmt.Errorf("stage %d: client '%s' must set exactly one of secret or hash", i, client.ClientID)
			}

			if hasHash {
				if _, err := auth.ParsePortableHash(client.Hash); err != nil {
					return fmt.Errorf("stage %d: client '%s': %w", i, client.ClientID, err)
				}
			}
		}
	}

	return nil
}

// Table builds the immutable client table for this stage.
func (s *StageConfiguration) Table() (*auth.StaticTable, error) {
	entries := make([]auth.ClientEntry, 0, len(s.Clients))
	for _, client := range s.Clients {
		secret := auth.NewCleartextSecret(client.Secret)
		if !util.IsStringEmpty(client.Hash) {
			parsed, err := auth.ParsePortableHash(client.Hash)
			if err != nil {
				return nil, fmt.Errorf("client '%s': %w", client.ClientID, err)
			}
			secret = parsed
		}

		entries = append(entries, auth.ClientEntry{ClientID: client.ClientID, Secret: secret})
	}

	return auth.NewStaticTable(entries), nil
}
