package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/frain-dev/httpauth/auth"
	"github.com/frain-dev/httpauth/util"
)

const saltLength = 16

func addHashCommand() *cobra.Command {
	var algorithm string
	var iterations int

	cmd := &cobra.Command{
		Use:   "hash <secret>",
		Short: "Emit a portable hash descriptor for a client secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo := auth.HashAlgorithm(algorithm)
			if !algo.IsValid() {
				return fmt.Errorf("unknown hash algorithm: %s", algorithm)
			}

			if util.IsStringEmpty(args[0]) {
				return errors.New("secret must not be empty")
			}

			var salt []byte
			if algo == auth.PBKDF2SHA256 {
				var err error
				salt, err = util.GenerateRandomBytes(saltLength)
				if err != nil {
					return fmt.Errorf("failed to generate salt: %w", err)
				}
			}

			secret, err := auth.HashSecret(args[0], algo, salt, iterations)
			if err != nil {
				return err
			}

			encoded, err := secret.EncodePortable()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), encoded)
			return nil
		},
	}

	cmd.Flags().StringVar(&algorithm, "algorithm", auth.SHA256.String(), "Hash algorithm (sha256, sha512, pbkdf2-sha256)")
	cmd.Flags().IntVar(&iterations, "iterations", auth.DefaultPBKDF2Iterations, "Iteration count for pbkdf2-sha256")

	return cmd
}
