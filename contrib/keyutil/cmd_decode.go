package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaiss/mpc/keypair"
	"github.com/shaiss/mpc/keyutils"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <ed25519 key>",
	Short: "decode ed25519 key string to hex seed",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		seed, pk, err := decode(args[0])
		if err != nil {
			exitWithError(cmd, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seed: %s\npublic_key: %s\n", seed, pk)
	},
}

var pubkeyCmd = &cobra.Command{
	Use:   "pubkey <ed25519 key>",
	Short: "print the public key of ed25519 key string",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, pk, err := decode(args[0])
		if err != nil {
			exitWithError(cmd, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), pk.String())
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(pubkeyCmd)
}

func decode(s string) (string, keypair.PublicKey, error) {
	key, err := keyutils.DecodeKey(s)
	if err != nil {
		return "", keypair.PublicKey{}, err
	}

	pk, err := key.PublicKey()
	if err != nil {
		return "", keypair.PublicKey{}, err
	}

	raw := key.Bytes()

	return hex.EncodeToString(raw[:]), pk, nil
}
