package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"

	"github.com/shaiss/mpc/keypair"
	"github.com/shaiss/mpc/keyutils"
)

var flagRandom bool

var encodeCmd = &cobra.Command{
	Use:   "encode [hex seed]",
	Short: "encode 32 bytes seed to ed25519 key string",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var seed string
		if len(args) > 0 {
			seed = args[0]
		}

		s, err := encode(seed, flagRandom)
		if err != nil {
			exitWithError(cmd, err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), s)
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&flagRandom, "random", flagRandom, "encode new random key")

	rootCmd.AddCommand(encodeCmd)
}

func encode(seed string, random bool) (string, error) {
	var key keypair.SigningKey
	switch {
	case random && len(seed) > 0:
		return "", xerrors.Errorf("--random can not be used with seed")
	case random:
		k, err := keypair.NewRandomSigningKey()
		if err != nil {
			return "", err
		}
		key = k

		log.Debug("new random key generated")
	default:
		b, err := hex.DecodeString(strings.TrimPrefix(seed, "0x"))
		if err != nil {
			return "", xerrors.Errorf("invalid hex seed: %w", err)
		}

		k, err := keypair.NewSigningKeyFromBytes(b)
		if err != nil {
			return "", err
		}
		key = k
	}

	return keyutils.EncodeKey(key), nil
}
