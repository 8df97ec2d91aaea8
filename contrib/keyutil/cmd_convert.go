package main

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shaiss/mpc/keypair"
)

var convertCmd = &cobra.Command{
	Use:   "convert <public key>",
	Short: "parse curve tagged public key and print the raw forms",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := convert(cmd.OutOrStdout(), args[0]); err != nil {
			exitWithError(cmd, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func convert(w io.Writer, s string) error {
	pk, err := keypair.ParsePublicKey(s)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "curve: %s\n", pk.CurveType())
	fmt.Fprintf(w, "data: %s\n", hex.EncodeToString(pk.KeyData()))

	switch pk.CurveType() {
	case keypair.ED25519:
		if _, err := pk.Ed25519(); err != nil {
			return err
		}
	case keypair.SECP256K1:
		point, err := pk.UncompressedPoint()
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "uncompressed: %s\n", hex.EncodeToString(point))
	}

	return nil
}
