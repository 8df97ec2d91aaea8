package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <secrets file>",
	Short: "print the public keys of secrets file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log.Debug("trying to load secrets", "file", args[0])

		sc, err := loadSecretsConfig(args[0])
		if err != nil {
			exitWithError(cmd, err)
		}

		log.Debug("secrets loaded", "secrets", sc)

		pks, err := sc.PublicKeys()
		if err != nil {
			exitWithError(cmd, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "p2p_public_key: %s\n", pks[0])
		for i, pk := range pks[1:] {
			fmt.Fprintf(cmd.OutOrStdout(), "signing_key[%d]: %s\n", i, pk)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
