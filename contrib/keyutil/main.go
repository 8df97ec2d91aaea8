package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/shaiss/mpc/common"
	"github.com/shaiss/mpc/keypair"
)

var version = common.MustParseVersion("0.1.0")

var rootCmd = &cobra.Command{
	Use:   "keyutil",
	Short: "keyutil encodes, decodes and inspects ed25519 signing keys",
	Args:  cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		handler, err := common.LogHandler(common.LogFormatter(flagLogFormat.f), flagLogOut)
		if err != nil {
			exitWithError(cmd, err)
		}
		handler = log15.CallerFileHandler(handler)

		logs := []log15.Logger{
			log,
			common.Log(),
			keypair.Log(),
		}
		for _, l := range logs {
			common.SetLogger(l, flagLogLevel.lvl, handler)
		}

		log.Debug("parsed flags", "flags", printFlags(cmd, flagLogFormat.f))
	},
}

func main() {
	rootCmd.PersistentFlags().Var(&flagLogLevel, "log-level", "log level: {debug error warn info crit}")
	rootCmd.PersistentFlags().Var(&flagLogFormat, "log-format", "log format: {json terminal}")
	rootCmd.PersistentFlags().StringVar(&flagLogOut, "log", flagLogOut, "log output file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	os.Exit(0)
}
