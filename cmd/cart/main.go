package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose bool
	logFile string
	logger  zerolog.Logger
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{logger: zerolog.Nop()}
	rootCmd := &cobra.Command{
		Use:   "cart",
		Short: "cart is a tool to grow classification trees",
		Long:  `A tool to grow CART classification trees from your data, test them, and use them to make predictions`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.logger = newLogger(os.Stderr, config.verbose, config.logFile)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log progress information")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", "", "path to a file to which logs are also written, rotated as it grows")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config), predictCmd(config), setCmd(config))
	return rootCmd
}
