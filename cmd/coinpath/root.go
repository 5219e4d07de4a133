// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/coinpath/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

const (
	envLogLevel  = "COINPATH_LOG_LEVEL"
	envLogFormat = "COINPATH_LOG_FORMAT"
	envAddr      = "COINPATH_ADDR"
)

type rootFlags struct {
	logLevel  string
	logFormat string
	envFile   string
}

func newRootCmd() *cobra.Command {
	var rf rootFlags

	root := &cobra.Command{
		Use:   "coinpath",
		Short: "Shortest routes under a coin budget",
		Long: "coinpath searches road networks where every road has a distance and a toll,\n" +
			"returning the shortest route whose total toll fits the budget.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rf.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.logLevel, "log-level", "info", "log level: debug, info, warn, error (env "+envLogLevel+")")
	pf.StringVar(&rf.logFormat, "log-format", "text", "log format: text or json (env "+envLogFormat+")")
	pf.StringVar(&rf.envFile, "env-file", ".env", "dotenv file read before flags are resolved")

	root.AddCommand(newSolveCmd(), newRoutesCmd(), newBatchCmd(), newServeCmd(), newSampleCmd())

	return root
}

// setup loads the dotenv file, lets the environment fill flags the user did
// not set, and initialises logging.
func (rf *rootFlags) setup(cmd *cobra.Command) error {
	if rf.envFile != "" {
		if err := godotenv.Load(rf.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", rf.envFile, err)
		}
	}
	flags := cmd.Flags()
	fromEnv(flags.Changed("log-level"), envLogLevel, &rf.logLevel)
	fromEnv(flags.Changed("log-format"), envLogFormat, &rf.logFormat)

	level, err := logging.ParseLevel(rf.logLevel)
	if err != nil {
		return err
	}
	logging.Init(level, rf.logFormat, cmd.ErrOrStderr())

	return nil
}

// fromEnv overwrites *dst with the environment value of key unless the flag
// was set explicitly.
func fromEnv(changed bool, key string, dst *string) {
	if changed {
		return
	}
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
