package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgPath string
	verbose bool
	cfg     Config
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "lox",
	Short: "Lox CLI — scanner, REPL, and benchmark driver",
	Long: `Lox is the toolchain for the Lox scripting language.

Commands:
  scan   Tokenize a (.lox) source file and print the token stream
  repl   Interactively tokenize lines of Lox source
  bench  Synthesize a large source buffer and time one scan
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(cfgPath)
		if err != nil {
			return err
		}
		if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
			log.SetLevel(level)
		}
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to a yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(ScanCmd, ReplCmd, BenchCmd)
}
