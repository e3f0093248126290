package cmd

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/lox/internal/compiler/scanner"
)

const benchLine = "print \"Hello, World!\";\n"

var benchCount int

// bench: synthesize a large source buffer and time a single scan over it
var BenchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Synthesize a large source buffer and time one scan",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		count := benchCount
		if !cmd.Flags().Changed("count") && cfg.BenchCount > 0 {
			count = cfg.BenchCount
		}

		var b strings.Builder
		b.Grow(count * len(benchLine))
		for i := 0; i < count; i++ {
			b.WriteString(benchLine)
		}
		log.Debugf("synthesized %d bytes of source", b.Len())

		start := time.Now()
		tokens, err := scanner.Scan(b.String())
		if err != nil {
			return err
		}
		elapsed := time.Since(start)

		log.WithFields(logrus.Fields{
			"tokens":     len(tokens),
			"elapsed_ms": float64(elapsed.Microseconds()) / 1000.0,
		}).Info("scan complete")
		return nil
	},
}

func init() {
	BenchCmd.Flags().IntVarP(&benchCount, "count", "n", 1_000_000, "number of synthesized source lines")
}
