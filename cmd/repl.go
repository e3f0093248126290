package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/arnavsurve/lox/internal/compiler/scanner"
)

const defaultHistoryFile = ".lox_history"

// repl: tokenize lines interactively
var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively tokenize lines of Lox source",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		histPath := cfg.HistoryFile
		if histPath == "" {
			home, _ := os.UserHomeDir()
			histPath = filepath.Join(home, defaultHistoryFile)
		}

		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()

		for {
			line, err := ln.Prompt("lox> ")
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}
			if err != nil {
				return err
			}

			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if trimmed == ":quit" {
				return nil
			}
			ln.AppendHistory(line)

			tokens, err := scanner.Scan(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			for _, tok := range tokens {
				fmt.Println(tok)
			}
		}
	},
}
