package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arnavsurve/lox/internal/compiler"
)

// scan: tokenize a source file and print the token stream
var ScanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize a .lox source file and print its tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		srcPath := args[0]
		log.Debugf("scanning %s", srcPath)

		tokens, err := compiler.ScanFile(srcPath)
		if err != nil {
			return err
		}

		for _, tok := range tokens {
			fmt.Println(tok)
		}
		return nil
	},
}
