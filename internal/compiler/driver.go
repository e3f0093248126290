package compiler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arnavsurve/lox/internal/compiler/scanner"
	"github.com/arnavsurve/lox/internal/compiler/token"
)

// ScanFile reads a Lox source file and scans it into tokens.
func ScanFile(srcPath string) ([]token.Token, error) {
	if err := validateExtension(srcPath); err != nil {
		return nil, err
	}

	src, err := readSource(srcPath)
	if err != nil {
		return nil, err
	}

	return scanner.Scan(src)
}

func validateExtension(path string) error {
	if filepath.Ext(path) != ".lox" {
		return fmt.Errorf("source must have .lox extension")
	}
	return nil
}

func readSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	return string(b), err
}
