package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavsurve/lox/internal/compiler/token"
)

func TestScanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print "hi";`), 0o644))

	tokens, err := ScanFile(path)
	require.NoError(t, err)
	assert.Equal(t, []token.Token{
		{Type: token.TokenPrint, Literal: "print"},
		{Type: token.TokenString, Literal: "hi"},
		{Type: token.TokenSemicolon},
		{Type: token.TokenEOF},
	}, tokens)
}

func TestScanFileRejectsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(path, []byte(`print "hi";`), 0o644))

	_, err := ScanFile(path)
	assert.EqualError(t, err, "source must have .lox extension")
}

func TestScanFilePropagatesDiagnostics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lox")
	require.NoError(t, os.WriteFile(path, []byte("@"), 0o644))

	tokens, err := ScanFile(path)
	require.Error(t, err)
	assert.Nil(t, tokens)
	assert.Contains(t, err.Error(), "Invalid token '@'")
}

func TestScanFileMissing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "missing.lox"))
	assert.Error(t, err)
}
