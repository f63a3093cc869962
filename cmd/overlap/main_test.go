package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pair.inp")
	require.NoError(t, os.WriteFile(in, []byte(`basis,
H, 1.0
basisend
geom,
H, 0, 0, 0
H, 0, 0, 1.4
geomend
print, sparsegraph, 2
`), 0o644))

	rootCmd.SetArgs([]string{"--log-level", "warn", in})
	require.NoError(t, rootCmd.Execute())

	out, err := os.ReadFile(filepath.Join(dir, "pair.out"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "This system has 2 basis functions")

	graph, err := os.ReadFile(filepath.Join(dir, "pair.sparse"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(graph)), "\n"), 4)
}

func TestOverlapCommandNeedsInput(t *testing.T) {
	rootCmd.SetArgs([]string{})
	require.Error(t, rootCmd.Execute())
}
