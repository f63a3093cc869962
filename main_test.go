package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparsegraph/internal/buildinfo"
)

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())

	assert.Equal(t, "sparsegraph "+buildinfo.String(), strings.TrimSpace(buf.String()))
}

func TestRootWritesPNG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "thc.sparse")
	out := filepath.Join(dir, "thc.png")
	require.NoError(t, os.WriteFile(in, []byte("0 0 5.0\n1 2 3.0\n"), 0o644))

	rootCmd.SetArgs([]string{"--out", out, "--width", "60", "--height", "40", "--log-level", "warn", in + ":3"})
	require.NoError(t, rootCmd.Execute())

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 60, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
}
