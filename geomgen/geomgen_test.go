package geomgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparsegraph/molinput"
)

func TestDefaultConfigCounts(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 33334, cfg.Atoms())
	assert.InDelta(t, 158.1139, cfg.HalfWidth(), 1e-4)
}

func TestGenerate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Points = 30
	cfg.Seed = 7

	var buf bytes.Buffer
	n, err := Generate(&buf, cfg)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "basis,\nC, 0.2\nbasisend\ngeom,\n"), out)
	assert.True(t, strings.HasSuffix(out, "geomend\nthreshold, 1e-06\n"), out)

	in, err := molinput.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, in.Geometry, 10)
	assert.Equal(t, 1e-6, in.Threshold)

	h := cfg.HalfWidth()
	for _, a := range in.Geometry {
		assert.Equal(t, "C", a.Label)
		for _, v := range []float64{a.X, a.Y, a.Z} {
			assert.True(t, v >= -h-1e-6 && v <= h+1e-6, "coordinate %v outside ±%v", v, h)
		}
	}
}

func TestGenerateIsSeeded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Points = 12
	cfg.Seed = 42

	var a, b bytes.Buffer
	_, err := Generate(&a, cfg)
	require.NoError(t, err)
	_, err = Generate(&b, cfg)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())

	cfg.Seed = 43
	var c bytes.Buffer
	_, err = Generate(&c, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), c.String())
}

func TestGenerateRejectsEmpty(t *testing.T) {
	_, err := Generate(&bytes.Buffer{}, Config{Label: "C"})
	assert.Error(t, err)
}
