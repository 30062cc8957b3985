package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gotet/internal/config"
	"github.com/philipparndt/gotet/pkg/geometry"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestVolumeSample(t *testing.T) {
	out, err := execute(t, "volume")
	require.NoError(t, err)
	require.Equal(t, "volume : 0.166667\n", out)
}

func TestVolumeSigned(t *testing.T) {
	out, err := execute(t, "volume", "--signed", "-p", "3")
	require.NoError(t, err)
	require.Equal(t, "volume : -0.167\n", out)
}

func TestNormalSampleDefaultSelector(t *testing.T) {
	// Default selector is vertex 3, leaving the z = 0 face
	out, err := execute(t, "normal")
	require.NoError(t, err)
	require.Equal(t, "0.000000   0.000000   -1.000000\n", out)
}

func TestNormalOppositeFlag(t *testing.T) {
	out, err := execute(t, "normal", "--opposite", "1")
	require.NoError(t, err)
	require.Equal(t, "-1.000000   0.000000   0.000000\n", out)
}

func TestNormalInvalidSelector(t *testing.T) {
	_, err := execute(t, "normal", "-o", "5000")
	require.ErrorIs(t, err, geometry.ErrInvalidSelector)
}

func TestNormalFromFile(t *testing.T) {
	path := writeFile(t, "tet.yaml", `vertices:
  - [0, 0, 0]
  - [2, 0, 0]
  - [0, 2, 0]
  - [0, 0, 2]
opposite: 2
`)

	out, err := execute(t, "normal", path)
	require.NoError(t, err)
	require.Equal(t, "0.000000   -1.000000   0.000000\n", out)

	out, err = execute(t, "volume", path)
	require.NoError(t, err)
	require.Equal(t, "volume : 1.333333\n", out)
}

func TestNormalDegenerateFile(t *testing.T) {
	path := writeFile(t, "flat.tet", `tetrahedron flat
vertex 0 0 0
vertex 1 0 0
vertex 2 0 0
vertex 0 0 1
endtetrahedron
`)

	_, err := execute(t, "normal", path)
	require.ErrorIs(t, err, geometry.ErrDegenerateFace)

	// Volume still works on degenerate input
	out, err := execute(t, "volume", path)
	require.NoError(t, err)
	require.Equal(t, "volume : 0.000000\n", out)
}

func TestParseErrorIsWrapped(t *testing.T) {
	path := writeFile(t, "broken.tet", "tetrahedron\nvertex 0 0\n")

	_, err := execute(t, "volume", path)
	require.ErrorContains(t, err, "error parsing tetrahedron file")
}

func TestFaces(t *testing.T) {
	out, err := execute(t, "faces", "-p", "2")
	require.NoError(t, err)
	require.Contains(t, out, "Opposite")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	require.Contains(t, lines[0], "Perimeter")
	require.Contains(t, lines[2], "1,2,3")
	require.Contains(t, lines[2], "4.24")
	require.Contains(t, lines[3], "0,2,3")
	require.Contains(t, lines[3], "(-1.00, 0.00, 0.00)")
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)

	require.Contains(t, out, "Name: unit corner")
	require.Contains(t, out, "Volume: 0.166667 cubic units")
	require.Contains(t, out, "Surface Area: 2.366025 square units")
	require.Contains(t, out, "opposite 1: (-1.000000, ")
	require.Contains(t, out, "Box Volume: 1.000000 cubic units")
	require.Contains(t, out, "Longest: 1-2 1.414214 units")
	require.Contains(t, out, "Shortest: 0-1 1.000000 units")
}

func TestExportRoundTrip(t *testing.T) {
	out, err := execute(t, "export", "--format", "yaml", "--opposite", "2")
	require.NoError(t, err)
	require.Contains(t, out, "name: unit corner")
	require.Contains(t, out, "opposite: 2")

	path := writeFile(t, "exported.yaml", out)
	normal, err := execute(t, "normal", path)
	require.NoError(t, err)
	require.Equal(t, "0.000000   -1.000000   0.000000\n", normal)

	text, err := execute(t, "export")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, "tetrahedron unit corner\n"))
	require.Contains(t, text, "  vertex 0 0 1\n")

	_, err = execute(t, "export", "--format", "stl")
	require.ErrorContains(t, err, "unknown format")

	_, err = execute(t, "export", "--opposite", "4")
	require.ErrorIs(t, err, geometry.ErrInvalidSelector)
}

func TestConfigCommand(t *testing.T) {
	cfgPath := writeFile(t, "gotet.yaml", "precision: 0\ntolerance: 0\n")

	out, err := execute(t, "config", "--config", cfgPath)
	require.NoError(t, err)
	require.Contains(t, out, "precision: 0\n")
	require.Contains(t, out, "tolerance: 0\n")

	out, err = execute(t, "volume", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "volume : 0\n", out)

	saved := filepath.Join(t.TempDir(), "saved.yaml")
	out, err = execute(t, "config", "-p", "4", "--save", saved)
	require.NoError(t, err)
	require.Contains(t, out, "Saved configuration to ")

	data, err := os.ReadFile(saved)
	require.NoError(t, err)
	require.Contains(t, string(data), "precision: 4\n")
}

func TestInfoWatchNeedsFile(t *testing.T) {
	_, err := execute(t, "info", "--watch")
	require.ErrorContains(t, err, "--watch needs a file")
}

func TestConfigPrecision(t *testing.T) {
	cfgPath := writeFile(t, "gotet.yaml", "precision: 2\nopposite: 0\n")

	out, err := execute(t, "volume", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "volume : 0.17\n", out)

	out, err = execute(t, "normal", "--config", cfgPath)
	require.NoError(t, err)
	require.Equal(t, "0.58   0.58   0.58\n", out)

	// Flag wins over config
	out, err = execute(t, "volume", "--config", cfgPath, "-p", "1")
	require.NoError(t, err)
	require.Equal(t, "volume : 0.2\n", out)
}

func TestConfigInvalid(t *testing.T) {
	cfgPath := writeFile(t, "gotet.yaml", "opposite: 9\n")

	_, err := execute(t, "volume", "--config", cfgPath)
	require.ErrorIs(t, err, geometry.ErrInvalidSelector)
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	require.Contains(t, out, "gotet")

	_, err = execute(t, "completion", "powershell")
	require.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
