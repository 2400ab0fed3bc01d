package trace_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/ergmee/trace"
	"github.com/stretchr/testify/require"
)

func TestThetaWriter_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theta_values_net.txt")
	tw, err := trace.NewThetaWriter(path, []string{"Arc", "Reciprocity"})
	require.NoError(t, err)

	require.NoError(t, tw.WriteRow(-2, []float64{0, 0}, 0.5))
	require.NoError(t, tw.WriteRow(-1, []float64{0.1, -0.2}, 0.6))
	require.NoError(t, tw.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, "t Arc Reciprocity AcceptanceRate", lines[0])
	require.Equal(t, "-2 0 0 0.5", lines[1])
	require.Equal(t, "-1 0.1 -0.2 0.6", lines[2])
}

func TestDzAWriter_HeaderAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dzA_values_net.txt")
	dw, err := trace.NewDzAWriter(path, []string{"Arc"})
	require.NoError(t, err)

	require.NoError(t, dw.WriteRow(0, []float64{1.5}))
	require.NoError(t, dw.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Equal(t, "t Arc", lines[0])
	require.Equal(t, "0 1.5", lines[1])
}
