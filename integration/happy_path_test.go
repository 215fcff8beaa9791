//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vbp1/fixturegen/integration/util"
)

func TestHappyPath(t *testing.T) {
	require := require.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	moduleRoot, err := filepath.Abs("..")
	require.NoError(err)
	bin, err := util.BuildBinary(ctx, moduleRoot, "./cmd/fixturegen", t.TempDir())
	require.NoError(err)

	work := t.TempDir()
	runBin := func(args ...string) []byte {
		cmd := exec.CommandContext(ctx, bin, args...)
		cmd.Dir = work
		out, err := cmd.CombinedOutput()
		require.NoErrorf(err, "fixturegen %v failed: %s", args, string(out))
		return out
	}

	out := runBin()
	require.Contains(string(out), "Total directories created: 42")

	root := filepath.Join(work, "src", "integrationTest", "testData", "comprehensive-test-project")
	dirs, files, err := util.CountTree(root)
	require.NoError(err)
	require.Equal(42, dirs)
	require.Equal(65, files)
	first, err := util.Snapshot(root)
	require.NoError(err)

	require.NoError(os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), 0o644))
	runBin("--verbose")
	second, err := util.Snapshot(root)
	require.NoError(err)
	require.Equal(first, second)

	runBin("verify")

	// failure exits non-zero
	cmd := exec.CommandContext(ctx, bin, "--preset", "missing")
	cmd.Dir = work
	err = cmd.Run()
	var exitErr *exec.ExitError
	require.ErrorAs(err, &exitErr)
	require.NotEqual(0, exitErr.ExitCode())
}
