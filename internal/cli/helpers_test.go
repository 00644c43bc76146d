package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/userdir/internal/cli"
	"github.com/rshade/userdir/internal/config"
)

// fixturePath returns the absolute path of the shared seven-user fixture.
func fixturePath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "users", "testdata", "users.json"))
	require.NoError(t, err)
	return path
}

// setupCLITest isolates the config home and global state for one test.
func setupCLITest(t *testing.T) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvPageSize, "")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvSourceURL, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
}

// writeConfig writes a config file with the given YAML body and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// fixtureConfig returns a config file reading the fixture with three users per page.
func fixtureConfig(t *testing.T) string {
	t.Helper()
	return writeConfig(t, fmt.Sprintf("source:\n  file: %s\nlist:\n  page_size: 3\n", fixturePath(t)))
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
