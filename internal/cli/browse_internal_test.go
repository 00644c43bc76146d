package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userdir/internal/config"
	"github.com/rshade/userdir/internal/tui"
)

// stubOutputMode forces the detected output mode for one test.
func stubOutputMode(t *testing.T, mode tui.OutputMode) {
	t.Helper()
	orig := detectOutputMode
	detectOutputMode = func(_, _, _ bool) tui.OutputMode { return mode }
	t.Cleanup(func() { detectOutputMode = orig })
}

// stubProgram replaces the Bubble Tea run with a recorder.
func stubProgram(t *testing.T) *bool {
	t.Helper()
	called := false
	orig := runProgram
	runProgram = func(p *tea.Program) (tea.Model, error) {
		called = true
		require.NotNil(t, p)
		return nil, nil
	}
	t.Cleanup(func() { runProgram = orig })
	return &called
}

// keepColorProfile restores the global lipgloss color profile after a test.
func keepColorProfile(t *testing.T) {
	t.Helper()
	orig := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })
}

func browseConfig(t *testing.T) string {
	t.Helper()
	fixture, err := filepath.Abs(filepath.Join("..", "users", "testdata", "users.json"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	body := fmt.Sprintf("source:\n  file: %s\nlist:\n  page_size: 4\n", fixture)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func executeBrowse(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvHome, t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)

	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"browse", "--config", browseConfig(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestBrowse_FallsBackToTableWithoutTerminal(t *testing.T) {
	stubOutputMode(t, tui.OutputModePlain)

	out, err := executeBrowse(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Brad Gibson")
	assert.Contains(t, out, "Page 1 of 2 (7 users) | prev: off | next: on")
}

func TestBrowse_StyledPrintsStyledPage(t *testing.T) {
	keepColorProfile(t)
	stubOutputMode(t, tui.OutputModeStyled)

	out, err := executeBrowse(t, "--force-color", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Brad Gibson")
	assert.Contains(t, out, "◀ prev  Page 1 of 2  next ▶")
	assert.NotContains(t, out, "Erin Alvarez")
}

func TestBrowse_ForceColorReachesDetection(t *testing.T) {
	var gotForce, gotNoColor, gotPlain bool
	orig := detectOutputMode
	detectOutputMode = func(forceColor, noColor, plain bool) tui.OutputMode {
		gotForce, gotNoColor, gotPlain = forceColor, noColor, plain
		return tui.OutputModePlain
	}
	t.Cleanup(func() { detectOutputMode = orig })

	_, err := executeBrowse(t, "--force-color", "--plain")
	require.NoError(t, err)
	assert.True(t, gotForce)
	assert.False(t, gotNoColor)
	assert.True(t, gotPlain)
}

func TestBrowse_NoColorDisablesStylesInBrowser(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		noColor string
		want    termenv.Profile
	}{
		{name: "flag", args: []string{"--no-color"}, want: termenv.Ascii},
		{name: "environment", noColor: "1", want: termenv.Ascii},
		{name: "colors kept", want: termenv.TrueColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keepColorProfile(t)
			lipgloss.SetColorProfile(termenv.TrueColor)
			t.Setenv("NO_COLOR", tt.noColor)
			stubOutputMode(t, tui.OutputModeInteractive)
			stubProgram(t)

			_, err := executeBrowse(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lipgloss.ColorProfile())
		})
	}
}

func TestBrowse_RunsInteractiveProgram(t *testing.T) {
	stubOutputMode(t, tui.OutputModeInteractive)
	called := stubProgram(t)

	_, err := executeBrowse(t, "--page-size", "2", "--match", "contains")
	require.NoError(t, err)
	assert.True(t, *called)
}

func TestBrowse_RejectsInvalidFlags(t *testing.T) {
	stubOutputMode(t, tui.OutputModeInteractive)

	_, err := executeBrowse(t, "--match", "fuzzy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match must be")
}
