package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userdir/internal/config"
)

// newDefaultTarget returns a Config with known non-zero values so tests can
// verify that absent overlay keys leave the original values intact.
func newDefaultTarget() *config.Config {
	return &config.Config{
		Source: config.SourceConfig{
			URL:         "https://users.example.com/api/",
			Results:     20,
			Nationality: "gb",
			Timeout:     3 * time.Second,
		},
		List: config.ListConfig{
			PageSize: 8,
			Match:    config.MatchContains,
		},
		Output: config.OutputConfig{
			DefaultFormat: "table",
		},
		Logging: config.LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
output:
  default_format: json
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "json", target.Output.DefaultFormat)

	// Other sections should be unchanged.
	assert.Equal(t, 8, target.List.PageSize)
	assert.Equal(t, "gb", target.Source.Nationality)
	assert.Equal(t, "info", target.Logging.Level)
}

func TestShallowMergeYAML_PartialSectionKeepsOmittedFields(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
source:
  results: 100
  timeout: 250ms
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, 100, target.Source.Results)
	assert.Equal(t, 250*time.Millisecond, target.Source.Timeout)
	assert.Equal(t, "https://users.example.com/api/", target.Source.URL)
	assert.Equal(t, "gb", target.Source.Nationality)
}

func TestShallowMergeYAML_AllSections(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
source:
  file: /tmp/users.json
list:
  page_size: 2
  match: prefix
output:
  default_format: yaml
logging:
  level: debug
  format: json
  file: /tmp/userdir.log
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/users.json", target.Source.File)
	assert.Equal(t, 2, target.List.PageSize)
	assert.Equal(t, config.MatchPrefix, target.List.Match)
	assert.Equal(t, "yaml", target.Output.DefaultFormat)
	assert.Equal(t, config.LoggingConfig{Level: "debug", Format: "json", File: "/tmp/userdir.log"}, target.Logging)
}

func TestShallowMergeYAML_EmptyOverlayFile(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, "")

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	assert.Equal(t, original.Source, target.Source)
	assert.Equal(t, original.List, target.List)
	assert.Equal(t, original.Output, target.Output)
	assert.Equal(t, original.Logging, target.Logging)
}

func TestShallowMergeYAML_CommentOnlyFile(t *testing.T) {
	target := newDefaultTarget()
	original := *target
	overlay := writeOverlay(t, "# nothing configured yet\n")

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)
	assert.Equal(t, original.List, target.List)
}

func TestShallowMergeYAML_ZeroValueFieldsReplaceDefaults(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
list:
  page_size: 0
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)

	// An explicit zero is kept so Validate can reject it.
	assert.Equal(t, 0, target.List.PageSize)
	assert.Equal(t, config.MatchContains, target.List.Match)
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := newDefaultTarget()
	overlay := writeOverlay(t, `
plugins:
  anything: true
list:
  page_size: 3
`)

	err := config.ShallowMergeYAML(target, overlay)
	require.NoError(t, err)
	assert.Equal(t, 3, target.List.PageSize)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
	}{
		{name: "corrupted yaml", content: "list: [page_size\n"},
		{name: "wrong section type", content: "list:\n  page_size: many\n"},
		{name: "missing file", missing: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeOverlay(t, tt.content)
			}

			err := config.ShallowMergeYAML(newDefaultTarget(), path)
			require.Error(t, err)
		})
	}
}

func TestShallowMergeYAML_NilTarget(t *testing.T) {
	err := config.ShallowMergeYAML(nil, writeOverlay(t, "list: {}\n"))
	require.Error(t, err)
}
