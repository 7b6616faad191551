package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/patrickprogramme/tlrewriter/pkg/model"
)

func TestLoad_CreatesDefaultFromEmbedded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", DefaultFileName)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, 90, cfg.BaselineSeconds)
	assert.Equal(t, "html", cfg.LineBreak)
	assert.Equal(t, "<br>", cfg.LineBreakMarker())
	assert.Equal(t, model.EncodingUTF8, cfg.Encoding())
	assert.True(t, cfg.CopyToClipboard)
	assert.Equal(t, FallbackOSC52, cfg.ClipboardFallback)
	assert.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestParse_OverridesDefaults(t *testing.T) {
	data := []byte(`
config_version: 2
baseline_seconds: 60
default_offset: 20
line_break: CRLF
input_encoding: " SJIS "
copy_to_clipboard: false
log_level: DEBUG
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.BaselineSeconds)
	assert.Equal(t, "20", cfg.DefaultOffset)
	assert.Equal(t, "crlf", cfg.LineBreak)
	assert.Equal(t, "\r\n", cfg.LineBreakMarker())
	assert.Equal(t, model.EncodingShiftJIS, cfg.Encoding())
	assert.False(t, cfg.CopyToClipboard)
	assert.Equal(t, "debug", cfg.LogLevel)
	// absent du fichier -> valeur par défaut
	assert.Equal(t, FallbackOSC52, cfg.ClipboardFallback)
}

func TestParse_LiteralLineBreakKept(t *testing.T) {
	cfg, err := Parse([]byte("config_version: 2\nline_break: \"<br />\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "<br />", cfg.LineBreakMarker())

	warnings, err := cfg.Validate()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "<br />")
}

func TestParse_EmptyAndInvalid(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)

	_, err = Parse([]byte("baseline_seconds: [1, 2"))
	assert.Error(t, err)
}

func TestLoad_MigratesV1(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("config_version: 1\nhtml_line_breaks: false\nbaseline_seconds: 85\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "lf", cfg.LineBreak)
	assert.Equal(t, 85, cfg.BaselineSeconds)
	assert.Equal(t, CurrentConfigVersion, cfg.ConfigVersion)

	// sauvegarde créée
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), DefaultFileName+".bak.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)

	// fichier réécrit dans la version courante
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]any
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, CurrentConfigVersion, onDisk["config_version"])
	assert.Equal(t, "lf", onDisk["line_break"])
	assert.NotContains(t, onDisk, "html_line_breaks")
}

func TestMigrateConfig_ExplicitLineBreakWins(t *testing.T) {
	raw := []byte("html_line_breaks: false\nline_break: crlf\n")
	cfg, err := Parse(raw)
	require.NoError(t, err)
	require.NoError(t, migrateConfig(cfg, raw, 1))
	assert.Equal(t, "crlf", cfg.LineBreak)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TLREWRITER_OFFSET", "25")
	t.Setenv("TLREWRITER_BASELINE", "80")
	t.Setenv("TLREWRITER_FOLD_WIDTH", "true")
	t.Setenv("TLREWRITER_COPY", "0")
	t.Setenv("TLREWRITER_LINE_BREAK", "lf")

	cfg := Default()
	require.NoError(t, LoadFromEnv(cfg))
	assert.Equal(t, "25", cfg.DefaultOffset)
	assert.Equal(t, 80, cfg.BaselineSeconds)
	assert.True(t, cfg.FoldWidth)
	assert.False(t, cfg.CopyToClipboard)
	assert.Equal(t, "lf", cfg.LineBreak)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Setenv("TLREWRITER_COPY", "peut-être")
	err := LoadFromEnv(Default())
	assert.True(t, errors.Is(err, ErrInvalidConfig))

	t.Setenv("TLREWRITER_COPY", "")
	t.Setenv("TLREWRITER_BASELINE", "quatre-vingt-dix")
	err = LoadFromEnv(Default())
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestLoad_EnvAppliedAfterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("config_version: 2\ndefault_offset: 10\n"), 0o644))
	t.Setenv("TLREWRITER_OFFSET", "30")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "30", cfg.DefaultOffset)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		wantErr     bool
		wantWarning bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative baseline", mutate: func(c *Config) { c.BaselineSeconds = -1 }, wantErr: true},
		{name: "bad offset", mutate: func(c *Config) { c.DefaultOffset = "vingt" }, wantErr: true},
		{name: "offset above baseline", mutate: func(c *Config) { c.DefaultOffset = "120" }, wantWarning: true},
		{name: "bad encoding", mutate: func(c *Config) { c.InputEncoding = "latin1" }, wantErr: true},
		{name: "bad fallback", mutate: func(c *Config) { c.ClipboardFallback = "xsel" }, wantErr: true},
		{name: "fallback none", mutate: func(c *Config) { c.ClipboardFallback = FallbackNone }},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			warnings, err := cfg.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantWarning, len(warnings) > 0, "warnings: %v", warnings)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	baseline := 75
	lb := "LF"
	fold := true
	out := "out/../tl.txt"
	copyRes := false

	cfg := Default()
	cfg.Apply(Overrides{
		BaselineSeconds: &baseline,
		LineBreak:       &lb,
		FoldWidth:       &fold,
		OutputPath:      &out,
		CopyToClipboard: &copyRes,
	})

	assert.Equal(t, 75, cfg.BaselineSeconds)
	assert.Equal(t, "lf", cfg.LineBreak)
	assert.True(t, cfg.FoldWidth)
	assert.Equal(t, "tl.txt", cfg.OutputPath)
	assert.False(t, cfg.CopyToClipboard)
	// non fournis : inchangés
	assert.Equal(t, "utf-8", cfg.InputEncoding)
	assert.Equal(t, "info", cfg.LogLevel)
}
