package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NickyBoy89/varrefactor/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 2, cfg.Analysis.MinRenameSupport)
	assert.Equal(t, []string{"@Nullable", "@Override"}, cfg.Analysis.SignatureAnnotations)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	configContent := `
analysis:
  min_rename_support: 3
  signature_annotations:
    - "@Override"
    - "@SuppressWarnings"

logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "varrefactor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configContent), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Analysis.MinRenameSupport)
	assert.Equal(t, []string{"@Override", "@SuppressWarnings"}, cfg.Analysis.SignatureAnnotations)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("VARREFACTOR_ANALYSIS_MIN_RENAME_SUPPORT", "4")
	t.Setenv("VARREFACTOR_LOGGING_LEVEL", "warn")

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Analysis.MinRenameSupport)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown log level",
			content: "logging:\n  level: loud\n",
			wantErr: config.ErrInvalidLogLevel,
		},
		{
			name:    "unknown log format",
			content: "logging:\n  format: xml\n",
			wantErr: config.ErrInvalidLogFormat,
		},
		{
			name:    "rename support below two",
			content: "analysis:\n  min_rename_support: 1\n",
			wantErr: config.ErrInvalidSupport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "varrefactor.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := config.LoadConfig(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoggingConfigApply(t *testing.T) {
	t.Parallel()

	logger := log.New()
	var buf bytes.Buffer
	logger.SetOutput(&buf)

	require.NoError(t, config.LoggingConfig{Level: "debug", Format: "json"}.Apply(logger))
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	logger.WithField("rename", "a -> b").Debug("checked")
	assert.Contains(t, buf.String(), `"rename":"a -> b"`)

	err := config.LoggingConfig{Level: "info", Format: "yaml"}.Apply(logger)
	require.ErrorIs(t, err, config.ErrInvalidLogFormat)

	err = config.LoggingConfig{Level: "chatty"}.Apply(logger)
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
}
